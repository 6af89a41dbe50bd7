package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessview/internal/movelist"
)

// Notice lifetimes in ticks (60 per second).
const (
	infoTicks  = 150
	errorTicks = 180
	fadeTicks  = 12
	maxNotices = 3
)

type notice struct {
	message string
	bg      color.RGBA
	ticks   int // remaining
	total   int
}

func (n *notice) alpha() float64 {
	elapsed := n.total - n.ticks
	switch {
	case elapsed < fadeTicks:
		return float64(elapsed) / fadeTicks
	case n.ticks < fadeTicks:
		return float64(n.ticks) / fadeTicks
	}
	return 1
}

var (
	infoBg  = color.RGBA{50, 100, 150, 220}
	errorBg = color.RGBA{180, 50, 50, 220}
)

// FeedbackManager shows notices over the board and plays move sounds.
// Notices count down in Update, so they follow the game tick like the board
// animation does.
type FeedbackManager struct {
	notices []*notice
	audio   *AudioManager // nil when sound is off for the process
}

// NewFeedbackManager creates a feedback manager around audio, which may be nil.
func NewFeedbackManager(audio *AudioManager) *FeedbackManager {
	return &FeedbackManager{audio: audio}
}

func (fm *FeedbackManager) push(message string, bg color.RGBA, ticks int) {
	fm.notices = append(fm.notices, &notice{message: message, bg: bg, ticks: ticks, total: ticks})
	if len(fm.notices) > maxNotices {
		fm.notices = fm.notices[len(fm.notices)-maxNotices:]
	}
}

// Update ages notices by one tick.
func (fm *FeedbackManager) Update() {
	live := fm.notices[:0]
	for _, n := range fm.notices {
		if n.ticks--; n.ticks > 0 {
			live = append(live, n)
		}
	}
	fm.notices = live
}

// Draw stacks the live notices at the top of the board.
func (fm *FeedbackManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	const pad = 12.0
	y := 50.0
	for _, n := range fm.notices {
		a := n.alpha()
		w, h := MeasureText(n.message, face)
		boxW, boxH := w+pad*2, h+pad*2
		x := float64(BoardSize)/2 - boxW/2

		bg := n.bg
		bg.A = uint8(float64(bg.A) * a)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+pad, y+pad)
		op.ColorScale.ScaleWithColor(color.White)
		op.ColorScale.ScaleAlpha(float32(a))
		text.Draw(screen, n.message, face, op)

		y += boxH + 8
	}
}

// OnMoveLanded plays the sound for the move of item.
func (fm *FeedbackManager) OnMoveLanded(item movelist.Item) {
	if fm.audio != nil {
		fm.audio.Play(SoundFor(item))
	}
}

// OnError reports a failed command.
func (fm *FeedbackManager) OnError(message string) {
	fm.push(message, errorBg, errorTicks)
	if fm.audio != nil {
		fm.audio.Play(SoundInvalid)
	}
}

// OnInfo shows a short notice.
func (fm *FeedbackManager) OnInfo(message string) {
	fm.push(message, infoBg, infoTicks)
}

// Audio returns the audio manager, or nil.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}
