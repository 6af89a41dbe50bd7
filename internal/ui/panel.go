package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/movelist"
)

// Panel dimensions
const (
	PanelPadding  = 20
	ButtonHeight  = 36
	NavButtonGap  = 6
	SectionLabelH = 20
	MoveRowHeight = 22
	MoveColumnW   = 80
	StatusBarH    = 70
)

// StatusPieceSize is the edge of the moved piece figure in the status bar.
const StatusPieceSize = 24

// Panel is the side panel with navigation controls and the move list.
type Panel struct {
	game *Game

	navButtons []*Button // first, previous, next, last
	resetBtn   *Button
	flipBtn    *Button
	lastMoveCB *Checkbox
	soundCB    *Checkbox

	listY      int
	scrollY    int
	maxScrollY int
	rows       []RowBounds
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createButtons()
	return p
}

// createButtons initializes all panel widgets.
func (p *Panel) createButtons() {
	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2

	y := PanelPadding
	navW := (contentW - 3*NavButtonGap) / 4
	labels := []string{"|<", "<", ">", ">|"}
	actions := []func(){p.game.FirstAction, p.game.PreviousAction, p.game.NextAction, p.game.LastAction}
	for i, label := range labels {
		p.navButtons = append(p.navButtons, &Button{
			X: contentX + i*(navW+NavButtonGap), Y: y,
			W: navW, H: ButtonHeight,
			Label:   label,
			OnClick: actions[i],
		})
	}

	y += ButtonHeight + 8
	halfW := (contentW - NavButtonGap) / 2
	p.resetBtn = &Button{X: contentX, Y: y, W: halfW, H: ButtonHeight, Label: "Reset", OnClick: p.game.ResetAction}
	p.flipBtn = &Button{X: contentX + halfW + NavButtonGap, Y: y, W: halfW, H: ButtonHeight, Label: "Flip", OnClick: p.game.FlipAction}

	y += ButtonHeight + 14
	p.lastMoveCB = &Checkbox{X: contentX, Y: y, Label: "Show last move", OnChange: p.game.SetShowLastMove}
	y += 28
	p.soundCB = &Checkbox{X: contentX, Y: y, Label: "Sound", OnChange: p.game.SetSoundEnabled}

	p.listY = y + 28 + SectionLabelH + 8
}

// Sync copies the game state into the widgets.
func (p *Panel) Sync() {
	nav := p.game.nav
	p.navButtons[0].Disabled = !nav.CanGoBack()
	p.navButtons[1].Disabled = !nav.CanGoBack()
	p.navButtons[2].Disabled = !nav.CanGoForward()
	p.navButtons[3].Disabled = !nav.CanGoForward()
	p.lastMoveCB.Checked = p.game.prefs.ShowLastMove
	p.soundCB.Checked = p.game.prefs.SoundEnabled
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	p.Sync()
	mx, my := input.MousePosition()

	if wheel := input.Wheel(); wheel != 0 && mx >= BoardSize && my >= p.listY {
		p.scroll(-int(wheel * 30))
	}

	for _, b := range p.navButtons {
		if b.Update(input) {
			return true
		}
	}
	if p.resetBtn.Update(input) || p.flipBtn.Update(input) {
		return true
	}
	if p.lastMoveCB.Update(input) || p.soundCB.Update(input) {
		return true
	}

	if input.IsLeftJustPressed() {
		for _, r := range p.rows {
			if r.Contains(mx, my) {
				p.game.JumpAction(r.Index)
				return true
			}
		}
	}
	return false
}

func (p *Panel) scroll(dy int) {
	p.scrollY += dy
	if p.scrollY > p.maxScrollY {
		p.scrollY = p.maxScrollY
	}
	if p.scrollY < 0 {
		p.scrollY = 0
	}
}

// ScrollToSelected keeps the selected item within the visible list.
func (p *Panel) ScrollToSelected() {
	sel := p.game.cursor.Selected()
	if sel < 0 {
		return
	}
	top := (sel / 2) * MoveRowHeight
	visible := ScreenHeight - StatusBarH - p.listY
	if top < p.scrollY {
		p.scrollY = top
	} else if top+MoveRowHeight > p.scrollY+visible {
		p.scrollY = top + MoveRowHeight - visible
	}
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	p.Sync()
	vector.DrawFilledRect(screen, float32(BoardSize), 0, float32(PanelWidth), float32(ScreenHeight), panelBg, false)

	for _, b := range p.navButtons {
		b.Draw(screen)
	}
	p.resetBtn.Draw(screen)
	p.flipBtn.Draw(screen)
	p.lastMoveCB.Draw(screen)
	p.soundCB.Draw(screen)

	drawText(screen, "Moves", BoardSize+PanelPadding, p.listY-SectionLabelH-4, textMuted)
	p.drawMoveList(screen)
	p.drawStatusBar(screen)
}

func (p *Panel) drawMoveList(screen *ebiten.Image) {
	items := p.game.cursor.Items()
	x := BoardSize + PanelPadding
	maxY := ScreenHeight - StatusBarH

	if len(items) == 0 {
		p.rows = nil
		drawText(screen, "No moves loaded", x, p.listY+5, textMuted)
		return
	}

	lines := (len(items) + 1) / 2
	p.maxScrollY = lines*MoveRowHeight - (maxY - p.listY)
	if p.maxScrollY < 0 {
		p.maxScrollY = 0
	}
	p.scroll(0)

	p.rows = moveListRows(len(items), x, p.listY, maxY, p.scrollY, MoveRowHeight, MoveColumnW)
	for _, r := range p.rows {
		line := r.Index / 2
		if r.Index%2 == 0 {
			if line%2 == 1 {
				vector.DrawFilledRect(screen, float32(x-4), float32(r.Y-2),
					float32(PanelWidth-PanelPadding*2+8), float32(MoveRowHeight), moveRowAlt, false)
			}
			drawText(screen, fmt.Sprintf("%d.", items[r.Index].MoveNumber()), x, r.Y, textMuted)
		}

		textC := textPrimary
		if items[r.Index].Selected {
			vector.DrawFilledRect(screen, float32(r.X-4), float32(r.Y-2), float32(r.W-8), float32(r.H), moveRowActive, false)
		} else if r.Index > p.game.cursor.Selected() {
			textC = textSecondary
		}
		drawText(screen, items[r.Index].SAN, r.X, r.Y, textC)
	}
}

// statusLine returns the moved piece and the text describing it. The piece is
// NoPiece when the item's side or piece code is not recognized.
func statusLine(it movelist.Item, total int) (board.Piece, string) {
	dots := "."
	if it.Side == "b" {
		dots = "..."
	}
	text := fmt.Sprintf("%d%s %s  (%d/%d)", it.MoveNumber(), dots, it.SAN, it.Number, total)
	piece, err := it.Piece()
	if err != nil {
		return board.NoPiece, text
	}
	return piece, text
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - StatusBarH
	x := BoardSize + PanelPadding
	DrawDivider(screen, x, statusY-10, PanelWidth-PanelPadding*2)

	status := "Start position"
	if it, ok := p.game.nav.Current(); ok {
		var piece board.Piece
		piece, status = statusLine(it, p.game.cursor.Len())
		if !piece.IsEmpty() {
			p.game.renderer.sprites.DrawPieceSized(screen, piece, float64(x), float64(statusY), StatusPieceSize)
			x += StatusPieceSize + 6
		}
	}
	drawText(screen, status, x, statusY+4, textPrimary)
	x = BoardSize + PanelPadding

	if p.game.title != "" {
		drawText(screen, p.game.title, x, statusY+28, textMuted)
	}
}
