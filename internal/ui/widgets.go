package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget colors
var (
	panelBg       = color.RGBA{38, 40, 45, 255}
	widgetBg      = color.RGBA{48, 52, 58, 255}
	widgetBorder  = color.RGBA{68, 72, 78, 255}
	widgetHoverBg = color.RGBA{65, 70, 78, 255}
	buttonBg      = color.RGBA{50, 54, 60, 255}
	buttonPressed = color.RGBA{40, 44, 50, 255}
	accentColor   = color.RGBA{76, 175, 120, 255}
	textPrimary   = color.RGBA{240, 240, 245, 255}
	textSecondary = color.RGBA{160, 165, 175, 255}
	textMuted     = color.RGBA{120, 125, 135, 255}
	dividerColor  = color.RGBA{60, 65, 72, 255}
	moveRowAlt    = color.RGBA{44, 48, 54, 255}
	moveRowActive = color.RGBA{76, 132, 96, 255}
)

// Alpha applied to disabled buttons.
const disabledAlpha = 0.35

// Button is a clickable panel button. A disabled button is drawn faded and
// ignores clicks.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	Disabled   bool
	hovered    bool
	pressed    bool
}

// Update handles button input. It returns true when the click was consumed.
func (b *Button) Update(input *InputHandler) bool {
	b.hovered = input.IsInBounds(b.X, b.Y, b.W, b.H)
	b.pressed = b.hovered && input.IsLeftPressed() && !b.Disabled

	if b.Disabled || !b.hovered || !input.IsLeftJustPressed() {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image) {
	bgColor, borderC := buttonBg, widgetBorder
	if b.pressed {
		bgColor = buttonPressed
	} else if b.hovered && !b.Disabled {
		bgColor = widgetHoverBg
		borderC = accentColor
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fade(bgColor, b.Disabled), false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, fade(borderC, b.Disabled), false)

	drawTextCentered(screen, b.Label, b.X+b.W/2, b.Y+b.H/2, fade(textPrimary, b.Disabled))
}

// Checkbox is a toggleable checkbox widget.
type Checkbox struct {
	X, Y     int
	Label    string
	Checked  bool
	OnChange func(checked bool)
	hovered  bool
}

// Update handles checkbox input.
func (cb *Checkbox) Update(input *InputHandler) bool {
	cb.hovered = input.IsInBounds(cb.X, cb.Y, 200, 24)

	if input.IsLeftJustPressed() && cb.hovered {
		cb.Checked = !cb.Checked
		if cb.OnChange != nil {
			cb.OnChange(cb.Checked)
		}
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	boxX, boxY := float32(cb.X), float32(cb.Y)
	const boxSize = 20

	bgColor := widgetBg
	if cb.hovered {
		bgColor = widgetHoverBg
	}
	vector.DrawFilledRect(screen, boxX, boxY, boxSize, boxSize, bgColor, false)

	borderC := widgetBorder
	if cb.hovered || cb.Checked {
		borderC = accentColor
	}
	vector.StrokeRect(screen, boxX, boxY, boxSize, boxSize, 2, borderC, false)

	if cb.Checked {
		vector.StrokeLine(screen, boxX+4, boxY+10, boxX+8, boxY+14, 2, accentColor, false)
		vector.StrokeLine(screen, boxX+8, boxY+14, boxX+16, boxY+6, 2, accentColor, false)
	}

	textColor := textSecondary
	if cb.Checked {
		textColor = textPrimary
	}
	_, h := MeasureText(cb.Label, face)
	drawText(screen, cb.Label, cb.X+30, cb.Y+10-int(h/2), textColor)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 1, dividerColor, false)
}

func drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func drawTextCentered(screen *ebiten.Image, s string, centerX, centerY int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	w, h := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(centerX)-w/2, float64(centerY)-h/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func fade(c color.RGBA, disabled bool) color.RGBA {
	if !disabled {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * disabledAlpha),
		G: uint8(float64(c.G) * disabledAlpha),
		B: uint8(float64(c.B) * disabledAlpha),
		A: uint8(float64(c.A) * disabledAlpha),
	}
}
