package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is a viewer action bound to a key.
type Command int

const (
	CmdNone Command = iota
	CmdPrevious
	CmdNext
	CmdFirst
	CmdLast
	CmdReset
	CmdToggleLastMove
	CmdFlip
	CmdToggleSound
)

// keyBindings maps keys to viewer commands.
var keyBindings = map[ebiten.Key]Command{
	ebiten.KeyArrowLeft:  CmdPrevious,
	ebiten.KeyArrowRight: CmdNext,
	ebiten.KeyHome:       CmdFirst,
	ebiten.KeyEnd:        CmdLast,
	ebiten.KeyR:          CmdReset,
	ebiten.KeyL:          CmdToggleLastMove,
	ebiten.KeyF:          CmdFlip,
	ebiten.KeyM:          CmdToggleSound,
}

// CommandForKey returns the command bound to key, or CmdNone.
func CommandForKey(key ebiten.Key) Command {
	return keyBindings[key]
}

// InputHandler manages mouse and keyboard input.
type InputHandler struct {
	mouseX, mouseY  int
	leftPressed     bool
	leftJustPressed bool
	wheelY          float64
	keys            []ebiten.Key
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update updates the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	ih.mouseX, ih.mouseY = ebiten.CursorPosition()
	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	_, ih.wheelY = ebiten.Wheel()
	ih.keys = inpututil.AppendJustPressedKeys(ih.keys[:0])
}

// MousePosition returns the current mouse position.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsLeftPressed returns true if the left mouse button is currently pressed.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.leftPressed
}

// Wheel returns the vertical scroll of this frame.
func (ih *InputHandler) Wheel() float64 {
	return ih.wheelY
}

// IsInBounds returns true if the mouse is within the given rectangle.
func (ih *InputHandler) IsInBounds(x, y, w, h int) bool {
	return ih.mouseX >= x && ih.mouseX < x+w && ih.mouseY >= y && ih.mouseY < y+h
}

// Commands returns the commands of the keys pressed this frame, in order.
func (ih *InputHandler) Commands() []Command {
	var cmds []Command
	for _, k := range ih.keys {
		if c := CommandForKey(k); c != CmdNone {
			cmds = append(cmds, c)
		}
	}
	return cmds
}
