package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Face sizes in logical pixels.
const (
	panelFontSize = 14.0
	titleFontSize = 16.0
	labelFontSize = 12.0
)

// faces holds the Go font faces used by the window. A face that fails to load
// stays nil and its text is skipped.
var faces struct {
	regular, bold, label *text.GoTextFace
}

func init() {
	regular := loadSource("regular", goregular.TTF)
	bold := loadSource("bold", gobold.TTF)
	faces.regular = newFace(regular, panelFontSize)
	faces.bold = newFace(bold, titleFontSize)
	faces.label = newFace(bold, labelFontSize)
}

func loadSource(name string, ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		log.Printf("[UI] failed to load %s font: %v", name, err)
		return nil
	}
	return src
}

func newFace(src *text.GoTextFaceSource, size float64) *text.GoTextFace {
	if src == nil {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// GetRegularFace returns the panel text face.
func GetRegularFace() *text.GoTextFace { return faces.regular }

// GetBoldFace returns the title face.
func GetBoldFace() *text.GoTextFace { return faces.bold }

// GetLabelFace returns the face used for board coordinates.
func GetLabelFace() *text.GoTextFace { return faces.label }

// MeasureText returns the width and height of s in face.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
