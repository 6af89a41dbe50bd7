// Package ui implements the chess viewer window using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/chessview/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager manages piece sprites, keyed by board.Piece.AssetKey.
type SpriteManager struct {
	pieces      map[string]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[string]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	if err := sm.loadPieces(); err != nil {
		log.Printf("[UI] piece sprites: %v", err)
	}
	return sm
}

// pieceKeys lists the asset key of every drawable piece.
func pieceKeys() []string {
	keys := make([]string, 0, 12)
	for p := board.WhitePawn; p <= board.BlackKing; p++ {
		keys = append(keys, p.AssetKey())
	}
	return keys
}

// loadPieces rasterizes all embedded SVG pieces in parallel.
func (sm *SpriteManager) loadPieces() error {
	renderSize := int(float64(sm.size) * sm.renderScale)
	keys := pieceKeys()
	images := make([]*image.RGBA, len(keys))

	var g errgroup.Group
	for i, key := range keys {
		g.Go(func() error {
			img, err := rasterizePiece(key, renderSize)
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}
	err := g.Wait()

	for i, img := range images {
		if img != nil {
			sm.pieces[keys[i]] = ebiten.NewImageFromImage(img)
		}
	}
	return err
}

// rasterizePiece renders the SVG asset for key into a size x size image.
func rasterizePiece(key string, size int) (*image.RGBA, error) {
	path := "assets/pieces/" + key + ".svg"
	data, err := pieceAssets.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// DrawPieceAt draws a piece with its top-left corner at (x, y).
// alpha scales the sprite opacity.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y, alpha float64) {
	sprite := sm.pieces[p.AssetKey()]
	if sprite == nil || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// DrawPieceSized draws a piece scaled to size pixels with its top-left corner
// at (x, y).
func (sm *SpriteManager) DrawPieceSized(screen *ebiten.Image, p board.Piece, x, y, size float64) {
	sprite := sm.pieces[p.AssetKey()]
	if sprite == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := size / float64(sprite.Bounds().Dx())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
