// Package ui holds the drawing helpers shared by the menu and playing scenes.
package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/portalknight/internal/domain/collision"
)

// Colors for rendering
var (
	ColorBG          = color.RGBA{26, 26, 46, 255}
	ColorPanel       = color.RGBA{40, 44, 70, 255}
	ColorButton      = color.RGBA{60, 80, 120, 255}
	ColorButtonHover = color.RGBA{90, 120, 170, 255}
	ColorButtonEdge  = color.RGBA{200, 200, 220, 255}
	ColorText        = color.RGBA{235, 235, 245, 255}
	ColorAccent      = color.RGBA{255, 215, 0, 255}
	ColorFail        = color.RGBA{220, 80, 80, 255}
)

// Fonts are the text faces used by every scene
type Fonts struct {
	Title  *text.GoTextFace
	Body   *text.GoTextFace
	Button *text.GoTextFace
}

// LoadFonts creates faces from the embedded Go Regular font
func LoadFonts() (*Fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Fonts{
		Title:  &text.GoTextFace{Source: src, Size: 40},
		Body:   &text.GoTextFace{Source: src, Size: 18},
		Button: &text.GoTextFace{Source: src, Size: 22},
	}, nil
}

// DrawText draws s centered horizontally on x with its top at y
func DrawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(dst, s, face, op)
}

// DrawTextLeft draws s with its top-left at (x, y)
func DrawTextLeft(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

// DrawButton draws a labelled rectangle. hover brightens the fill.
func DrawButton(dst *ebiten.Image, r collision.Rect, label string, face *text.GoTextFace, hover bool, alpha float32) {
	fill := ColorButton
	if hover {
		fill = ColorButtonHover
	}
	fill.A = uint8(float32(fill.A) * alpha)
	edge := ColorButtonEdge
	edge.A = uint8(float32(edge.A) * alpha)

	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.DrawFilledRect(dst, x, y, w, h, fill, false)
	vector.StrokeRect(dst, x, y, w, h, 2, edge, false)

	_, th := text.Measure(label, face, 0)
	DrawText(dst, label, face, float64(r.X)+float64(r.W)/2, float64(r.Y)+(float64(r.H)-th)/2, ColorText, alpha)
}

// ImageCache converts decoded images to GPU images once
type ImageCache struct {
	images map[image.Image]*ebiten.Image
}

// NewImageCache creates an empty cache
func NewImageCache() *ImageCache {
	return &ImageCache{images: make(map[image.Image]*ebiten.Image)}
}

// Get returns the ebiten image for img, creating it on first use
func (c *ImageCache) Get(img image.Image) *ebiten.Image {
	if e, ok := c.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	c.images[img] = e
	return e
}

// Len returns the number of cached images
func (c *ImageCache) Len() int {
	return len(c.images)
}
