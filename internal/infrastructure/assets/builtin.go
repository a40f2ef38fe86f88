package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/gopxl/beep"
	"golang.org/x/image/vector"

	"github.com/younwookim/portalknight/internal/infrastructure/sound"
)

// Builtin draws the default sprite set procedurally.
// Image names match the defaults in game.yaml.
type Builtin struct {
	rate   beep.SampleRate
	images map[string]func() image.Image
}

// NewBuiltin creates the procedural provider
func NewBuiltin(rate beep.SampleRate) *Builtin {
	return &Builtin{
		rate: rate,
		images: map[string]func() image.Image{
			"knight.png":  drawKnight,
			"enemy_a.png": drawEnemyA,
			"enemy_b.png": drawEnemyB,
			"coin.png":    drawCoin,
			"portals.png": drawPortal,
			"stone.png":   drawStone,
			"box.png":     drawBox,
			"tree.png":    drawTree,
			"grass.png":   drawGrass,
		},
	}
}

// LoadImage draws a named sheet
func (b *Builtin) LoadImage(name string) (image.Image, error) {
	gen, ok := b.images[name]
	if !ok {
		return nil, fmt.Errorf("builtin %s: %w", name, ErrAssetNotFound)
	}
	return gen(), nil
}

// LoadAudio synthesizes the pickup cue; it is the only builtin sound
func (b *Builtin) LoadAudio(name string) (*sound.Clip, error) {
	if !strings.HasPrefix(name, "pickup") {
		return nil, fmt.Errorf("builtin %s: %w", name, ErrAssetNotFound)
	}
	return sound.PickupCue(b.rate), nil
}

// Palette
var (
	colorKnight   = color.NRGBA{120, 150, 190, 255}
	colorVisor    = color.NRGBA{30, 30, 50, 255}
	colorEnemyA   = color.NRGBA{200, 70, 70, 255}
	colorEnemyB   = color.NRGBA{150, 80, 200, 255}
	colorEye      = color.NRGBA{255, 255, 255, 255}
	colorCoin     = color.NRGBA{255, 205, 40, 255}
	colorCoinEdge = color.NRGBA{190, 140, 20, 255}
	colorKey      = color.NRGBA{255, 0, 255, 255}
	colorPortal   = color.NRGBA{110, 60, 220, 255}
	colorGlow     = color.NRGBA{210, 190, 255, 255}
	colorStone    = color.NRGBA{130, 130, 140, 255}
	colorBox      = color.NRGBA{150, 100, 50, 255}
	colorBoxEdge  = color.NRGBA{100, 65, 30, 255}
	colorLeaves   = color.NRGBA{40, 130, 60, 255}
	colorTrunk    = color.NRGBA{100, 70, 40, 255}
	colorGrass    = color.NRGBA{90, 170, 80, 255}
	colorGrassDk  = color.NRGBA{75, 150, 65, 255}
)

type point struct{ x, y float32 }

// canvas rasterizes polygons into a frame of a sheet
type canvas struct {
	dst    *image.NRGBA
	origin point
	z      *vector.Rasterizer
}

func newCanvas(dst *image.NRGBA, ox, oy int) *canvas {
	b := dst.Bounds()
	return &canvas{dst: dst, origin: point{float32(ox), float32(oy)}, z: vector.NewRasterizer(b.Dx(), b.Dy())}
}

func (c *canvas) fill(col color.Color, pts []point) {
	if len(pts) < 3 {
		return
	}
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(c.origin.x+pts[0].x, c.origin.y+pts[0].y)
	for _, p := range pts[1:] {
		c.z.LineTo(c.origin.x+p.x, c.origin.y+p.y)
	}
	c.z.ClosePath()
	c.z.Draw(c.dst, b, image.NewUniform(col), image.Point{})
}

func (c *canvas) rect(col color.Color, x, y, w, h float32) {
	c.fill(col, []point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}})
}

func (c *canvas) ellipse(col color.Color, cx, cy, rx, ry float32) {
	const n = 24
	pts := make([]point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = point{cx + rx*float32(math.Cos(a)), cy + ry*float32(math.Sin(a))}
	}
	c.fill(col, pts)
}

// sheet draws a columns x rows sheet of fw x fh frames
func sheet(columns, rows, fw, fh int, frame func(c *canvas, col, row int)) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, columns*fw, rows*fh))
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			frame(newCanvas(img, col*fw, row*fh), col, row)
		}
	}
	return img
}

// facing returns the unit offset of a down/left/right/up sheet row
func facing(row int) (float32, float32) {
	switch row {
	case 1:
		return -1, 0
	case 2:
		return 1, 0
	case 3:
		return 0, -1
	default:
		return 0, 1
	}
}

func drawKnight() image.Image {
	return sheet(4, 4, 40, 40, func(c *canvas, col, row int) {
		step := float32(col%2) * 3
		c.rect(colorVisor, 11, 30-step, 6, 8)
		c.rect(colorVisor, 23, 27+step, 6, 8)
		c.ellipse(colorKnight, 20, 20, 12, 13)
		fx, fy := facing(row)
		if fy < 0 {
			c.rect(colorKnight, 18, 3, 4, 6)
			return
		}
		c.rect(colorVisor, 13+fx*5, 14+fy*2, 14, 4)
	})
}

func drawEnemyA() image.Image {
	return sheet(4, 2, 40, 40, func(c *canvas, col, row int) {
		squish := float32(col%2) * 2
		c.ellipse(colorEnemyA, 20, 24, 15+squish, 12-squish)
		dir := float32(1)
		if row == 1 {
			dir = -1
		}
		c.ellipse(colorEye, 20+dir*7, 20, 3, 3)
	})
}

func drawEnemyB() image.Image {
	return sheet(4, 4, 40, 40, func(c *canvas, col, row int) {
		r := float32(14 + col%2*2)
		c.fill(colorEnemyB, []point{{20, 20 - r}, {20 + r, 20}, {20, 20 + r}, {20 - r, 20}})
		fx, fy := facing(row)
		c.ellipse(colorEye, 20+fx*6, 20+fy*6, 3, 3)
	})
}

func drawCoin() image.Image {
	widths := []float32{10, 8, 4, 1.5, 4, 8}
	return sheet(6, 1, 30, 30, func(c *canvas, col, _ int) {
		w := widths[col]
		c.ellipse(colorCoinEdge, 15, 15, w+1.5, 11.5)
		c.ellipse(colorCoin, 15, 15, w, 10)
	})
}

func drawPortal() image.Image {
	return sheet(4, 1, 50, 50, func(c *canvas, col, _ int) {
		c.rect(colorKey, 0, 0, 50, 50)
		c.ellipse(colorPortal, 25, 25, 18, 22)
		c.ellipse(colorGlow, 25, 25, 11, 15)
		a := float64(col) * math.Pi / 2
		c.ellipse(colorEye, 25+float32(13*math.Cos(a)), 25+float32(17*math.Sin(a)), 3, 3)
	})
}

func drawStone() image.Image {
	return sheet(1, 1, 50, 50, func(c *canvas, _, _ int) {
		c.fill(colorStone, []point{{15, 4}, {35, 4}, {46, 15}, {46, 35}, {35, 46}, {15, 46}, {4, 35}, {4, 15}})
	})
}

func drawBox() image.Image {
	return sheet(1, 1, 50, 50, func(c *canvas, _, _ int) {
		c.rect(colorBoxEdge, 2, 2, 46, 46)
		c.rect(colorBox, 6, 6, 38, 38)
		c.fill(colorBoxEdge, []point{{6, 10}, {10, 6}, {44, 40}, {40, 44}})
	})
}

func drawTree() image.Image {
	return sheet(1, 1, 50, 50, func(c *canvas, _, _ int) {
		c.rect(colorTrunk, 21, 34, 8, 14)
		c.fill(colorLeaves, []point{{25, 2}, {45, 36}, {5, 36}})
	})
}

func drawGrass() image.Image {
	return sheet(1, 1, 50, 50, func(c *canvas, _, _ int) {
		c.rect(colorGrass, 0, 0, 50, 50)
		for i := float32(0); i < 5; i++ {
			c.fill(colorGrassDk, []point{{5 + i*10, 40 - i*6}, {8 + i*10, 30 - i*6}, {10 + i*10, 40 - i*6}})
		}
	})
}
