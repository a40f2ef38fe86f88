package anim

import (
	"image"
	"image/draw"
)

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// SliceSheet cuts a sprite sheet into a columns x rows grid of frames in
// row-major order. Every frame has size (W/columns, H/rows); leftover pixels
// on the right or bottom edge are ignored.
func SliceSheet(sheet image.Image, columns, rows int) []image.Image {
	if columns < 1 || rows < 1 {
		return nil
	}
	b := sheet.Bounds()
	fw, fh := b.Dx()/columns, b.Dy()/rows
	if fw == 0 || fh == 0 {
		return nil
	}

	src, ok := sheet.(subImager)
	if !ok {
		rgba := image.NewNRGBA(b)
		draw.Draw(rgba, b, sheet, b.Min, draw.Src)
		src = rgba
	}

	frames := make([]image.Image, 0, columns*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < columns; i++ {
			x := b.Min.X + fw*i
			y := b.Min.Y + fh*j
			frames = append(frames, src.SubImage(image.Rect(x, y, x+fw, y+fh)))
		}
	}
	return frames
}

// Repeat repeats every frame k times consecutively, slowing the perceived
// animation rate without changing the tick rate. k < 1 is treated as 1.
func Repeat[T any](frames []T, k int) []T {
	if k < 1 {
		k = 1
	}
	out := make([]T, 0, len(frames)*k)
	for _, f := range frames {
		for i := 0; i < k; i++ {
			out = append(out, f)
		}
	}
	return out
}

// PosesByRow slices a sheet and assigns each row to a pose, in order.
// Extra rows are ignored; extra pose names get no frames.
func PosesByRow(sheet image.Image, columns, rows, repeat int, poses []string) map[string][]Frame {
	imgs := SliceSheet(sheet, columns, rows)
	out := make(map[string][]Frame, len(poses))
	for r, name := range poses {
		if r >= rows || len(imgs) < (r+1)*columns {
			break
		}
		out[name] = Repeat(Frames(imgs[r*columns:(r+1)*columns]), repeat)
	}
	return out
}
