package anim

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestSheet creates a sheet where every frame is filled with a colour
// whose red channel encodes the frame's row-major index.
func createTestSheet(columns, rows, fw, fh int) *image.NRGBA {
	sheet := image.NewNRGBA(image.Rect(0, 0, columns*fw, rows*fh))
	for j := 0; j < rows; j++ {
		for i := 0; i < columns; i++ {
			c := color.NRGBA{R: uint8(j*columns + i), A: 255}
			for y := j * fh; y < (j+1)*fh; y++ {
				for x := i * fw; x < (i+1)*fw; x++ {
					sheet.SetNRGBA(x, y, c)
				}
			}
		}
	}
	return sheet
}

func frameID(img image.Image) int {
	b := img.Bounds()
	r, _, _, _ := img.At(b.Min.X, b.Min.Y).RGBA()
	return int(r >> 8)
}

func createTestFrames(n int) []Frame {
	return Frames(SliceSheet(createTestSheet(n, 1, 2, 2), n, 1))
}

func TestSliceSheet_RowMajor(t *testing.T) {
	frames := SliceSheet(createTestSheet(3, 2, 4, 5), 3, 2)

	require.Len(t, frames, 6)
	for i, f := range frames {
		assert.Equal(t, i, frameID(f), "frame %d", i)
		assert.Equal(t, 4, f.Bounds().Dx())
		assert.Equal(t, 5, f.Bounds().Dy())
	}
}

func TestSliceSheet_InvalidGrid(t *testing.T) {
	sheet := createTestSheet(2, 2, 4, 4)

	assert.Nil(t, SliceSheet(sheet, 0, 2))
	assert.Nil(t, SliceSheet(sheet, 2, -1))
	assert.Nil(t, SliceSheet(sheet, 100, 1), "frames narrower than a pixel")
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []int{1, 1, 1, 2, 2, 2}, Repeat([]int{1, 2}, 3))
	assert.Equal(t, []int{1, 2}, Repeat([]int{1, 2}, 0), "k < 1 behaves like 1")
	assert.Empty(t, Repeat([]int{}, 3))
}

func TestPosesByRow(t *testing.T) {
	poses := PosesByRow(createTestSheet(2, 3, 2, 2), 2, 3, 2, []string{"down", "left", "right", "up"})

	require.Len(t, poses, 3, "only as many poses as rows")
	require.Len(t, poses["left"], 4)
	assert.Equal(t, 2, frameID(poses["left"][0].Image))
	assert.Equal(t, 2, frameID(poses["left"][1].Image))
	assert.Equal(t, 3, frameID(poses["left"][2].Image))
	assert.NotContains(t, poses, "up")
}

func TestAnimator_CycleLaw(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7} {
		a := Single("spin", createTestFrames(n))
		for i := 0; i < n; i++ {
			require.True(t, a.Advance("spin"))
		}
		assert.Equal(t, 0, a.Index(), "n=%d", n)
	}
}

func TestAnimator_NeverTerminates(t *testing.T) {
	a := Single("spin", createTestFrames(3))

	seen := make([]int, 0, 10)
	for i := 0; i < 10; i++ {
		a.Advance("spin")
		seen = append(seen, a.Index())
	}

	assert.Equal(t, []int{1, 2, 0, 1, 2, 0, 1, 2, 0, 1}, seen)
}

func TestAnimator_SwitchResetsIndex(t *testing.T) {
	a := New(map[string][]Frame{
		"left":  createTestFrames(4),
		"right": createTestFrames(4),
	}, "left")

	for prior := 0; prior < 4; prior++ {
		a.Advance("left")
		for a.Index() != prior {
			a.Advance("left")
		}
		require.True(t, a.Advance("right"))
		assert.Equal(t, "right", a.Pose())
		assert.Equal(t, 0, a.Index(), "prior index %d", prior)
		a.Advance("left")
	}
}

func TestAnimator_UnknownPose(t *testing.T) {
	a := Single("spin", createTestFrames(3))
	a.Advance("spin")

	assert.False(t, a.Advance("fly"))
	assert.Equal(t, "spin", a.Pose())
	assert.Equal(t, 1, a.Index())
}

func TestAnimator_FrameAndMask(t *testing.T) {
	a := Single("spin", createTestFrames(2))

	assert.Equal(t, 0, frameID(a.Frame().Image))
	a.Advance("spin")
	assert.Equal(t, 1, frameID(a.Frame().Image))

	require.NotNil(t, a.Mask())
	assert.Equal(t, 4, a.Mask().Count())

	w, h := a.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
}

func TestAnimator_EmptyPoseDropped(t *testing.T) {
	a := New(map[string][]Frame{"idle": nil}, "idle")

	assert.False(t, a.HasPose("idle"))
	assert.Equal(t, Frame{}, a.Frame())
	assert.Nil(t, a.Mask())
}

func TestAnimator_CloneSharesFramesNotState(t *testing.T) {
	a := Single("spin", createTestFrames(3))
	a.Advance("spin")

	b := a.Clone()
	assert.Equal(t, 0, b.Index())
	b.Advance("spin")
	b.Advance("spin")

	assert.Equal(t, 1, a.Index())
	assert.Equal(t, 2, b.Index())
	assert.Same(t, a.Frame().Mask, a.poses["spin"][1].Mask)
}

func TestStatic(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	a := Static(img)

	a.Advance("static")
	assert.Equal(t, 0, a.Index())
	assert.Equal(t, image.Image(img), a.Frame().Image)
}
