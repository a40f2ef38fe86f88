// Package anim implements frame-set animation driven by a named pose key.
//
// An Animator holds a mapping from pose to frames. Advance with the current
// pose steps to the next frame (wrapping forever); Advance with a different
// pose switches to it and restarts at frame 0. There is no blending and no
// one-shot pose.
package anim

import (
	"image"

	"github.com/younwookim/portalknight/internal/domain/collision"
)

// Frame is a single animation image together with its occupancy mask.
// The mask is derived once, when the frame is created.
type Frame struct {
	Image image.Image
	Mask  *collision.Mask
}

// NewFrame creates a frame and derives its mask from the image alpha
func NewFrame(img image.Image) Frame {
	return Frame{Image: img, Mask: collision.FromImage(img)}
}

// Frames converts images into frames
func Frames(imgs []image.Image) []Frame {
	frames := make([]Frame, len(imgs))
	for i, img := range imgs {
		frames[i] = NewFrame(img)
	}
	return frames
}

// Size returns the frame size in pixels
func (f Frame) Size() (w, h int) {
	if f.Image == nil {
		return 0, 0
	}
	b := f.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Animator is per-entity animation state over a shared frame set.
type Animator struct {
	poses   map[string][]Frame
	current string
	index   int
}

// New creates an animator starting at frame 0 of the initial pose.
// Poses without frames are dropped.
func New(poses map[string][]Frame, initial string) *Animator {
	a := &Animator{poses: make(map[string][]Frame, len(poses)), current: initial}
	for name, frames := range poses {
		if len(frames) > 0 {
			a.poses[name] = frames
		}
	}
	return a
}

// Single creates an animator with one looping pose
func Single(pose string, frames []Frame) *Animator {
	return New(map[string][]Frame{pose: frames}, pose)
}

// Static creates an animator showing one image forever
func Static(img image.Image) *Animator {
	return Single("static", []Frame{NewFrame(img)})
}

// Clone returns an animator sharing the frame set with fresh state
// (initial pose kept, frame index reset to 0).
func (a *Animator) Clone() *Animator {
	return &Animator{poses: a.poses, current: a.current}
}

// Advance drives the animation with a pose key.
// Same pose: index advances by one modulo the frame count.
// Different pose: switch and reset the index to 0.
// Returns false (and changes nothing) if the pose is unknown.
func (a *Animator) Advance(pose string) bool {
	frames, ok := a.poses[pose]
	if !ok {
		return false
	}
	if pose != a.current {
		a.current = pose
		a.index = 0
		return true
	}
	a.index = (a.index + 1) % len(frames)
	return true
}

// Pose returns the current pose key
func (a *Animator) Pose() string { return a.current }

// Index returns the current frame index within the pose
func (a *Animator) Index() int { return a.index }

// Len returns the number of frames in a pose (0 if unknown)
func (a *Animator) Len(pose string) int { return len(a.poses[pose]) }

// HasPose reports whether the pose exists
func (a *Animator) HasPose(pose string) bool {
	_, ok := a.poses[pose]
	return ok
}

// Frame returns the current frame. If the current pose is unknown the
// zero Frame is returned.
func (a *Animator) Frame() Frame {
	frames := a.poses[a.current]
	if len(frames) == 0 {
		return Frame{}
	}
	return frames[a.index]
}

// Mask returns the mask of the current frame
func (a *Animator) Mask() *collision.Mask {
	return a.Frame().Mask
}

// Size returns the size of the current frame
func (a *Animator) Size() (w, h int) {
	return a.Frame().Size()
}
