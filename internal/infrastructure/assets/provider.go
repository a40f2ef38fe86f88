// Package assets loads sprite sheets and sound cues.
//
// Two providers exist: FSProvider decodes PNG and WAV files from a
// directory, Builtin draws a procedural sprite set so the game runs without
// any asset files. Library turns either into per-kind animators.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/gopxl/beep"

	"github.com/younwookim/portalknight/internal/infrastructure/sound"
)

// ErrAssetNotFound is returned when an image or sound does not exist
var ErrAssetNotFound = errors.New("asset not found")

// Provider loads raw assets by name
type Provider interface {
	LoadImage(name string) (image.Image, error)
	LoadAudio(name string) (*sound.Clip, error)
}

// FSProvider decodes assets from a filesystem
type FSProvider struct {
	fsys fs.FS
	rate beep.SampleRate
}

// NewFSProvider creates a provider reading files from dir
func NewFSProvider(dir string, rate beep.SampleRate) *FSProvider {
	return &FSProvider{fsys: os.DirFS(dir), rate: rate}
}

// NewProviderFS creates a provider over an fs.FS
func NewProviderFS(fsys fs.FS, rate beep.SampleRate) *FSProvider {
	return &FSProvider{fsys: fsys, rate: rate}
}

func (p *FSProvider) open(name string) (fs.File, error) {
	f, err := p.fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrAssetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return f, nil
}

// LoadImage decodes an image file
func (p *FSProvider) LoadImage(name string) (image.Image, error) {
	f, err := p.open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return img, nil
}

// LoadAudio decodes a WAV file at the provider's sample rate
func (p *FSProvider) LoadAudio(name string) (*sound.Clip, error) {
	f, err := p.open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	clip, err := sound.Decode(f, p.rate)
	if err != nil {
		return nil, fmt.Errorf("failed to load audio %s: %w", name, err)
	}
	return clip, nil
}

// ApplyColorKey returns a copy of img where every pixel matching the
// top-left pixel's colour is fully transparent.
func ApplyColorKey(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	if b.Empty() {
		return out
	}

	key := out.NRGBAAt(b.Min.X, b.Min.Y)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if out.NRGBAAt(x, y) == key {
				out.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return out
}
