package sound

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays the pickup cue through an ebiten audio context.
// A nil *Player is valid and silent.
type Player struct {
	ctx    *audio.Context
	pickup []byte
	active *audio.Player
}

// NewPlayer prepares the pickup cue for playback. ctx must run at the clip's
// sample rate.
func NewPlayer(ctx *audio.Context, pickup *Clip) *Player {
	if ctx == nil || pickup == nil {
		return nil
	}
	if ctx.SampleRate() != int(pickup.Rate) {
		log.Warn("pickup cue sample rate mismatch", "context", ctx.SampleRate(), "clip", int(pickup.Rate))
	}
	return &Player{ctx: ctx, pickup: pickup.F32LE()}
}

// PlayPickup restarts the pickup cue from the beginning
func (p *Player) PlayPickup() {
	if p == nil {
		return
	}
	if p.active == nil {
		p.active = p.ctx.NewPlayerF32FromBytes(p.pickup)
	}
	if err := p.active.SetPosition(0); err != nil {
		log.Warn("failed to rewind pickup cue", "error", err)
		return
	}
	p.active.Play()
}

// Close releases the underlying audio player
func (p *Player) Close() error {
	if p == nil || p.active == nil {
		return nil
	}
	err := p.active.Close()
	p.active = nil
	return err
}
