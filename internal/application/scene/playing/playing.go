// Package playing provides the level session scene.
package playing

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/portalknight/internal/application/flow"
	"github.com/younwookim/portalknight/internal/application/replay"
	"github.com/younwookim/portalknight/internal/application/scene"
	"github.com/younwookim/portalknight/internal/application/scene/ui"
	"github.com/younwookim/portalknight/internal/application/session"
	"github.com/younwookim/portalknight/internal/application/state"
	"github.com/younwookim/portalknight/internal/application/system"
)

// InputSource yields the input of one tick
type InputSource interface {
	GetInput() system.InputState
}

// Playing runs one session and hands its result to the flow controller
type Playing struct {
	session  *session.Session
	ctrl     *flow.Controller
	director scene.Director
	fonts    *ui.Fonts
	input    InputSource
	images   *ui.ImageCache

	screenW  int
	screenH  int
	uiMargin int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a Playing scene over a freshly loaded session.
// If recordPath is not empty, the attempt is recorded to it.
func New(s *session.Session, cfg session.Config, ctrl *flow.Controller, director scene.Director,
	fonts *ui.Fonts, level string, recordPath string) *Playing {
	p := &Playing{
		session:        s,
		ctrl:           ctrl,
		director:       director,
		fonts:          fonts,
		input:          system.NewInputSystem(),
		images:         ui.NewImageCache(),
		screenW:        cfg.ScreenWidth,
		screenH:        cfg.ScreenHeight,
		uiMargin:       cfg.UIMargin,
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = replay.NewRecorder(level, ctrl.Level(), ctrl.SoundEnabled())
		log.Info("recording enabled", "file", recordPath, "level", level)
	}
	return p
}

// SetInput replaces the input source
func (p *Playing) SetInput(in InputSource) {
	p.input = in
}

// Update advances the session one tick (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	return p.step(p.input.GetInput())
}

func (p *Playing) step(in session.Input) (scene.Scene, error) {
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	if outcome := p.session.Tick(in); outcome == state.Continue {
		return nil, nil
	}

	p.saveRecording()
	p.ctrl.FinishSession(p.session.Result())
	return p.director.Menu(), nil
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()
	if err := p.recorder.Save(p.recordFilename); err != nil {
		log.Error("failed to save recording", "error", err)
		return
	}
	log.Info("recording saved", "file", p.recordFilename, "frames", p.recorder.FrameCount())
}

// Draw renders every layer and then the UI overlay (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBG)

	for _, sp := range p.session.DrawList() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(sp.X), float64(sp.Y))
		screen.DrawImage(p.images.Get(sp.Image), op)
	}

	p.drawUI(screen)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	top := float32(p.screenH - p.uiMargin)
	vector.DrawFilledRect(screen, 0, top, float32(p.screenW), float32(p.uiMargin), ui.ColorPanel, false)

	if p.fonts == nil {
		return
	}

	res := p.session.Result()
	hud := fmt.Sprintf("level %d   coins: %d/%d", p.ctrl.Level()+1, res.CoinsCaptured, res.CoinsNumber)
	ui.DrawTextLeft(screen, hud, p.fonts.Body, 12, float64(top)+float64(p.uiMargin)/2-11, ui.ColorText)

	mx, my := ebiten.CursorPosition()
	q := p.session.QuitControl()
	ui.DrawButton(screen, q, "quit", p.fonts.Button, q.Contains(mx, my), 1)
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	log.Debug("session started", "level", p.ctrl.Level()+1, "sound", p.ctrl.SoundEnabled())
}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Session returns the running session
func (p *Playing) Session() *session.Session {
	return p.session
}
