// Package menu renders the start, help, level-select and end screens.
//
// All transitions are decided by the flow controller; the scene only feeds it
// clicks and draws whatever screen it is on.
package menu

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/portalknight/internal/application/flow"
	"github.com/younwookim/portalknight/internal/application/scene"
	"github.com/younwookim/portalknight/internal/application/scene/ui"
	"github.com/younwookim/portalknight/internal/application/system"
)

const fadeSeconds = 0.35

var helpLines = []string{
	"Reach the portal to pass the level.",
	"Move with the arrow keys or WASD.",
	"Collect coins on the way;",
	"your best haul per level is your score.",
	"Touching an enemy fails the level.",
	"Stones, boxes and trees block the way.",
	"Esc or the quit button leaves a level.",
}

// Menu is the scene for every non-session screen
type Menu struct {
	ctrl     *flow.Controller
	director scene.Director
	fonts    *ui.Fonts
	input    *system.InputSystem
	title    string
	player   string

	shown  flow.Screen
	fade   *gween.Tween
	alpha  float32
	mouseX int
	mouseY int
}

// New creates the menu scene. player is shown on the start screen when set.
func New(ctrl *flow.Controller, director scene.Director, fonts *ui.Fonts, title, player string) *Menu {
	return &Menu{
		ctrl:     ctrl,
		director: director,
		fonts:    fonts,
		input:    system.NewInputSystem(),
		title:    title,
		player:   player,
		alpha:    1,
	}
}

// OnEnter restarts the fade-in
func (m *Menu) OnEnter() {
	m.startFade()
}

// OnExit implements scene.Scene
func (m *Menu) OnExit() {}

func (m *Menu) startFade() {
	m.shown = m.ctrl.Screen()
	m.fade = gween.New(0, 1, fadeSeconds, ease.OutQuad)
	m.alpha = 0
}

// Update implements scene.Scene
func (m *Menu) Update(dt float64) (scene.Scene, error) {
	m.tick(dt)
	return m.handle(m.input.GetInput())
}

func (m *Menu) tick(dt float64) {
	if m.fade == nil {
		return
	}
	alpha, done := m.fade.Update(float32(dt))
	m.alpha = alpha
	if done {
		m.fade = nil
		m.alpha = 1
	}
}

// handle applies one tick of input to the flow controller
func (m *Menu) handle(in system.InputState) (scene.Scene, error) {
	m.mouseX, m.mouseY = in.MouseX, in.MouseY

	if in.Quit {
		if m.ctrl.Screen() == flow.ScreenStart {
			log.Info("quit requested")
			return nil, ebiten.Termination
		}
		m.ctrl.Apply(flow.ActionBack)
	} else if in.Click {
		if a, ok := m.ctrl.HandleClick(in.MouseX, in.MouseY); ok {
			log.Debug("menu action", "action", a, "screen", m.ctrl.Screen())
		}
	}

	if m.ctrl.Screen() == flow.ScreenSession {
		return m.director.Session()
	}
	if m.ctrl.Screen() != m.shown {
		m.startFade()
	}
	return nil, nil
}

// Draw implements scene.Scene
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBG)
	w := float64(screen.Bounds().Dx())
	cx := w / 2

	switch m.ctrl.Screen() {
	case flow.ScreenStart:
		ui.DrawText(screen, m.title, m.fonts.Title, cx, 80, ui.ColorAccent, m.alpha)
		if m.player != "" {
			ui.DrawText(screen, fmt.Sprintf("%s - score %d", m.player, m.ctrl.Score()), m.fonts.Body, cx, 140, ui.ColorText, m.alpha)
		}
	case flow.ScreenHelp:
		ui.DrawText(screen, "How to play", m.fonts.Title, cx, 60, ui.ColorAccent, m.alpha)
		for i, line := range helpLines {
			ui.DrawText(screen, line, m.fonts.Body, cx, 150+float64(i)*34, ui.ColorText, m.alpha)
		}
	case flow.ScreenLevelSelect:
		ui.DrawText(screen, "Choose a level", m.fonts.Title, cx, 80, ui.ColorAccent, m.alpha)
	case flow.ScreenEnd:
		m.drawEnd(screen, cx)
	}

	progress := m.ctrl.Progress()
	for _, c := range m.ctrl.Controls() {
		hover := c.Rect.Contains(m.mouseX, m.mouseY)
		ui.DrawButton(screen, c.Rect, c.Label, m.fonts.Button, hover, m.alpha)

		if m.ctrl.Screen() == flow.ScreenLevelSelect && c.Action != flow.ActionBack {
			if i, ok := flow.LevelIndex(c.Action); ok && i >= 0 && i < len(progress) {
				ui.DrawText(screen, fmt.Sprintf("best %d", progress[i]), m.fonts.Body,
					float64(c.Rect.X)+float64(c.Rect.W)/2, float64(c.Rect.Bottom())+6, ui.ColorText, m.alpha)
			}
		}
	}
}

func (m *Menu) drawEnd(screen *ebiten.Image, cx float64) {
	res := m.ctrl.LastResult()
	headline, col := "Level failed", ui.ColorFail
	if res.Passed {
		headline, col = "Level passed!", ui.ColorAccent
	}
	ui.DrawText(screen, headline, m.fonts.Title, cx, 80, col, m.alpha)
	ui.DrawText(screen, fmt.Sprintf("level %d of %d", m.ctrl.Level()+1, m.ctrl.Levels()), m.fonts.Body, cx, 150, ui.ColorText, m.alpha)
	ui.DrawText(screen, fmt.Sprintf("coins: %d/%d", res.CoinsCaptured, res.CoinsNumber), m.fonts.Body, cx, 180, ui.ColorText, m.alpha)
	ui.DrawText(screen, fmt.Sprintf("score: %d", m.ctrl.Score()), m.fonts.Body, cx, 210, ui.ColorText, m.alpha)
}

// Alpha returns the current fade level in [0, 1]
func (m *Menu) Alpha() float32 {
	return m.alpha
}
