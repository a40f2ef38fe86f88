// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/portalknight/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	debug   bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 50.0, // Default to 50 TPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, 4)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetTPS derives the delta time from a tick rate
func (g *Game) SetTPS(tps int) {
	if tps > 0 {
		g.dt = 1.0 / float64(tps)
	}
}

// SetDebug toggles the TPS overlay
func (g *Game) SetDebug(on bool) {
	g.debug = on
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Close exits the current scene. Call it after ebiten.RunGame returns.
func (g *Game) Close() {
	g.current.OnExit()
}
