// Package scene defines the Scene interface for game screens.
//
// Each screen (menus, playing) implements the Scene interface to handle its
// own update logic and rendering. Scenes never construct each other; they
// ask a Director for the next one, which keeps menu and playing packages
// independent.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen (menus, playing, etc.)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (1/TPS).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// Director builds the scene for the flow controller's current screen
type Director interface {
	// Menu returns the scene for the current menu screen.
	Menu() Scene

	// Session starts a level attempt for the current level.
	Session() (Scene, error)
}
