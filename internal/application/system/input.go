package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/portalknight/internal/domain/entity"
)

// InputSystem polls the keyboard and mouse
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the input for one tick
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Quit  bool // Escape or window quit request

	Click  bool // left button pressed this tick
	MouseX int
	MouseY int
}

// Direction resolves held keys to a single move. Only one direction applies
// per tick, with priority left, right, up, down.
func (in InputState) Direction() entity.Direction {
	switch {
	case in.Left:
		return entity.DirLeft
	case in.Right:
		return entity.DirRight
	case in.Up:
		return entity.DirUp
	case in.Down:
		return entity.DirDown
	default:
		return entity.DirNone
	}
}

// GetInput reads the current input state (arrow keys or WASD)
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:     ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:   ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Quit:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Click:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseX: mx,
		MouseY: my,
	}
}
