package entity

import "fmt"

// Direction is a unit movement step and also the pose key of a moving entity
type Direction int

const (
	DirNone Direction = iota
	DirRight
	DirLeft
	DirUp
	DirDown
)

// String returns the pose key of the direction
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Delta returns the unit displacement (screen y grows downward)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// ParseDirection parses a pose key back into a direction
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "right":
		return DirRight, nil
	case "left":
		return DirLeft, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	default:
		return DirNone, fmt.Errorf("unknown direction %q", s)
	}
}

// Phase is one leg of a patrol: move in Dir for Ticks consecutive ticks
type Phase struct {
	Dir   Direction
	Ticks int
}

// Pattern is a flattened cyclic list of per-tick directions
type Pattern []Direction

// Expand flattens phases into a per-tick pattern. Phases with no ticks or
// no direction are skipped.
func Expand(phases []Phase) Pattern {
	n := 0
	for _, p := range phases {
		if p.Ticks > 0 {
			n += p.Ticks
		}
	}
	out := make(Pattern, 0, n)
	for _, p := range phases {
		if p.Dir == DirNone {
			continue
		}
		for i := 0; i < p.Ticks; i++ {
			out = append(out, p.Dir)
		}
	}
	return out
}

// Displacement returns the summed unit displacement over one full cycle
func (p Pattern) Displacement() (dx, dy int) {
	for _, d := range p {
		x, y := d.Delta()
		dx += x
		dy += y
	}
	return dx, dy
}

// PatrolA is the basic back-and-forth patrol
func PatrolA() []Phase {
	return []Phase{
		{Dir: DirRight, Ticks: 60},
		{Dir: DirLeft, Ticks: 60},
	}
}

// PatrolB is a closed 28-phase square loop, 10 ticks per phase
func PatrolB() []Phase {
	phases := make([]Phase, 0, 28)
	for _, d := range []Direction{DirRight, DirDown, DirLeft, DirUp} {
		for i := 0; i < 7; i++ {
			phases = append(phases, Phase{Dir: d, Ticks: 10})
		}
	}
	return phases
}
