package ecs

import (
	"github.com/younwookim/portalknight/internal/domain/anim"
	"github.com/younwookim/portalknight/internal/domain/collision"
	"github.com/younwookim/portalknight/internal/domain/entity"
)

// Position is the top-left corner of an entity in screen pixels
type Position struct {
	X, Y int
}

// Add returns the position moved by (dx, dy)
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Patrol drives an enemy along a cyclic pattern.
// Index is always in [0, len(Pattern)) when Pattern is not empty.
type Patrol struct {
	Pattern entity.Pattern
	Index   int
	Speed   int // px per tick
}

// Next returns the direction for this tick and advances the index
func (p *Patrol) Next() entity.Direction {
	if len(p.Pattern) == 0 {
		return entity.DirNone
	}
	dir := p.Pattern[p.Index]
	p.Index = (p.Index + 1) % len(p.Pattern)
	return dir
}

// Player holds player-only data
type Player struct {
	Speed int // px per tick
}

// Bounds returns the rectangle an entity occupies with its current frame
func (w *World) Bounds(id EntityID) collision.Rect {
	pos := w.Position[id]
	a, ok := w.Sprite[id]
	if !ok {
		return collision.NewRect(pos.X, pos.Y, 0, 0)
	}
	fw, fh := a.Size()
	return collision.NewRect(pos.X, pos.Y, fw, fh)
}

// Mask returns the occupancy mask of the entity's current frame
func (w *World) Mask(id EntityID) *collision.Mask {
	a, ok := w.Sprite[id]
	if !ok {
		return nil
	}
	return a.Mask()
}

// Animator returns the entity's animator (nil if it has none)
func (w *World) Animator(id EntityID) *anim.Animator {
	return w.Sprite[id]
}
