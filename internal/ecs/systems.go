package ecs

import (
	"github.com/younwookim/portalknight/internal/domain/collision"
	"github.com/younwookim/portalknight/internal/domain/entity"
)

// MoveResult reports what happened to the player during MovePlayer
type MoveResult struct {
	Moved      bool // position changed this tick
	RolledBack bool // displacement undone by an obstacle
}

// MovePlayer applies one tick of player movement.
// The player is displaced by Speed along dir, clamped inside bounds and
// tested against every obstacle mask; on overlap the pre-tick position is
// restored in full. DirNone leaves both position and pose untouched, so an
// idle player keeps its last pose and frame.
func MovePlayer(w *World, dir entity.Direction, bounds collision.Rect) MoveResult {
	id := w.PlayerID
	if !w.Exists(id) || dir == entity.DirNone {
		return MoveResult{}
	}

	if a := w.Sprite[id]; a != nil {
		a.Advance(dir.String())
	}

	prev := w.Position[id]
	speed := w.PlayerData[id].Speed
	dx, dy := dir.Delta()
	next := prev.Add(dx*speed, dy*speed)

	r := w.Bounds(id)
	r.X, r.Y = next.X, next.Y
	r = r.ClampInside(bounds)
	w.Position[id] = Position{X: r.X, Y: r.Y}

	if _, hit := FirstOverlap(w, id, w.IsObstacle); hit {
		w.Position[id] = prev
		return MoveResult{RolledBack: true}
	}
	return MoveResult{Moved: w.Position[id] != prev}
}

// UpdateEnemies moves every enemy one step along its patrol and drives its
// animation with the step direction.
func UpdateEnemies(w *World) {
	for _, id := range SortedIDs(w.IsEnemy) {
		patrol, ok := w.Patrol[id]
		if !ok {
			continue
		}
		dir := patrol.Next()
		w.Patrol[id] = patrol
		if dir == entity.DirNone {
			continue
		}

		dx, dy := dir.Delta()
		w.Position[id] = w.Position[id].Add(dx*patrol.Speed, dy*patrol.Speed)
		if a := w.Sprite[id]; a != nil {
			a.Advance(dir.String())
		}
	}
}

// AnimateLoops advances the current pose of every entity in the set
func AnimateLoops(w *World, set map[EntityID]struct{}) {
	for id := range set {
		if a := w.Sprite[id]; a != nil {
			a.Advance(a.Pose())
		}
	}
}

// Overlaps reports whether the current-frame masks of two entities overlap
func Overlaps(w *World, a, b EntityID) bool {
	pa, pb := w.Position[a], w.Position[b]
	return collision.Overlap(w.Mask(a), pa.X, pa.Y, w.Mask(b), pb.X, pb.Y)
}

// FirstOverlap returns the first entity of the set (in creation order) whose
// mask overlaps id's mask.
func FirstOverlap(w *World, id EntityID, set map[EntityID]struct{}) (EntityID, bool) {
	for _, other := range SortedIDs(set) {
		if other != id && Overlaps(w, id, other) {
			return other, true
		}
	}
	return 0, false
}

// CollectCoins removes every coin overlapping the player and returns how
// many were removed.
func CollectCoins(w *World) int {
	n := 0
	for _, id := range SortedIDs(w.IsCoin) {
		if Overlaps(w, w.PlayerID, id) {
			w.DestroyEntity(id)
			n++
		}
	}
	return n
}

// DrawOrder returns every drawable entity in layer order: tiles, obstacles,
// enemies, coins, portals, player. Each layer is in creation order.
func DrawOrder(w *World) []EntityID {
	layers := []map[EntityID]struct{}{
		w.IsTile,
		w.IsObstacle,
		w.IsEnemy,
		w.IsCoin,
		w.IsPortal,
		w.IsPlayer,
	}
	n := 0
	for _, l := range layers {
		n += len(l)
	}

	ids := make([]EntityID, 0, n)
	for _, l := range layers {
		for _, id := range SortedIDs(l) {
			if _, ok := w.Sprite[id]; ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
