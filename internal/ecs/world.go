package ecs

import (
	"slices"

	"github.com/younwookim/portalknight/internal/domain/anim"
	"github.com/younwookim/portalknight/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position   map[EntityID]Position
	Sprite     map[EntityID]*anim.Animator
	Patrol     map[EntityID]Patrol
	Cell       map[EntityID]entity.Cell
	Kind       map[EntityID]entity.Kind
	PlayerData map[EntityID]Player

	// Tags
	IsPlayer   map[EntityID]struct{}
	IsEnemy    map[EntityID]struct{}
	IsCoin     map[EntityID]struct{}
	IsObstacle map[EntityID]struct{}
	IsPortal   map[EntityID]struct{}
	IsTile     map[EntityID]struct{}

	// TileAt indexes background tiles by grid cell (one per cell)
	TileAt map[entity.Cell]EntityID

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Position:   make(map[EntityID]Position),
		Sprite:     make(map[EntityID]*anim.Animator),
		Patrol:     make(map[EntityID]Patrol),
		Cell:       make(map[EntityID]entity.Cell),
		Kind:       make(map[EntityID]entity.Kind),
		PlayerData: make(map[EntityID]Player),
		IsPlayer:   make(map[EntityID]struct{}),
		IsEnemy:    make(map[EntityID]struct{}),
		IsCoin:     make(map[EntityID]struct{}),
		IsObstacle: make(map[EntityID]struct{}),
		IsPortal:   make(map[EntityID]struct{}),
		IsTile:     make(map[EntityID]struct{}),
		TileAt:     make(map[entity.Cell]EntityID),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	if _, ok := w.IsTile[id]; ok {
		delete(w.TileAt, w.Cell[id])
	}
	delete(w.Position, id)
	delete(w.Sprite, id)
	delete(w.Patrol, id)
	delete(w.Cell, id)
	delete(w.Kind, id)
	delete(w.PlayerData, id)
	delete(w.IsPlayer, id)
	delete(w.IsEnemy, id)
	delete(w.IsCoin, id)
	delete(w.IsObstacle, id)
	delete(w.IsPortal, id)
	delete(w.IsTile, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

func (w *World) create(kind entity.Kind, cell entity.Cell, x, y int, sprite *anim.Animator) EntityID {
	id := w.NewEntity()
	w.Position[id] = Position{X: x, Y: y}
	w.Cell[id] = cell
	w.Kind[id] = kind
	if sprite != nil {
		w.Sprite[id] = sprite
	}
	return id
}

// CreateTile creates the background tile of a grid cell.
// Returns false without creating anything if the cell already has a tile.
func (w *World) CreateTile(cell entity.Cell, x, y int, sprite *anim.Animator) (EntityID, bool) {
	if _, taken := w.TileAt[cell]; taken {
		return 0, false
	}
	id := w.create(entity.KindTile, cell, x, y, sprite)
	w.IsTile[id] = struct{}{}
	w.TileAt[cell] = id
	return id, true
}

// CreatePlayer creates the player entity. A world holds a single player;
// calling it again replaces the previous one.
func (w *World) CreatePlayer(cell entity.Cell, x, y int, sprite *anim.Animator, speed int) EntityID {
	if w.PlayerID != 0 {
		w.DestroyEntity(w.PlayerID)
	}
	id := w.create(entity.KindPlayer, cell, x, y, sprite)
	w.PlayerData[id] = Player{Speed: speed}
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// CreateEnemy creates a patrolling enemy
func (w *World) CreateEnemy(kind entity.Kind, cell entity.Cell, x, y int, sprite *anim.Animator, pattern entity.Pattern, speed int) EntityID {
	id := w.create(kind, cell, x, y, sprite)
	w.Patrol[id] = Patrol{Pattern: pattern, Speed: speed}
	w.IsEnemy[id] = struct{}{}
	return id
}

// CreateCoin creates a collectible coin
func (w *World) CreateCoin(cell entity.Cell, x, y int, sprite *anim.Animator) EntityID {
	id := w.create(entity.KindCoin, cell, x, y, sprite)
	w.IsCoin[id] = struct{}{}
	return id
}

// CreatePortal creates a level exit
func (w *World) CreatePortal(cell entity.Cell, x, y int, sprite *anim.Animator) EntityID {
	id := w.create(entity.KindPortal, cell, x, y, sprite)
	w.IsPortal[id] = struct{}{}
	return id
}

// CreateObstacle creates a static solid entity
func (w *World) CreateObstacle(kind entity.Kind, cell entity.Cell, x, y int, sprite *anim.Animator) EntityID {
	id := w.create(kind, cell, x, y, sprite)
	w.IsObstacle[id] = struct{}{}
	return id
}

// GetPlayerPosition returns the player's position
func (w *World) GetPlayerPosition() Position {
	return w.Position[w.PlayerID]
}

// CountCoins returns the number of coins still in play
func (w *World) CountCoins() int {
	return len(w.IsCoin)
}

// CountEnemies returns the number of enemies
func (w *World) CountEnemies() int {
	return len(w.IsEnemy)
}

// SortedIDs returns the IDs of a tag set in creation order
func SortedIDs(set map[EntityID]struct{}) []EntityID {
	ids := make([]EntityID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
