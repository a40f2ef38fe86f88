package system

import (
	"github.com/younwookim/portalknight/internal/domain/anim"
	"github.com/younwookim/portalknight/internal/domain/entity"
	"github.com/younwookim/portalknight/internal/ecs"
	"github.com/younwookim/portalknight/internal/infrastructure/config"
)

// SpriteSource hands out fresh animation state per entity kind
type SpriteSource interface {
	Sprite(kind entity.Kind) *anim.Animator
}

// PatrolSpec is the movement of one enemy kind
type PatrolSpec struct {
	Pattern entity.Pattern
	Speed   int
}

// SpawnOptions configures how grid cells become entities
type SpawnOptions struct {
	TileSize    int
	PlayerSpeed int
	Patrols     map[entity.Kind]PatrolSpec
}

// DefaultPatrols returns the built-in enemy movement
func DefaultPatrols() map[entity.Kind]PatrolSpec {
	return map[entity.Kind]PatrolSpec{
		entity.KindEnemyA: {Pattern: entity.Expand(entity.PatrolA()), Speed: 2},
		entity.KindEnemyB: {Pattern: entity.Expand(entity.PatrolB()), Speed: 2},
	}
}

// SpawnOptionsFromConfig converts game config into spawn options
func SpawnOptionsFromConfig(cfg *config.GameConfig) (SpawnOptions, error) {
	opts := SpawnOptions{
		TileSize:    cfg.Levels.TileSize,
		PlayerSpeed: cfg.Player.Speed,
		Patrols:     DefaultPatrols(),
	}
	for name, kind := range map[string]entity.Kind{"enemy_a": entity.KindEnemyA, "enemy_b": entity.KindEnemyB} {
		ec, ok := cfg.Enemies[name]
		if !ok {
			continue
		}
		phases, err := ec.PatrolPhases()
		if err != nil {
			return SpawnOptions{}, err
		}
		opts.Patrols[kind] = PatrolSpec{Pattern: entity.Expand(phases), Speed: ec.Speed}
	}
	return opts, nil
}

// LevelInfo summarizes what SpawnLevel created
type LevelInfo struct {
	Spawn       entity.Cell
	CoinsNumber int
	Enemies     int
	Obstacles   int
	Portals     int
}

// SpawnLevel populates the world from a grid.
// Every cell gets a background tile; non-empty markers also spawn their
// entity on top at the cell's top-left pixel. Exactly one player is always
// created. The returned error wraps entity.ErrMalformedLevel when the spawn
// needed a fallback; the world is complete and usable either way.
func SpawnLevel(w *ecs.World, grid *entity.Grid, sprites SpriteSource, opts SpawnOptions) (LevelInfo, error) {
	spawn, spawnErr := grid.PlayerSpawn()
	info := LevelInfo{Spawn: spawn}
	ts := opts.TileSize

	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			cell := entity.Cell{Col: col, Row: row}
			x, y := col*ts, row*ts
			w.CreateTile(cell, x, y, sprites.Sprite(entity.KindTile))

			kind := grid.At(col, row).Kind()
			switch {
			case kind == entity.KindCoin:
				w.CreateCoin(cell, x, y, sprites.Sprite(kind))
				info.CoinsNumber++
			case kind == entity.KindPortal:
				w.CreatePortal(cell, x, y, sprites.Sprite(kind))
				info.Portals++
			case kind.IsObstacle():
				w.CreateObstacle(kind, cell, x, y, sprites.Sprite(kind))
				info.Obstacles++
			case kind.IsEnemy():
				p := opts.Patrols[kind]
				w.CreateEnemy(kind, cell, x, y, sprites.Sprite(kind), p.Pattern, p.Speed)
				info.Enemies++
			}
		}
	}

	w.CreatePlayer(spawn, spawn.Col*ts, spawn.Row*ts, sprites.Sprite(entity.KindPlayer), opts.PlayerSpeed)

	return info, spawnErr
}
