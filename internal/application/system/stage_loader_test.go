package system

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portalknight/internal/domain/anim"
	"github.com/younwookim/portalknight/internal/domain/entity"
	"github.com/younwookim/portalknight/internal/ecs"
	"github.com/younwookim/portalknight/internal/infrastructure/config"
)

// solidSprites gives every kind a fully opaque square sprite
type solidSprites struct {
	size int
}

func (s solidSprites) Sprite(entity.Kind) *anim.Animator {
	img := image.NewNRGBA(image.Rect(0, 0, s.size, s.size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+3] = 255
	}
	return anim.Static(img)
}

func createTestSpawnOptions() SpawnOptions {
	return SpawnOptions{TileSize: 50, PlayerSpeed: 5, Patrols: DefaultPatrols()}
}

func TestSpawnLevel(t *testing.T) {
	t.Run("spawns every marker", func(t *testing.T) {
		w := ecs.NewWorld()
		grid := entity.ParseText("@#*\n$/1\n23.")

		info, err := SpawnLevel(w, grid, solidSprites{50}, createTestSpawnOptions())
		require.NoError(t, err)

		assert.Len(t, w.IsTile, 9, "one tile per cell")
		assert.Len(t, w.IsPlayer, 1)
		assert.Len(t, w.IsEnemy, 2)
		assert.Len(t, w.IsCoin, 1)
		assert.Len(t, w.IsPortal, 1)
		assert.Len(t, w.IsObstacle, 3)
		assert.Equal(t, 1, info.CoinsNumber)
		assert.Equal(t, 2, info.Enemies)
		assert.Equal(t, 3, info.Obstacles)
		assert.Equal(t, 1, info.Portals)
	})

	t.Run("positions are cell top-left pixels", func(t *testing.T) {
		w := ecs.NewWorld()
		grid := entity.ParseText("@..\n...\n../")

		info, err := SpawnLevel(w, grid, solidSprites{50}, createTestSpawnOptions())
		require.NoError(t, err)

		assert.Equal(t, entity.Cell{}, info.Spawn)
		assert.Equal(t, ecs.Position{X: 0, Y: 0}, w.GetPlayerPosition())
		portals := ecs.SortedIDs(w.IsPortal)
		require.Len(t, portals, 1)
		assert.Equal(t, ecs.Position{X: 100, Y: 100}, w.Position[portals[0]])
		assert.Equal(t, entity.Cell{Col: 2, Row: 2}, w.Cell[portals[0]])
	})

	t.Run("enemies get their patrol", func(t *testing.T) {
		w := ecs.NewWorld()
		grid := entity.ParseText("@#*")

		_, err := SpawnLevel(w, grid, solidSprites{10}, createTestSpawnOptions())
		require.NoError(t, err)

		for _, id := range ecs.SortedIDs(w.IsEnemy) {
			p := w.Patrol[id]
			assert.Equal(t, 2, p.Speed)
			assert.Zero(t, p.Index)
			switch w.Kind[id] {
			case entity.KindEnemyA:
				assert.Len(t, p.Pattern, 120)
			case entity.KindEnemyB:
				assert.Len(t, p.Pattern, 280)
			default:
				t.Fatalf("unexpected enemy kind %v", w.Kind[id])
			}
		}
	})

	t.Run("unknown markers only get a tile", func(t *testing.T) {
		w := ecs.NewWorld()

		_, err := SpawnLevel(w, entity.ParseText("@x?"), solidSprites{10}, createTestSpawnOptions())
		require.NoError(t, err)

		assert.Len(t, w.IsTile, 3)
		assert.Len(t, w.Position, 4, "three tiles and the player")
	})
}

func TestSpawnLevel_MalformedSpawn(t *testing.T) {
	t.Run("no player marker", func(t *testing.T) {
		w := ecs.NewWorld()

		info, err := SpawnLevel(w, entity.ParseText("1.$\n..."), solidSprites{50}, createTestSpawnOptions())

		assert.ErrorIs(t, err, entity.ErrMalformedLevel)
		assert.Equal(t, entity.Cell{Col: 1}, info.Spawn)
		assert.Len(t, w.IsPlayer, 1)
		assert.Equal(t, ecs.Position{X: 50, Y: 0}, w.GetPlayerPosition())
	})

	t.Run("several player markers", func(t *testing.T) {
		w := ecs.NewWorld()

		info, err := SpawnLevel(w, entity.ParseText("..@\n@.."), solidSprites{50}, createTestSpawnOptions())

		assert.ErrorIs(t, err, entity.ErrMalformedLevel)
		assert.Equal(t, entity.Cell{Col: 2}, info.Spawn)
		assert.Len(t, w.IsPlayer, 1)
		assert.Len(t, w.IsTile, 6)
	})
}

func TestSpawnOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ea := cfg.Enemies["enemy_a"]
	ea.Speed = 4
	ea.Phases = []config.PhaseConfig{{Dir: "up", Ticks: 3}, {Dir: "down", Ticks: 3}}
	cfg.Enemies["enemy_a"] = ea

	opts, err := SpawnOptionsFromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, 50, opts.TileSize)
	assert.Equal(t, 5, opts.PlayerSpeed)
	assert.Equal(t, PatrolSpec{
		Pattern: entity.Pattern{entity.DirUp, entity.DirUp, entity.DirUp, entity.DirDown, entity.DirDown, entity.DirDown},
		Speed:   4,
	}, opts.Patrols[entity.KindEnemyA])
	assert.Len(t, opts.Patrols[entity.KindEnemyB].Pattern, 280)
}

func TestSpawnOptionsFromConfig_BadDirection(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Enemies["enemy_b"] = config.EnemyConfig{Speed: 1, Phases: []config.PhaseConfig{{Dir: "north", Ticks: 1}}}

	_, err := SpawnOptionsFromConfig(cfg)
	assert.Error(t, err)
}
