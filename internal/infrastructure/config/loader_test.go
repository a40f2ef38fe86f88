package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portalknight/internal/domain/entity"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 550, cfg.Display.ScreenWidth)
	assert.Equal(t, 550, cfg.Display.ScreenHeight)
	assert.Equal(t, 50, cfg.Display.UIMargin)
	assert.Equal(t, 50, cfg.Display.TPS)
	assert.Equal(t, 5, cfg.Player.Speed)
	assert.Equal(t, 50, cfg.Levels.TileSize)
	assert.Equal(t, 5, cfg.LevelCount())

	portal, ok := cfg.Sprites["portal"]
	require.True(t, ok)
	assert.Equal(t, 4, portal.Columns)
	assert.True(t, portal.ColorKey)
}

func TestLoader_EmbeddedYAMLMatchesDefaults(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, DefaultGameConfig(), cfg)
}

func TestLoader_LoadLevel(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg := DefaultGameConfig()
	for _, name := range cfg.Levels.Files {
		t.Run(name, func(t *testing.T) {
			grid, err := loader.LoadLevel(name)
			require.NoError(t, err)

			_, err = grid.PlayerSpawn()
			assert.NoError(t, err, "every shipped level has exactly one spawn")
			assert.Equal(t, 1, grid.Count(entity.MarkerPortal))
			assert.LessOrEqual(t, grid.Width*cfg.Levels.TileSize, cfg.Display.ScreenWidth)
			assert.LessOrEqual(t, grid.Height*cfg.Levels.TileSize, cfg.Display.ScreenHeight-cfg.Display.UIMargin)
		})
	}
}

func TestLoader_LoadLevel_NotFound(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "test")

	_, err := loader.LoadLevel("missing.txt")

	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestLoader_LoadLevel_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/tiny.txt": {Data: []byte("@..\n...\n../\n")},
	}
	loader := NewFSLoader(fsys, "test")

	grid, err := loader.LoadLevel("tiny.txt")
	require.NoError(t, err)

	assert.Equal(t, 3, grid.Width)
	assert.Equal(t, 3, grid.Height)
	assert.Equal(t, entity.MarkerPortal, grid.At(2, 2))
}

func TestLoader_LoadGame_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		notFound bool
	}{
		{"missing file", "", true},
		{"bad yaml", "display: [", false},
		{"no levels", "levels: {tile_size: 50, files: []}", false},
		{"bad direction", "enemies: {enemy_a: {speed: 2, phases: [{dir: sideways, ticks: 3}]}}", false},
		{"margin too large", "display: {screen_width: 100, screen_height: 100, ui_margin: 100, tps: 50}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			if !tt.notFound {
				fsys[GameFile] = &fstest.MapFile{Data: []byte(tt.yaml)}
			}

			_, err := NewFSLoader(fsys, "test").LoadGame()

			require.Error(t, err)
			if tt.notFound {
				assert.ErrorIs(t, err, ErrResourceNotFound)
			} else {
				assert.NotErrorIs(t, err, ErrResourceNotFound)
			}
		})
	}
}

func TestLoader_LoadGame_PartialOverride(t *testing.T) {
	fsys := fstest.MapFS{
		GameFile: {Data: []byte("player:\n  speed: 10\n")},
	}

	cfg, err := NewFSLoader(fsys, "test").LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Player.Speed)
	assert.Equal(t, 550, cfg.Display.ScreenWidth, "unset values keep defaults")
}

func TestEnemyConfig_PatrolPhases(t *testing.T) {
	cfg := DefaultGameConfig()

	a, err := cfg.Enemies["enemy_a"].PatrolPhases()
	require.NoError(t, err)
	assert.Equal(t, entity.PatrolA(), a)

	b, err := cfg.Enemies["enemy_b"].PatrolPhases()
	require.NoError(t, err)
	assert.Equal(t, entity.PatrolB(), b)
}

func TestOpen(t *testing.T) {
	embedded := fstest.MapFS{GameFile: {Data: []byte("player: {speed: 7}\n")}}

	t.Run("custom dir", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, GameFile), []byte("player: {speed: 9}\n"), 0o644))

		l, err := Open(dir, embedded)
		require.NoError(t, err)
		assert.Equal(t, dir, l.Source())

		cfg, err := l.LoadGame()
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.Player.Speed)
	})

	t.Run("custom dir without game.yaml", func(t *testing.T) {
		_, err := Open(t.TempDir(), embedded)
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("embedded fallback", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		l, err := Open("", embedded)
		require.NoError(t, err)
		assert.Equal(t, "embedded", l.Source())
	})
}
