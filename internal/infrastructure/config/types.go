package config

import (
	"fmt"

	"github.com/younwookim/portalknight/internal/domain/entity"
)

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig           `yaml:"display"`
	Player  PlayerConfig            `yaml:"player"`
	Enemies map[string]EnemyConfig  `yaml:"enemies"`
	Levels  LevelsConfig            `yaml:"levels"`
	Sprites map[string]SpriteConfig `yaml:"sprites"`
	Audio   AudioConfig             `yaml:"audio"`
	Storage StorageConfig           `yaml:"storage"`
}

// DisplayConfig configures the window and tick rate
type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	UIMargin     int    `yaml:"ui_margin"` // bottom strip reserved for the quit control
	TPS          int    `yaml:"tps"`
	Scale        int    `yaml:"scale"`
}

// PlayerConfig configures the hero
type PlayerConfig struct {
	Speed int `yaml:"speed"` // px per tick
}

// EnemyConfig configures one enemy kind
type EnemyConfig struct {
	Speed  int           `yaml:"speed"` // px per tick
	Phases []PhaseConfig `yaml:"phases"`
}

// PhaseConfig is a patrol leg; Repeat expands it into several identical phases
type PhaseConfig struct {
	Dir    string `yaml:"dir"`
	Ticks  int    `yaml:"ticks"`
	Repeat int    `yaml:"repeat"`
}

// LevelsConfig lists level map resources in play order
type LevelsConfig struct {
	TileSize int      `yaml:"tile_size"`
	Files    []string `yaml:"files"`
}

// SpriteConfig describes how to build the animation of one entity kind
type SpriteConfig struct {
	Image    string   `yaml:"image"`
	Columns  int      `yaml:"columns"`
	Rows     int      `yaml:"rows"`
	Repeat   int      `yaml:"repeat"`   // frames shown per logical frame
	Poses    []string `yaml:"poses"`    // one pose per sheet row; empty = single looping pose
	ColorKey bool     `yaml:"colorkey"` // top-left pixel becomes transparent
}

// AudioConfig configures sound cues
type AudioConfig struct {
	Pickup     string  `yaml:"pickup"` // empty = synthesized cue
	Volume     float64 `yaml:"volume"` // beep volume exponent (0 = unchanged)
	SampleRate int     `yaml:"sample_rate"`
}

// StorageConfig configures the account database
type StorageConfig struct {
	Path string `yaml:"path"`
}

// PatrolPhases expands the configured phases into domain phases
func (e EnemyConfig) PatrolPhases() ([]entity.Phase, error) {
	phases := make([]entity.Phase, 0, len(e.Phases))
	for i, p := range e.Phases {
		dir, err := entity.ParseDirection(p.Dir)
		if err != nil {
			return nil, fmt.Errorf("phase %d: %w", i, err)
		}
		n := max(p.Repeat, 1)
		for i := 0; i < n; i++ {
			phases = append(phases, entity.Phase{Dir: dir, Ticks: p.Ticks})
		}
	}
	return phases, nil
}

// Validate checks values the game cannot run without
func (c *GameConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", d.ScreenWidth, d.ScreenHeight)
	}
	if d.UIMargin < 0 || d.UIMargin >= d.ScreenHeight {
		return fmt.Errorf("invalid ui margin %d", d.UIMargin)
	}
	if d.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", d.TPS)
	}
	if c.Levels.TileSize <= 0 {
		return fmt.Errorf("invalid tile size %d", c.Levels.TileSize)
	}
	if len(c.Levels.Files) == 0 {
		return fmt.Errorf("no levels configured")
	}
	for name, e := range c.Enemies {
		if _, err := e.PatrolPhases(); err != nil {
			return fmt.Errorf("enemy %s: %w", name, err)
		}
	}
	return nil
}

// LevelCount returns the number of configured levels
func (c *GameConfig) LevelCount() int {
	return len(c.Levels.Files)
}
