package config

// DefaultGameConfig returns the built-in configuration.
// It mirrors cmd/game/configs/game.yaml.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			Title:        "Portal Knight",
			ScreenWidth:  550,
			ScreenHeight: 550,
			UIMargin:     50,
			TPS:          50,
			Scale:        1,
		},
		Player: PlayerConfig{Speed: 5},
		Enemies: map[string]EnemyConfig{
			"enemy_a": {
				Speed: 2,
				Phases: []PhaseConfig{
					{Dir: "right", Ticks: 60},
					{Dir: "left", Ticks: 60},
				},
			},
			"enemy_b": {
				Speed: 2,
				Phases: []PhaseConfig{
					{Dir: "right", Ticks: 10, Repeat: 7},
					{Dir: "down", Ticks: 10, Repeat: 7},
					{Dir: "left", Ticks: 10, Repeat: 7},
					{Dir: "up", Ticks: 10, Repeat: 7},
				},
			},
		},
		Levels: LevelsConfig{
			TileSize: 50,
			Files:    []string{"level1.txt", "level2.txt", "level3.txt", "level4.txt", "level5.txt"},
		},
		Sprites: map[string]SpriteConfig{
			"player":     {Image: "knight.png", Columns: 4, Rows: 4, Repeat: 3, Poses: []string{"down", "left", "right", "up"}},
			"enemy_a":    {Image: "enemy_a.png", Columns: 4, Rows: 2, Repeat: 3, Poses: []string{"right", "left"}},
			"enemy_b":    {Image: "enemy_b.png", Columns: 4, Rows: 4, Repeat: 3, Poses: []string{"down", "left", "right", "up"}},
			"coin":       {Image: "coin.png", Columns: 6, Rows: 1, Repeat: 3},
			"portal":     {Image: "portals.png", Columns: 4, Rows: 1, Repeat: 3, ColorKey: true},
			"obstacle_1": {Image: "stone.png", Columns: 1, Rows: 1},
			"obstacle_2": {Image: "box.png", Columns: 1, Rows: 1},
			"obstacle_3": {Image: "tree.png", Columns: 1, Rows: 1},
			"tile":       {Image: "grass.png", Columns: 1, Rows: 1},
		},
		Audio: AudioConfig{
			SampleRate: 44100,
		},
		Storage: StorageConfig{
			Path: "~/.portalknight/players.db",
		},
	}
}
