// Package session runs one attempt at one level.
//
// A Session owns the entity world of the attempt and advances it one tick
// at a time: player movement and collisions first, then every enemy and
// looping animation. It never renders or polls devices; callers pass the
// tick's input in and read DrawList out, which keeps replays deterministic.
package session

import (
	"errors"
	"fmt"
	"image"

	"github.com/charmbracelet/log"

	"github.com/younwookim/portalknight/internal/application/state"
	"github.com/younwookim/portalknight/internal/application/system"
	"github.com/younwookim/portalknight/internal/domain/collision"
	"github.com/younwookim/portalknight/internal/domain/entity"
	"github.com/younwookim/portalknight/internal/ecs"
	"github.com/younwookim/portalknight/internal/infrastructure/config"
)

// Input is the input of one tick
type Input = system.InputState

// CuePlayer plays sound cues
type CuePlayer interface {
	PlayPickup()
}

// Deps are the collaborators of a session
type Deps struct {
	SoundEnabled bool
	Cues         CuePlayer   // optional
	Logger       *log.Logger // optional, defaults to the global logger
}

// Config holds the screen geometry and spawn rules
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	UIMargin     int
	Spawn        system.SpawnOptions
}

// ConfigFrom builds a session config from the game config
func ConfigFrom(cfg *config.GameConfig) (Config, error) {
	spawn, err := system.SpawnOptionsFromConfig(cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to build spawn options: %w", err)
	}
	return Config{
		ScreenWidth:  cfg.Display.ScreenWidth,
		ScreenHeight: cfg.Display.ScreenHeight,
		UIMargin:     cfg.Display.UIMargin,
		Spawn:        spawn,
	}, nil
}

// Result is what a finished attempt reports to the flow controller
type Result struct {
	Passed        bool
	CoinsCaptured int
	CoinsNumber   int
	Ticks         int
}

// Sprite is one entry of the draw list
type Sprite struct {
	Kind  entity.Kind
	Image image.Image
	X, Y  int
}

// Session is one level attempt
type Session struct {
	cfg    Config
	deps   Deps
	log    *log.Logger
	world  *ecs.World
	info   system.LevelInfo
	state  state.SessionState
	bounds collision.Rect
	quit   collision.Rect

	captured int
	ticks    int
}

// New loads the level into a fresh world and starts running.
// A malformed spawn is logged and recovered; it never fails the session.
func New(cfg Config, grid *entity.Grid, sprites system.SpriteSource, deps Deps) *Session {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		cfg:    cfg,
		deps:   deps,
		log:    logger,
		world:  ecs.NewWorld(),
		state:  state.StateLoading,
		bounds: collision.NewRect(0, 0, cfg.ScreenWidth, cfg.ScreenHeight-cfg.UIMargin),
		quit:   quitControl(cfg),
	}

	info, err := system.SpawnLevel(s.world, grid, sprites, cfg.Spawn)
	if errors.Is(err, entity.ErrMalformedLevel) {
		s.log.Warn("level needed a fallback", "error", err)
	}
	s.info = info
	s.state = state.StateRunning

	s.log.Debug("level loaded",
		"width", grid.Width, "height", grid.Height,
		"coins", info.CoinsNumber, "enemies", info.Enemies, "obstacles", info.Obstacles)
	return s
}

// quitControl places the quit button at the right of the bottom UI margin
func quitControl(cfg Config) collision.Rect {
	const w = 110
	pad := cfg.UIMargin / 5
	return collision.NewRect(cfg.ScreenWidth-w-pad, cfg.ScreenHeight-cfg.UIMargin+pad, w, cfg.UIMargin-2*pad)
}

// Tick advances the session by one frame.
// Once a terminal state is reached every further tick is a no-op that
// repeats the terminal outcome.
func (s *Session) Tick(in Input) state.Outcome {
	if s.state.Terminal() {
		return s.state.Outcome()
	}
	s.ticks++

	if in.Quit || (in.Click && s.quit.Contains(in.MouseX, in.MouseY)) {
		s.finish(state.Quit)
		return state.Quit
	}

	outcome := s.updatePlayer(in.Direction())

	ecs.UpdateEnemies(s.world)
	ecs.AnimateLoops(s.world, s.world.IsCoin)
	ecs.AnimateLoops(s.world, s.world.IsPortal)

	if outcome != state.Continue {
		s.finish(outcome)
	}
	return outcome
}

func (s *Session) updatePlayer(dir entity.Direction) state.Outcome {
	w := s.world
	ecs.MovePlayer(w, dir, s.bounds)

	if _, hit := ecs.FirstOverlap(w, w.PlayerID, w.IsEnemy); hit {
		return state.Failed
	}

	if n := ecs.CollectCoins(w); n > 0 {
		s.captured += n
		if s.deps.SoundEnabled && s.deps.Cues != nil {
			s.deps.Cues.PlayPickup()
		}
		s.log.Debug("coin collected", "captured", s.captured, "total", s.info.CoinsNumber)
	}

	if _, hit := ecs.FirstOverlap(w, w.PlayerID, w.IsPortal); hit {
		return state.Passed
	}
	return state.Continue
}

func (s *Session) finish(o state.Outcome) {
	s.state = o.State()
	s.log.Info("level finished",
		"state", s.state, "coins", s.captured, "total", s.info.CoinsNumber, "ticks", s.ticks)
}

// State returns the current session state
func (s *Session) State() state.SessionState {
	return s.state
}

// Result returns the attempt result (meaningful once terminal)
func (s *Session) Result() Result {
	return Result{
		Passed:        s.state == state.StatePassed,
		CoinsCaptured: s.captured,
		CoinsNumber:   s.info.CoinsNumber,
		Ticks:         s.ticks,
	}
}

// RemainingCoins returns the number of coins still in play
func (s *Session) RemainingCoins() int {
	return s.world.CountCoins()
}

// PlayerPosition returns the player's top-left pixel
func (s *Session) PlayerPosition() (x, y int) {
	p := s.world.GetPlayerPosition()
	return p.X, p.Y
}

// QuitControl returns the quit button rectangle in the UI margin
func (s *Session) QuitControl() collision.Rect {
	return s.quit
}

// World exposes the entity world for inspection
func (s *Session) World() *ecs.World {
	return s.world
}

// DrawList returns the current frame of every entity in layer order:
// tiles, obstacles, enemies, coins, portal, player. The UI overlay is drawn
// by the caller on top.
func (s *Session) DrawList() []Sprite {
	w := s.world
	ids := ecs.DrawOrder(w)
	out := make([]Sprite, 0, len(ids))
	for _, id := range ids {
		img := w.Sprite[id].Frame().Image
		if img == nil {
			continue
		}
		pos := w.Position[id]
		out = append(out, Sprite{Kind: w.Kind[id], Image: img, X: pos.X, Y: pos.Y})
	}
	return out
}
