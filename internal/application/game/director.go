package game

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/younwookim/portalknight/internal/application/flow"
	"github.com/younwookim/portalknight/internal/application/scene"
	"github.com/younwookim/portalknight/internal/application/scene/menu"
	"github.com/younwookim/portalknight/internal/application/scene/playing"
	"github.com/younwookim/portalknight/internal/application/scene/ui"
	"github.com/younwookim/portalknight/internal/application/session"
	"github.com/younwookim/portalknight/internal/application/system"
	"github.com/younwookim/portalknight/internal/domain/entity"
)

// LevelSource loads level grids by file name
type LevelSource interface {
	LoadLevel(name string) (*entity.Grid, error)
}

// Options configures a Director
type Options struct {
	Title      string
	Player     string   // shown on the start screen, empty for guests
	Levels     []string // level file names in play order
	Session    session.Config
	RecordPath string // record every attempt when set
}

// Director creates the menu and playing scenes around one flow controller
type Director struct {
	opts    Options
	ctrl    *flow.Controller
	levels  LevelSource
	sprites system.SpriteSource
	cues    session.CuePlayer
	fonts   *ui.Fonts

	menu     *menu.Menu
	attempts int
}

// NewDirector wires the scenes together. cues may be nil.
func NewDirector(opts Options, ctrl *flow.Controller, levels LevelSource, sprites system.SpriteSource,
	cues session.CuePlayer, fonts *ui.Fonts) *Director {
	d := &Director{
		opts:    opts,
		ctrl:    ctrl,
		levels:  levels,
		sprites: sprites,
		cues:    cues,
		fonts:   fonts,
	}
	d.menu = menu.New(ctrl, d, fonts, opts.Title, opts.Player)
	return d
}

// Menu implements scene.Director
func (d *Director) Menu() scene.Scene {
	return d.menu
}

// Session implements scene.Director.
// A level that fails to load is an error that ends the game.
func (d *Director) Session() (scene.Scene, error) {
	idx := d.ctrl.Level()
	if idx < 0 || idx >= len(d.opts.Levels) {
		return nil, fmt.Errorf("level %d out of range (have %d)", idx+1, len(d.opts.Levels))
	}
	name := d.opts.Levels[idx]

	grid, err := d.levels.LoadLevel(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", name, err)
	}

	s := session.New(d.opts.Session, grid, d.sprites, session.Deps{
		SoundEnabled: d.ctrl.SoundEnabled(),
		Cues:         d.cues,
		Logger:       log.Default().With("level", name),
	})

	d.attempts++
	return playing.New(s, d.opts.Session, d.ctrl, d, d.fonts, name, d.recordPath()), nil
}

// recordPath numbers every attempt after the first so recordings are kept
func (d *Director) recordPath() string {
	path := d.opts.RecordPath
	if path == "" || d.attempts <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), d.attempts, ext)
}

// Controller returns the flow controller
func (d *Director) Controller() *flow.Controller {
	return d.ctrl
}
