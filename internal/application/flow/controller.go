// Package flow drives the menus around the level sessions.
//
// The Controller is a plain state machine over screens. Each screen exposes a
// set of rectangular controls; a click is hit-tested against them and the
// resulting action is applied with Apply. Rendering lives in the scene
// packages, which read Controls and never decide transitions themselves.
package flow

import (
	"strconv"

	"github.com/younwookim/portalknight/internal/application/session"
	"github.com/younwookim/portalknight/internal/domain/collision"
)

// Screen identifies what is currently shown
type Screen int

const (
	ScreenStart Screen = iota
	ScreenHelp
	ScreenLevelSelect
	ScreenSession
	ScreenEnd
)

// String returns the string representation of the screen
func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "Start"
	case ScreenHelp:
		return "Help"
	case ScreenLevelSelect:
		return "LevelSelect"
	case ScreenSession:
		return "Session"
	case ScreenEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Action is the name a control yields when clicked.
// Level buttons yield their 1-based number ("1", "2", ...).
type Action string

const (
	ActionStart  Action = "start"
	ActionHelp   Action = "help"
	ActionLevels Action = "levels"
	ActionSound  Action = "sound"
	ActionBack   Action = "back"
	ActionPrev   Action = "prev"
	ActionNext   Action = "next"
	ActionReplay Action = "replay"
)

// LevelAction returns the action of the level-select button for level index i
func LevelAction(i int) Action {
	return Action(strconv.Itoa(i + 1))
}

// LevelIndex parses a level-select action into a 0-based index
func LevelIndex(a Action) (int, bool) {
	n, err := strconv.Atoi(string(a))
	if err != nil {
		return 0, false
	}
	return n - 1, true
}

// Control is a clickable rectangle
type Control struct {
	Action Action
	Label  string
	Rect   collision.Rect
}

// Controller is the menu state machine
type Controller struct {
	layout Layout
	levels int

	screen Screen
	level  int
	sound  bool

	last     session.Result
	progress []int
	attempts int
}

// NewController creates a controller on the Start screen at level 0
func NewController(levels int, layout Layout) *Controller {
	if levels < 1 {
		levels = 1
	}
	return &Controller{
		layout:   layout,
		levels:   levels,
		screen:   ScreenStart,
		sound:    true,
		progress: make([]int, levels),
	}
}

// Screen returns the current screen
func (c *Controller) Screen() Screen {
	return c.screen
}

// Level returns the current level index
func (c *Controller) Level() int {
	return c.level
}

// Levels returns the number of levels
func (c *Controller) Levels() int {
	return c.levels
}

// SoundEnabled reports whether sound cues should play
func (c *Controller) SoundEnabled() bool {
	return c.sound
}

// SetSoundEnabled sets the sound flag
func (c *Controller) SetSoundEnabled(on bool) {
	c.sound = on
}

// LastResult returns the result of the most recent session
func (c *Controller) LastResult() session.Result {
	return c.last
}

// Attempts returns how many sessions have finished
func (c *Controller) Attempts() int {
	return c.attempts
}

// Controls returns the controls of the current screen.
// Controls that do not apply (prev on the first level, next on the last)
// are not part of the list at all.
func (c *Controller) Controls() []Control {
	switch c.screen {
	case ScreenStart:
		return c.layout.start(c.sound)
	case ScreenHelp:
		return c.layout.help()
	case ScreenLevelSelect:
		return c.layout.levelSelect(c.levels)
	case ScreenEnd:
		return c.layout.end(c.level > 0, c.level < c.levels-1)
	default:
		return nil
	}
}

// Click hit-tests a point against the current controls.
// ok is false when the point misses every control.
func (c *Controller) Click(x, y int) (Action, bool) {
	for _, ctl := range c.Controls() {
		if ctl.Rect.Contains(x, y) {
			return ctl.Action, true
		}
	}
	return "", false
}

// Apply performs the transition for an action on the current screen.
// It reports whether the action was valid there; invalid actions change
// nothing.
func (c *Controller) Apply(a Action) bool {
	switch c.screen {
	case ScreenStart:
		switch a {
		case ActionStart:
			c.enterSession(c.level)
		case ActionHelp:
			c.screen = ScreenHelp
		case ActionLevels:
			c.screen = ScreenLevelSelect
		case ActionSound:
			c.sound = !c.sound
		default:
			return false
		}

	case ScreenHelp:
		if a != ActionBack {
			return false
		}
		c.screen = ScreenStart

	case ScreenLevelSelect:
		if a == ActionBack {
			c.screen = ScreenStart
			return true
		}
		i, ok := LevelIndex(a)
		if !ok || i < 0 || i >= c.levels {
			return false
		}
		c.enterSession(i)

	case ScreenEnd:
		switch a {
		case ActionPrev:
			if c.level == 0 {
				return false
			}
			c.enterSession(c.level - 1)
		case ActionNext:
			if c.level >= c.levels-1 {
				return false
			}
			c.enterSession(c.level + 1)
		case ActionReplay:
			c.enterSession(c.level)
		case ActionBack:
			c.screen = ScreenStart
		default:
			return false
		}

	default:
		return false
	}
	return true
}

// HandleClick hit-tests and applies in one step
func (c *Controller) HandleClick(x, y int) (Action, bool) {
	a, ok := c.Click(x, y)
	if !ok {
		return "", false
	}
	return a, c.Apply(a)
}

func (c *Controller) enterSession(level int) {
	c.level = level
	c.screen = ScreenSession
}

// FinishSession records a terminated session and moves to the End screen
func (c *Controller) FinishSession(res session.Result) {
	if c.screen != ScreenSession {
		return
	}
	c.last = res
	c.attempts++
	if res.CoinsCaptured > c.progress[c.level] {
		c.progress[c.level] = res.CoinsCaptured
	}
	c.screen = ScreenEnd
}

// Progress returns the best captured coins per level
func (c *Controller) Progress() []int {
	out := make([]int, len(c.progress))
	copy(out, c.progress)
	return out
}

// SetProgress seeds progress from storage. Extra entries are ignored and
// missing ones stay zero.
func (c *Controller) SetProgress(levels []int) {
	for i := range c.progress {
		c.progress[i] = 0
		if i < len(levels) && levels[i] > 0 {
			c.progress[i] = levels[i]
		}
	}
}

// Score is the sum of the best captured coins over all levels
func (c *Controller) Score() int {
	total := 0
	for _, n := range c.progress {
		total += n
	}
	return total
}
