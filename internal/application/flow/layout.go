package flow

import (
	"github.com/younwookim/portalknight/internal/domain/collision"
)

const (
	buttonW   = 200
	buttonH   = 50
	buttonGap = 20

	smallW = 120
	levelW = 60
	perRow = 5
)

// Layout places the controls of every screen on a fixed-size window
type Layout struct {
	Width  int
	Height int
}

// Bounds returns the window rectangle
func (l Layout) Bounds() collision.Rect {
	return collision.NewRect(0, 0, l.Width, l.Height)
}

func (l Layout) centered(y, w, h int) collision.Rect {
	return collision.NewRect((l.Width-w)/2, y, w, h)
}

// column stacks full-width buttons centered on the screen
func (l Layout) column(top int, actions []Action, labels []string) []Control {
	out := make([]Control, len(actions))
	for i, a := range actions {
		out[i] = Control{
			Action: a,
			Label:  labels[i],
			Rect:   l.centered(top+i*(buttonH+buttonGap), buttonW, buttonH),
		}
	}
	return out
}

func (l Layout) start(sound bool) []Control {
	top := l.Height/2 - buttonH
	controls := l.column(top,
		[]Action{ActionStart, ActionHelp, ActionLevels},
		[]string{"start", "help", "levels"})

	label := "sound: off"
	if sound {
		label = "sound: on"
	}
	return append(controls, Control{
		Action: ActionSound,
		Label:  label,
		Rect:   collision.NewRect(l.Width-smallW-buttonGap/2, buttonGap/2, smallW, buttonH*4/5),
	})
}

func (l Layout) back() Control {
	return Control{
		Action: ActionBack,
		Label:  "back",
		Rect:   l.centered(l.Height-buttonH-buttonGap, buttonW, buttonH),
	}
}

func (l Layout) help() []Control {
	return []Control{l.back()}
}

func (l Layout) levelSelect(levels int) []Control {
	out := make([]Control, 0, levels+1)
	rowW := perRow*levelW + (perRow-1)*buttonGap
	left := (l.Width - rowW) / 2
	top := l.Height / 3

	for i := 0; i < levels; i++ {
		col, row := i%perRow, i/perRow
		a := LevelAction(i)
		out = append(out, Control{
			Action: a,
			Label:  string(a),
			Rect: collision.NewRect(
				left+col*(levelW+buttonGap),
				top+row*(levelW+buttonGap),
				levelW, levelW),
		})
	}
	return append(out, l.back())
}

// end lays out prev, replay and next on one row. Slots keep their position
// whether or not their neighbours are present.
func (l Layout) end(hasPrev, hasNext bool) []Control {
	y := l.Height / 2
	rowW := 3*smallW + 2*buttonGap
	left := (l.Width - rowW) / 2
	slot := func(i int) collision.Rect {
		return collision.NewRect(left+i*(smallW+buttonGap), y, smallW, buttonH)
	}

	out := make([]Control, 0, 4)
	if hasPrev {
		out = append(out, Control{Action: ActionPrev, Label: "prev", Rect: slot(0)})
	}
	out = append(out, Control{Action: ActionReplay, Label: "replay", Rect: slot(1)})
	if hasNext {
		out = append(out, Control{Action: ActionNext, Label: "next", Rect: slot(2)})
	}
	return append(out, l.back())
}
