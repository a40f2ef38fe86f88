package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLevel reports a level grid that needed a fallback to load,
// e.g. zero or several player spawn markers. It is never fatal.
var ErrMalformedLevel = errors.New("malformed level")

// Marker is a single character cell of a level grid
type Marker rune

const (
	MarkerEmpty     Marker = '.'
	MarkerPlayer    Marker = '@'
	MarkerEnemyA    Marker = '#'
	MarkerEnemyB    Marker = '*'
	MarkerCoin      Marker = '$'
	MarkerPortal    Marker = '/'
	MarkerObstacle1 Marker = '1'
	MarkerObstacle2 Marker = '2'
	MarkerObstacle3 Marker = '3'
)

// Kind identifies what a marker spawns on top of its background tile
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemyA
	KindEnemyB
	KindCoin
	KindPortal
	KindObstacle1
	KindObstacle2
	KindObstacle3
	KindTile
)

var kindNames = map[Kind]string{
	KindNone:      "none",
	KindPlayer:    "player",
	KindEnemyA:    "enemy_a",
	KindEnemyB:    "enemy_b",
	KindCoin:      "coin",
	KindPortal:    "portal",
	KindObstacle1: "obstacle_1",
	KindObstacle2: "obstacle_2",
	KindObstacle3: "obstacle_3",
	KindTile:      "tile",
}

// String returns the kind name used in config and logs
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsObstacle reports whether the kind is one of the obstacle variants
func (k Kind) IsObstacle() bool {
	return k == KindObstacle1 || k == KindObstacle2 || k == KindObstacle3
}

// IsEnemy reports whether the kind is an enemy variant
func (k Kind) IsEnemy() bool {
	return k == KindEnemyA || k == KindEnemyB
}

// Kind returns the entity spawned by the marker. Unrecognized markers and
// '.' spawn nothing (KindNone).
func (m Marker) Kind() Kind {
	switch m {
	case MarkerPlayer:
		return KindPlayer
	case MarkerEnemyA:
		return KindEnemyA
	case MarkerEnemyB:
		return KindEnemyB
	case MarkerCoin:
		return KindCoin
	case MarkerPortal:
		return KindPortal
	case MarkerObstacle1:
		return KindObstacle1
	case MarkerObstacle2:
		return KindObstacle2
	case MarkerObstacle3:
		return KindObstacle3
	default:
		return KindNone
	}
}

// Cell is a grid coordinate
type Cell struct {
	Col, Row int
}

// Grid is a rectangular level map of markers, indexed [row][col]
type Grid struct {
	Width  int
	Height int
	Cells  [][]Marker
}

// ParseGrid builds a rectangular grid from rows of unequal length.
// Short rows are padded on the right with '.'; rows are never truncated.
func ParseGrid(lines []string) *Grid {
	width := 0
	rows := make([][]Marker, len(lines))
	for i, line := range lines {
		rows[i] = []Marker(strings.TrimRight(line, "\r"))
		width = max(width, len(rows[i]))
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, MarkerEmpty)
		}
		rows[i] = row
	}
	return &Grid{Width: width, Height: len(rows), Cells: rows}
}

// ParseText splits text into lines and parses it. A single trailing newline
// does not create an extra row.
func ParseText(text string) *Grid {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return ParseGrid(nil)
	}
	return ParseGrid(strings.Split(text, "\n"))
}

// At returns the marker at (col, row); out-of-range cells are empty
func (g *Grid) At(col, row int) Marker {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return MarkerEmpty
	}
	return g.Cells[row][col]
}

// Find returns every cell holding the marker, in row-major order
func (g *Grid) Find(m Marker) []Cell {
	var cells []Cell
	for row, line := range g.Cells {
		for col, c := range line {
			if c == m {
				cells = append(cells, Cell{Col: col, Row: row})
			}
		}
	}
	return cells
}

// Count returns how many cells hold the marker
func (g *Grid) Count(m Marker) int {
	return len(g.Find(m))
}

// PlayerSpawn returns the cell the player spawns in.
// Exactly one '@' is expected. With several, the first in row-major order
// wins; with none, the first '.' cell is used (or (0, 0) if there is none).
// Both fallbacks return a usable cell together with ErrMalformedLevel.
func (g *Grid) PlayerSpawn() (Cell, error) {
	spawns := g.Find(MarkerPlayer)
	switch len(spawns) {
	case 1:
		return spawns[0], nil
	case 0:
		cell := Cell{}
		if empty := g.Find(MarkerEmpty); len(empty) > 0 {
			cell = empty[0]
		}
		return cell, fmt.Errorf("%w: no player spawn, using cell %d,%d", ErrMalformedLevel, cell.Col, cell.Row)
	default:
		return spawns[0], fmt.Errorf("%w: %d player spawns, using the first", ErrMalformedLevel, len(spawns))
	}
}

// String renders the grid back to text, one row per line
func (g *Grid) String() string {
	var sb strings.Builder
	for i, row := range g.Cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
