package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	tileWall   = '%'
	tileStart  = 'P'
	tileTarget = '.'
	tileGoal   = 'G'
	tileFloor  = ' '
)

// MaxTargets bounds the number of targets a layout may hold; FoodState
// tracks the remaining ones in a 64-bit mask.
const MaxTargets = 64

var (
	ErrEmptyLayout    = errors.New("layout is empty")
	ErrRaggedLayout   = errors.New("layout rows differ in width")
	ErrUnknownTile    = errors.New("unknown layout tile")
	ErrNoStart        = errors.New("layout has no start tile")
	ErrMultipleStarts = errors.New("layout has more than one start tile")
	ErrMultipleGoals  = errors.New("layout has more than one goal tile")
	ErrTooManyTargets = errors.New("layout has too many targets")
)

// Point is a cell coordinate; X grows to the east and Y to the south.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Move returns the neighbouring cell in direction d.
func (p Point) Move(d Direction) Point {
	delta := d.delta()
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Layout is an immutable maze.
type Layout struct {
	Width, Height int
	Start         Point
	Goal          Point
	HasGoal       bool
	Targets       []Point

	walls []bool
}

// ParseString parses a layout held in a string.
func ParseString(text string) (*Layout, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads a layout. Blank lines before and after the maze are ignored.
func Parse(reader io.Reader) (*Layout, error) {
	var rows []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLayout
	}

	layout := &Layout{Width: len(rows[0]), Height: len(rows)}
	layout.walls = make([]bool, layout.Width*layout.Height)
	starts, goals := 0, 0
	for y, row := range rows {
		if len(row) != layout.Width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedLayout, y, len(row), layout.Width)
		}
		for x, tile := range []byte(row) {
			point := Point{X: x, Y: y}
			switch tile {
			case tileWall:
				layout.walls[layout.offset(point)] = true
			case tileStart:
				layout.Start = point
				starts++
			case tileTarget:
				layout.Targets = append(layout.Targets, point)
			case tileGoal:
				layout.Goal = point
				layout.HasGoal = true
				goals++
			case tileFloor:
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownTile, tile, point)
			}
		}
	}

	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	case goals > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleGoals, goals)
	case len(layout.Targets) > MaxTargets:
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyTargets, len(layout.Targets), MaxTargets)
	}
	return layout, nil
}

func (l *Layout) offset(p Point) int { return p.Y*l.Width + p.X }

// InBounds reports whether p lies inside the layout.
func (l *Layout) InBounds(p Point) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// Wall reports whether p is a wall. Cells outside the layout count as walls.
func (l *Layout) Wall(p Point) bool {
	return !l.InBounds(p) || l.walls[l.offset(p)]
}

// Open lists the non-wall neighbours of p in Directions order.
func (l *Layout) Open(p Point) []Direction {
	open := make([]Direction, 0, 4)
	for _, direction := range Directions() {
		if !l.Wall(p.Move(direction)) {
			open = append(open, direction)
		}
	}
	return open
}

// Render draws the layout with path marked by '*'. Start, goal and targets
// keep their tiles.
func (l *Layout) Render(path []Point) string {
	canvas := make([][]byte, l.Height)
	for y := range canvas {
		canvas[y] = make([]byte, l.Width)
		for x := range canvas[y] {
			if l.walls[l.offset(Point{X: x, Y: y})] {
				canvas[y][x] = tileWall
			} else {
				canvas[y][x] = tileFloor
			}
		}
	}
	for _, p := range path {
		if l.InBounds(p) {
			canvas[p.Y][p.X] = '*'
		}
	}
	for _, target := range l.Targets {
		canvas[target.Y][target.X] = tileTarget
	}
	if l.HasGoal {
		canvas[l.Goal.Y][l.Goal.X] = tileGoal
	}
	canvas[l.Start.Y][l.Start.X] = tileStart

	var builder strings.Builder
	for _, row := range canvas {
		builder.Write(row)
		builder.WriteByte('\n')
	}
	return builder.String()
}
