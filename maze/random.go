package maze

import "math/rand"

// RandomOptions shapes a generated layout.
type RandomOptions struct {
	Width, Height int
	Clusters      int
	Steps         int
	Density       float64
}

// DefaultRandomOptions matches the visualiser's defaults.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{Width: 40, Height: 24, Clusters: 8, Steps: 200, Density: 0.25}
}

// Random generates a layout with clustered walls grown by random walks, a
// random start and a distinct random goal. Start and goal are never walls.
func Random(options RandomOptions, rng *rand.Rand) *Layout {
	width, height := max(options.Width, 2), max(options.Height, 1)
	layout := &Layout{
		Width:   width,
		Height:  height,
		HasGoal: true,
		walls:   make([]bool, width*height),
	}
	for {
		layout.Start = Point{X: rng.Intn(width), Y: rng.Intn(height)}
		layout.Goal = Point{X: rng.Intn(width), Y: rng.Intn(height)}
		if layout.Start != layout.Goal {
			break
		}
	}

	directions := Directions()
	for c := 0; c < options.Clusters; c++ {
		p := Point{X: rng.Intn(width), Y: rng.Intn(height)}
		for s := 0; s < options.Steps; s++ {
			if rng.Float64() < options.Density && p != layout.Start && p != layout.Goal {
				layout.walls[layout.offset(p)] = true
			}
			next := p.Move(directions[rng.Intn(len(directions))])
			if layout.InBounds(next) {
				p = next
			}
		}
	}
	return layout
}
