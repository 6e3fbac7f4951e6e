package level

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// Weights maps a tile value to the probability that a cell holds it. The
// remaining probability mass is empty space.
type Weights map[Tile]float64

// DefaultWeights gives each of the three wall materials about 3.3%.
func DefaultWeights() Weights {
	return Weights{1: 0.033, 2: 0.033, 3: 0.033}
}

func (w Weights) Validate() error {
	var errs []error
	sum := 0.0
	for t, p := range w {
		if t <= Empty {
			errs = append(errs, fmt.Errorf("tile %d: must be positive", t))
		}
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("tile %d: probability %v out of [0,1]", t, p))
		}
		sum += p
	}
	if sum > 1 {
		errs = append(errs, fmt.Errorf("probabilities sum to %v, more than 1", sum))
	}
	return errors.Join(errs...)
}

func (w Weights) sorted() []Tile {
	tiles := make([]Tile, 0, len(w))
	for t := range w {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })
	return tiles
}

// Generate fills a rows x cols grid by sampling each cell from weights using
// rng. The same seed always yields the same grid. Cells in keepClear are left
// empty.
func Generate(rows, cols int, weights Weights, rng *rand.Rand, keepClear ...Cell) (*Grid, error) {
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("level: weights: %w", err)
	}
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	tiles := weights.sorted()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := rng.Float64()
			cumulative := 0.0
			for _, t := range tiles {
				cumulative += weights[t]
				if u < cumulative {
					g.set(r, c, t)
					break
				}
			}
		}
	}

	for _, cell := range keepClear {
		if g.InBounds(cell.Row, cell.Col) {
			g.set(cell.Row, cell.Col, Empty)
		}
	}

	return g, nil
}
