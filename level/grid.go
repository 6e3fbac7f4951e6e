package level

import (
	"errors"
	"fmt"
)

// Tile is the occupant of a grid cell. Empty never blocks rays or movement.
type Tile int

const Empty Tile = 0

var ErrDimensions = errors.New("level: grid dimensions must be positive")

// Cell addresses a grid cell by row and column.
type Cell struct {
	Row, Col int
}

// Grid is a fixed rows x cols map of tiles. It is not modified after
// construction by anything outside this package.
type Grid struct {
	rows, cols int
	tiles      [][]Tile
}

func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, rows, cols)
	}

	tiles := make([][]Tile, rows)
	for i := range tiles {
		tiles[i] = make([]Tile, cols)
	}

	return &Grid{rows: rows, cols: cols, tiles: tiles}, nil
}

// FromRows builds a grid from literal tile rows. All rows must have the same
// length.
func FromRows(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrDimensions)
	}
	g, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.cols {
			return nil, fmt.Errorf("level: row %d has %d columns, want %d", r, len(row), g.cols)
		}
		copy(g.tiles[r], row)
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the tile at (row, col). Callers check InBounds first.
func (g *Grid) At(row, col int) Tile {
	return g.tiles[row][col]
}

func (g *Grid) set(row, col int, t Tile) {
	g.tiles[row][col] = t
}

// Occupied reports the number of non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, row := range g.tiles {
		for _, t := range row {
			if t != Empty {
				n++
			}
		}
	}
	return n
}
