// Package healpix models a sphere as twelve square tiles in the HEALPix
// base arrangement and provides the neighbor traversal needed to walk rows
// and columns across tile boundaries.
//
// The twelve tiles split into three rings of four: tiles 0-3 around the
// north pole, 4-7 around the equator, and 8-11 around the south pole.
// Crossing a tile edge may rotate the walk from rows to columns (or back)
// and mirror the line index; TraverseRow and TraverseCol encode that
// adjacency. The tiled CDF 9/7 transform over this arrangement is not
// implemented; Forward and Inverse report ErrNotImplemented.
package healpix

import (
	"errors"
	"fmt"
)

// NumTiles is the number of base tiles in the arrangement.
const NumTiles = 12

// ErrNotImplemented is returned by the tiled transform entry points.
var ErrNotImplemented = errors.New("healpix: not implemented")

// Axis identifies whether a traversal continues along rows or columns of
// the next tile.
type Axis int

const (
	// Rows means the walk continues along a row of the next tile.
	Rows Axis = iota
	// Cols means the walk rotates to a column of the next tile.
	Cols
)

// Model holds the coefficient data for the twelve tiles, each width
// samples square.
type Model struct {
	Width  int
	Height int
	Tiles  [NumTiles][]float64
}

// NewModel allocates a model with twelve zeroed width-square tiles.
func NewModel(width int) (*Model, error) {
	if width <= 0 {
		return nil, fmt.Errorf("healpix: invalid width %d", width)
	}
	m := &Model{Width: width, Height: width}
	for i := range m.Tiles {
		m.Tiles[i] = make([]float64, width*width)
	}
	return m, nil
}

// Workspace holds scratch storage for the tiled transform: a shadow set of
// tiles plus a row buffer with room for the boundary overlap.
type Workspace struct {
	Width  int
	Height int
	Tiles  [NumTiles][]float64
	Row    []float64
}

// NewWorkspace allocates a workspace matching a model of the given width.
func NewWorkspace(width int) (*Workspace, error) {
	if width <= 0 {
		return nil, fmt.Errorf("healpix: invalid width %d", width)
	}
	w := &Workspace{Width: width, Height: width}
	for i := range w.Tiles {
		w.Tiles[i] = make([]float64, width*width)
	}
	w.Row = make([]float64, width+8)
	return w, nil
}

// Forward would apply the tiled multiresolution CDF 9/7 transform in
// place. The traversal tables below are complete but the transform
// semantics over the tiling are future work.
func (m *Model) Forward(w *Workspace) error {
	return ErrNotImplemented
}

// Inverse reverses Forward.
func (m *Model) Inverse(w *Workspace) error {
	return ErrNotImplemented
}

// Step describes the continuation of a row or column walk into a
// neighboring tile.
type Step struct {
	// Tile is the neighboring tile entered.
	Tile int
	// Axis tells whether the walk continues along rows or columns there.
	Axis Axis
	// Index is the row or column index within the neighboring tile; it is
	// mirrored whenever the walk rotates between rows and columns.
	Index int
	// Dir is the direction of travel, negative or positive, unchanged by
	// the crossing.
	Dir int
}

// Tile adjacency for row walks. Equatorial tiles continue as rows to both
// sides; polar tiles rotate onto columns on one side.
var (
	rowLeftTile = [NumTiles]int{
		4, 5, 6, 7,
		11, 8, 9, 10,
		11, 8, 9, 10,
	}
	rowRightTile = [NumTiles]int{
		1, 2, 3, 0,
		0, 1, 2, 3,
		5, 6, 7, 4,
	}
	rowLeftAxis = [NumTiles]Axis{
		Rows, Rows, Rows, Rows,
		Rows, Rows, Rows, Rows,
		Cols, Cols, Cols, Cols,
	}
	rowRightAxis = [NumTiles]Axis{
		Cols, Cols, Cols, Cols,
		Rows, Rows, Rows, Rows,
		Rows, Rows, Rows, Rows,
	}
)

// Tile adjacency for column walks.
var (
	colTopTile = [NumTiles]int{
		3, 0, 1, 2,
		3, 0, 1, 2,
		4, 5, 6, 7,
	}
	colBottomTile = [NumTiles]int{
		5, 6, 7, 4,
		8, 9, 10, 11,
		9, 10, 11, 8,
	}
	colTopAxis = [NumTiles]Axis{
		Rows, Rows, Rows, Rows,
		Cols, Cols, Cols, Cols,
		Cols, Cols, Cols, Cols,
	}
	colBottomAxis = [NumTiles]Axis{
		Cols, Cols, Cols, Cols,
		Cols, Cols, Cols, Cols,
		Rows, Rows, Rows, Rows,
	}
)

// TraverseRow continues a row walk of the given tile off its left
// (dir < 0) or right (dir >= 0) edge at level extent width.
func TraverseRow(width, tile, row, dir int) (Step, error) {
	if tile < 0 || tile >= NumTiles {
		return Step{}, fmt.Errorf("healpix: invalid tile %d", tile)
	}

	var next Step
	if dir < 0 {
		next.Tile = rowLeftTile[tile]
		next.Axis = rowLeftAxis[tile]
	} else {
		next.Tile = rowRightTile[tile]
		next.Axis = rowRightAxis[tile]
	}
	// Rotating from rows to columns mirrors the index
	if next.Axis == Cols {
		next.Index = width - 1 - row
	} else {
		next.Index = row
	}
	next.Dir = dir
	return next, nil
}

// TraverseCol continues a column walk of the given tile off its top
// (dir < 0) or bottom (dir >= 0) edge at level extent width.
func TraverseCol(width, tile, col, dir int) (Step, error) {
	if tile < 0 || tile >= NumTiles {
		return Step{}, fmt.Errorf("healpix: invalid tile %d", tile)
	}

	var next Step
	if dir < 0 {
		next.Tile = colTopTile[tile]
		next.Axis = colTopAxis[tile]
	} else {
		next.Tile = colBottomTile[tile]
		next.Axis = colBottomAxis[tile]
	}
	// Rotating from columns to rows mirrors the index
	if next.Axis == Rows {
		next.Index = width - 1 - col
	} else {
		next.Index = col
	}
	next.Dir = dir
	return next, nil
}

// FillRow copies len(buf) samples of the line that continues the given
// row beyond the tile edge in direction dir, following the walk across as
// many tiles as needed.
func (m *Model) FillRow(tile, row, dir int, buf []float64) error {
	next, err := TraverseRow(m.Width, tile, row, dir)
	if err != nil {
		return err
	}
	return m.fill(next, buf)
}

// FillCol is the column analogue of FillRow.
func (m *Model) FillCol(tile, col, dir int, buf []float64) error {
	next, err := TraverseCol(m.Width, tile, col, dir)
	if err != nil {
		return err
	}
	return m.fill(next, buf)
}

func (m *Model) fill(next Step, buf []float64) error {
	width := m.Width
	n := len(buf)
	nc := n
	if nc > width {
		nc = width
	}

	t := m.Tiles[next.Tile]
	for i := 0; i < nc; i++ {
		if next.Axis == Rows {
			if next.Dir < 0 {
				buf[i] = t[next.Index*width+width-1-i]
			} else {
				buf[i] = t[next.Index*width+i]
			}
		} else {
			if next.Dir < 0 {
				buf[i] = t[next.Index+width*(width-1-i)]
			} else {
				buf[i] = t[next.Index+width*i]
			}
		}
	}

	if nc < n {
		if next.Axis == Rows {
			return m.FillRow(next.Tile, next.Index, next.Dir, buf[nc:])
		}
		return m.FillCol(next.Tile, next.Index, next.Dir, buf[nc:])
	}
	return nil
}
