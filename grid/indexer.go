package grid

import "fmt"

// Indexer maps 2D grid coordinates to flat state ids and back. The mapping
// is row-major: id = row*width + col. It is a bijection over the grid
// rectangle for a fixed (width, height).
type Indexer struct {
	width  int
	height int
}

func NewIndexer(width, height int) Indexer {
	return Indexer{width: width, height: height}
}

func (ix Indexer) Width() int  { return ix.width }
func (ix Indexer) Height() int { return ix.height }

// NumStates returns the number of states of the grid rectangle.
func (ix Indexer) NumStates() int {
	return ix.width * ix.height
}

// ToState encodes (row, col) into a flat state id.
func (ix Indexer) ToState(row, col int) (int, error) {
	if row < 0 || row >= ix.height || col < 0 || col >= ix.width {
		return 0, fmt.Errorf("%w: coordinate (%d, %d) in %dx%d grid", ErrOutOfBounds, row, col, ix.width, ix.height)
	}
	return row*ix.width + col, nil
}

// ToCoords decodes a flat state id into (row, col).
func (ix Indexer) ToCoords(state int) (int, int, error) {
	if state < 0 || state >= ix.NumStates() {
		return 0, 0, fmt.Errorf("%w: state %d in %dx%d grid", ErrOutOfBounds, state, ix.width, ix.height)
	}
	return state / ix.width, state % ix.width, nil
}

func (ix Indexer) contains(state int) bool {
	return state >= 0 && state < ix.NumStates()
}
