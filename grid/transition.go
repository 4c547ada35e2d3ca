package grid

import "fmt"

// Transitions computes deterministic next states over a fixed layout.
// Moving off the grid or into a wall is a no-op: the agent stays in place.
type Transitions struct {
	layout *Layout
}

func NewTransitions(l *Layout) *Transitions {
	return &Transitions{layout: l}
}

// NextState applies the action's unit displacement to the state and resolves
// boundary and wall collisions. The state must not itself be a wall; walls
// are never occupiable and using one as an origin fails with
// ErrInvalidState.
func (t *Transitions) NextState(state int, action Action) (int, error) {
	if !action.Valid() {
		return 0, fmt.Errorf("%w: action %d outside the action space", ErrOutOfBounds, int(action))
	}
	row, col, err := t.layout.Indexer().ToCoords(state)
	if err != nil {
		return 0, err
	}
	if t.layout.IsWall(state) {
		return 0, fmt.Errorf("%w: state %d is a wall", ErrInvalidState, state)
	}

	switch action {
	case Up:
		row--
	case Right:
		col++
	case Down:
		row++
	case Left:
		col--
	}

	next, err := t.layout.Indexer().ToState(row, col)
	if err != nil {
		// off the grid, stay put
		return state, nil
	}
	if t.layout.IsWall(next) {
		return state, nil
	}
	return next, nil
}

// LookStepAhead computes the hypothetical successor of (state, action) with
// terminal states treated as absorbing: looking ahead from a goal or lava
// state returns the state itself. Side-effect free.
func (t *Transitions) LookStepAhead(state int, action Action) (int, error) {
	if !t.layout.Indexer().contains(state) {
		return 0, fmt.Errorf("%w: state %d", ErrOutOfBounds, state)
	}
	if t.layout.IsTerminal(state) {
		return state, nil
	}
	return t.NextState(state, action)
}
