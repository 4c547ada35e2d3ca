package grid

import "errors"

var (
	// ErrConfiguration is returned when a layout is constructed from an
	// invalid or overlapping placement of entities.
	ErrConfiguration = errors.New("invalid grid configuration")

	// ErrOutOfBounds is returned when a coordinate, state id or action lies
	// outside its valid range.
	ErrOutOfBounds = errors.New("out of grid bounds")

	// ErrInvalidState is returned when an operation is attempted on a state
	// that can never be occupied, such as a wall used as an agent position.
	ErrInvalidState = errors.New("invalid agent state")

	// ErrEpisodeTerminated is returned by Step once a terminal state has
	// been reached. Reset clears it.
	ErrEpisodeTerminated = errors.New("episode already terminated")
)
