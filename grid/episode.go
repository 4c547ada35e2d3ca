package grid

import (
	"fmt"
	"math/rand"
	"time"
)

type phase int

const (
	phaseReady phase = iota
	phaseActive
	phaseDone
)

// Episode owns the mutable state of a single run over an immutable Layout:
// the agent position, the consumed-fruit set and the done flag. It is the
// only entity that changes between steps. Concurrent episodes over the same
// Layout are independent; an Episode itself is not safe for concurrent use.
type Episode struct {
	layout      *Layout
	transitions *Transitions
	rewards     *Rewards
	rand        *rand.Rand

	phase    phase
	current  int
	consumed map[int]struct{}
}

// NewEpisode creates a controller over the layout with a time-seeded RNG for
// the initial-state draw.
func NewEpisode(l *Layout) *Episode {
	return NewEpisodeWithSource(l, rand.NewSource(time.Now().UnixNano()))
}

// NewEpisodeWithSource injects the random source used by Reset, which makes
// the initial-state draw deterministic under test.
func NewEpisodeWithSource(l *Layout, src rand.Source) *Episode {
	return &Episode{
		layout:      l,
		transitions: NewTransitions(l),
		rewards:     NewRewards(l),
		rand:        rand.New(src),
		consumed:    make(map[int]struct{}),
	}
}

// Reset starts a new episode: draws one initial state uniformly at random,
// clears fruit consumption and the done flag, and returns the sampled state
// id as the first observation. Valid in any phase.
func (e *Episode) Reset() int {
	initial := e.layout.initial
	e.current = initial[e.rand.Intn(len(initial))]
	e.consumed = make(map[int]struct{})
	e.phase = phaseActive
	return e.current
}

// Step moves the agent one step according to the action and returns the next
// state, the reward for arriving there, the done flag, and an info map
// carrying the consumed fruit if one was collected. Stepping a terminated
// episode fails with ErrEpisodeTerminated; stepping before the first Reset
// fails with ErrInvalidState.
func (e *Episode) Step(action Action) (int, float64, bool, map[string]interface{}, error) {
	switch e.phase {
	case phaseReady:
		return 0, 0, false, nil, fmt.Errorf("%w: episode not started, call Reset first", ErrInvalidState)
	case phaseDone:
		return 0, 0, false, nil, fmt.Errorf("%w: call Reset to start a new episode", ErrEpisodeTerminated)
	}

	next, err := e.transitions.NextState(e.current, action)
	if err != nil {
		return 0, 0, false, nil, err
	}
	reward, newlyConsumed := e.rewards.RewardFor(next, e.consumed)

	info := make(map[string]interface{})
	if newlyConsumed != NoFruit {
		e.consumed[newlyConsumed] = struct{}{}
		fruit, _ := e.layout.FruitAt(newlyConsumed)
		info["consumed_fruit"] = newlyConsumed
		info["fruit_kind"] = fruit.Kind.String()
	}

	e.current = next
	done := e.layout.IsTerminal(next)
	if done {
		e.phase = phaseDone
	}
	return next, reward, done, info, nil
}

// LookStepAhead computes the hypothetical successor of (state, action)
// without touching episode state. Terminal states are absorbing: looking
// ahead from one returns the state itself. Usable in any phase, which lets
// planning algorithms explore transitions without perturbing a live episode.
func (e *Episode) LookStepAhead(state int, action Action) (int, error) {
	return e.transitions.LookStepAhead(state, action)
}

// CurrentState returns the agent position. Meaningful only after Reset.
func (e *Episode) CurrentState() int { return e.current }

// Done reports whether the episode has reached a terminal state.
func (e *Episode) Done() bool { return e.phase == phaseDone }

// ConsumedFruit returns the ids of fruit collected so far this episode.
func (e *Episode) ConsumedFruit() []int {
	return sortedKeys(e.consumed)
}

// Layout returns the immutable layout this episode runs on.
func (e *Episode) Layout() *Layout { return e.layout }
