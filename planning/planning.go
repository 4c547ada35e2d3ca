// Package planning implements dynamic-programming algorithms over an
// immutable grid layout. All transition queries go through the
// side-effect-free lookahead, so a live episode is never perturbed. Fruit is
// treated as always present, the same way the one-shot reward matrix of a
// fresh episode sees it.
package planning

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/griduniverse/griduniverse-go/grid"
)

// Policy is a (numStates x numActions) row-stochastic table. Rows of walls
// and terminal states are all zero.
type Policy [][]float64

// NewPolicy allocates a zero policy of the right shape for the layout.
func NewPolicy(l *grid.Layout) Policy {
	p := make(Policy, l.NumStates())
	for s := range p {
		p[s] = make([]float64, grid.NumActions)
	}
	return p
}

// UniformRandomPolicy assigns equal probability to every action in each
// occupiable non-terminal state.
func UniformRandomPolicy(l *grid.Layout) Policy {
	p := NewPolicy(l)
	for s := range p {
		if l.IsWall(s) || l.IsTerminal(s) {
			continue
		}
		for a := range p[s] {
			p[s][a] = 1.0 / grid.NumActions
		}
	}
	return p
}

func checkShape(l *grid.Layout, p Policy) error {
	if len(p) != l.NumStates() {
		return fmt.Errorf("%w: policy has %d rows, layout has %d states", grid.ErrConfiguration, len(p), l.NumStates())
	}
	for s, row := range p {
		if len(row) != grid.NumActions {
			return fmt.Errorf("%w: policy row %d has %d actions, want %d", grid.ErrConfiguration, s, len(row), grid.NumActions)
		}
	}
	return nil
}

// EvaluatePolicyStep performs a single synchronous Bellman backup of the
// state values under the policy.
func EvaluatePolicyStep(l *grid.Layout, p Policy, v []float64, gamma float64) ([]float64, error) {
	if err := checkShape(l, p); err != nil {
		return nil, err
	}
	trans := grid.NewTransitions(l)
	rewards := grid.NewRewards(l)

	vNew := make([]float64, l.NumStates())
	for s := range vNew {
		if l.IsWall(s) || l.IsTerminal(s) {
			continue
		}
		for a, prob := range p[s] {
			if prob == 0 {
				continue
			}
			next, err := trans.LookStepAhead(s, grid.Action(a))
			if err != nil {
				return nil, err
			}
			r, _ := rewards.RewardFor(next, nil)
			vNew[s] += prob * (r + gamma*v[next])
		}
	}
	return vNew, nil
}

// EvaluatePolicy iterates Bellman backups until the sup-norm change drops
// below theta or maxIterations is reached.
func EvaluatePolicy(l *grid.Layout, p Policy, gamma, theta float64, maxIterations int) ([]float64, error) {
	v := make([]float64, l.NumStates())
	for i := 0; i < maxIterations; i++ {
		vNew, err := EvaluatePolicyStep(l, p, v, gamma)
		if err != nil {
			return nil, err
		}
		delta := floats.Distance(v, vNew, math.Inf(1))
		v = vNew
		if delta < theta {
			break
		}
	}
	return v, nil
}

// GreedyPolicy extracts the policy that is greedy with respect to the value
// function, splitting probability uniformly over tied actions.
func GreedyPolicy(l *grid.Layout, v []float64, gamma float64) (Policy, error) {
	if len(v) != l.NumStates() {
		return nil, fmt.Errorf("%w: value function has %d entries, layout has %d states", grid.ErrConfiguration, len(v), l.NumStates())
	}
	trans := grid.NewTransitions(l)
	rewards := grid.NewRewards(l)

	p := NewPolicy(l)
	for s := range p {
		if l.IsWall(s) || l.IsTerminal(s) {
			continue
		}
		var q [grid.NumActions]float64
		best := math.Inf(-1)
		for _, a := range grid.Actions() {
			next, err := trans.LookStepAhead(s, a)
			if err != nil {
				return nil, err
			}
			r, _ := rewards.RewardFor(next, nil)
			q[a] = r + gamma*v[next]
			if q[a] > best {
				best = q[a]
			}
		}
		ties := 0
		for _, val := range q {
			if nearlyEqual(val, best) {
				ties++
			}
		}
		for a, val := range q {
			if nearlyEqual(val, best) {
				p[s][a] = 1.0 / float64(ties)
			}
		}
	}
	return p, nil
}

// PolicyIteration alternates evaluation and greedy improvement until the
// policy is stable, starting from the uniform random policy.
func PolicyIteration(l *grid.Layout, gamma, theta float64, maxIterations int) (Policy, []float64, error) {
	p := UniformRandomPolicy(l)
	var v []float64
	for i := 0; i < maxIterations; i++ {
		var err error
		v, err = EvaluatePolicy(l, p, gamma, theta, maxIterations)
		if err != nil {
			return nil, nil, err
		}
		improved, err := GreedyPolicy(l, v, gamma)
		if err != nil {
			return nil, nil, err
		}
		if policiesEqual(p, improved) {
			return improved, v, nil
		}
		p = improved
	}
	return p, v, nil
}

// ValueIteration performs max-backups directly on the value function and
// returns the greedy policy for the result.
func ValueIteration(l *grid.Layout, gamma, theta float64, maxIterations int) (Policy, []float64, error) {
	trans := grid.NewTransitions(l)
	rewards := grid.NewRewards(l)

	v := make([]float64, l.NumStates())
	for i := 0; i < maxIterations; i++ {
		vNew := make([]float64, l.NumStates())
		for s := range vNew {
			if l.IsWall(s) || l.IsTerminal(s) {
				continue
			}
			best := math.Inf(-1)
			for _, a := range grid.Actions() {
				next, err := trans.LookStepAhead(s, a)
				if err != nil {
					return nil, nil, err
				}
				r, _ := rewards.RewardFor(next, nil)
				if q := r + gamma*v[next]; q > best {
					best = q
				}
			}
			vNew[s] = best
		}
		delta := floats.Distance(v, vNew, math.Inf(1))
		v = vNew
		if delta < theta {
			break
		}
	}
	p, err := GreedyPolicy(l, v, gamma)
	if err != nil {
		return nil, nil, err
	}
	return p, v, nil
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-8
}

func policiesEqual(a, b Policy) bool {
	for s := range a {
		for i := range a[s] {
			if !nearlyEqual(a[s][i], b[s][i]) {
				return false
			}
		}
	}
	return true
}
