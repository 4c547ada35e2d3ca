package grid

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/griduniverse/griduniverse-go/core"
)

// GridState wraps a flat state id for the agent/environment loop.
type GridState struct {
	ID int
}

func (s GridState) Hash() string {
	return strconv.Itoa(s.ID)
}

func (s GridState) Actions() []core.Action {
	out := make([]core.Action, 0, NumActions)
	for _, a := range Actions() {
		out = append(out, MoveAction{Move: a})
	}
	return out
}

var _ core.State = GridState{}

// MoveAction wraps a grid Action.
type MoveAction struct {
	Move Action
}

func (a MoveAction) Hash() string {
	return a.Move.String()
}

var _ core.Action = MoveAction{}

// Env adapts an Episode to the core.Environment interface.
type Env struct {
	episode *Episode
}

var _ core.Environment = &Env{}

func NewEnv(l *Layout) *Env {
	return &Env{episode: NewEpisode(l)}
}

func NewEnvWithSource(l *Layout, src rand.Source) *Env {
	return &Env{episode: NewEpisodeWithSource(l, src)}
}

func (e *Env) Reset() (core.State, error) {
	return GridState{ID: e.episode.Reset()}, nil
}

func (e *Env) Step(a core.Action, _ *core.StepContext) (*core.StepOutcome, error) {
	move, ok := a.(MoveAction)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected action type %T", ErrOutOfBounds, a)
	}
	next, reward, done, info, err := e.episode.Step(move.Move)
	if err != nil {
		return nil, err
	}
	return &core.StepOutcome{
		State:  GridState{ID: next},
		Reward: reward,
		Done:   done,
		Info:   info,
	}, nil
}

// Episode exposes the underlying controller, e.g. for rendering.
func (e *Env) Episode() *Episode {
	return e.episode
}

// EnvConstructor builds independent environments over a shared layout, one
// per worker instance. A non-zero Seed makes the instance seeds reproducible.
type EnvConstructor struct {
	Layout *Layout
	Seed   int64
}

var _ core.EnvironmentConstructor = &EnvConstructor{}

func (c *EnvConstructor) NewEnvironment(instance int) core.Environment {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewEnvWithSource(c.Layout, rand.NewSource(seed+int64(instance)))
}
