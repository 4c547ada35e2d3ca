package policies

import (
	"math/rand"
	"time"

	"github.com/griduniverse/griduniverse-go/core"
)

// Epsilon-greedy tabular Q-learning over environment rewards.
type QLearningPolicy struct {
	qTable *QTable
	rand   *rand.Rand

	Alpha   float64
	Gamma   float64
	Epsilon float64
}

var _ core.Policy = &QLearningPolicy{}

func NewQLearningPolicy(alpha, gamma, epsilon float64) *QLearningPolicy {
	return &QLearningPolicy{
		qTable:  NewQTable(),
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		Alpha:   alpha,
		Gamma:   gamma,
		Epsilon: epsilon,
	}
}

func (q *QLearningPolicy) Reset() {
	q.qTable = NewQTable()
}

func (q *QLearningPolicy) ResetEpisode(_ *core.EpisodeContext) {}

func (q *QLearningPolicy) UpdateEpisode(_ *core.EpisodeContext) {}

func (q *QLearningPolicy) PickAction(_ *core.StepContext, state core.State, actions []core.Action) core.Action {
	if q.rand.Float64() < q.Epsilon {
		return actions[q.rand.Intn(len(actions))]
	}

	actionsMap := make(map[string]core.Action)
	availableActions := make([]string, len(actions))
	for i, a := range actions {
		key := a.Hash()
		actionsMap[key] = a
		availableActions[i] = key
	}
	best, _ := q.qTable.MaxAmong(state.Hash(), availableActions, 0)
	return actionsMap[best]
}

func (q *QLearningPolicy) UpdateStep(_ *core.StepContext, state core.State, action core.Action, outcome *core.StepOutcome) {
	stateHash := state.Hash()
	actionKey := action.Hash()

	target := outcome.Reward
	if !outcome.Done {
		_, maxNext := q.qTable.Max(outcome.State.Hash(), 0)
		target += q.Gamma * maxNext
	}
	cur := q.qTable.Get(stateHash, actionKey, 0)
	q.qTable.Set(stateHash, actionKey, (1-q.Alpha)*cur+q.Alpha*target)
}

// QTable exposes the learned values, e.g. for recording to disk.
func (q *QLearningPolicy) QTable() *QTable {
	return q.qTable
}

type QLearningPolicyConstructor struct {
	Alpha   float64
	Gamma   float64
	Epsilon float64
}

func NewQLearningPolicyConstructor(alpha, gamma, epsilon float64) *QLearningPolicyConstructor {
	return &QLearningPolicyConstructor{Alpha: alpha, Gamma: gamma, Epsilon: epsilon}
}

func (c *QLearningPolicyConstructor) NewPolicy() core.Policy {
	return NewQLearningPolicy(c.Alpha, c.Gamma, c.Epsilon)
}
