package policies

import (
	"math"
	"time"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/griduniverse/griduniverse-go/core"
)

// Boltzmann (softmax) exploration over learned Q values. Actions are drawn
// with probability proportional to exp(Q(s,a)/Temperature).
type SoftMaxPolicy struct {
	QTable      map[string]map[string]float64
	Alpha       float64
	Gamma       float64
	Temperature float64

	rand erand.Source
}

var _ core.Policy = &SoftMaxPolicy{}

func NewSoftMaxPolicy(alpha, gamma, temperature float64) *SoftMaxPolicy {
	return &SoftMaxPolicy{
		QTable:      make(map[string]map[string]float64),
		Alpha:       alpha,
		Gamma:       gamma,
		Temperature: temperature,
		rand:        erand.NewSource(uint64(time.Now().UnixNano())),
	}
}

func (s *SoftMaxPolicy) Reset() {
	s.QTable = make(map[string]map[string]float64)
	s.rand = erand.NewSource(uint64(time.Now().UnixNano()))
}

func (s *SoftMaxPolicy) ResetEpisode(_ *core.EpisodeContext) {}

func (s *SoftMaxPolicy) UpdateEpisode(_ *core.EpisodeContext) {}

func (s *SoftMaxPolicy) PickAction(_ *core.StepContext, state core.State, actions []core.Action) core.Action {
	stateHash := state.Hash()

	if _, ok := s.QTable[stateHash]; !ok {
		s.QTable[stateHash] = make(map[string]float64)
	}
	for _, a := range actions {
		aName := a.Hash()
		if _, ok := s.QTable[stateHash][aName]; !ok {
			s.QTable[stateHash][aName] = 0
		}
	}

	sum := float64(0)
	weights := make([]float64, len(actions))
	vals := make([]float64, len(actions))
	largestValue := s.QTable[stateHash][actions[0].Hash()] / s.Temperature

	for i := 0; i < len(actions); i++ {
		val := s.QTable[stateHash][actions[i].Hash()] / s.Temperature
		vals[i] = val
		if val > largestValue {
			largestValue = val
		}
	}

	// Normalizing
	for i := 0; i < len(vals); i++ {
		vals[i] = vals[i] - largestValue
		vals[i] = math.Exp(vals[i])
		sum += vals[i]
	}

	// Computing weights for each action
	for i, v := range vals {
		weights[i] = v / sum
	}
	// using the sampleuv library to sample based on the weights
	i, ok := sampleuv.NewWeighted(weights, s.rand).Take()
	if !ok {
		return nil
	}
	return actions[i]
}

func (s *SoftMaxPolicy) UpdateStep(_ *core.StepContext, state core.State, action core.Action, outcome *core.StepOutcome) {
	stateHash := state.Hash()
	nextStateHash := outcome.State.Hash()
	actionKey := action.Hash()

	if _, ok := s.QTable[stateHash]; !ok {
		s.QTable[stateHash] = make(map[string]float64)
	}
	if _, ok := s.QTable[stateHash][actionKey]; !ok {
		s.QTable[stateHash][actionKey] = 0
	}

	max := float64(0)
	if !outcome.Done {
		if next, ok := s.QTable[nextStateHash]; ok {
			for _, val := range next {
				if val > max {
					max = val
				}
			}
		}
	}
	curVal := s.QTable[stateHash][actionKey]
	s.QTable[stateHash][actionKey] = (1-s.Alpha)*curVal + s.Alpha*(outcome.Reward+s.Gamma*max)
}

type SoftMaxPolicyConstructor struct {
	Alpha       float64
	Gamma       float64
	Temperature float64
}

func NewSoftMaxPolicyConstructor(alpha, gamma, temperature float64) *SoftMaxPolicyConstructor {
	return &SoftMaxPolicyConstructor{Alpha: alpha, Gamma: gamma, Temperature: temperature}
}

func (c *SoftMaxPolicyConstructor) NewPolicy() core.Policy {
	return NewSoftMaxPolicy(c.Alpha, c.Gamma, c.Temperature)
}
