package grid

import (
	"fmt"
	"sort"
)

// FruitKind identifies a collectible reward item.
type FruitKind int

const (
	Lemon FruitKind = iota
	Melon
	Apple
)

func (k FruitKind) String() string {
	switch k {
	case Lemon:
		return "lemon"
	case Melon:
		return "melon"
	case Apple:
		return "apple"
	}
	return "unknown"
}

// Fruit is a reward item fixed to a grid cell, collectible once per episode.
type Fruit struct {
	Kind   FruitKind
	Reward float64
}

// RewardConfig collects every reward constant of the environment. The zero
// value is not useful; start from DefaultRewards.
type RewardConfig struct {
	Goal  float64
	Lava  float64
	Apple float64
	Melon float64
	Lemon float64
	// Step is the reward for an ordinary move onto a non-terminal,
	// fruit-free cell. Set a negative value to model a living cost.
	Step float64
}

func DefaultRewards() RewardConfig {
	return RewardConfig{
		Goal:  10,
		Lava:  -10,
		Apple: 2,
		Melon: 10,
		Lemon: -2,
		Step:  0,
	}
}

func (rc RewardConfig) fruitReward(k FruitKind) float64 {
	switch k {
	case Lemon:
		return rc.Lemon
	case Melon:
		return rc.Melon
	default:
		return rc.Apple
	}
}

// Config describes a grid layout before validation.
type Config struct {
	Width  int
	Height int

	InitialStates []int
	GoalStates    []int
	LavaStates    []int
	Walls         []int

	Apples []int
	Melons []int
	Lemons []int

	// Rewards overrides the default reward constants when non-nil.
	Rewards *RewardConfig
}

// Layout is the immutable description of a grid: dimensions and the fixed
// placement of walls, terminal states, initial states and fruit. A Layout is
// safe to share across any number of concurrent episodes.
type Layout struct {
	indexer Indexer

	walls   map[int]struct{}
	goals   map[int]struct{}
	lava    map[int]struct{}
	fruit   map[int]Fruit
	initial []int

	rewards RewardConfig
}

// NewLayout validates the configuration and builds an immutable Layout.
// Out-of-range ids, duplicates within a set and overlapping placements all
// fail with ErrConfiguration.
func NewLayout(cfg Config) (*Layout, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: grid shape (%d, %d) must be positive", ErrConfiguration, cfg.Width, cfg.Height)
	}
	if len(cfg.InitialStates) == 0 {
		return nil, fmt.Errorf("%w: at least one initial state required", ErrConfiguration)
	}

	l := &Layout{
		indexer: NewIndexer(cfg.Width, cfg.Height),
		walls:   make(map[int]struct{}),
		goals:   make(map[int]struct{}),
		lava:    make(map[int]struct{}),
		fruit:   make(map[int]Fruit),
		rewards: DefaultRewards(),
	}
	if cfg.Rewards != nil {
		l.rewards = *cfg.Rewards
	}

	if err := l.fill(l.walls, "wall", cfg.Walls); err != nil {
		return nil, err
	}
	if err := l.fill(l.goals, "goal", cfg.GoalStates); err != nil {
		return nil, err
	}
	if err := l.fill(l.lava, "lava", cfg.LavaStates); err != nil {
		return nil, err
	}
	if err := l.placeFruit(Lemon, cfg.Lemons); err != nil {
		return nil, err
	}
	if err := l.placeFruit(Melon, cfg.Melons); err != nil {
		return nil, err
	}
	if err := l.placeFruit(Apple, cfg.Apples); err != nil {
		return nil, err
	}

	// goal/lava disjointness among themselves and against walls
	for s := range l.goals {
		if _, ok := l.lava[s]; ok {
			return nil, fmt.Errorf("%w: state %d is both goal and lava", ErrConfiguration, s)
		}
		if _, ok := l.walls[s]; ok {
			return nil, fmt.Errorf("%w: goal state %d collides with a wall", ErrConfiguration, s)
		}
	}
	for s := range l.lava {
		if _, ok := l.walls[s]; ok {
			return nil, fmt.Errorf("%w: lava state %d collides with a wall", ErrConfiguration, s)
		}
	}

	seenInitial := make(map[int]struct{})
	for _, s := range cfg.InitialStates {
		if !l.indexer.contains(s) {
			return nil, fmt.Errorf("%w: initial state %d out of range", ErrConfiguration, s)
		}
		if _, ok := seenInitial[s]; ok {
			return nil, fmt.Errorf("%w: duplicate initial state %d", ErrConfiguration, s)
		}
		seenInitial[s] = struct{}{}
		if _, ok := l.walls[s]; ok {
			return nil, fmt.Errorf("%w: initial state %d collides with a wall", ErrConfiguration, s)
		}
		if l.IsTerminal(s) {
			return nil, fmt.Errorf("%w: initial state %d is terminal", ErrConfiguration, s)
		}
		l.initial = append(l.initial, s)
	}
	sort.Ints(l.initial)

	return l, nil
}

func (l *Layout) fill(set map[int]struct{}, what string, states []int) error {
	for _, s := range states {
		if !l.indexer.contains(s) {
			return fmt.Errorf("%w: %s state %d out of range", ErrConfiguration, what, s)
		}
		if _, ok := set[s]; ok {
			return fmt.Errorf("%w: duplicate %s state %d", ErrConfiguration, what, s)
		}
		set[s] = struct{}{}
	}
	return nil
}

func (l *Layout) placeFruit(kind FruitKind, states []int) error {
	for _, s := range states {
		if !l.indexer.contains(s) {
			return fmt.Errorf("%w: %s state %d out of range", ErrConfiguration, kind, s)
		}
		if prev, ok := l.fruit[s]; ok {
			return fmt.Errorf("%w: %s at state %d placed on top of %s", ErrConfiguration, kind, s, prev.Kind)
		}
		if _, ok := l.walls[s]; ok {
			return fmt.Errorf("%w: %s at state %d placed on a wall", ErrConfiguration, kind, s)
		}
		if l.IsTerminal(s) {
			return fmt.Errorf("%w: %s at state %d placed on a terminal state", ErrConfiguration, kind, s)
		}
		l.fruit[s] = Fruit{Kind: kind, Reward: l.rewards.fruitReward(kind)}
	}
	return nil
}

func (l *Layout) Width() int  { return l.indexer.width }
func (l *Layout) Height() int { return l.indexer.height }

func (l *Layout) NumStates() int { return l.indexer.NumStates() }

func (l *Layout) Indexer() Indexer { return l.indexer }

func (l *Layout) Rewards() RewardConfig { return l.rewards }

func (l *Layout) IsWall(state int) bool {
	_, ok := l.walls[state]
	return ok
}

func (l *Layout) IsGoal(state int) bool {
	_, ok := l.goals[state]
	return ok
}

func (l *Layout) IsLava(state int) bool {
	_, ok := l.lava[state]
	return ok
}

// IsTerminal reports whether reaching the state ends an episode.
func (l *Layout) IsTerminal(state int) bool {
	return l.IsGoal(state) || l.IsLava(state)
}

// FruitAt returns the fruit fixed to the state, if any.
func (l *Layout) FruitAt(state int) (Fruit, bool) {
	f, ok := l.fruit[state]
	return f, ok
}

// InitialStates returns a copy of the sorted initial-state set.
func (l *Layout) InitialStates() []int {
	out := make([]int, len(l.initial))
	copy(out, l.initial)
	return out
}

func (l *Layout) WallStates() []int { return sortedKeys(l.walls) }
func (l *Layout) GoalStates() []int { return sortedKeys(l.goals) }
func (l *Layout) LavaStates() []int { return sortedKeys(l.lava) }

// FruitStates returns the sorted ids of every cell holding a fruit.
func (l *Layout) FruitStates() []int {
	out := make([]int, 0, len(l.fruit))
	for s := range l.fruit {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}
