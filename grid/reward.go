package grid

// NoFruit marks the absence of a consumed fruit in reward results and step
// info.
const NoFruit = -1

// Rewards computes the scalar reward for arriving at a state. It is
// stateless; episode-scoped fruit consumption is passed in by the caller.
type Rewards struct {
	layout *Layout
	table  RewardConfig
}

func NewRewards(l *Layout) *Rewards {
	return &Rewards{layout: l, table: l.Rewards()}
}

// RewardFor evaluates the reward policy for arriving at next, in priority
// order: goal, lava, unconsumed fruit, per-step default. When an unconsumed
// fruit is collected its state id is returned as newlyConsumed, otherwise
// NoFruit. Fruit yields its reward on top of the per-step reward, and only
// on the first arrival per episode.
func (r *Rewards) RewardFor(next int, consumed map[int]struct{}) (reward float64, newlyConsumed int) {
	switch {
	case r.layout.IsGoal(next):
		return r.table.Goal, NoFruit
	case r.layout.IsLava(next):
		return r.table.Lava, NoFruit
	}
	if f, ok := r.layout.FruitAt(next); ok {
		if _, eaten := consumed[next]; !eaten {
			return r.table.Step + f.Reward, next
		}
	}
	return r.table.Step, NoFruit
}
