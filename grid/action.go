package grid

// Action is one of the four moves of the discrete action space.
type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

// NumActions is the size of the action space.
const NumActions = 4

var actionDescriptors = [NumActions]string{"UP", "RIGHT", "DOWN", "LEFT"}

// Actions returns the full action space in canonical order.
func Actions() []Action {
	return []Action{Up, Right, Down, Left}
}

func (a Action) Valid() bool {
	return a >= Up && a <= Left
}

func (a Action) String() string {
	if !a.Valid() {
		return "INVALID"
	}
	return actionDescriptors[a]
}
