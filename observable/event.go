package observable

// Event is the payload delivered to listeners. The set of events is closed:
// only the types in this package implement it.
type Event interface {
	event()
}

// Axis identifies which coordinate a PositionChanged event refers to.
type Axis int

// List of valid Axis values.
const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return "unknown axis"
}

// PositionChanged is published by positional models after SetX or SetY.
type PositionChanged struct {
	Axis  Axis
	Value int
}

// StateChanged is published by the play state model after SetState.
type StateChanged struct {
	Running bool
}

func (PositionChanged) event() {}
func (StateChanged) event()    {}
