package state

// SessionState is the lifecycle state of one level attempt
type SessionState int

const (
	StateLoading SessionState = iota
	StateRunning
	StatePassed
	StateFailed
	StateQuit
)

// String returns the string representation of the session state
func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateRunning:
		return "Running"
	case StatePassed:
		return "Passed"
	case StateFailed:
		return "Failed"
	case StateQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the state ends the attempt
func (s SessionState) Terminal() bool {
	return s == StatePassed || s == StateFailed || s == StateQuit
}

// Outcome is the result of a single session tick
type Outcome int

const (
	Continue Outcome = iota
	Passed
	Failed
	Quit
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "Continue"
	case Passed:
		return "Passed"
	case Failed:
		return "Failed"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// State returns the session state an outcome leads to
func (o Outcome) State() SessionState {
	switch o {
	case Passed:
		return StatePassed
	case Failed:
		return StateFailed
	case Quit:
		return StateQuit
	default:
		return StateRunning
	}
}

// Outcome returns the tick outcome reported while in state s
func (s SessionState) Outcome() Outcome {
	switch s {
	case StatePassed:
		return Passed
	case StateFailed:
		return Failed
	case StateQuit:
		return Quit
	default:
		return Continue
	}
}
