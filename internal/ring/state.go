package ring

// State enumerates what the ring is showing.
type State string

const (
	// Uninitialized is the state before Init.
	Uninitialized State = "uninitialized"
	// Idle shows the origin marker in red.
	Idle State = "idle"
	// Calibrating covers the chase and blink animations.
	Calibrating State = "calibrating"
	// Directed shows a single green LED.
	Directed State = "directed"
)
