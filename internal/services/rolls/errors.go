package rolls

// RollError is a custom error type for roll-related errors
type RollError string

// Error implements the error interface
func (e RollError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        RollError = "config cannot be nil"
	ErrNilRoller        RollError = "dice roller cannot be nil"
	ErrNilClock         RollError = "clock cannot be nil"
	ErrNilUUIDGenerator RollError = "UUID generator cannot be nil"
	ErrNilInput         RollError = "input cannot be nil"
)
