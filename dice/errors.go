package dice

// Error is a custom error type for dice-related errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidRange       Error = "die range is invalid: high must be at least low"
	ErrNegativeCount      Error = "die count cannot be negative"
	ErrUnsupportedOperand Error = "operand must be an int, Die, or Pool"
)
