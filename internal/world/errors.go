package world

// BoardError is a custom error type for board construction errors
type BoardError string

// Error implements the error interface
func (e BoardError) Error() string {
	return string(e)
}

// ErrMalformedBoard wraps every board validation failure.
const ErrMalformedBoard BoardError = "malformed board"
