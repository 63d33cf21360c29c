package effect

// EffectError is a custom error type for effect invocation errors
type EffectError string

// Error implements the error interface
func (e EffectError) Error() string {
	return string(e)
}

const (
	// ErrNoEffect is returned when Land is called on a place without a landing effect
	ErrNoEffect EffectError = "place has no effect"
	// ErrNoPersistentEffect is returned when Persist is called on a place without a persistent effect
	ErrNoPersistentEffect EffectError = "place has no persistent effect"
	// ErrUnknownEffect is returned for an effect kind the resolver cannot evaluate
	ErrUnknownEffect EffectError = "unknown effect kind"
)
