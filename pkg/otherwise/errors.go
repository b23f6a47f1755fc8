package otherwise

import "github.com/pkg/errors"

// Sentinel errors for caller-configuration mistakes. The matcher panics with
// these (wrapped with detail) instead of returning them: they describe a
// broken expression, not a failed match.
var (
	// ErrInvalidCondition indicates a func condition with an unsupported signature.
	ErrInvalidCondition = errors.New("invalid condition")
	// ErrInvalidType indicates a nil type descriptor.
	ErrInvalidType = errors.New("invalid type")
	// ErrNilFunc indicates a nil result, fallback or error-producer callback.
	ErrNilFunc = errors.New("nil callback")
	// ErrInvalidErrorSpec indicates an error spec that is neither a producer,
	// an error instance nor an error type.
	ErrInvalidErrorSpec = errors.New("invalid error spec")
	// ErrNotConstructible indicates an error type that has no usable zero value.
	ErrNotConstructible = errors.New("error type is not constructible")
)
