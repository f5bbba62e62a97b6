package failure

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a category of precondition violation.
type Kind string

// Built-in kinds. The identifier values are stable and safe to use as metric labels.
const (
	RequiredNonNull  Kind = "required-non-null"
	MustBeNull       Kind = "must-be-null"
	OutOfRange       Kind = "out-of-range"
	AssertionFailed  Kind = "assertion-failed"
	NullOrEmpty      Kind = "null-or-empty"
	NullOrWhitespace Kind = "null-or-whitespace"
	MinMaxRange      Kind = "min-max-range"
	WrongType        Kind = "wrong-type"
)

// String returns the kind identifier.
func (k Kind) String() string {
	return string(k)
}

// Sentinel errors for the built-in kinds, matched by errors.Is against any *Failure of that kind.
var (
	ErrRequiredNonNull  = errors.New("value cannot be null")
	ErrMustBeNull       = errors.New("value must be null")
	ErrOutOfRange       = errors.New("value is out of range")
	ErrAssertionFailed  = errors.New("guarded expression evaluated to true")
	ErrNullOrEmpty      = errors.New("value cannot be null or empty")
	ErrNullOrWhitespace = errors.New("value cannot be null or whitespace")
	ErrMinMaxRange      = errors.New("value falls outside the minimum and maximum range")
	ErrWrongType        = errors.New("value is not of the expected type")
)

var sentinels = map[Kind]error{
	RequiredNonNull:  ErrRequiredNonNull,
	MustBeNull:       ErrMustBeNull,
	OutOfRange:       ErrOutOfRange,
	AssertionFailed:  ErrAssertionFailed,
	NullOrEmpty:      ErrNullOrEmpty,
	NullOrWhitespace: ErrNullOrWhitespace,
	MinMaxRange:      ErrMinMaxRange,
	WrongType:        ErrWrongType,
}

// Sentinel returns the sentinel error of a built-in kind, or nil for any other kind.
func Sentinel(kind Kind) error {
	return sentinels[kind]
}

// BuiltinKinds returns the built-in kinds in declaration order.
func BuiltinKinds() []Kind {
	return []Kind{
		RequiredNonNull,
		MustBeNull,
		OutOfRange,
		AssertionFailed,
		NullOrEmpty,
		NullOrWhitespace,
		MinMaxRange,
		WrongType,
	}
}

// Failure is the error produced when a guard chain trips.
//
// Exactly one of Message and Parameters is meaningful: Message holds the formatted
// template, Parameters holds the raw values when no template was available.
type Failure struct {
	Kind       Kind
	Message    string
	Parameters []any
	Cause      error
}

// Error returns the formatted message, or the kind followed by the raw parameters.
func (f *Failure) Error() string {
	if f == nil {
		return "guard failure"
	}

	if f.Message != "" {
		return f.Message
	}

	if len(f.Parameters) == 0 {
		return string(f.Kind)
	}

	parts := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		parts[i] = fmt.Sprint(p)
	}

	return string(f.Kind) + ": " + strings.Join(parts, ", ")
}

// Unwrap exposes the kind sentinel and the inner cause to errors.Is and errors.As.
func (f *Failure) Unwrap() []error {
	if f == nil {
		return nil
	}

	errs := make([]error, 0, 2)

	if sentinel := Sentinel(f.Kind); sentinel != nil {
		errs = append(errs, sentinel)
	}

	if f.Cause != nil {
		errs = append(errs, f.Cause)
	}

	return errs
}

// As returns the first *Failure in err's tree.
func As(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}

	return nil, false
}

// Constructor builds the error value for one kind.
// FromMessage serves raises with a resolved message, FromParameters serves raises
// where no template or custom message exists.
type Constructor struct {
	FromMessage    func(message string, cause error) error
	FromParameters func(parameters []any, cause error) error
}

// IsZero reports whether the constructor has no construction function at all.
func (c Constructor) IsZero() bool {
	return c.FromMessage == nil && c.FromParameters == nil
}

// For returns the standard constructor producing *Failure values of kind.
func For(kind Kind) Constructor {
	return Constructor{
		FromMessage: func(message string, cause error) error {
			return &Failure{Kind: kind, Message: message, Cause: cause}
		},
		FromParameters: func(parameters []any, cause error) error {
			return &Failure{Kind: kind, Parameters: parameters, Cause: cause}
		},
	}
}
