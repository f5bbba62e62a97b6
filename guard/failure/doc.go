// Package failure defines the failure-kind catalog used by guard chains.
//
// A Kind names a category of precondition violation. Each kind is paired with a
// Constructor that builds its error value, either from a formatted message or,
// when no message is available, from the raw message parameters. The built-in
// kinds all construct *Failure values and carry sentinel errors:
//
//	if errors.Is(err, failure.ErrRequiredNonNull) {
//	    // a required value was nil
//	}
//
// ParameterCountError is the configuration failure returned instead of a domain
// failure when a message's placeholders do not match its parameters.
package failure
