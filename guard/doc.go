// Package guard provides fluent precondition chains that raise typed failures.
//
// A chain runs predicate checks in order and records the first one that trips.
// Later checks are inert. Raise returns the failure of the recorded kind, with
// its message resolved from the kind's registered template or from WithMessage:
//
//	err := guard.AgainstNull(order, "order").
//	    And().AgainstNotInRange(qty, 1, 100, "quantity").
//	    Raise()
//	if errors.Is(err, failure.ErrOutOfRange) {
//	    // 'quantity' is out of range between 1 and 100
//	}
//
// Chains are plain values owned by the goroutine that started them. The
// package-level functions start chains on Default, a Guard configured from the
// environment on first use; New builds isolated guards with their own registry.
//
// Every raise can notify an Observer, increment guard_raised_total and add a
// guard.raised event to the span carried by the chain's context.
package guard
