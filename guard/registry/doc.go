// Package registry stores the shared state read on every guard raise: the default
// message template per failure kind, the constructor per failure kind, and the
// single observer slot.
//
// A Registry is mutated only through its methods, which serialize on one lock,
// so registrations may race freely with raises.
package registry
