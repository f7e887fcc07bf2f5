// Package guard provides a defensive construction check for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect whether the struct was produced by its designated
// constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its
// constructor function. The zero value fails validation, which prevents
// accidental use of directly instantiated structs that skipped invariant
// checks.
//
// Example usage:
//
//	type TrackingCode struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTrackingCode(value string) (TrackingCode, error) {
//	    if value == "" {
//	        return TrackingCode{}, errors.New("value is required")
//	    }
//	    return TrackingCode{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c TrackingCode) Validate() error {
//	    return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly
// constructed. Call this in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built through its
// constructor. For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
