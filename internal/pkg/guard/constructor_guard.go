// Package guard provides the constructor guard pattern used by domain objects
// to detect zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied and the object was not built through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embedding a guard
// in a struct lets Validate distinguish constructor-built instances from zero
// values, keeping domain invariants enforceable.
//
// Example:
//
//	type Tag struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTag(code string) (Tag, error) {
//	    if code == "" {
//	        return Tag{}, errors.New("code is required")
//	    }
//	    return Tag{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Tag) Validate() error {
//	    return t.guard.Validate(ErrTagIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as built
// through its constructor. Call it only from constructor functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructor-built objects. For zero values it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
