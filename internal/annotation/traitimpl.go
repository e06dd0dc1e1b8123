package annotation

import "go/token"

// The special trait names that are understood internally by the generator.
// Received via attributes like `//mirror:reflect PartialEq, Hash`.
const (
	DebugAttr     = "Debug"
	PartialEqAttr = "PartialEq"
	HashAttr      = "Hash"
)

// ConflictingTypeDataMessage is the error shown when a trait or marker is
// registered multiple times on one declaration.
const ConflictingTypeDataMessage = "conflicting type data registration"

// TraitImplKind discriminates the three states a special trait slot can be in.
type TraitImplKind int

const (
	// NotImplemented means the trait is not registered. It is the zero value
	// and absorbs into anything on merge.
	NotImplemented TraitImplKind = iota
	// Implemented means the trait is registered with its default body.
	Implemented
	// Custom means the trait is registered with a user-supplied function.
	Custom
)

// TraitImpl is the tri-state registration slot for one special trait.
type TraitImpl struct {
	Kind TraitImplKind
	// Func is the function path for Custom registrations.
	Func string
	// Pos is where the registration appeared.
	Pos token.Position
}

// Merge combines this TraitImpl with another.
//
// Updates the receiver with whichever value is not NotImplemented. If other
// is NotImplemented the receiver is left alone. An error is returned if
// neither side is NotImplemented.
func (t *TraitImpl) Merge(other TraitImpl) *Error {
	if t.Kind == NotImplemented {
		*t = other
		return nil
	}

	if other.Kind == NotImplemented {
		return nil
	}

	return Errorf(other.Pos, "%s", ConflictingTypeDataMessage)
}
