package annotation

import (
	"go/token"
)

// Attribute keyword spellings.
const (
	FromReflectAttr      = "from_reflect"
	TypePathAttr         = "type_path"
	NoFieldBoundsAttr    = "no_field_bounds"
	WhereAttr            = "where"
	ContainerDefaultAttr = "container_default"
)

// MirrorIdentPrefix is prepended to registered marker identifiers to form
// the capability name, e.g. `Serialize` registers `MirrorSerialize`.
const MirrorIdentPrefix = "Mirror"

// BoolValue is a boolean literal together with the position it was parsed at.
type BoolValue struct {
	Value bool
	Pos   token.Position
}

// FuncPath is a function path together with the position it was parsed at.
type FuncPath struct {
	Path string
	Pos  token.Position
}

// Ident is a registered marker identifier (already prefixed) and its position.
type Ident struct {
	Name string
	Pos  token.Position
}

// FromReflectAttrs collects attributes controlling the reconstruction derive.
type FromReflectAttrs struct {
	autoDerive *BoolValue
	// ContainerDefault selects the default-then-overlay reconstruction
	// strategy. Path may be empty, meaning the intrinsic default.
	ContainerDefault *FuncPath
}

// ShouldAutoDerive returns true if the reconstruction implementation should
// be generated as part of the mirror derive. Defaults to true when unset.
func (f *FromReflectAttrs) ShouldAutoDerive() bool {
	if f.autoDerive == nil {
		return true
	}

	return f.autoDerive.Value
}

// Merge combines this FromReflectAttrs with another.
func (f *FromReflectAttrs) Merge(other FromReflectAttrs) *Error {
	if new := other.autoDerive; new != nil {
		if existing := f.autoDerive; existing != nil {
			if existing.Value != new.Value {
				return Errorf(new.Pos, "`%s` already set to %v", FromReflectAttr, existing.Value)
			}
		} else {
			f.autoDerive = new
		}
	}

	if other.ContainerDefault != nil {
		return f.insertContainerDefault(*other.ContainerDefault)
	}

	return nil
}

func (f *FromReflectAttrs) insertContainerDefault(containerDefault FuncPath) *Error {
	if old := f.ContainerDefault; old != nil {
		return Errorf(old.Pos, "`%s` already set", ContainerDefaultAttr)
	}

	f.ContainerDefault = &containerDefault

	return nil
}

// TypePathAttrs collects attributes controlling the type identity derive.
type TypePathAttrs struct {
	autoDerive *BoolValue
}

// ShouldAutoDerive returns true if the type identity implementation should
// be generated as part of the mirror derive. Defaults to true when unset.
func (t *TypePathAttrs) ShouldAutoDerive() bool {
	if t.autoDerive == nil {
		return true
	}

	return t.autoDerive.Value
}

// Merge combines this TypePathAttrs with another.
func (t *TypePathAttrs) Merge(other TypePathAttrs) *Error {
	if new := other.autoDerive; new != nil {
		if existing := t.autoDerive; existing != nil {
			if existing.Value != new.Value {
				return Errorf(new.Pos, "`%s` already set to %v", TypePathAttr, existing.Value)
			}
		} else {
			t.autoDerive = new
		}
	}

	return nil
}

// ContainerAttributes is the collection of behaviors registered for one
// declaration.
//
// It tracks the three special traits that are wired directly into generated
// method bodies (Debug, Hash, PartialEq), the from_reflect and type_path
// toggles, an optional custom where clause, the no_field_bounds flag, and
// every registered marker identifier. Attribute sets are accumulated across
// all mirror directive occurrences on one declaration via Merge and are
// immutable once the analyzer hands them to the generators.
type ContainerAttributes struct {
	debug       TraitImpl
	hash        TraitImpl
	partialEq   TraitImpl
	fromReflect FromReflectAttrs
	typePath    TypePathAttrs
	// customWhere holds `Param: Constraint` predicates applied to generated
	// generic helpers in place of the inferred field bounds.
	customWhere   []string
	noFieldBounds bool
	idents        []Ident
}

// Idents returns the registered marker identifiers in registration order,
// already carrying the Mirror prefix.
func (c *ContainerAttributes) Idents() []Ident {
	return c.idents
}

// HasIdent reports whether the given marker (with prefix) was registered.
func (c *ContainerAttributes) HasIdent(name string) bool {
	for _, id := range c.idents {
		if id.Name == name {
			return true
		}
	}

	return false
}

// FromReflect returns the reconstruction configuration.
func (c *ContainerAttributes) FromReflect() *FromReflectAttrs {
	return &c.fromReflect
}

// TypePath returns the type identity configuration.
func (c *ContainerAttributes) TypePath() *TypePathAttrs {
	return &c.typePath
}

// GetDebugImpl returns the Debug registration slot.
func (c *ContainerAttributes) GetDebugImpl() TraitImpl { return c.debug }

// GetHashImpl returns the Hash registration slot.
func (c *ContainerAttributes) GetHashImpl() TraitImpl { return c.hash }

// GetPartialEqImpl returns the PartialEq registration slot.
func (c *ContainerAttributes) GetPartialEqImpl() TraitImpl { return c.partialEq }

// CustomWhere returns the custom where-clause predicates, if any.
func (c *ContainerAttributes) CustomWhere() []string { return c.customWhere }

// NoFieldBounds returns true if the no_field_bounds attribute was found.
func (c *ContainerAttributes) NoFieldBounds() bool { return c.noFieldBounds }

// Merge combines the registrations of this ContainerAttributes with another
// one built from a later directive occurrence on the same declaration.
//
// An error is returned if the two have conflicting registrations.
func (c *ContainerAttributes) Merge(other *ContainerAttributes) *Error {
	if err := c.debug.Merge(other.debug); err != nil {
		return err
	}

	if err := c.hash.Merge(other.hash); err != nil {
		return err
	}

	if err := c.partialEq.Merge(other.partialEq); err != nil {
		return err
	}

	if err := c.fromReflect.Merge(other.fromReflect); err != nil {
		return err
	}

	if err := c.typePath.Merge(other.typePath); err != nil {
		return err
	}

	// Predicate lists union by concatenation.
	c.customWhere = append(c.customWhere, other.customWhere...)

	c.noFieldBounds = c.noFieldBounds || other.noFieldBounds

	for _, ident := range other.idents {
		if err := addUniqueIdent(&c.idents, ident); err != nil {
			return err
		}
	}

	return nil
}

// addUniqueIdent adds an identifier to the list if it is not already present.
//
// Returns an error if the identifier already exists in the list. Matching is
// by exact string identity.
func addUniqueIdent(idents *[]Ident, ident Ident) *Error {
	for _, existing := range *idents {
		if existing.Name == ident.Name {
			return Errorf(ident.Pos, "%s", ConflictingTypeDataMessage)
		}
	}

	*idents = append(*idents, ident)

	return nil
}
