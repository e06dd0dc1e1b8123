// Package annotation parses the mirror directive grammar attached to type
// declarations and models the set of behaviors registered for a type.
//
// A container annotation applies to an entire declaration, as opposed to a
// particular field or variant. The primary form is:
//
//	//mirror:reflect PartialEq, Hash(myHashFn), Serialize
//
// with the alternate //mirror:value form selecting value mode. Attribute
// sets built from separate occurrences on the same declaration are merged
// left to right in source order; conflicting registrations are hard errors
// pinned to the second occurrence.
package annotation
