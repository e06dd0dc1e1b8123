// Package gen renders the analyzed model into Go source.
//
// For every annotated type it emits an unexported adapter implementing the
// mirror interfaces, a type-path declaration, a populate-once type-info
// cell, a reconstruction function, and the init-time registration. One file
// is produced per package, next to the annotated source, assembled through a
// text/template skeleton and formatted with go/format.
package gen
