// Package diagnostic provides structured, position-pinned errors for the
// mirror generator.
//
// Key capabilities:
//   - Attribute grammar errors pinned to the offending token's source location
//   - Accumulated per-field/per-variant errors combined into one report
//   - Container-level conflict errors (duplicate registrations, mode clashes)
package diagnostic
