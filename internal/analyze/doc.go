// Package analyze turns annotated Go source into the generator's input
// model.
//
// It loads packages through golang.org/x/tools/go/packages, scans type
// declarations for mirror directives, classifies each annotated type into
// its reflectable shape, and parses container attributes and field tags into
// a PackageModel the emitters consume. All problems are accumulated as
// diagnostics so a run reports every offending declaration at once.
package analyze
