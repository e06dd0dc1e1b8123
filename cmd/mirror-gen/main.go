// Package main provides the CLI entrypoint for mirror-gen.
//
// mirror-gen is a Go codegen tool that:
//   - Parses Go packages (AST + go/types) for //mirror: directive comments
//   - Maps annotated declarations onto reflectable shapes
//   - Generates reflection adapters and reconstruction functions
//   - Registers capabilities with the mirror runtime at init time
package main

import (
	"mirror-generator/internal/cli"
)

func main() {
	cli.Execute()
}
