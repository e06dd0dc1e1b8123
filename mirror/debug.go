package mirror

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var debugConf = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DebugString renders a value for diagnostics. It is the default body of
// generated DebugString methods; types that registered a custom debug
// function bypass it.
func DebugString(v any) string {
	return strings.TrimSuffix(debugConf.Sdump(v), "\n")
}
