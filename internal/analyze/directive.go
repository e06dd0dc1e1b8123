package analyze

import (
	"go/ast"
	"go/token"
	"strings"
	"unicode"
)

// Directive marker spellings.
const (
	directiveMarker   = "//mirror:"
	ReflectDirective  = "reflect"
	ValueDirective    = "value"
	TypePathDirective = "typepath"
)

// directive is one `//mirror:<name> <args>` comment line attached to a type
// declaration.
type directive struct {
	name string
	args string

	// pos points at the directive marker, argsPos at the first argument byte.
	pos     token.Position
	argsPos token.Position
}

// directivesOf extracts mirror directives from the given comment groups, in
// source order. Non-directive comments are skipped.
func directivesOf(fset *token.FileSet, groups ...*ast.CommentGroup) []directive {
	var out []directive

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			text := c.Text
			if !strings.HasPrefix(text, directiveMarker) {
				continue
			}

			rest := text[len(directiveMarker):]

			nameLen := strings.IndexFunc(rest, unicode.IsSpace)
			if nameLen < 0 {
				nameLen = len(rest)
			}

			argsOff := len(directiveMarker) + nameLen
			for argsOff < len(text) && unicode.IsSpace(rune(text[argsOff])) {
				argsOff++
			}

			base := fset.Position(c.Slash)

			out = append(out, directive{
				name:    rest[:nameLen],
				args:    text[argsOff:],
				pos:     base,
				argsPos: shiftPos(base, argsOff),
			})
		}
	}

	return out
}

func shiftPos(base token.Position, off int) token.Position {
	pos := base
	pos.Column += off
	pos.Offset += off

	return pos
}
