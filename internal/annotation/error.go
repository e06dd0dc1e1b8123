package annotation

import (
	"fmt"
	"go/token"
)

// Error is a parse or merge error pinned to a source position.
type Error struct {
	Pos token.Position
	Msg string
}

// Errorf creates a new Error at the given position.
func Errorf(pos token.Position, format string, args ...any) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Msg
	}

	return e.Msg
}
