package parser

import (
	"fmt"

	"github.com/megahomyak/lisp-parser/scanner"
)

// ErrorKind enumerates the structural faults a parse can report
type ErrorKind uint8

// List of parse error kinds
const (
	ErrInvalid                      ErrorKind = iota
	ErrUnclosedQuote                          // end of input inside a quoted atom
	ErrUnclosedParenthesis                    // end of input inside a list body
	ErrUnexpectedClosingParenthesis           // ")" with no list open
)

var errorKindMessages = map[ErrorKind]string{
	ErrInvalid:                      "invalid",
	ErrUnclosedQuote:                "unclosed quote",
	ErrUnclosedParenthesis:          "unclosed parenthesis",
	ErrUnexpectedClosingParenthesis: "unexpected closing parenthesis",
}

func (k ErrorKind) String() string {
	if v, ok := errorKindMessages[k]; ok {
		return v
	}
	return errorKindMessages[ErrInvalid]
}

// Error is a parse failure. Pos is the position of the construct that
// caused the fault: the opening quote or parenthesis for the unclosed
// kinds, the offending ")" itself for the unexpected-closing kind.
type Error struct {
	Kind ErrorKind
	Pos  scanner.Position
}

func newError(kind ErrorKind, pos scanner.Position) *Error {
	return &Error{
		Kind: kind,
		Pos:  pos,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at line %d, column %d", e.Kind, e.Pos.Line, e.Pos.Column)
}
