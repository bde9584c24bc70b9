package scanner

import (
	"fmt"
)

// Position is a line/column location within the source text. Both fields
// are 1-based. Only a line feed (U+000A) starts a new line; the line feed
// itself occupies the last column of the line it ends.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
