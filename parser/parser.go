package parser

import (
	"unicode"

	"github.com/megahomyak/lisp-parser/ast"
	"github.com/megahomyak/lisp-parser/scanner"
)

// Parser reads a program left to right, once, and builds its syntax tree.
// The grammar needs a single character of look-ahead, realized through the
// scanner's Peek.
type Parser struct {
	s *scanner.Scanner
}

// New creates a Parser over the given program text.
func New(program string) *Parser {
	return &Parser{
		s: scanner.New(program),
	}
}

// Parse consumes the whole program and returns its top-level objects in
// order, or the first error encountered in the left-to-right scan. On
// error no partial tree is returned.
func (p *Parser) Parse() ([]*ast.Node, error) {
	nodes := []*ast.Node{}
	for {
		p.skipWhitespace()

		index, r, ok := p.s.Next()
		if !ok {
			return nodes, nil
		}
		if r == ')' {
			return nil, newError(ErrUnexpectedClosingParenthesis, p.s.Pos())
		}

		node, err := p.parseObject(index, r)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

// parseObject dispatches on the first character of an object, which the
// caller has already consumed; index is its byte offset. A ")" never
// reaches this point.
func (p *Parser) parseObject(index int, r rune) (*ast.Node, error) {
	switch r {
	case '(':
		return p.parseList()
	case '"':
		return p.parseQuoted(index)
	default:
		return p.parseWord(index), nil
	}
}

// parseList is entered with the opening "(" already consumed. A ")" at an
// object boundary inside the body is this list's terminator; reaching end
// of input first is reported against the opening parenthesis.
func (p *Parser) parseList() (*ast.Node, error) {
	opening := p.s.Pos()
	list := ast.NewList()
	for {
		p.skipWhitespace()

		index, r, ok := p.s.Next()
		if !ok {
			return nil, newError(ErrUnclosedParenthesis, opening)
		}
		if r == ')' {
			return list, nil
		}

		child, err := p.parseObject(index, r)
		if err != nil {
			return nil, err
		}
		if err := list.Push(child); err != nil {
			return nil, err
		}
	}
}

// parseQuoted is entered with the opening quote already consumed at byte
// offset openingIndex. Every character up to the closing quote is literal,
// newlines and parentheses included; the produced atom keeps both quotes.
func (p *Parser) parseQuoted(openingIndex int) (*ast.Node, error) {
	opening := p.s.Pos()
	for {
		index, r, ok := p.s.Next()
		if !ok {
			return nil, newError(ErrUnclosedQuote, opening)
		}
		if r == '"' {
			return ast.NewAtom(p.s.Slice(openingIndex, index)), nil
		}
	}
}

// parseWord is entered with the first character already consumed at byte
// offset startIndex. The word is the maximal run of non-delimiter
// characters from there; the terminating character is left unconsumed for
// the next dispatch.
func (p *Parser) parseWord(startIndex int) *ast.Node {
	lastIndex := startIndex
	for {
		r, ok := p.s.Peek()
		if !ok || isDelimiter(r) {
			return ast.NewAtom(p.s.Slice(startIndex, lastIndex))
		}
		lastIndex, _, _ = p.s.Next()
	}
}

func (p *Parser) skipWhitespace() {
	for {
		r, ok := p.s.Peek()
		if !ok || !isWhitespace(r) {
			return
		}
		p.s.Next()
	}
}

// isWhitespace classifies object separators: any Unicode white space as
// reported by unicode.IsSpace, which covers space, tab, line feed,
// carriage return and form feed.
func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// isDelimiter reports whether r ends a word.
func isDelimiter(r rune) bool {
	return isWhitespace(r) || r == '(' || r == ')' || r == '"'
}

// Parse parses a complete program and returns its top-level objects, or
// the first parse error together with the source position of the construct
// that caused it.
func Parse(program string) ([]*ast.Node, error) {
	return New(program).Parse()
}
