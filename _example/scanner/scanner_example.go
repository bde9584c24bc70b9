package main

import (
	"fmt"

	"github.com/megahomyak/lisp-parser/scanner"
)

func main() {
	input := "(a b\n c)"

	s := scanner.New(input)
	for {
		index, r, ok := s.Next()
		if !ok {
			break
		}
		fmt.Printf("offset %2d, position %v\n\t-> %q\n", index, s.Pos(), r)
	}
}
