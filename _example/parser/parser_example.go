package main

import (
	"log"

	"github.com/megahomyak/lisp-parser/ast"
	"github.com/megahomyak/lisp-parser/parser"
)

func main() {
	input := `(greet "Hello world!" (to you 😊))`

	nodes, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, node := range nodes {
		ast.Print(node)
	}
}
