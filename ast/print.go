package ast

import (
	"fmt"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	printLevel(n, 0)
}

func printLevel(n *Node, level int) {
	if n == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	switch n.Type() {

	case NodeTypeList:
		fmt.Printf("%s(%s)[%d]\n", indent, n.Type(), len(n.List()))
		list := n.List()
		for i := range list {
			printLevel(list[i], level+1)
		}

	default:
		fmt.Printf("%s(%s): %s\n", indent, n.Type(), n.Value())
	}
}

// Encode transforms a node into a textual representation that parses back
// to an equal tree. Atoms are reproduced verbatim; list children are
// separated by single spaces.
func Encode(n *Node) []byte {
	if n == nil {
		return nil
	}
	if n.Type() == NodeTypeList {
		parts := []string{}
		for _, child := range n.List() {
			parts = append(parts, string(Encode(child)))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(parts, " ")))
	}
	return []byte(n.Value())
}

// EncodeAll encodes a sequence of top-level nodes separated by single
// spaces.
func EncodeAll(nodes []*Node) []byte {
	parts := []string{}
	for _, n := range nodes {
		parts = append(parts, string(Encode(n)))
	}
	return []byte(strings.Join(parts, " "))
}
