package ast

import (
	"errors"
	"fmt"
)

// NodeType represents the type of a syntax tree node
type NodeType uint8

// Node types
const (
	NodeTypeInvalid NodeType = iota
	NodeTypeAtom
	NodeTypeList
)

var nodeTypeNames = map[NodeType]string{
	NodeTypeInvalid: "invalid",
	NodeTypeAtom:    "atom",
	NodeTypeList:    "list",
}

func (nt NodeType) String() string {
	if v, ok := nodeTypeNames[nt]; ok {
		return v
	}
	return nodeTypeNames[NodeTypeInvalid]
}

var errPushOnAtom = errors.New("nodes of type atom can't accept children")

// Node is a syntactic object: either an atom carrying the verbatim source
// text of a word or quoted string, or a list of child objects.
type Node struct {
	nt       NodeType
	value    string
	children []*Node
}

// NewAtom creates and returns a node of type "atom". The value is the text
// of the atom exactly as it appeared in the source, surrounding quotes
// included when the atom was a quoted string.
func NewAtom(value string) *Node {
	return &Node{
		nt:    NodeTypeAtom,
		value: value,
	}
}

// NewList creates and returns a node of type "list" holding the given
// children in order.
func NewList(children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{
		nt:       NodeTypeList,
		children: children,
	}
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// IsAtom returns true if the node is of type atom
func (n *Node) IsAtom() bool {
	return n.nt == NodeTypeAtom
}

// IsList returns true if the node is of type list
func (n *Node) IsList() bool {
	return n.nt == NodeTypeList
}

// Value returns the verbatim text of an atom node; it is empty for lists.
func (n *Node) Value() string {
	return n.value
}

// List returns all the children elements of a list node
func (n *Node) List() []*Node {
	return n.children
}

// Push appends a child node to a node of type "list".
func (n *Node) Push(node *Node) error {
	if n.nt != NodeTypeList {
		return errPushOnAtom
	}
	n.children = append(n.children, node)
	return nil
}

// Equal reports whether two trees are structurally equal: same shape and
// the same atom text at every leaf.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.nt != other.nt {
		return false
	}
	if n.nt == NodeTypeAtom {
		return n.value == other.value
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	if n.nt == NodeTypeList {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
	}
	return fmt.Sprintf("(%v): %s", n.nt, n.value)
}
