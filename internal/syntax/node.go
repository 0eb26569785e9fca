// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

// Package syntax models the slice of the compiler's syntax tree surface
// the plugin relies on and provides traversal helpers over it.
//
// Trees are expected to come out of the compiler's parser, which
// guarantees that the children of any node are ordered by strictly
// increasing, non-overlapping spans. The traversal helpers prune based
// on that ordering and misbehave on trees violating it.
package syntax

// Kind discriminates the node shapes the plugin cares about. Anything
// else the compiler produces is carried as KindOther.
type Kind int

const (
	KindOther Kind = iota
	KindSourceFile
	KindVariableStatement
	KindVariableDeclarationList
	KindVariableDeclaration
	KindFunctionDeclaration
	KindIdentifier
	KindCallExpression
	KindPropertyAccess
	KindStringLiteral
	KindBlock
)

var kindNames = map[Kind]string{
	KindOther:                   "Other",
	KindSourceFile:              "SourceFile",
	KindVariableStatement:       "VariableStatement",
	KindVariableDeclarationList: "VariableDeclarationList",
	KindVariableDeclaration:     "VariableDeclaration",
	KindFunctionDeclaration:     "FunctionDeclaration",
	KindIdentifier:              "Identifier",
	KindCallExpression:          "CallExpression",
	KindPropertyAccess:          "PropertyAccess",
	KindStringLiteral:           "StringLiteral",
	KindBlock:                   "Block",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Other"
}

// Node is one node of the compiler-produced tree. Nodes carry parent
// links so helpers can walk in both directions.
type Node struct {
	kind     Kind
	span     Span
	text     string
	parent   *Node
	children []*Node
}

// NewNode builds a node of the given kind covering span, adopting
// children in the order given. Children gain a parent link to the new
// node; they are expected to already be span-ordered.
func NewNode(kind Kind, span Span, children ...*Node) *Node {
	n := &Node{
		kind:     kind,
		span:     span,
		children: children,
	}
	for _, child := range children {
		child.parent = n
	}
	return n
}

// NewIdentifier builds an identifier node holding its source text.
func NewIdentifier(span Span, text string) *Node {
	return &Node{
		kind: KindIdentifier,
		span: span,
		text: text,
	}
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) Span() Span {
	return n.span
}

func (n *Node) Start() int {
	return n.span.Start
}

func (n *Node) End() int {
	return n.span.End()
}

// Text returns the identifier text; empty for non-identifier nodes.
func (n *Node) Text() string {
	return n.text
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return n.children
}

// Name returns the declared name of a declaration-like node, i.e. its
// first identifier child, or nil.
func (n *Node) Name() *Node {
	for _, child := range n.children {
		if child.kind == KindIdentifier {
			return child
		}
	}
	return nil
}

// Statements returns the top-level statement list of a source file
// node; nil for any other kind.
func (n *Node) Statements() []*Node {
	if n.kind != KindSourceFile {
		return nil
	}
	return n.children
}

// ContainsPosition reports whether pos falls into the node's span.
func (n *Node) ContainsPosition(pos int) bool {
	return pos >= n.span.Start && pos < n.span.End()
}
