// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package syntax

// Predicate filters nodes during traversal. A nil Predicate accepts
// every node.
type Predicate func(*Node) bool

// FindNodeAtSpan descends from root looking for the first node, in
// document order, whose span matches the target exactly and which
// satisfies the predicate. Returns nil when no node matches.
//
// Sibling spans are strictly increasing, so once a child starts at or
// past the target's end no later sibling can match and the scan of the
// current level stops.
func FindNodeAtSpan(root *Node, span Span, pred Predicate) *Node {
	start := span.Start
	end := span.End()

	for _, child := range root.Children() {
		if end <= child.Start() {
			return nil
		}
		if start >= child.End() {
			continue
		}
		if start == child.Start() && end == child.End() {
			if pred == nil || pred(child) {
				return child
			}
		}
		if found := FindNodeAtSpan(child, span, pred); found != nil {
			return found
		}
	}

	return nil
}

// FindNodeAtPosition descends from root to the deepest node containing
// pos which satisfies the predicate. When a containing child has no
// acceptable descendant the child itself is the candidate. Returns nil
// when pos falls outside every child of root or nothing satisfies the
// predicate.
func FindNodeAtPosition(root *Node, pos int, pred Predicate) *Node {
	for _, child := range root.Children() {
		if child.Start() > pos {
			// children are ordered, nothing further can contain pos
			break
		}
		if pos >= child.End() {
			continue
		}
		if deeper := FindNodeAtPosition(child, pos, pred); deeper != nil {
			return deeper
		}
		if pred == nil || pred(child) {
			return child
		}
	}

	return nil
}

// GatherDescendants collects the maximal matching subtrees under root:
// a node satisfying pred is appended to dest and its children are NOT
// visited, so no collected node is a descendant of another. The root
// itself participates.
func GatherDescendants(root *Node, pred Predicate, dest *[]*Node) {
	if pred(root) {
		*dest = append(*dest, root)
		return
	}
	for _, child := range root.Children() {
		GatherDescendants(child, pred, dest)
	}
}

// FindIdentifier resolves node to the identifier naming it: the node
// itself when it is one, a function declaration's name, or otherwise
// the nearest enclosing identifier or named variable declaration.
// Returns nil when the walk reaches the root without a match.
func FindIdentifier(node *Node) *Node {
	if node == nil {
		return nil
	}
	if node.Kind() == KindIdentifier {
		return node
	}
	if node.Kind() == KindFunctionDeclaration {
		return node.Name()
	}

	for current := node; current != nil; current = current.Parent() {
		if current.Kind() == KindIdentifier {
			return current
		}
		if current.Kind() == KindVariableDeclaration {
			if name := current.Name(); name != nil {
				return name
			}
		}
	}

	return nil
}

// IsTopLevelExport reports whether node belongs to a declaration sitting
// directly in the source file's top-level statement list: a top-level
// variable statement, an identifier declared by a top-level variable
// statement, or an identifier naming a top-level function declaration.
func IsTopLevelExport(node *Node, file *Node) bool {
	if node == nil || file == nil {
		return false
	}

	switch node.Kind() {
	case KindVariableStatement:
		return isTopLevelStatement(node, file)
	case KindIdentifier:
		parent := node.Parent()
		if parent == nil {
			return false
		}
		switch parent.Kind() {
		case KindVariableDeclaration:
			// identifier -> declaration -> declaration list -> statement
			list := parent.Parent()
			if list == nil || list.Parent() == nil {
				return false
			}
			return isTopLevelStatement(list.Parent(), file)
		case KindFunctionDeclaration:
			return isTopLevelStatement(parent, file)
		}
	}

	return false
}

func isTopLevelStatement(stmt *Node, file *Node) bool {
	for _, s := range file.Statements() {
		if s == stmt {
			return true
		}
	}
	return false
}
