// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree implements the insertion-mode selector and a minimal
// tree-construction dispatcher that consumes the token stream
// produced by package tokenizer.
//
// Full tree-construction — the per-insertion-mode rules that decide
// how every token mutates the DOM — is an external collaborator; this
// package owns only the open-element stack, the insertion-mode state
// machine that selects among those rules, and enough bookkeeping
// (element push/pop, special-category checks) to keep the stack
// accurate for the "reset the insertion mode appropriately" algorithm.
package tree

import "golang.org/x/net/html/atom"

// Node is the open-element stack's element descriptor. It carries
// just enough identity to drive the insertion-mode
// selector and dispatcher: a DOM implementation would embed or wrap
// this with its own node representation.
type Node struct {
	// DataAtom is the resolved atom for known HTML element names
	// (golang.org/x/net/html/atom), used for O(1) predicate checks.
	// It is zero for names the atom table doesn't know (custom
	// elements, foreign-content elements named by Data alone).
	DataAtom atom.Atom
	// Data is the element's tag name, always lowercase.
	Data string
	// Namespace is "" for HTML, or "math"/"svg" for foreign content.
	// The selector and void/special-category checks only apply in the
	// empty (HTML) namespace, matching the Standard's "html element
	// named X" phrasing throughout §4.E.
	Namespace string
}

// NewNode builds a Node for an HTML start tag name, resolving it
// against the known-tag atom table when possible.
func NewNode(name string) *Node {
	a := atom.Lookup([]byte(name))
	if a == 0 {
		return &Node{Data: name}
	}
	return &Node{DataAtom: a, Data: a.String()}
}

func (n *Node) is(a atom.Atom) bool {
	return n != nil && n.Namespace == "" && n.DataAtom == a
}

func (n *Node) IsSelect() bool       { return n.is(atom.Select) }
func (n *Node) IsTD() bool           { return n.is(atom.Td) }
func (n *Node) IsTH() bool           { return n.is(atom.Th) }
func (n *Node) IsTR() bool           { return n.is(atom.Tr) }
func (n *Node) IsCaption() bool      { return n.is(atom.Caption) }
func (n *Node) IsColgroup() bool     { return n.is(atom.Colgroup) }
func (n *Node) IsTable() bool        { return n.is(atom.Table) }
func (n *Node) IsTemplate() bool     { return n.is(atom.Template) }
func (n *Node) IsHead() bool         { return n.is(atom.Head) }
func (n *Node) IsBody() bool         { return n.is(atom.Body) }
func (n *Node) IsFrameset() bool     { return n.is(atom.Frameset) }
func (n *Node) IsHTML() bool         { return n.is(atom.Html) }
func (n *Node) IsCell() bool         { return n.IsTD() || n.IsTH() }

// IsTableSection reports whether n is a tbody, thead or tfoot element.
func (n *Node) IsTableSection() bool {
	return n.is(atom.Tbody) || n.is(atom.Thead) || n.is(atom.Tfoot)
}

// nodeStack is an ordered sequence of open elements, bottom at index 0.
// Named and shaped after golang.org/x/net/html's own nodeStack helper,
// adapted from *html.Node to this package's Node.
type nodeStack []*Node

func (s *nodeStack) push(n *Node) { *s = append(*s, n) }

func (s *nodeStack) pop() *Node {
	i := len(*s) - 1
	n := (*s)[i]
	*s = (*s)[:i]
	return n
}

func (s *nodeStack) top() *Node {
	if i := len(*s); i > 0 {
		return (*s)[i-1]
	}
	return nil
}
