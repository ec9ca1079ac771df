/*
 * ruparse
 *
 * Copyright 2024 The ruparse Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package grammar is the plain data model for a ruparse grammar: nodes,
enumerators, rules, parameters and variable declarations, assembled
programmatically and then used read-only by the interpreter.
*/
package grammar

import "fmt"

/*
VariableKind is the type of value a declared variable can hold.
*/
type VariableKind int

const (
	VarNode VariableKind = iota
	VarNodeList
	VarBoolean
	VarNumber
)

func (k VariableKind) String() string {
	switch k {
	case VarNode:
		return "Node"
	case VarNodeList:
		return "NodeList"
	case VarBoolean:
		return "Boolean"
	case VarNumber:
		return "Number"
	}
	return fmt.Sprintf("VariableKind(%d)", int(k))
}

/*
VarDecl declares a variable name and the kind of value it holds. Used
both for a Node's local variables and for the grammar's globals.
*/
type VarDecl struct {
	Name string
	Kind VariableKind
}

/*
Node is the grammar-side description of a named production: its rule
tree, its declared local variables, and an optional documentation string
surfaced in diagnostics.
*/
type Node struct {
	Name string
	Rules []Rule
	Vars  []VarDecl
	Doc   string
}

/*
VarKind looks up the declared kind of a local variable by name. The
second return value is false if the variable was not declared on this
node.
*/
func (n *Node) VarKind(name string) (VariableKind, bool) {
	for _, v := range n.Vars {
		if v.Name == name {
			return v.Kind, true
		}
	}
	return 0, false
}

/*
Enumerator is a named, ordered list of MatchToken alternatives; the
first alternative that matches wins.
*/
type Enumerator struct {
	Name         string
	Alternatives []MatchToken
}

/*
Grammar is the frozen, read-only description of a parser's nodes,
enumerators and globals. Grammar is safe for concurrent use by multiple
interp.Parse calls once construction has finished; there is no
mutex because nothing mutates it after AddNode/AddEnum/AddGlobal calls
stop happening (matching spec's "grammar is read-only once constructed").
*/
type Grammar struct {
	nodes       map[string]*Node
	enums       map[string]*Enumerator
	globals     []VarDecl
	globalKind  map[string]VariableKind
	EOFRequired bool
}

/*
New creates an empty Grammar.
*/
func New() *Grammar {
	return &Grammar{
		nodes:      make(map[string]*Node),
		enums:      make(map[string]*Enumerator),
		globalKind: make(map[string]VariableKind),
	}
}

/*
AddNode registers a node under its name. Returns an error if a node with
that name is already registered.
*/
func (g *Grammar) AddNode(n Node) error {
	if _, ok := g.nodes[n.Name]; ok {
		return fmt.Errorf("grammar: node %q already registered", n.Name)
	}
	cp := n
	g.nodes[n.Name] = &cp
	return nil
}

/*
AddEnum registers an enumerator under its name. Returns an error if an
enumerator with that name is already registered.
*/
func (g *Grammar) AddEnum(e Enumerator) error {
	if _, ok := g.enums[e.Name]; ok {
		return fmt.Errorf("grammar: enumerator %q already registered", e.Name)
	}
	cp := e
	g.enums[e.Name] = &cp
	return nil
}

/*
AddGlobal declares a global variable. Returns an error if a global with
that name is already declared.
*/
func (g *Grammar) AddGlobal(name string, kind VariableKind) error {
	if _, ok := g.globalKind[name]; ok {
		return fmt.Errorf("grammar: global %q already declared", name)
	}
	g.globals = append(g.globals, VarDecl{Name: name, Kind: kind})
	g.globalKind[name] = kind
	return nil
}

/*
Node looks up a registered node by name.
*/
func (g *Grammar) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

/*
Enum looks up a registered enumerator by name.
*/
func (g *Grammar) Enum(name string) (*Enumerator, bool) {
	e, ok := g.enums[name]
	return e, ok
}

/*
Globals returns the declared globals in declaration order.
*/
func (g *Grammar) Globals() []VarDecl {
	return g.globals
}

/*
GlobalKind looks up the declared kind of a global variable by name.
*/
func (g *Grammar) GlobalKind(name string) (VariableKind, bool) {
	k, ok := g.globalKind[name]
	return k, ok
}

/*
NodeNames returns the names of every registered node. Used by the
validator and by tests; order is unspecified.
*/
func (g *Grammar) NodeNames() []string {
	out := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		out = append(out, name)
	}
	return out
}

/*
EnumNames returns the names of every registered enumerator. Used by the
validator; order is unspecified.
*/
func (g *Grammar) EnumNames() []string {
	out := make([]string, 0, len(g.enums))
	for name := range g.enums {
		out = append(out, name)
	}
	return out
}
