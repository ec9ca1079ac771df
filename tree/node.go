/*
 * ruparse
 *
 * Copyright 2024 The ruparse Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tree

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/rgrammar/ruparse/grammar"
	"github.com/rgrammar/ruparse/token"
)

/*
Node is the result-side parse tree element: a named node carrying typed
variables and the byte span of source text it consumed. Children are
reached only through named variables (a Node-kind or NodeList-kind
variable), never through a generic child slice, so a node's structure is
entirely described by its declared variables.

Token is non-nil only for leaf nodes synthesized from a Token/Word/Any
match, since a token-level match still produces a Node; it is nil for
nodes produced by recursively parsing a node reference.
*/
type Node struct {
	Name     string
	Token    *token.Token
	Vars     map[string]Value
	First    int // inclusive byte offset of the first byte this node consumed
	Last     int // exclusive byte offset one past the last byte this node consumed
	Commit   bool
	Doc      string
	Location token.TextLocation
}

/*
NewNode allocates a result node with its variables initialized to the
zero value appropriate to each declared kind.
*/
func NewNode(name string, decls []grammar.VarDecl) *Node {
	n := &Node{Name: name, Vars: make(map[string]Value, len(decls))}
	for _, d := range decls {
		n.Vars[d.Name] = zeroValue(d.Kind)
	}
	return n
}

/*
NewLeaf builds a leaf node wrapping a single matched token; it carries
no variables of its own.
*/
func NewLeaf(name string, t token.Token) *Node {
	return &Node{Name: name, Token: &t, Vars: map[string]Value{}, First: t.Index, Last: t.End(), Location: t.Location}
}

/*
Text returns the slice of source text this node's span covers.
*/
func (n *Node) Text(source string) string {
	return source[n.First:n.Last]
}

/*
Get returns the current value of a variable by name. The second return
value is false if the variable is not declared on this node.
*/
func (n *Node) Get(name string) (Value, bool) {
	v, ok := n.Vars[name]
	return v, ok
}

/*
Set assigns the value of a declared variable.
*/
func (n *Node) Set(name string, v Value) {
	n.Vars[name] = v
}

/*
Equals checks if this node equals another node, used by tests. Returns
also a message describing the first difference found.
*/
func (n *Node) Equals(other *Node) (bool, string) {
	if n.Name != other.Name {
		return false, fmt.Sprintf("Name differs: %q vs %q", n.Name, other.Name)
	}
	if n.First != other.First || n.Last != other.Last {
		return false, fmt.Sprintf("%s: span differs: [%d,%d) vs [%d,%d)", n.Name, n.First, n.Last, other.First, other.Last)
	}
	if n.Commit != other.Commit {
		return false, fmt.Sprintf("%s: commit differs: %v vs %v", n.Name, n.Commit, other.Commit)
	}
	if len(n.Vars) != len(other.Vars) {
		return false, fmt.Sprintf("%s: variable count differs: %d vs %d", n.Name, len(n.Vars), len(other.Vars))
	}

	names := make([]string, 0, len(n.Vars))
	for k := range n.Vars {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		a := n.Vars[k]
		b, ok2 := other.Vars[k]
		if !ok2 {
			return false, fmt.Sprintf("%s: variable %q missing on other node", n.Name, k)
		}
		if ok, msg := a.equalsPath(fmt.Sprintf("%s.%s", n.Name, k), b); !ok {
			return false, msg
		}
	}

	return true, ""
}

func (v Value) equalsPath(path string, other Value) (bool, string) {
	if v.Kind != other.Kind {
		return false, fmt.Sprintf("%s: kind differs: %v vs %v", path, v.Kind, other.Kind)
	}
	switch v.Kind {
	case ValBoolean:
		if v.Bool != other.Bool {
			return false, fmt.Sprintf("%s: bool differs: %v vs %v", path, v.Bool, other.Bool)
		}
	case ValNumber:
		if v.Num != other.Num {
			return false, fmt.Sprintf("%s: number differs: %v vs %v", path, v.Num, other.Num)
		}
	case ValNode:
		if (v.Node == nil) != (other.Node == nil) {
			return false, fmt.Sprintf("%s: node presence differs: %v vs %v", path, v.Node != nil, other.Node != nil)
		}
		if v.Node != nil {
			return v.Node.Equals(other.Node)
		}
	case ValNodeList:
		if len(v.NodeList) != len(other.NodeList) {
			return false, fmt.Sprintf("%s: node list length differs: %d vs %d", path, len(v.NodeList), len(other.NodeList))
		}
		for i := range v.NodeList {
			if ok, msg := v.NodeList[i].Equals(other.NodeList[i]); !ok {
				return false, msg
			}
		}
	}
	return true, ""
}

/*
String returns an indented tree representation of this node, used for
debugging.
*/
func (n *Node) String() string {
	var buf bytes.Buffer
	n.levelString(0, &buf)
	return buf.String()
}

func (n *Node) levelString(indent int, buf *bytes.Buffer) {
	for i := 0; i < indent; i++ {
		buf.WriteString("  ")
	}
	buf.WriteString(n.Name)
	if n.Token != nil {
		fmt.Fprintf(buf, " %q", n.Token.String())
	}
	buf.WriteString("\n")

	names := make([]string, 0, len(n.Vars))
	for k := range n.Vars {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		v := n.Vars[k]
		switch v.Kind {
		case ValNode:
			if v.Node != nil {
				for i := 0; i < indent+1; i++ {
					buf.WriteString("  ")
				}
				fmt.Fprintf(buf, "%s:\n", k)
				v.Node.levelString(indent+2, buf)
			}
		case ValNodeList:
			for i := 0; i < indent+1; i++ {
				buf.WriteString("  ")
			}
			fmt.Fprintf(buf, "%s: [%d]\n", k, len(v.NodeList))
			for _, child := range v.NodeList {
				child.levelString(indent+2, buf)
			}
		default:
			for i := 0; i < indent+1; i++ {
				buf.WriteString("  ")
			}
			fmt.Fprintf(buf, "%s: %s\n", k, v.String())
		}
	}
}
