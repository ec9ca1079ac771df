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
Package tree holds the result side of a parse: the typed variable store
(tree.Value) and the tree of named parse nodes (tree.Node) the rule
interpreter builds while walking a grammar.
*/
package tree

import (
	"fmt"
	"math"

	"github.com/rgrammar/ruparse/grammar"
)

/*
ValueKind mirrors grammar.VariableKind on the result side.
*/
type ValueKind int

const (
	ValNode ValueKind = iota
	ValNodeList
	ValBoolean
	ValNumber
)

/*
Value is a tagged union over a single optional child node, an ordered
list of child nodes, a boolean, or a signed 32-bit number.
*/
type Value struct {
	Kind     ValueKind
	Node     *Node
	NodeList []*Node
	Bool     bool
	Num      int32
}

func NodeVal(n *Node) Value          { return Value{Kind: ValNode, Node: n} }
func NodeListVal(l []*Node) Value    { return Value{Kind: ValNodeList, NodeList: l} }
func BoolVal(b bool) Value           { return Value{Kind: ValBoolean, Bool: b} }
func NumberVal(n int32) Value        { return Value{Kind: ValNumber, Num: n} }

/*
zeroValue returns the default value for a declared variable kind: nil
Node, empty NodeList, false, or 0.
*/
func zeroValue(k grammar.VariableKind) Value {
	switch k {
	case grammar.VarNode:
		return NodeVal(nil)
	case grammar.VarNodeList:
		return NodeListVal(nil)
	case grammar.VarBoolean:
		return BoolVal(false)
	case grammar.VarNumber:
		return NumberVal(0)
	}
	return Value{}
}

/*
Increment adds one to a Number value, saturating at math.MaxInt32 rather
than wrapping.
*/
func (v Value) Increment() Value {
	if v.Num == math.MaxInt32 {
		return v
	}
	v.Num++
	return v
}

/*
Decrement subtracts one from a Number value, saturating at
math.MinInt32.
*/
func (v Value) Decrement() Value {
	if v.Num == math.MinInt32 {
		return v
	}
	v.Num--
	return v
}

/*
Compare evaluates the six relations a Compare command can test: Number
supports all six; Boolean and Node support only Equal/NotEqual;
NodeList compares NotEqual to everything.
*/
func (v Value) Compare(other Value, op grammar.CompareOp) bool {
	switch {
	case v.Kind == ValNodeList || other.Kind == ValNodeList:
		return op == grammar.OpNotEqual

	case v.Kind == ValNumber && other.Kind == ValNumber:
		switch {
		case v.Num == other.Num:
			return op == grammar.OpEqual || op == grammar.OpGreaterEqual || op == grammar.OpLessEqual
		case v.Num > other.Num:
			return op == grammar.OpNotEqual || op == grammar.OpGreater || op == grammar.OpGreaterEqual
		default:
			return op == grammar.OpNotEqual || op == grammar.OpLess || op == grammar.OpLessEqual
		}

	case v.Kind == ValBoolean && other.Kind == ValBoolean:
		if op != grammar.OpEqual && op != grammar.OpNotEqual {
			return false
		}
		return (v.Bool == other.Bool) == (op == grammar.OpEqual)

	case v.Kind == ValNode && other.Kind == ValNode:
		if op != grammar.OpEqual && op != grammar.OpNotEqual {
			return false
		}
		return (v.Node == other.Node) == (op == grammar.OpEqual)

	default:
		// Mixed kinds other than the two-Number case above: only
		// (in)equality is meaningful, and values of different kinds are
		// never equal.
		if op != grammar.OpEqual && op != grammar.OpNotEqual {
			return false
		}
		return op == grammar.OpNotEqual
	}
}

func (v Value) String() string {
	switch v.Kind {
	case ValNode:
		if v.Node == nil {
			return "<nil>"
		}
		return v.Node.Name
	case ValNodeList:
		return fmt.Sprintf("[%d nodes]", len(v.NodeList))
	case ValBoolean:
		return fmt.Sprintf("%v", v.Bool)
	case ValNumber:
		return fmt.Sprintf("%d", v.Num)
	}
	return "?"
}
