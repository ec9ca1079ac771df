/*
 * ruparse
 *
 * Copyright 2024 The ruparse Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package grammar

import "fmt"

/*
VarRef is a reference to a declared variable, either local to the
enclosing node or a grammar global.
*/
type VarRef struct {
	Name   string
	Global bool
}

/*
Local builds a reference to a node-local variable.
*/
func Local(name string) VarRef {
	return VarRef{Name: name}
}

/*
Global builds a reference to a grammar global variable.
*/
func Global(name string) VarRef {
	return VarRef{Name: name, Global: true}
}

func (r VarRef) String() string {
	if r.Global {
		return "global." + r.Name
	}
	return r.Name
}

/*
ParamKind discriminates the Parameter alternatives a matched rule can
apply.
*/
type ParamKind int

const (
	ParamSet ParamKind = iota
	ParamIncrement
	ParamDecrement
	ParamTrue
	ParamFalse
	ParamNodeStart
	ParamNodeEnd
	ParamCommit
	ParamReturn
	ParamBreak
	ParamBack
	ParamGoto
	ParamHint
	ParamPrint
	ParamDebugVar
	ParamFail
)

func (k ParamKind) String() string {
	switch k {
	case ParamSet:
		return "Set"
	case ParamIncrement:
		return "Increment"
	case ParamDecrement:
		return "Decrement"
	case ParamTrue:
		return "True"
	case ParamFalse:
		return "False"
	case ParamNodeStart:
		return "NodeStart"
	case ParamNodeEnd:
		return "NodeEnd"
	case ParamCommit:
		return "Commit"
	case ParamReturn:
		return "Return"
	case ParamBreak:
		return "Break"
	case ParamBack:
		return "Back"
	case ParamGoto:
		return "Goto"
	case ParamHint:
		return "Hint"
	case ParamPrint:
		return "Print"
	case ParamDebugVar:
		return "Debug"
	case ParamFail:
		return "Fail"
	}
	return fmt.Sprintf("ParamKind(%d)", int(k))
}

/*
Parameter is an action applied, in declaration order, after a rule's
match succeeds. It is a tagged union: only the fields relevant to Kind
are meaningful.
*/
type Parameter struct {
	Kind ParamKind

	Var VarRef // Set/Increment/Decrement/True/False/Debug

	CommitValue bool // Commit(bool)

	N     int    // Break(n)/Back(n)
	Label string // Goto(label)

	Text string // Hint(string)/Print(string)

	FailDef ErrorDef // Fail(error-def)
}

func Set(v VarRef) Parameter           { return Parameter{Kind: ParamSet, Var: v} }
func Increment(v VarRef) Parameter     { return Parameter{Kind: ParamIncrement, Var: v} }
func Decrement(v VarRef) Parameter     { return Parameter{Kind: ParamDecrement, Var: v} }
func True(v VarRef) Parameter          { return Parameter{Kind: ParamTrue, Var: v} }
func False(v VarRef) Parameter         { return Parameter{Kind: ParamFalse, Var: v} }
func NodeStart() Parameter             { return Parameter{Kind: ParamNodeStart} }
func NodeEnd() Parameter               { return Parameter{Kind: ParamNodeEnd} }
func Commit(b bool) Parameter          { return Parameter{Kind: ParamCommit, CommitValue: b} }
func Return() Parameter                { return Parameter{Kind: ParamReturn} }
func Break(n int) Parameter            { return Parameter{Kind: ParamBreak, N: n} }
func Back(n int) Parameter             { return Parameter{Kind: ParamBack, N: n} }
func Goto(label string) Parameter      { return Parameter{Kind: ParamGoto, Label: label} }
func Hint(s string) Parameter          { return Parameter{Kind: ParamHint, Text: s} }
func Print(s string) Parameter         { return Parameter{Kind: ParamPrint, Text: s} }
func DebugVar(v VarRef) Parameter      { return Parameter{Kind: ParamDebugVar, Var: v} }
func Fail(def ErrorDef) Parameter      { return Parameter{Kind: ParamFail, FailDef: def} }
