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
Package perr is the structured error taxonomy a parse can raise: every
failure carries a stable (Code, Header) pair, a source location, and
optionally the grammar node in progress and a user-facing hint.
*/
package perr

import (
	"fmt"

	"github.com/rgrammar/ruparse/token"
	"github.com/rgrammar/ruparse/tree"
)

/*
Code is a stable numeric identifier for an error kind, drawn from a
fixed taxonomy. Grammar-defined errors (raised by a Fail parameter or a
Fail/Message command) carry whatever code the grammar author chose and
are not part of this const block.
*/
type Code int

const (
	// Developer errors in grammar (150-159).
	NodeNotFound        Code = 150
	EnumeratorNotFound  Code = 151
	VariableNotFound    Code = 152
	UncountableVariable Code = 153
	CannotSetVariable   Code = 154
	LabelNotFound       Code = 155
	CannotGoBack        Code = 156
	CannotBreak         Code = 157
	CouldNotFindToken   Code = 158
	MissingEntry        Code = 159

	// Library bug.
	NotFullyImplemented Code = 200

	// Input errors (201-203).
	UnexpectedToken Code = 201
	UnexpectedEof   Code = 202
	MissingEof      Code = 203
)

/*
defaultHeaders maps the fixed taxonomy codes to their stable header
text. Grammar-defined codes supply their own header.
*/
var defaultHeaders = map[Code]string{
	NodeNotFound:        "NodeNotFound",
	EnumeratorNotFound:  "EnumeratorNotFound",
	VariableNotFound:    "VariableNotFound",
	UncountableVariable: "UncountableVariable",
	CannotSetVariable:   "CannotSetVariable",
	LabelNotFound:       "LabelNotFound",
	CannotGoBack:        "CannotGoBack",
	CannotBreak:         "CannotBreak",
	CouldNotFindToken:   "CouldNotFindToken",
	MissingEntry:        "MissingEntry",
	NotFullyImplemented: "NotFullyImplemented",
	UnexpectedToken:     "UnexpectedToken",
	UnexpectedEof:       "UnexpectedEof",
	MissingEof:          "MissingEof",
}

/*
Error is a single parse failure. It implements the error interface.
*/
type Error struct {
	Code     Code
	Header   string
	Message  string
	Location token.TextLocation
	Node     *tree.Node // the innermost node in progress when the error was raised, if any
	NodeDoc  string     // copy of Node's grammar-side documentation, if any
	Hint     *string    // the first Hint attached to the failing match, if any
	Commit   bool       // true if this error is a hard (committed) failure
}

/*
New builds an Error for one of the fixed taxonomy codes, using its
stable header.
*/
func New(code Code, message string, loc token.TextLocation) *Error {
	return &Error{Code: code, Header: defaultHeaders[code], Message: message, Location: loc}
}

/*
NewGrammarError builds an Error from a grammar-defined ErrorDef (a Fail
parameter or Fail/Message command): code and header come from the
grammar, not from this package's fixed taxonomy.
*/
func NewGrammarError(code Code, header, message string, loc token.TextLocation) *Error {
	return &Error{Code: code, Header: header, Message: message, Location: loc}
}

/*
Error returns a human-readable representation of this error.
*/
func (e *Error) Error() string {
	msg := fmt.Sprintf("%d %s: %s (Line:%d Pos:%d)", e.Code, e.Header, e.Message, e.Location.Line, e.Location.Column)
	if e.Hint != nil {
		msg = fmt.Sprintf("%s [hint: %s]", msg, *e.Hint)
	}
	return msg
}

/*
WithHint returns a copy of this error with Hint set, if it is not
already set. The first Hint parameter encountered during rule
processing for a particular match wins.
*/
func (e *Error) WithHint(hint string) *Error {
	if e.Hint != nil {
		return e
	}
	cp := *e
	cp.Hint = &hint
	return &cp
}

/*
WithNode attaches the innermost node in progress (and its documentation)
to this error, if not already attached.
*/
func (e *Error) WithNode(n *tree.Node) *Error {
	if e.Node != nil {
		return e
	}
	cp := *e
	cp.Node = n
	if n != nil {
		cp.NodeDoc = n.Doc
	}
	return &cp
}

/*
WithCommit returns a copy of this error that is marked as a hard
(committed) failure if commit is true; an error that is already
committed stays committed.
*/
func (e *Error) WithCommit(commit bool) *Error {
	cp := *e
	cp.Commit = cp.Commit || commit
	return &cp
}
