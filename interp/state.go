/*
 * ruparse
 *
 * Copyright 2024 The ruparse Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interp

import (
	"fmt"

	"github.com/rgrammar/ruparse/grammar"
	"github.com/rgrammar/ruparse/perr"
	"github.com/rgrammar/ruparse/token"
	"github.com/rgrammar/ruparse/tree"
)

/*
state is the mutable context threaded through one Parse call: the
token stream, the source text, the grammar being walked, the global
variable store and the logger. It is never copied; every recursive
helper takes a *state.
*/
type state struct {
	tokens  []token.Token
	text    string
	grammar *grammar.Grammar
	globals map[string]tree.Value
	logger  Logger
}

/*
execCtx is the per-node execution context: the result node being built,
its grammar-side declaration (for variable-kind lookups) and whether
NodeStart/NodeEnd have already been explicitly applied (which suppresses
the default first/last byte computed when the node returns).
*/
type execCtx struct {
	node          *tree.Node
	decl          *grammar.Node
	firstExplicit bool
	lastExplicit  bool
}

/*
advance moves a token index forward by one, clamped at the final
(always-EOF) token so it never runs off the end of the stream.
*/
func (st *state) advance(idx int) int {
	if idx < len(st.tokens)-1 {
		return idx + 1
	}
	return idx
}

func (st *state) locAt(idx int) token.TextLocation {
	return st.tokens[idx].Location
}

func (st *state) logPrint(text string) {
	st.logger.LogInfo(text)
}

func (st *state) logDebug(text string) {
	st.logger.LogDebug(text)
}

/*
getVarKind looks up the declared kind of a variable reference, either
among the enclosing node's local declarations or the grammar's globals.
*/
func (st *state) getVarKind(ctx *execCtx, ref grammar.VarRef) (grammar.VariableKind, bool) {
	if ref.Global {
		return st.grammar.GlobalKind(ref.Name)
	}
	return ctx.decl.VarKind(ref.Name)
}

func (st *state) getVarValue(ctx *execCtx, ref grammar.VarRef) (tree.Value, bool) {
	if ref.Global {
		v, ok := st.globals[ref.Name]
		return v, ok
	}
	return ctx.node.Get(ref.Name)
}

func (st *state) setVarValue(ctx *execCtx, ref grammar.VarRef, v tree.Value) {
	if ref.Global {
		st.globals[ref.Name] = v
		return
	}
	ctx.node.Set(ref.Name, v)
}

/*
firstHint returns the text of the first Hint parameter in params, if
any. mismatchErr reads it after a required match has failed and attaches
it to the error it raises.
*/
func firstHint(params []grammar.Parameter) *string {
	for _, p := range params {
		if p.Kind == grammar.ParamHint {
			t := p.Text
			return &t
		}
	}
	return nil
}

/*
describeMatch renders a MatchToken for use in diagnostic messages.
*/
func describeMatch(mt grammar.MatchToken) string {
	switch mt.Kind {
	case grammar.MatchTok:
		if mt.TokenKind == token.KindRegistered {
			return fmt.Sprintf("token %q", mt.TokenName)
		}
		return mt.TokenKind.String()
	case grammar.MatchWord:
		return fmt.Sprintf("%q", mt.Word)
	case grammar.MatchNode:
		return fmt.Sprintf("node %q", mt.NodeName)
	case grammar.MatchEnum:
		return fmt.Sprintf("one of enumerator %q", mt.EnumName)
	case grammar.MatchAny:
		return "any token"
	}
	return "?"
}

/*
expectedErr builds the UnexpectedToken/UnexpectedEof error for a match
that failed to hold at cur.
*/
func (st *state) expectedErr(mt grammar.MatchToken, cur cursor) *perr.Error {
	tok := st.tokens[cur.idx]
	code := perr.UnexpectedToken
	if tok.Kind == token.KindEOF {
		code = perr.UnexpectedEof
	}
	msg := fmt.Sprintf("expected %s, found %s", describeMatch(mt), tok.String())
	return perr.New(code, msg, tok.Location)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
