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

	"github.com/krotik/common/errorutil"

	"github.com/rgrammar/ruparse/grammar"
	"github.com/rgrammar/ruparse/perr"
	"github.com/rgrammar/ruparse/tree"
)

/*
applyParams runs a rule's parameters, in declaration order, after its
match has succeeded. It stops and returns the signal at the first
control-flow parameter (Return/Break/Back/Goto); a Hint parameter is a
no-op here, since it is read only when the match fails (see
mismatchErr).
*/
func (st *state) applyParams(ctx *execCtx, params []grammar.Parameter, mr matchResult, cur *cursor) (*signal, *perr.Error) {
	for _, p := range params {
		switch p.Kind {
		case grammar.ParamSet:
			kind, ok := st.getVarKind(ctx, p.Var)
			if !ok {
				return nil, perr.New(perr.VariableNotFound, fmt.Sprintf("variable %s is not declared", p.Var), st.locAt(cur.idx))
			}
			switch kind {
			case grammar.VarNode:
				errorutil.AssertTrue(mr.node != nil, fmt.Sprintf("Set(%s) applied with no matched value", p.Var))
				st.setVarValue(ctx, p.Var, tree.NodeVal(mr.node))
			case grammar.VarNodeList:
				cur_, _ := st.getVarValue(ctx, p.Var)
				list := append(append([]*tree.Node{}, cur_.NodeList...), mr.node)
				st.setVarValue(ctx, p.Var, tree.NodeListVal(list))
			default:
				return nil, perr.New(perr.CannotSetVariable, fmt.Sprintf("variable %s is not a Node or NodeList", p.Var), st.locAt(cur.idx))
			}

		case grammar.ParamIncrement, grammar.ParamDecrement:
			kind, ok := st.getVarKind(ctx, p.Var)
			if !ok {
				return nil, perr.New(perr.VariableNotFound, fmt.Sprintf("variable %s is not declared", p.Var), st.locAt(cur.idx))
			}
			if kind != grammar.VarNumber {
				return nil, perr.New(perr.UncountableVariable, fmt.Sprintf("variable %s is not a Number", p.Var), st.locAt(cur.idx))
			}
			v, _ := st.getVarValue(ctx, p.Var)
			if p.Kind == grammar.ParamIncrement {
				v = v.Increment()
			} else {
				v = v.Decrement()
			}
			st.setVarValue(ctx, p.Var, v)

		case grammar.ParamTrue, grammar.ParamFalse:
			kind, ok := st.getVarKind(ctx, p.Var)
			if !ok {
				return nil, perr.New(perr.VariableNotFound, fmt.Sprintf("variable %s is not declared", p.Var), st.locAt(cur.idx))
			}
			if kind != grammar.VarBoolean {
				return nil, perr.New(perr.CannotSetVariable, fmt.Sprintf("variable %s is not a Boolean", p.Var), st.locAt(cur.idx))
			}
			st.setVarValue(ctx, p.Var, tree.BoolVal(p.Kind == grammar.ParamTrue))

		case grammar.ParamNodeStart:
			ctx.node.First = st.tokens[cur.idx].Index
			ctx.firstExplicit = true

		case grammar.ParamNodeEnd:
			ctx.node.Last = st.tokens[cur.idx].End()
			ctx.lastExplicit = true

		case grammar.ParamCommit:
			ctx.node.Commit = p.CommitValue

		case grammar.ParamReturn:
			return &signal{kind: sigReturn}, nil

		case grammar.ParamBreak:
			return &signal{kind: sigBreak, n: maxInt(p.N, 1)}, nil

		case grammar.ParamBack:
			return &signal{kind: sigBack, n: maxInt(p.N, 1)}, nil

		case grammar.ParamGoto:
			return &signal{kind: sigGoto, label: p.Label}, nil

		case grammar.ParamHint:
			// Read only when the match fails; nothing to do on success.

		case grammar.ParamPrint:
			st.logPrint(p.Text)

		case grammar.ParamDebugVar:
			v, _ := st.getVarValue(ctx, p.Var)
			st.logDebug(fmt.Sprintf("%s = %s", p.Var, v))

		case grammar.ParamFail:
			return nil, perr.NewGrammarError(perr.Code(p.FailDef.Code), p.FailDef.Header, p.FailDef.Message, st.locAt(cur.idx))
		}
	}
	return nil, nil
}

/*
execCommand runs a standalone Command rule. CmdCompare's children, if
its condition holds, run as a nested rule list and may themselves
produce a signal that bubbles up through the normal mechanism.
*/
func (st *state) execCommand(ctx *execCtx, c grammar.Command, cur *cursor) (*signal, *perr.Error) {
	switch c.Kind {
	case grammar.CmdCompare:
		lv, ok1 := st.getVarValue(ctx, c.Left)
		rv, ok2 := st.getVarValue(ctx, c.Right)
		if !ok1 || !ok2 {
			return nil, perr.New(perr.VariableNotFound, "compare references an undeclared variable", st.locAt(cur.idx))
		}
		if !lv.Compare(rv, c.Op) {
			return nil, nil
		}
		newCur, sig, err := st.parseRules(ctx, c.Children, *cur, false)
		*cur = newCur
		return sig, err

	case grammar.CmdFail, grammar.CmdMessage:
		return nil, perr.NewGrammarError(perr.Code(c.FailDef.Code), c.FailDef.Header, c.FailDef.Message, st.locAt(cur.idx))

	case grammar.CmdCommit:
		ctx.node.Commit = c.CommitValue
		return nil, nil

	case grammar.CmdGoto:
		return &signal{kind: sigGoto, label: c.Label}, nil

	case grammar.CmdLabel:
		return nil, nil

	case grammar.CmdPrint:
		st.logPrint(c.Text)
		return nil, nil

	case grammar.CmdReturn:
		return &signal{kind: sigReturn}, nil

	case grammar.CmdStart:
		ctx.node.First = st.tokens[cur.idx].Index
		ctx.firstExplicit = true
		return nil, nil

	case grammar.CmdEnd:
		ctx.node.Last = st.tokens[cur.idx].End()
		ctx.lastExplicit = true
		return nil, nil
	}
	return nil, nil
}
