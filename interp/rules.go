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
)

/*
parseRules walks one flat rule list, left to right, against the cursor.
It is used both for a node's own top-level rules and for every nested
rule list (Maybe branches, While/Loop/Until bodies, alternative
children, Compare's children) — topLevel is true only for the former,
and controls what happens when a Goto/Back signal cannot be absorbed
anywhere in this node: at topLevel that is a grammar error rather than
something to keep propagating.
*/
func (st *state) parseRules(ctx *execCtx, rules []grammar.Rule, cur cursor, topLevel bool) (cursor, *signal, *perr.Error) {
	i := 0
	for i < len(rules) {
		if cur.pendingAdvance {
			cur.idx = st.advance(cur.idx)
			cur.pendingAdvance = false
		}

		rule := rules[i]
		var sig *signal
		var err *perr.Error

		switch rule.Kind {
		case grammar.RuleIs:
			mr, e := st.matchToken(rule.Match, cur)
			if e != nil {
				return cur, nil, e
			}
			if !mr.ok {
				rerr := st.mismatchErr(rule.Match, cur, mr, rule.Params)
				return cur, nil, rerr
			}
			cur = mr.cursor
			cur.pendingAdvance = mr.consumedToken
			sig, err = st.applyParams(ctx, rule.Params, mr, &cur)
			if err == nil && sig == nil {
				cur, sig, err = st.parseRules(ctx, rule.Children, cur, false)
			}

		case grammar.RuleIsnt:
			mr, e := st.matchToken(rule.Match, cur)
			if e != nil {
				return cur, nil, e
			}
			if mr.ok {
				return cur, nil, perr.New(perr.UnexpectedToken,
					fmt.Sprintf("expected %s to not match", describeMatch(rule.Match)), st.locAt(cur.idx))
			}
			cur, sig, err = st.parseRules(ctx, rule.Children, cur, false)

		case grammar.RuleIsOneOf:
			matched := false
			for _, alt := range rule.Alternatives {
				mr, e := st.matchToken(alt.Match, cur)
				if e != nil {
					return cur, nil, e
				}
				if !mr.ok {
					continue
				}
				matched = true
				cur = mr.cursor
				cur.pendingAdvance = mr.consumedToken
				sig, err = st.applyParams(ctx, alt.Params, mr, &cur)
				if err == nil && sig == nil {
					cur, sig, err = st.parseRules(ctx, alt.Children, cur, false)
				}
				break
			}
			if !matched {
				return cur, nil, perr.New(perr.UnexpectedToken, "no alternative matched", st.locAt(cur.idx))
			}

		case grammar.RuleMaybe:
			mr, e := st.matchToken(rule.Match, cur)
			if e != nil {
				return cur, nil, e
			}
			if mr.ok {
				cur = mr.cursor
				cur.pendingAdvance = mr.consumedToken
				sig, err = st.applyParams(ctx, rule.Params, mr, &cur)
				if err == nil && sig == nil {
					cur, sig, err = st.parseRules(ctx, rule.Children, cur, false)
				}
			} else {
				cur, sig, err = st.parseRules(ctx, rule.IsntChildren, cur, false)
			}

		case grammar.RuleMaybeOneOf:
			matched := false
			for _, alt := range rule.Alternatives {
				mr, e := st.matchToken(alt.Match, cur)
				if e != nil {
					return cur, nil, e
				}
				if !mr.ok {
					continue
				}
				matched = true
				cur = mr.cursor
				cur.pendingAdvance = mr.consumedToken
				sig, err = st.applyParams(ctx, alt.Params, mr, &cur)
				if err == nil && sig == nil {
					cur, sig, err = st.parseRules(ctx, alt.Children, cur, false)
				}
				break
			}
			if !matched {
				cur, sig, err = st.parseRules(ctx, rule.IsntChildren, cur, false)
			}

		case grammar.RuleWhile:
			for {
				if cur.pendingAdvance {
					cur.idx = st.advance(cur.idx)
					cur.pendingAdvance = false
				}
				mr, e := st.matchToken(rule.Match, cur)
				if e != nil {
					return cur, nil, e
				}
				if !mr.ok {
					break
				}
				cur = mr.cursor
				cur.pendingAdvance = mr.consumedToken

				var bodySig *signal
				bodySig, err = st.applyParams(ctx, rule.Params, mr, &cur)
				if err != nil {
					return cur, nil, err
				}
				if bodySig == nil {
					cur, bodySig, err = st.parseRules(ctx, rule.Children, cur, false)
					if err != nil {
						return cur, nil, err
					}
				}
				if bodySig != nil {
					absorbed, remaining := absorbBreak(bodySig)
					if absorbed {
						break
					}
					sig = remaining
					break
				}
			}

		case grammar.RuleLoop:
			for {
				var bodySig *signal
				cur, bodySig, err = st.parseRules(ctx, rule.Children, cur, false)
				if err != nil {
					return cur, nil, err
				}
				if bodySig == nil {
					continue
				}
				absorbed, remaining := absorbBreak(bodySig)
				if absorbed {
					break
				}
				sig = remaining
				break
			}

		case grammar.RuleUntil:
			mr, e := st.scanUntil(rule.Match, cur)
			if e != nil {
				return cur, nil, e
			}
			if mr == nil {
				return cur, nil, perr.New(perr.CouldNotFindToken,
					fmt.Sprintf("could not find %s before end of input", describeMatch(rule.Match)),
					st.locAt(len(st.tokens)-1))
			}
			cur = mr.cursor
			cur.pendingAdvance = mr.consumedToken
			sig, err = st.applyParams(ctx, rule.Params, *mr, &cur)
			if err == nil && sig == nil {
				cur, sig, err = st.parseRules(ctx, rule.Children, cur, false)
			}

		case grammar.RuleUntilOneOf:
			alts := make([]grammar.MatchToken, len(rule.Alternatives))
			for i, a := range rule.Alternatives {
				alts[i] = a.Match
			}
			mr, winIdx, e := st.scanUntilOneOf(alts, cur)
			if e != nil {
				return cur, nil, e
			}
			if mr == nil {
				return cur, nil, perr.New(perr.CouldNotFindToken, "could not find any alternative before end of input", st.locAt(len(st.tokens)-1))
			}
			cur = mr.cursor
			cur.pendingAdvance = mr.consumedToken
			winner := rule.Alternatives[winIdx]
			sig, err = st.applyParams(ctx, winner.Params, *mr, &cur)
			if err == nil && sig == nil {
				cur, sig, err = st.parseRules(ctx, winner.Children, cur, false)
			}

		case grammar.RuleCommandKind:
			sig, err = st.execCommand(ctx, rule.Command, &cur)

		case grammar.RuleDebug:
			st.logDebug(rule.DebugTarget)
		}

		if err != nil {
			return cur, nil, err
		}

		if sig != nil {
			switch sig.kind {
			case sigReturn:
				return cur, sig, nil

			case sigGoto:
				if idx, ok := findLabel(rules, sig.label); ok {
					i = idx
					continue
				}
				if topLevel {
					return cur, nil, perr.New(perr.LabelNotFound, fmt.Sprintf("label %q not found", sig.label), st.locAt(cur.idx))
				}
				return cur, sig, nil

			case sigBreak:
				if topLevel {
					return cur, nil, perr.New(perr.CannotBreak, "break has no enclosing loop", st.locAt(cur.idx))
				}
				return cur, sig, nil

			case sigBack:
				if sig.n <= i {
					i -= sig.n
					continue
				}
				if topLevel {
					return cur, nil, perr.New(perr.CannotGoBack, fmt.Sprintf("cannot go back %d rules", sig.n), st.locAt(cur.idx))
				}
				return cur, &signal{kind: sigBack, n: sig.n - i}, nil
			}
		}

		i++
	}
	return cur, nil, nil
}

/*
mismatchErr builds the error for a required (non-optional) match that
failed, preferring the underlying reason from a failed child-node match
over a generic description, and attaching the first Hint parameter if
one is present.
*/
func (st *state) mismatchErr(mt grammar.MatchToken, cur cursor, mr matchResult, params []grammar.Parameter) *perr.Error {
	var rerr *perr.Error
	if mr.reason != nil {
		rerr = mr.reason
	} else {
		rerr = st.expectedErr(mt, cur)
	}
	if h := firstHint(params); h != nil {
		rerr = rerr.WithHint(*h)
	}
	return rerr
}
