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

/*
Package interp is the rule interpreter: it walks a grammar.Grammar's
rule trees against a lexed token stream, producing a tree.Node result
or a perr.Error.
*/

/*
cursor is the interpreter's position in the token stream. It is passed
and returned by value throughout parseRules/parseNode/matchToken: a
small value type, copied rather than shared, so each match attempt can
be rolled back cheaply on failure.

pendingAdvance records that the token at idx has just been matched but
not yet consumed; the next rule-processing iteration moves idx forward
before trying its own match. This defers the advance so that a rule's
own parameters observe the cursor sitting on the token they just
matched, not past it; its child rule list moves past the token before
its first rule.
*/
type cursor struct {
	idx            int
	pendingAdvance bool
}

/*
signalKind discriminates the four intra-node control-flow messages a
parameter or command can emit.
*/
type signalKind int

const (
	sigReturn signalKind = iota
	sigBreak
	sigBack
	sigGoto
)

/*
signal is the message-bus payload propagated up through nested rule
lists until it is absorbed (Break/Back/Goto) or reaches the node's
top-level list (Return, or an unabsorbed Break/Back/Goto, which becomes
a perr.Error there).
*/
type signal struct {
	kind  signalKind
	n     int    // sigBreak / sigBack: remaining depth/distance
	label string // sigGoto: the target label
}

/*
absorbBreak inspects a signal produced by a While/Loop body. A Break(1)
is fully absorbed here (the loop exits, nothing propagates further); a
deeper Break(n) is reduced to Break(n-1) and still needs to bubble
through the enclosing rule list; any other signal (Return/Back/Goto)
passes through unchanged, since a loop does not interpret those.
*/
func absorbBreak(s *signal) (absorbed bool, remaining *signal) {
	if s == nil {
		return false, nil
	}
	if s.kind != sigBreak {
		return false, s
	}
	if s.n <= 1 {
		return true, nil
	}
	return false, &signal{kind: sigBreak, n: s.n - 1}
}
