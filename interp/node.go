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
	"github.com/rgrammar/ruparse/perr"
	"github.com/rgrammar/ruparse/tree"
)

/*
parseNode recursively parses one grammar node starting at cur. On
failure the cursor is rolled back to its entry value regardless of
whether the failure is committed — commit only controls whether an
enclosing optional match (Maybe/MaybeOneOf/IsOneOf/While) is allowed to
swallow the failure and try something else, not whether this node's own
partial consumption is kept.
*/
func (st *state) parseNode(name string, cur cursor) (*tree.Node, cursor, *perr.Error) {
	decl, ok := st.grammar.Node(name)
	if !ok {
		return nil, cur, perr.New(perr.NodeNotFound, "unknown node \""+name+"\"", st.locAt(cur.idx))
	}

	n := tree.NewNode(name, decl.Vars)
	n.Doc = decl.Doc
	startTok := st.tokens[cur.idx]
	n.First = startTok.Index
	n.Last = startTok.Index
	n.Location = startTok.Location

	ctx := &execCtx{node: n, decl: decl}

	newCur, _, err := st.parseRules(ctx, decl.Rules, cur, true)
	if err != nil {
		return nil, cur, err.WithNode(n).WithCommit(n.Commit)
	}

	if newCur.pendingAdvance {
		newCur.idx = st.advance(newCur.idx)
		newCur.pendingAdvance = false
	}

	if !ctx.lastExplicit {
		if newCur.idx > cur.idx {
			n.Last = st.tokens[newCur.idx-1].End()
		} else {
			n.Last = startTok.Index
		}
	}

	return n, newCur, nil
}
