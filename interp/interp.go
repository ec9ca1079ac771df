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
	"github.com/rgrammar/ruparse/grammar"
	"github.com/rgrammar/ruparse/perr"
	"github.com/rgrammar/ruparse/token"
	"github.com/rgrammar/ruparse/tree"
)

/*
Parse runs the top-level parsing algorithm:

 1. entry must name a registered node (MissingEntry otherwise).
 2. the globals store is created, one zero value per declared global.
 3. the entry node is parsed recursively from the start of tokens.
 4. if g.EOFRequired, any trailing Whitespace is skipped and the
    remaining token must be Control(EOF) (MissingEof otherwise).
 5. the entry node and the globals store are returned.

tokens must end with a Control(EOF) token, as produced by lexer.Lex.
logger may be nil, in which case Print/Debug diagnostics are discarded.
*/
func Parse(g *grammar.Grammar, entry string, text string, tokens []token.Token, logger Logger) (*tree.Node, map[string]tree.Value, *perr.Error) {
	if _, ok := g.Node(entry); !ok {
		return nil, nil, perr.New(perr.MissingEntry, "grammar has no node named \""+entry+"\"", token.TextLocation{})
	}

	if logger == nil {
		logger = discardLogger{}
	}

	// tree.NewNode already knows how to zero-initialize a VarDecl list by
	// kind; reuse it for the globals store rather than re-deriving the
	// grammar.VariableKind -> tree.Value mapping here.
	globals := tree.NewNode("<globals>", g.Globals()).Vars

	st := &state{tokens: tokens, text: text, grammar: g, globals: globals, logger: logger}

	entryNode, cur, err := st.parseNode(entry, cursor{idx: 0})
	if err != nil {
		return nil, nil, err
	}

	if g.EOFRequired {
		idx := cur.idx
		for st.tokens[idx].Kind == token.KindWhitespace {
			idx++
		}
		if st.tokens[idx].Kind != token.KindEOF {
			return nil, nil, perr.New(perr.MissingEof, "expected end of input, found "+st.tokens[idx].String(), st.tokens[idx].Location)
		}
	}

	return entryNode, globals, nil
}
