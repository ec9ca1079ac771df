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
matchResult is the outcome of a single matchToken attempt.

ok is false for an ordinary (recoverable) mismatch; reason optionally
carries the underlying cause when the mismatch came from a recursively
parsed child node that failed softly, so an Is rule can surface a more
specific message than a generic "expected node X".

consumedToken is true when this match consumed exactly one token at
the cursor (Token/Word/Any, including when reached through an
Enumerator) — the caller should set cursor.pendingAdvance so the next
rule-processing iteration steps past it. It is false for a Node match,
whose recursion has already advanced the cursor past everything it
consumed.
*/
type matchResult struct {
	ok            bool
	cursor        cursor
	node          *tree.Node
	consumedToken bool
	reason        *perr.Error
}

/*
peekPastWhitespace returns how many Whitespace/EOL tokens starting at
idx should be skipped before testing a match, so a line break is as
transparent to a match as a run of spaces. A match against Whitespace or
EOL itself is exempt, since skipping past them to find one of them would
defeat the match.
*/
func (st *state) peekPastWhitespace(idx int, exempt bool) int {
	if exempt {
		return 0
	}
	peek := 0
	for st.tokens[idx+peek].Kind == token.KindWhitespace || st.tokens[idx+peek].Kind == token.KindEOL {
		peek++
	}
	return peek
}

/*
matchToken tests a single MatchToken predicate at cur. The *perr.Error
return is non-nil only for a hard (committed) failure or a structural
grammar error (unknown node/enumerator); a recoverable mismatch is
reported only through matchResult.ok == false.
*/
func (st *state) matchToken(mt grammar.MatchToken, cur cursor) (matchResult, *perr.Error) {
	switch mt.Kind {
	case grammar.MatchAny:
		tok := st.tokens[cur.idx]
		return matchResult{ok: true, cursor: cursor{idx: cur.idx}, node: tree.NewLeaf("Any", tok), consumedToken: true}, nil

	case grammar.MatchTok:
		exempt := mt.TokenKind == token.KindWhitespace || mt.TokenKind == token.KindEOL
		peek := st.peekPastWhitespace(cur.idx, exempt)
		pos := cur.idx + peek
		tok := st.tokens[pos]
		if !tokenKindMatches(tok, mt) {
			return matchResult{}, nil
		}
		name := mt.TokenKind.String()
		if mt.TokenKind == token.KindRegistered {
			name = mt.TokenName
		}
		return matchResult{ok: true, cursor: cursor{idx: pos}, node: tree.NewLeaf(name, tok), consumedToken: true}, nil

	case grammar.MatchWord:
		peek := st.peekPastWhitespace(cur.idx, false)
		pos := cur.idx + peek
		tok := st.tokens[pos]
		if tok.Kind != token.KindText || tok.Stringify(st.text) != mt.Word {
			return matchResult{}, nil
		}
		return matchResult{ok: true, cursor: cursor{idx: pos}, node: tree.NewLeaf("Word", tok), consumedToken: true}, nil

	case grammar.MatchNode:
		if _, ok := st.grammar.Node(mt.NodeName); !ok {
			return matchResult{}, perr.New(perr.NodeNotFound, "unknown node \""+mt.NodeName+"\"", st.locAt(cur.idx))
		}
		child, newCur, cerr := st.parseNode(mt.NodeName, cur)
		if cerr != nil {
			if cerr.Commit {
				return matchResult{}, cerr
			}
			return matchResult{ok: false, reason: cerr}, nil
		}
		return matchResult{ok: true, cursor: newCur, node: child}, nil

	case grammar.MatchEnum:
		enum, ok := st.grammar.Enum(mt.EnumName)
		if !ok {
			return matchResult{}, perr.New(perr.EnumeratorNotFound, "unknown enumerator \""+mt.EnumName+"\"", st.locAt(cur.idx))
		}
		var lastReason *perr.Error
		for _, alt := range enum.Alternatives {
			res, err := st.matchToken(alt, cur)
			if err != nil {
				return matchResult{}, err
			}
			if res.ok {
				return res, nil
			}
			if res.reason != nil {
				lastReason = res.reason
			}
		}
		return matchResult{ok: false, reason: lastReason}, nil
	}
	return matchResult{}, nil
}

func tokenKindMatches(tok token.Token, mt grammar.MatchToken) bool {
	if mt.TokenKind == token.KindRegistered {
		return tok.Kind == token.KindRegistered && tok.Name == mt.TokenName
	}
	return tok.Kind == mt.TokenKind
}

/*
scanUntil advances one token at a time from cur until mt matches,
returning nil (with no error) if the end of stream is reached without a
match.
*/
func (st *state) scanUntil(mt grammar.MatchToken, cur cursor) (*matchResult, *perr.Error) {
	pos := cur.idx
	for {
		mr, err := st.matchToken(mt, cursor{idx: pos})
		if err != nil {
			return nil, err
		}
		if mr.ok {
			return &mr, nil
		}
		if st.tokens[pos].Kind == token.KindEOF {
			return nil, nil
		}
		pos++
	}
}

/*
scanUntilOneOf is scanUntil generalized over an ordered set of
alternatives. It additionally returns the index of the winning
alternative, so the caller can run its specific params/children.
*/
func (st *state) scanUntilOneOf(alts []grammar.MatchToken, cur cursor) (*matchResult, int, *perr.Error) {
	pos := cur.idx
	for {
		for i, alt := range alts {
			mr, err := st.matchToken(alt, cursor{idx: pos})
			if err != nil {
				return nil, 0, err
			}
			if mr.ok {
				return &mr, i, nil
			}
		}
		if st.tokens[pos].Kind == token.KindEOF {
			return nil, 0, nil
		}
		pos++
	}
}

/*
findLabel scans a rule list (not recursively into children) for a Label
command with the given name.
*/
func findLabel(rules []grammar.Rule, label string) (int, bool) {
	for i, r := range rules {
		if r.Kind == grammar.RuleCommandKind && r.Command.Kind == grammar.CmdLabel && r.Command.Label == label {
			return i, true
		}
	}
	return 0, false
}
