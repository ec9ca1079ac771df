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

import (
	"fmt"

	"github.com/rgrammar/ruparse/token"
)

/*
MatchKind discriminates the five MatchToken alternatives: Token, Node,
Word, Enumerator, Any.
*/
type MatchKind int

const (
	MatchTok MatchKind = iota
	MatchNode
	MatchWord
	MatchEnum
	MatchAny
)

func (k MatchKind) String() string {
	switch k {
	case MatchTok:
		return "Token"
	case MatchNode:
		return "Node"
	case MatchWord:
		return "Word"
	case MatchEnum:
		return "Enumerator"
	case MatchAny:
		return "Any"
	}
	return fmt.Sprintf("MatchKind(%d)", int(k))
}

/*
MatchToken is a predicate on a single position of the token stream. It
is a tagged union: only the fields relevant to Kind are meaningful.
*/
type MatchToken struct {
	Kind MatchKind

	// MatchTok: which token.Kind to require. If TokenKind == token.KindRegistered,
	// TokenName selects which registered token string is required.
	TokenKind token.Kind
	TokenName string

	// MatchNode: the referenced child node's name.
	NodeName string

	// MatchWord: the exact source text a Text token must equal.
	Word string

	// MatchEnum: the referenced enumerator's name.
	EnumName string
}

/*
Tok matches a specific registered token by name.
*/
func Tok(name string) MatchToken {
	return MatchToken{Kind: MatchTok, TokenKind: token.KindRegistered, TokenName: name}
}

/*
TextTok matches a generic Text token, with no constraint on its content.
*/
func TextTok() MatchToken {
	return MatchToken{Kind: MatchTok, TokenKind: token.KindText}
}

/*
Whitespace matches a Whitespace token.
*/
func Whitespace() MatchToken {
	return MatchToken{Kind: MatchTok, TokenKind: token.KindWhitespace}
}

/*
Newline matches a Control(EOL) token.
*/
func Newline() MatchToken {
	return MatchToken{Kind: MatchTok, TokenKind: token.KindEOL}
}

/*
Eof matches a Control(EOF) token.
*/
func Eof() MatchToken {
	return MatchToken{Kind: MatchTok, TokenKind: token.KindEOF}
}

/*
Word matches a Text token whose source slice equals s exactly.
*/
func Word(s string) MatchToken {
	return MatchToken{Kind: MatchWord, Word: s}
}

/*
NodeRef recursively parses the named child node.
*/
func NodeRef(name string) MatchToken {
	return MatchToken{Kind: MatchNode, NodeName: name}
}

/*
EnumRef tries each alternative of the named enumerator in order.
*/
func EnumRef(name string) MatchToken {
	return MatchToken{Kind: MatchEnum, EnumName: name}
}

/*
Any matches whatever token is under the cursor without constraint. Its
use is flagged by the validator as deprecated; it is retained because
Any's literal, whitespace-opaque behavior is sometimes exactly what a
grammar needs, e.g. to consume a delimiter unconditionally inside an
Until body.
*/
func Any() MatchToken {
	return MatchToken{Kind: MatchAny}
}
