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
Package token defines the classified byte-span value produced by the
lexer and consumed by the rule interpreter.
*/
package token

import "fmt"

/*
Kind identifies what a Token represents: one of the fixed
control/structural kinds below, or KindRegistered for a token string
supplied by the caller through lexer.Lexer.AddToken.
*/
type Kind int

/*
Fixed token kinds. Every registered token carries Kind KindRegistered
and its token string in Token.Name.
*/
const (
	KindText Kind = iota
	KindWhitespace
	KindEOL
	KindEOF
	KindRegistered
)

/*
String returns a human readable name for a Kind.
*/
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindWhitespace:
		return "Whitespace"
	case KindEOL:
		return "EOL"
	case KindEOF:
		return "EOF"
	case KindRegistered:
		return "Registered"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

/*
TextLocation delimits a span of the source text by (line, column) pairs.
Both indices are 0-based. TextLocation is used only for diagnostics; the
authoritative span of a Token is its (Index, Len) byte range.
*/
type TextLocation struct {
	Line      int
	Column    int
	LineEnd   int
	ColumnEnd int
}

/*
Token is an immutable record describing a classified span of the source
text. Two tokens are equal iff all fields are equal.
*/
type Token struct {
	Kind     Kind         // Classification of this token
	Name     string       // Registered token name; empty unless Kind == KindRegistered
	Index    int          // Starting byte offset into the source text
	Len      int          // Byte length of the span
	Location TextLocation // Source position, for diagnostics only
}

/*
End returns the byte offset one past the end of this token's span.
*/
func (t Token) End() int {
	return t.Index + t.Len
}

/*
Stringify returns the slice of text this token spans.
*/
func (t Token) Stringify(text string) string {
	return text[t.Index:t.End()]
}

/*
String returns a short diagnostic representation of a token.
*/
func (t Token) String() string {
	if t.Kind == KindRegistered {
		return fmt.Sprintf("%s@%d", t.Name, t.Index)
	}
	return fmt.Sprintf("%s@%d", t.Kind, t.Index)
}

/*
Equals checks if this token equals another token, optionally ignoring
the source location fields (which carry no semantic weight beyond
diagnostics).
*/
func (t Token) Equals(other Token, ignoreLocation bool) (bool, string) {
	if t.Kind != other.Kind {
		return false, fmt.Sprintf("Kind differs: %v vs %v", t.Kind, other.Kind)
	}
	if t.Name != other.Name {
		return false, fmt.Sprintf("Name differs: %q vs %q", t.Name, other.Name)
	}
	if t.Index != other.Index {
		return false, fmt.Sprintf("Index differs: %d vs %d", t.Index, other.Index)
	}
	if t.Len != other.Len {
		return false, fmt.Sprintf("Len differs: %d vs %d", t.Len, other.Len)
	}
	if !ignoreLocation && t.Location != other.Location {
		return false, fmt.Sprintf("Location differs: %+v vs %+v", t.Location, other.Location)
	}
	return true, ""
}
