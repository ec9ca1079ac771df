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
Package lexer turns a text buffer into a token stream using a caller
supplied set of token strings. It is a greedy longest-match tokenizer:
whitespace and end-of-line recognition are always enabled, everything
else is whatever the caller registered.
*/
package lexer

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rgrammar/ruparse/token"
)

/*
Diagnostic codes for lexer failures. These never stop lexing; they are
collected and returned alongside the (best-effort) token stream. Lex
emits only DiagInvalidUTF8: empty and overlong token strings are
rejected by AddToken with an error, so Lex never reports
DiagEmptyToken or DiagTokenTooLong.
*/
const (
	DiagInvalidUTF8  = 100
	DiagEmptyToken   = 101
	DiagTokenTooLong = 102
)

/*
MaxTokenLen is the maximum length, in bytes, a registered token string
may have.
*/
const MaxTokenLen = 64

/*
Diagnostic describes a lexer-level failure. It carries the same
(Code, Header) shape as perr.Error so a caller can render both uniformly.
*/
type Diagnostic struct {
	Code     int
	Header   string
	Message  string
	Location token.TextLocation
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Header, d.Message)
}

/*
Lexer holds the set of token strings the caller has registered. The zero
value is not usable; construct with New.
*/
type Lexer struct {
	set     map[string]bool
	ordered []string // cached, longest-first then lexicographic, rebuilt on Add
	dirty   bool
}

/*
New creates an empty Lexer. Whitespace and end-of-line recognition do not
need registration; they are implicit.
*/
func New() *Lexer {
	return &Lexer{set: make(map[string]bool)}
}

/*
AddToken registers a single token string. Returns an error if the string
is empty or exceeds MaxTokenLen.
*/
func (l *Lexer) AddToken(s string) error {
	if s == "" {
		return fmt.Errorf("lexer: token string must not be empty")
	}
	if len(s) > MaxTokenLen {
		return fmt.Errorf("lexer: token string %q exceeds max length %d", s, MaxTokenLen)
	}
	l.set[s] = true
	l.dirty = true
	return nil
}

/*
AddTokens registers every string in the given slice. On the first error
it stops and returns it; tokens added before the failing one remain
registered.
*/
func (l *Lexer) AddTokens(ss []string) error {
	for _, s := range ss {
		if err := l.AddToken(s); err != nil {
			return err
		}
	}
	return nil
}

/*
HasToken reports whether a token string is registered. Used by the
static validator to check MatchToken::Token references.
*/
func (l *Lexer) HasToken(s string) bool {
	return l.set[s]
}

/*
Tokens returns the registered token strings in declaration-independent,
but deterministic, longest-first order.
*/
func (l *Lexer) Tokens() []string {
	l.refresh()
	out := make([]string, len(l.ordered))
	copy(out, l.ordered)
	return out
}

func (l *Lexer) refresh() {
	if !l.dirty && l.ordered != nil {
		return
	}
	ordered := make([]string, 0, len(l.set))
	for s := range l.set {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})
	l.ordered = ordered
	l.dirty = false
}

/*
longestMatch returns the longest registered token string that is a
prefix of text[pos:], and true if one was found. Ties are broken by
lexicographic order (see Tokens).
*/
func (l *Lexer) longestMatch(text string, pos int) (string, bool) {
	l.refresh()
	rest := text[pos:]
	for _, cand := range l.ordered {
		if strings.HasPrefix(rest, cand) {
			return cand, true
		}
	}
	return "", false
}

/*
scanner carries the mutable state of a single Lex call.
*/
type scanner struct {
	text string
	pos  int
	line int
	col  int
}

func isSpaceOrTab(r rune) bool {
	return r == ' ' || r == '\t'
}

func isEOLStart(r rune) bool {
	return r == '\n' || r == '\r'
}

/*
peekRune decodes the rune at s.pos without advancing, returning its width
too. Returns (utf8.RuneError, 0) at end of input.
*/
func (s *scanner) peekRune() (rune, int) {
	if s.pos >= len(s.text) {
		return utf8.RuneError, 0
	}
	r, w := utf8.DecodeRuneInString(s.text[s.pos:])
	return r, w
}

/*
advance consumes n bytes (assumed to be exactly the runes already
inspected by the caller) and updates line/column bookkeeping rune by
rune.
*/
func (s *scanner) advance(n int) {
	end := s.pos + n
	for s.pos < end {
		r, w := utf8.DecodeRuneInString(s.text[s.pos:])
		if w == 0 {
			w = 1
		}
		s.pos += w
		if r == '\n' {
			s.line++
			s.col = 0
		} else {
			s.col++
		}
	}
}

func (s *scanner) loc() token.TextLocation {
	return token.TextLocation{Line: s.line, Column: s.col}
}

/*
Lex scans text into a token stream. It never panics; malformed input
(invalid UTF-8) is reported as a Diagnostic and the offending byte is
skipped as a one-byte Text token.
*/
func (l *Lexer) Lex(text string) ([]token.Token, []Diagnostic) {
	var toks []token.Token
	var diags []Diagnostic

	s := &scanner{text: text}

	for s.pos < len(text) {
		startLoc := s.loc()

		// Registered token: tried first, greedy longest match.

		if cand, ok := l.longestMatch(text, s.pos); ok {
			idx := s.pos
			s.advance(len(cand))
			toks = append(toks, token.Token{
				Kind:  token.KindRegistered,
				Name:  cand,
				Index: idx,
				Len:   len(cand),
				Location: token.TextLocation{
					Line: startLoc.Line, Column: startLoc.Column,
					LineEnd: s.line, ColumnEnd: s.col,
				},
			})
			continue
		}

		r, w := s.peekRune()

		if w == 0 {
			break
		}

		if r == utf8.RuneError && w == 1 {
			diags = append(diags, Diagnostic{
				Code: DiagInvalidUTF8, Header: "InvalidUTF8",
				Message:  fmt.Sprintf("invalid UTF-8 byte at offset %d", s.pos),
				Location: startLoc,
			})
			idx := s.pos
			s.advance(1)
			toks = append(toks, token.Token{
				Kind: token.KindText, Index: idx, Len: 1,
				Location: token.TextLocation{Line: startLoc.Line, Column: startLoc.Column, LineEnd: s.line, ColumnEnd: s.col},
			})
			continue
		}

		if isEOLStart(r) {
			idx := s.pos
			n := w
			if r == '\r' {
				if r2, w2 := utf8.DecodeRuneInString(text[s.pos+w:]); r2 == '\n' {
					n += w2
				}
			}
			s.advance(n)
			toks = append(toks, token.Token{
				Kind: token.KindEOL, Index: idx, Len: n,
				Location: token.TextLocation{Line: startLoc.Line, Column: startLoc.Column, LineEnd: s.line, ColumnEnd: s.col},
			})
			continue
		}

		if isSpaceOrTab(r) {
			idx := s.pos
			for {
				r, w := s.peekRune()
				if w == 0 || !isSpaceOrTab(r) {
					break
				}
				s.advance(w)
			}
			toks = append(toks, token.Token{
				Kind: token.KindWhitespace, Index: idx, Len: s.pos - idx,
				Location: token.TextLocation{Line: startLoc.Line, Column: startLoc.Column, LineEnd: s.line, ColumnEnd: s.col},
			})
			continue
		}

		// Generic text: run until something else would start.

		idx := s.pos
		for s.pos < len(text) {
			if _, ok := l.longestMatch(text, s.pos); ok {
				break
			}
			r, w := s.peekRune()
			if w == 0 || isSpaceOrTab(r) || isEOLStart(r) || (r == utf8.RuneError && w == 1) {
				break
			}
			s.advance(w)
		}
		toks = append(toks, token.Token{
			Kind: token.KindText, Index: idx, Len: s.pos - idx,
			Location: token.TextLocation{Line: startLoc.Line, Column: startLoc.Column, LineEnd: s.line, ColumnEnd: s.col},
		})
	}

	eofLoc := s.loc()
	toks = append(toks, token.Token{
		Kind: token.KindEOF, Index: len(text), Len: 0,
		Location: token.TextLocation{Line: eofLoc.Line, Column: eofLoc.Column, LineEnd: eofLoc.Line, ColumnEnd: eofLoc.Column},
	})

	return toks, diags
}
