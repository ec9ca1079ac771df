/*
 * ruparse
 *
 * Copyright 2024 The ruparse Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"strings"
	"testing"

	"github.com/rgrammar/ruparse/token"
)

func mustLexer(t *testing.T, tokens ...string) *Lexer {
	t.Helper()
	l := New()
	if err := l.AddTokens(tokens); err != nil {
		t.Fatalf("AddTokens: %v", err)
	}
	return l
}

/*
TestArithmeticLexing interleaves registered symbols, Text, Whitespace
and a single EOL, then Control(EOF), across 21 tokens.
*/
func TestArithmeticLexing(t *testing.T) {
	l := mustLexer(t, "+", "-", "*", "/=", "Function")

	input := "Function 1 +\n 2 * 3 - 4 /= 5"
	toks, diags := l.Lex(input)

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if len(toks) != 21 {
		t.Fatalf("expected 21 tokens, got %d: %v", len(toks), toks)
	}

	if toks[len(toks)-1].Kind != token.KindEOF {
		t.Fatalf("expected last token to be EOF, got %v", toks[len(toks)-1])
	}
}

/*
TestUnfinishedToken is scenario S2: a registered token string longer than
the remaining input never partially matches.
*/
func TestUnfinishedToken(t *testing.T) {
	l := mustLexer(t, "function")

	toks, diags := l.Lex("fun")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens (Text, EOF), got %d: %v", len(toks), toks)
	}
	if toks[0].Kind != token.KindText || toks[0].Stringify("fun") != "fun" {
		t.Fatalf("expected a single Text token spanning 'fun', got %v", toks[0])
	}
	if toks[1].Kind != token.KindEOF {
		t.Fatalf("expected EOF, got %v", toks[1])
	}
}

/*
TestWhitespaceTransparency is scenario S6: token boundaries tolerate any
amount of whitespace between registered tokens without altering the
registered-token sequence.
*/
func TestWhitespaceTransparency(t *testing.T) {
	l := mustLexer(t, "a", "b")

	for _, input := range []string{"ab", "a b", "a\tb", "a\nb"} {
		toks, diags := l.Lex(input)
		if len(diags) != 0 {
			t.Fatalf("input %q: unexpected diagnostics: %v", input, diags)
		}

		var regs []string
		for _, tk := range toks {
			if tk.Kind == token.KindRegistered {
				regs = append(regs, tk.Name)
			}
		}

		if len(regs) != 2 || regs[0] != "a" || regs[1] != "b" {
			t.Fatalf("input %q: expected registered tokens [a b], got %v", input, regs)
		}
	}
}

/*
TestGreedyLongestMatch checks that the lexer prefers the longest
registered token when several are a prefix of the remaining input.
*/
func TestGreedyLongestMatch(t *testing.T) {
	l := mustLexer(t, "=", "==", "=>")

	toks, _ := l.Lex("===>")

	var names []string
	for _, tk := range toks {
		if tk.Kind == token.KindRegistered {
			names = append(names, tk.Name)
		}
	}

	want := []string{"==", "=>"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

/*
TestIdempotentLexing checks that relexing the concatenation of the
stringified tokens of a previous lex reproduces the same token stream.
*/
func TestIdempotentLexing(t *testing.T) {
	l := mustLexer(t, "+", "-", "*", "/=", "Function")

	inputs := []string{
		"Function 1 +\n 2 * 3 - 4 /= 5",
		"",
		"   \t\n",
		"plain text with no symbols",
	}

	for _, input := range inputs {
		toks1, _ := l.Lex(input)

		var buf strings.Builder
		for _, tk := range toks1 {
			buf.WriteString(tk.Stringify(input))
		}

		toks2, _ := l.Lex(buf.String())

		if len(toks1) != len(toks2) {
			t.Fatalf("input %q: token count differs after relex: %d vs %d", input, len(toks1), len(toks2))
		}
		for i := range toks1 {
			if ok, msg := toks1[i].Equals(toks2[i], false); !ok {
				t.Fatalf("input %q: token %d differs: %s", input, i, msg)
			}
		}
	}
}

func TestAddTokenRejectsEmpty(t *testing.T) {
	l := New()
	if err := l.AddToken(""); err == nil {
		t.Fatalf("expected error for empty token string")
	}
}

func TestAddTokenRejectsTooLong(t *testing.T) {
	l := New()
	long := strings.Repeat("x", MaxTokenLen+1)
	if err := l.AddToken(long); err == nil {
		t.Fatalf("expected error for too-long token string")
	}
}

func TestInvalidUTF8DoesNotPanic(t *testing.T) {
	l := mustLexer(t, "+")
	input := "a" + string([]byte{0xff, 0xfe}) + "b"

	toks, diags := l.Lex(input)
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic for invalid UTF-8")
	}
	if toks[len(toks)-1].Kind != token.KindEOF {
		t.Fatalf("expected lexing to still terminate with EOF, got %v", toks[len(toks)-1])
	}
}
