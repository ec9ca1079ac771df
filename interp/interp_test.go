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
	"testing"

	"github.com/rgrammar/ruparse/grammar"
	"github.com/rgrammar/ruparse/lexer"
	"github.com/rgrammar/ruparse/perr"
	"github.com/rgrammar/ruparse/tree"
)

func letStatementGrammar(t *testing.T) (*grammar.Grammar, *lexer.Lexer) {
	t.Helper()

	lx := lexer.New()
	if err := lx.AddTokens([]string{"=", ":", ";", "+", "-", "/", "*"}); err != nil {
		t.Fatalf("AddTokens: %v", err)
	}

	g := grammar.New()
	g.EOFRequired = true

	if err := g.AddEnum(grammar.Enumerator{
		Name:         "operators",
		Alternatives: []grammar.MatchToken{grammar.Tok("+"), grammar.Tok("-"), grammar.Tok("*"), grammar.Tok("/")},
	}); err != nil {
		t.Fatalf("AddEnum: %v", err)
	}

	if err := g.AddNode(grammar.Node{
		Name: "value",
		Vars: []grammar.VarDecl{{Name: "nodes", Kind: grammar.VarNodeList}},
		Rules: []grammar.Rule{
			grammar.Is(grammar.TextTok(), grammar.Set(grammar.Local("nodes")), grammar.Commit(true)),
			grammar.While(grammar.EnumRef("operators"), grammar.Set(grammar.Local("nodes"))).
				Then(grammar.Is(grammar.TextTok(), grammar.Set(grammar.Local("nodes")))),
		},
	}); err != nil {
		t.Fatalf("AddNode value: %v", err)
	}

	if err := g.AddNode(grammar.Node{
		Name: "KWLet",
		Vars: []grammar.VarDecl{
			{Name: "ident", Kind: grammar.VarNode},
			{Name: "type", Kind: grammar.VarNode},
			{Name: "value", Kind: grammar.VarNode},
		},
		Rules: []grammar.Rule{
			grammar.Is(grammar.Word("let"), grammar.Commit(true), grammar.NodeStart()),
			grammar.Is(grammar.TextTok(), grammar.Set(grammar.Local("ident"))),
			grammar.Maybe(grammar.Tok(":")).Then(grammar.Is(grammar.TextTok(), grammar.Set(grammar.Local("type")))),
			grammar.Maybe(grammar.Tok("=")).Then(grammar.Is(grammar.NodeRef("value"), grammar.Set(grammar.Local("value")))),
			grammar.Is(grammar.Tok(";"), grammar.Hint("Close let statement with a semicolon")),
		},
	}); err != nil {
		t.Fatalf("AddNode KWLet: %v", err)
	}

	if err := g.AddNode(grammar.Node{
		Name: "entry",
		Vars: []grammar.VarDecl{{Name: "lets", Kind: grammar.VarNodeList}},
		Rules: []grammar.Rule{
			grammar.While(grammar.NodeRef("KWLet"), grammar.Set(grammar.Local("lets"))),
		},
	}); err != nil {
		t.Fatalf("AddNode entry: %v", err)
	}

	return g, lx
}

func TestS3LetStatementSuccess(t *testing.T) {
	g, lx := letStatementGrammar(t)
	text := "let   danda = sdf;\n\tlet b;"
	tokens, _ := lx.Lex(text)

	entry, _, err := Parse(g, "entry", text, tokens, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lets, ok := entry.Get("lets")
	if !ok || lets.Kind != tree.ValNodeList {
		t.Fatalf("expected lets NodeList, got %v", lets)
	}
	if len(lets.NodeList) != 2 {
		t.Fatalf("expected 2 let statements, got %d", len(lets.NodeList))
	}

	first := lets.NodeList[0]
	ident, _ := first.Get("ident")
	if ident.Node == nil || ident.Node.Text(text) != "danda" {
		t.Fatalf("expected first ident %q, got %+v", "danda", ident)
	}
	value, _ := first.Get("value")
	if value.Node == nil {
		t.Fatalf("expected first value set")
	}
	nodes, _ := value.Node.Get("nodes")
	if len(nodes.NodeList) != 1 || nodes.NodeList[0].Text(text) != "sdf" {
		t.Fatalf("expected value.nodes = [sdf], got %+v", nodes)
	}

	second := lets.NodeList[1]
	ident2, _ := second.Get("ident")
	if ident2.Node == nil || ident2.Node.Text(text) != "b" {
		t.Fatalf("expected second ident %q, got %+v", "b", ident2)
	}
	value2, _ := second.Get("value")
	if value2.Node != nil {
		t.Fatalf("expected second value unset, got %+v", value2)
	}
}

func TestS3LetStatementFailureWithHint(t *testing.T) {
	g, lx := letStatementGrammar(t)
	text := "let   danda sagsdfg= sdf;\n\tlet b"
	tokens, _ := lx.Lex(text)

	_, _, err := Parse(g, "entry", text, tokens, nil)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if err.Code != perr.UnexpectedToken {
		t.Fatalf("expected UnexpectedToken, got %v (%s)", err.Code, err.Message)
	}
	if err.Hint == nil || *err.Hint != "Close let statement with a semicolon" {
		t.Fatalf("expected the semicolon hint, got %v", err.Hint)
	}
}

func TestS4UntilScan(t *testing.T) {
	lx := lexer.New()
	if err := lx.AddToken("\""); err != nil {
		t.Fatalf("AddToken: %v", err)
	}

	g := grammar.New()
	g.EOFRequired = true
	if err := g.AddNode(grammar.Node{
		Name: "string",
		Rules: []grammar.Rule{
			grammar.Is(grammar.Tok("\""), grammar.NodeStart(), grammar.Commit(true)),
			grammar.Until(grammar.Tok("\""), grammar.NodeEnd()),
		},
	}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	text := "\"hello\""
	tokens, _ := lx.Lex(text)

	n, _, err := Parse(g, "string", text, tokens, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Text(text) != text {
		t.Fatalf("expected span to cover %q, got %q", text, n.Text(text))
	}
}

func TestS5CommitPropagation(t *testing.T) {
	g := grammar.New()

	if err := g.AddNode(grammar.Node{
		Name: "X",
		Rules: []grammar.Rule{
			grammar.Is(grammar.Word("foo"), grammar.Commit(true)),
			grammar.Is(grammar.Word("bar")),
		},
	}); err != nil {
		t.Fatalf("AddNode X: %v", err)
	}

	if err := g.AddNode(grammar.Node{
		Name: "entry",
		Vars: []grammar.VarDecl{{Name: "x", Kind: grammar.VarNode}},
		Rules: []grammar.Rule{
			grammar.Maybe(grammar.NodeRef("X")).
				Then(grammar.CommandRule(grammar.Compare(grammar.Local("x"), grammar.Local("x"), grammar.OpEqual))).
				Else(grammar.Is(grammar.Word("fallback"))),
		},
	}); err != nil {
		t.Fatalf("AddNode entry: %v", err)
	}

	lx := lexer.New()
	text := "foo baz"
	tokens, _ := lx.Lex(text)

	_, _, err := Parse(g, "entry", text, tokens, nil)
	if err == nil {
		t.Fatalf("expected a hard failure")
	}
	if !err.Commit {
		t.Fatalf("expected a committed (hard) failure, got %+v", err)
	}
}

func whitespaceTransparencyGrammar(t *testing.T) (*grammar.Grammar, *lexer.Lexer) {
	t.Helper()
	lx := lexer.New()
	if err := lx.AddTokens([]string{"a", "b"}); err != nil {
		t.Fatalf("AddTokens: %v", err)
	}
	g := grammar.New()
	g.EOFRequired = true
	if err := g.AddNode(grammar.Node{
		Name: "entry",
		Rules: []grammar.Rule{
			grammar.Is(grammar.Tok("a")),
			grammar.Is(grammar.Tok("b")),
		},
	}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	return g, lx
}

func TestS6WhitespaceTransparency(t *testing.T) {
	g, lx := whitespaceTransparencyGrammar(t)

	for _, text := range []string{"ab", "a b", "a\tb", "a\nb"} {
		tokens, _ := lx.Lex(text)
		n, _, err := Parse(g, "entry", text, tokens, nil)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", text, err)
		}
		if n.First != 0 {
			t.Fatalf("input %q: expected span to start at 0, got %d", text, n.First)
		}
	}
}

func TestCursorRollbackOnFailure(t *testing.T) {
	g := grammar.New()
	if err := g.AddNode(grammar.Node{
		Name: "entry",
		Rules: []grammar.Rule{
			grammar.Is(grammar.Word("foo")),
			grammar.Is(grammar.Word("bar")),
		},
	}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	lx := lexer.New()
	text := "foo baz"
	tokens, _ := lx.Lex(text)

	st := &state{tokens: tokens, text: text, grammar: g, globals: map[string]tree.Value{}, logger: discardLogger{}}
	_, cur, err := st.parseNode("entry", cursor{idx: 0})
	if err == nil {
		t.Fatalf("expected failure")
	}
	if cur.idx != 0 {
		t.Fatalf("expected cursor rolled back to 0, got %d", cur.idx)
	}
}

func TestEOFRequiredRejectsTrailingInput(t *testing.T) {
	g := grammar.New()
	g.EOFRequired = true
	if err := g.AddNode(grammar.Node{
		Name: "entry",
		Rules: []grammar.Rule{
			grammar.Is(grammar.Word("foo")),
		},
	}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	lx := lexer.New()
	text := "foo bar"
	tokens, _ := lx.Lex(text)

	_, _, err := Parse(g, "entry", text, tokens, nil)
	if err == nil {
		t.Fatalf("expected MissingEof error")
	}
	if err.Code != perr.MissingEof {
		t.Fatalf("expected MissingEof, got %v", err.Code)
	}
}

func TestMissingEntry(t *testing.T) {
	g := grammar.New()
	lx := lexer.New()
	tokens, _ := lx.Lex("")

	_, _, err := Parse(g, "nosuch", "", tokens, nil)
	if err == nil || err.Code != perr.MissingEntry {
		t.Fatalf("expected MissingEntry, got %v", err)
	}
}

func TestBreakAbsorbedByWhile(t *testing.T) {
	g := grammar.New()
	if err := g.AddNode(grammar.Node{
		Name: "entry",
		Vars: []grammar.VarDecl{{Name: "count", Kind: grammar.VarNumber}},
		Rules: []grammar.Rule{
			grammar.While(grammar.Tok("a"), grammar.Increment(grammar.Local("count")), grammar.Break(1)),
		},
	}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	lx := lexer.New()
	if err := lx.AddToken("a"); err != nil {
		t.Fatalf("AddToken: %v", err)
	}
	text := "aaa"
	tokens, _ := lx.Lex(text)

	entry, _, err := Parse(g, "entry", text, tokens, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count, _ := entry.Get("count")
	if count.Num != 1 {
		t.Fatalf("expected the loop to break after one iteration, count=%d", count.Num)
	}
}
