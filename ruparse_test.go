/*
 * ruparse
 *
 * Copyright 2024 The ruparse Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ruparse

import (
	"bytes"
	"testing"

	"github.com/rgrammar/ruparse/grammar"
)

func TestParseEndToEnd(t *testing.T) {
	p := New()
	if err := p.Lexer.AddTokens([]string{"+", "-", "*", "/"}); err != nil {
		t.Fatalf("AddTokens: %v", err)
	}
	if err := p.Grammar.AddEnum(grammar.Enumerator{
		Name:         "operators",
		Alternatives: []grammar.MatchToken{grammar.Tok("+"), grammar.Tok("-"), grammar.Tok("*"), grammar.Tok("/")},
	}); err != nil {
		t.Fatalf("AddEnum: %v", err)
	}
	if err := p.Grammar.AddNode(grammar.Node{
		Name: "entry",
		Vars: []grammar.VarDecl{{Name: "nodes", Kind: grammar.VarNodeList}},
		Rules: []grammar.Rule{
			grammar.Is(grammar.TextTok(), grammar.Set(grammar.Local("nodes"))),
			grammar.While(grammar.EnumRef("operators")).Then(
				grammar.Is(grammar.TextTok(), grammar.Set(grammar.Local("nodes"))),
			),
		},
	}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	p.Grammar.EOFRequired = true
	p.Entry = "entry"

	result, err := p.Parse("1 + 2 - 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nodes, _ := result.Entry.Get("nodes")
	if len(nodes.NodeList) != 3 {
		t.Fatalf("expected 3 operands, got %d", len(nodes.NodeList))
	}
}

func TestParseReportsMissingEntry(t *testing.T) {
	p := New()
	p.Entry = "nosuch"

	if _, err := p.Parse("anything"); err == nil {
		t.Fatalf("expected a MissingEntry error")
	}
}

func TestNullLoggerDiscardsMessages(t *testing.T) {
	l := NewNullLogger()
	l.LogInfo("hello")
	l.LogError("boom")
	l.LogDebug("trace")
}

func TestMemoryLoggerRetainsBoundedHistory(t *testing.T) {
	l := NewMemoryLogger(2)
	l.LogInfo("one")
	l.LogInfo("two")
	l.LogInfo("three")

	got := l.Slice()
	if len(got) != 2 {
		t.Fatalf("expected ring buffer to cap at 2 entries, got %d: %v", len(got), got)
	}
	if got[0] != "two" || got[1] != "three" {
		t.Fatalf("expected the oldest entry to be evicted, got %v", got)
	}
}

func TestBufferLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewBufferLogger(&buf)
	l.LogInfo("hello")
	l.LogError("boom")

	got := buf.String()
	if !bytes.Contains([]byte(got), []byte("hello")) || !bytes.Contains([]byte(got), []byte("error: boom")) {
		t.Fatalf("unexpected buffer contents: %q", got)
	}
}
