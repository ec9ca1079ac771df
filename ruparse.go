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
Package ruparse is a data-driven parser generator: grammars are
assembled as plain Go data (package grammar) and interpreted by a
recursive backtracking rule engine (package interp) against a token
stream produced by a greedy longest-match lexer (package lexer).

Typical use:

	p := ruparse.New()
	p.Lexer.AddTokens([]string{"+", "-", "*", "/="})
	p.Grammar.AddNode(grammar.Node{Name: "entry", Rules: []grammar.Rule{...}})
	p.Entry = "entry"

	result, err := p.Parse(text)
*/
package ruparse

import (
	"github.com/rgrammar/ruparse/grammar"
	"github.com/rgrammar/ruparse/interp"
	"github.com/rgrammar/ruparse/lexer"
	"github.com/rgrammar/ruparse/perr"
	"github.com/rgrammar/ruparse/tree"
)

/*
Parser wires together a Lexer, a Grammar and an entry node name into a
runnable parser. The zero value is not usable; construct with New.
*/
type Parser struct {
	Lexer   *lexer.Lexer
	Grammar *grammar.Grammar
	Entry   string
	Logger  Logger
}

/*
New returns a Parser with an empty Lexer and Grammar and a NullLogger.
Callers register tokens, nodes, enumerators and globals, then set Entry
before calling Parse.
*/
func New() *Parser {
	return &Parser{
		Lexer:   lexer.New(),
		Grammar: grammar.New(),
		Logger:  NewNullLogger(),
	}
}

/*
Result is the outcome of a successful parse: the entry node's parse
tree and the final state of the grammar's global variables.
*/
type Result struct {
	Entry   *tree.Node
	Globals map[string]tree.Value
}

/*
Parse lexes text and runs the rule interpreter from p.Entry against the
resulting token stream. Lexer diagnostics (invalid UTF-8) are discarded
here and are not fatal; a caller that wants them calls p.Lexer.Lex on
the same text. Grammar and token-set checks are run separately, through
validate.Check on p.Grammar/p.Lexer.
*/
func (p *Parser) Parse(text string) (*Result, *perr.Error) {
	tokens, _ := p.Lexer.Lex(text)

	entry, globals, err := interp.Parse(p.Grammar, p.Entry, text, tokens, p.Logger)
	if err != nil {
		return nil, err
	}

	return &Result{Entry: entry, Globals: globals}, nil
}
