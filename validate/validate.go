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
Package validate is the grammar static validator: a documented,
separately testable pass over a constructed grammar.Grammar and
lexer.Lexer. It is never called implicitly by interp.Parse — a caller
that wants it runs Check explicitly, typically in a test or at
grammar-construction time in development.
*/
package validate

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rgrammar/ruparse/grammar"
	"github.com/rgrammar/ruparse/lexer"
	"github.com/rgrammar/ruparse/token"
)

/*
Severity distinguishes a grammar defect (Error) from a style/quality
observation (Warning) that does not prevent parsing.
*/
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "Warning"
	}
	return "Error"
}

/*
Issue ids, following the (id, header) convention perr.Error and
lexer.Diagnostic use, in their own numeric range so they never collide
with a parse-time perr.Code.
*/
const (
	UndeclaredVariable = 300
	VariableKindMismatch = 301
	DuplicateLabel      = 302
	UnresolvedGoto      = 303
	UnknownNode         = 304
	UnknownEnumerator   = 305
	UnknownToken        = 306

	OddTokenString = 320
	UnusedLabel    = 321
	DeprecatedAny  = 322
)

var headers = map[int]string{
	UndeclaredVariable: "UndeclaredVariable",
	VariableKindMismatch: "VariableKindMismatch",
	DuplicateLabel:      "DuplicateLabel",
	UnresolvedGoto:      "UnresolvedGoto",
	UnknownNode:         "UnknownNode",
	UnknownEnumerator:   "UnknownEnumerator",
	UnknownToken:        "UnknownToken",
	OddTokenString:      "OddTokenString",
	UnusedLabel:         "UnusedLabel",
	DeprecatedAny:       "DeprecatedAny",
}

/*
Issue is a single validator finding.
*/
type Issue struct {
	Severity Severity
	Code     int
	Header   string
	Node     string // the grammar node this issue was found in, if any
	Message  string
}

func (i Issue) String() string {
	if i.Node != "" {
		return fmt.Sprintf("%s %d %s (node %q): %s", i.Severity, i.Code, i.Header, i.Node, i.Message)
	}
	return fmt.Sprintf("%s %d %s: %s", i.Severity, i.Code, i.Header, i.Message)
}

func issue(sev Severity, code int, node, message string) Issue {
	return Issue{Severity: sev, Code: code, Header: headers[code], Node: node, Message: message}
}

/*
MaxTokenStringLen is the length, in runes, above which a registered token
string is flagged as unusually long. Check always uses this fixed value;
it takes no option to change it.
*/
const MaxTokenStringLen = 3

/*
Check runs every validator pass against g and lx, returning every
finding. The returned slice is empty, not nil, if nothing was found.
Order is: errors and warnings are interleaved in the order their checks
run, not sorted by severity.
*/
func Check(g *grammar.Grammar, lx *lexer.Lexer) []Issue {
	issues := []Issue{}

	issues = append(issues, checkTokenStrings(lx)...)

	for _, name := range g.NodeNames() {
		n, _ := g.Node(name)
		issues = append(issues, checkNode(g, lx, n)...)
	}

	return issues
}

func checkTokenStrings(lx *lexer.Lexer) []Issue {
	var issues []Issue
	for _, s := range lx.Tokens() {
		if s == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(s)
		if unicode.IsDigit(r) {
			issues = append(issues, issue(SeverityWarning, OddTokenString, "", fmt.Sprintf("token %q starts with a digit", s)))
		}
		for _, c := range s {
			if unicode.IsSpace(c) {
				issues = append(issues, issue(SeverityWarning, OddTokenString, "", fmt.Sprintf("token %q contains whitespace", s)))
				break
			}
		}
		if utf8.RuneCountInString(s) > MaxTokenStringLen {
			issues = append(issues, issue(SeverityWarning, OddTokenString, "", fmt.Sprintf("token %q is longer than %d runes", s, MaxTokenStringLen)))
		}
		for _, c := range s {
			if c > unicode.MaxASCII {
				issues = append(issues, issue(SeverityWarning, OddTokenString, "", fmt.Sprintf("token %q contains non-ASCII characters", s)))
				break
			}
		}
	}
	return issues
}

/*
nodeCheck carries the per-node state a validator pass over one node's
rule tree needs: which labels are declared, which are referenced by a
Goto, to report duplicates and dead labels.
*/
type nodeCheck struct {
	g       *grammar.Grammar
	lx      *lexer.Lexer
	node    *grammar.Node
	labels  map[string]bool
	used    map[string]bool
	issues  []Issue
}

func checkNode(g *grammar.Grammar, lx *lexer.Lexer, n *grammar.Node) []Issue {
	nc := &nodeCheck{g: g, lx: lx, node: n, labels: map[string]bool{}, used: map[string]bool{}}
	nc.walkRules(n.Rules)

	for label := range nc.labels {
		if !nc.used[label] {
			nc.issues = append(nc.issues, issue(SeverityWarning, UnusedLabel, n.Name, fmt.Sprintf("label %q is never the target of a Goto", label)))
		}
	}
	for label := range nc.used {
		if !nc.labels[label] {
			nc.issues = append(nc.issues, issue(SeverityError, UnresolvedGoto, n.Name, fmt.Sprintf("goto target %q has no matching Label", label)))
		}
	}

	return nc.issues
}

func (nc *nodeCheck) walkRules(rules []grammar.Rule) {
	seenLabelHere := map[string]bool{}
	for _, r := range rules {
		switch r.Kind {
		case grammar.RuleIs, grammar.RuleIsnt, grammar.RuleMaybe, grammar.RuleWhile, grammar.RuleUntil:
			nc.checkMatch(r.Match)
			nc.checkParams(r.Params)
			nc.walkRules(r.Children)
			nc.walkRules(r.IsntChildren)

		case grammar.RuleIsOneOf, grammar.RuleMaybeOneOf, grammar.RuleUntilOneOf:
			for _, alt := range r.Alternatives {
				nc.checkMatch(alt.Match)
				nc.checkParams(alt.Params)
				nc.walkRules(alt.Children)
			}
			nc.walkRules(r.IsntChildren)

		case grammar.RuleLoop:
			nc.walkRules(r.Children)

		case grammar.RuleCommandKind:
			nc.checkCommand(r.Command, seenLabelHere)

		case grammar.RuleDebug:
			// No references to validate.
		}
	}
}

func (nc *nodeCheck) checkCommand(c grammar.Command, seenLabelHere map[string]bool) {
	switch c.Kind {
	case grammar.CmdCompare:
		nc.checkVarRef(c.Left)
		nc.checkVarRef(c.Right)
		nc.walkRules(c.Children)
	case grammar.CmdLabel:
		if nc.labels[c.Label] || seenLabelHere[c.Label] {
			nc.issues = append(nc.issues, issue(SeverityError, DuplicateLabel, nc.node.Name, fmt.Sprintf("label %q declared more than once", c.Label)))
		}
		nc.labels[c.Label] = true
		seenLabelHere[c.Label] = true
	case grammar.CmdGoto:
		nc.used[c.Label] = true
	}
}

func (nc *nodeCheck) checkMatch(mt grammar.MatchToken) {
	switch mt.Kind {
	case grammar.MatchNode:
		if _, ok := nc.g.Node(mt.NodeName); !ok {
			nc.issues = append(nc.issues, issue(SeverityError, UnknownNode, nc.node.Name, fmt.Sprintf("references undeclared node %q", mt.NodeName)))
		}
	case grammar.MatchEnum:
		e, ok := nc.g.Enum(mt.EnumName)
		if !ok {
			nc.issues = append(nc.issues, issue(SeverityError, UnknownEnumerator, nc.node.Name, fmt.Sprintf("references undeclared enumerator %q", mt.EnumName)))
			return
		}
		for _, alt := range e.Alternatives {
			nc.checkMatch(alt)
		}
	case grammar.MatchTok:
		if mt.TokenKind == token.KindRegistered && !nc.lx.HasToken(mt.TokenName) {
			nc.issues = append(nc.issues, issue(SeverityError, UnknownToken, nc.node.Name, fmt.Sprintf("references unregistered token %q", mt.TokenName)))
		}
	case grammar.MatchAny:
		nc.issues = append(nc.issues, issue(SeverityWarning, DeprecatedAny, nc.node.Name, "use of deprecated Any match"))
	}
}

func (nc *nodeCheck) checkParams(params []grammar.Parameter) {
	for _, p := range params {
		switch p.Kind {
		case grammar.ParamSet:
			nc.checkVarKind(p.Var, grammar.VarNode, grammar.VarNodeList)
		case grammar.ParamIncrement, grammar.ParamDecrement:
			nc.checkVarKind(p.Var, grammar.VarNumber)
		case grammar.ParamTrue, grammar.ParamFalse:
			nc.checkVarKind(p.Var, grammar.VarBoolean)
		case grammar.ParamGoto:
			nc.used[p.Label] = true
		}
	}
}

func (nc *nodeCheck) checkVarRef(ref grammar.VarRef) {
	if ref.Global {
		if _, ok := nc.g.GlobalKind(ref.Name); !ok {
			nc.issues = append(nc.issues, issue(SeverityError, UndeclaredVariable, nc.node.Name, fmt.Sprintf("undeclared global variable %s", ref)))
		}
		return
	}
	if _, ok := nc.node.VarKind(ref.Name); !ok {
		nc.issues = append(nc.issues, issue(SeverityError, UndeclaredVariable, nc.node.Name, fmt.Sprintf("undeclared variable %s", ref)))
	}
}

func (nc *nodeCheck) checkVarKind(ref grammar.VarRef, want ...grammar.VariableKind) {
	var kind grammar.VariableKind
	var ok bool
	if ref.Global {
		kind, ok = nc.g.GlobalKind(ref.Name)
	} else {
		kind, ok = nc.node.VarKind(ref.Name)
	}
	if !ok {
		nc.issues = append(nc.issues, issue(SeverityError, UndeclaredVariable, nc.node.Name, fmt.Sprintf("undeclared variable %s", ref)))
		return
	}
	for _, w := range want {
		if kind == w {
			return
		}
	}
	nc.issues = append(nc.issues, issue(SeverityError, VariableKindMismatch, nc.node.Name, fmt.Sprintf("variable %s has kind %s, not usable here", ref, kind)))
}
