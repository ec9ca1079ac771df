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

import "fmt"

/*
RuleKind discriminates the eleven Rule alternatives a grammar can use.
*/
type RuleKind int

const (
	RuleIs RuleKind = iota
	RuleIsnt
	RuleIsOneOf
	RuleMaybe
	RuleMaybeOneOf
	RuleWhile
	RuleLoop
	RuleUntil
	RuleUntilOneOf
	RuleCommandKind
	RuleDebug
)

func (k RuleKind) String() string {
	switch k {
	case RuleIs:
		return "Is"
	case RuleIsnt:
		return "Isnt"
	case RuleIsOneOf:
		return "IsOneOf"
	case RuleMaybe:
		return "Maybe"
	case RuleMaybeOneOf:
		return "MaybeOneOf"
	case RuleWhile:
		return "While"
	case RuleLoop:
		return "Loop"
	case RuleUntil:
		return "Until"
	case RuleUntilOneOf:
		return "UntilOneOf"
	case RuleCommandKind:
		return "Command"
	case RuleDebug:
		return "Debug"
	}
	return fmt.Sprintf("RuleKind(%d)", int(k))
}

/*
Alternative is one option of an IsOneOf/MaybeOneOf/UntilOneOf rule: a
match plus the parameters and children to run when it wins.
*/
type Alternative struct {
	Match    MatchToken
	Params   []Parameter
	Children []Rule
}

/*
Rule is a node in a grammar's rule tree. It is a tagged union over the
eleven rule kinds; only the fields relevant to Kind are meaningful for
any given Rule value.
*/
type Rule struct {
	Kind RuleKind

	// Is / Isnt / Maybe / While / Until: the predicate tried at the cursor.
	Match MatchToken

	// Is / Isnt / Maybe (is-branch) / While / Loop / Until: rules to run
	// after a successful (or, for Isnt, a failed) match.
	Children []Rule

	// Is / Maybe / While / Until: parameters applied after a successful match.
	Params []Parameter

	// IsOneOf / MaybeOneOf / UntilOneOf: alternatives tried in order.
	Alternatives []Alternative

	// Maybe / MaybeOneOf: rules to run when nothing matched.
	IsntChildren []Rule

	// Command: the command to execute.
	Command Command

	// Debug: the diagnostic target description; no semantic effect.
	DebugTarget string
}

func Is(m MatchToken, params ...Parameter) Rule {
	return Rule{Kind: RuleIs, Match: m, Params: params}
}

/*
Then attaches child rules to a rule that carries a Children slot
(Is/Isnt/Maybe's is-branch/While/Until). It returns a new Rule value; the
original is left unmodified.
*/
func (r Rule) Then(children ...Rule) Rule {
	r.Children = children
	return r
}

/*
Isnt succeeds only when m fails to match. Isnt carries a Params slot for
symmetry with Is, but those parameters are never applied — there is no
successful match to apply them to. Use Then to attach the children run
on a successful (i.e. non-matching) Isnt.
*/
func Isnt(m MatchToken, params ...Parameter) Rule {
	return Rule{Kind: RuleIsnt, Match: m, Params: params}
}

func IsOneOf(alts ...Alternative) Rule {
	return Rule{Kind: RuleIsOneOf, Alternatives: alts}
}

func Maybe(m MatchToken, params ...Parameter) Rule {
	return Rule{Kind: RuleMaybe, Match: m, Params: params}
}

/*
Else attaches the isnt-branch to a Maybe/MaybeOneOf rule.
*/
func (r Rule) Else(children ...Rule) Rule {
	r.IsntChildren = children
	return r
}

func MaybeOneOf(alts ...Alternative) Rule {
	return Rule{Kind: RuleMaybeOneOf, Alternatives: alts}
}

func While(m MatchToken, params ...Parameter) Rule {
	return Rule{Kind: RuleWhile, Match: m, Params: params}
}

func Loop(children ...Rule) Rule {
	return Rule{Kind: RuleLoop, Children: children}
}

func Until(m MatchToken, params ...Parameter) Rule {
	return Rule{Kind: RuleUntil, Match: m, Params: params}
}

func UntilOneOf(alts ...Alternative) Rule {
	return Rule{Kind: RuleUntilOneOf, Alternatives: alts}
}

func CommandRule(c Command) Rule {
	return Rule{Kind: RuleCommandKind, Command: c}
}

func Debug(target string) Rule {
	return Rule{Kind: RuleDebug, DebugTarget: target}
}

/*
Opt builds an Alternative for use inside IsOneOf/MaybeOneOf/UntilOneOf.
*/
func Opt(m MatchToken, params ...Parameter) Alternative {
	return Alternative{Match: m, Params: params}
}

/*
Then attaches child rules to an Alternative.
*/
func (a Alternative) Then(children ...Rule) Alternative {
	a.Children = children
	return a
}
