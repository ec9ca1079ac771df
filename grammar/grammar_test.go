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

import "testing"

func TestAddNodeRejectsDuplicate(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{Name: "entry"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddNode(Node{Name: "entry"}); err == nil {
		t.Fatalf("expected error registering duplicate node")
	}
}

func TestAddEnumRejectsDuplicate(t *testing.T) {
	g := New()
	if err := g.AddEnum(Enumerator{Name: "ops"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddEnum(Enumerator{Name: "ops"}); err == nil {
		t.Fatalf("expected error registering duplicate enumerator")
	}
}

func TestVarKindLookup(t *testing.T) {
	n := Node{
		Name: "value",
		Vars: []VarDecl{{Name: "nodes", Kind: VarNodeList}},
	}

	if k, ok := n.VarKind("nodes"); !ok || k != VarNodeList {
		t.Fatalf("expected VarNodeList, got %v, %v", k, ok)
	}
	if _, ok := n.VarKind("missing"); ok {
		t.Fatalf("expected missing variable to be not-ok")
	}
}

func TestGlobalKindLookup(t *testing.T) {
	g := New()
	if err := g.AddGlobal("count", VarNumber); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddGlobal("count", VarNumber); err == nil {
		t.Fatalf("expected error declaring duplicate global")
	}
	if k, ok := g.GlobalKind("count"); !ok || k != VarNumber {
		t.Fatalf("expected VarNumber, got %v, %v", k, ok)
	}
}
