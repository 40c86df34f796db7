/*
 * vex
 *
 * Copyright 2026 The Vex Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import "testing"

func TestLocalShadowsGlobal(t *testing.T) {
	global := NewGlobal()
	global.Declare("x", 100)

	local := NewLocal("main", global)
	local.Declare("x", 200)

	addr, ok := local.Lookup("x")
	if !ok || addr != 200 {
		t.Fatalf("got (%d, %v), want (200, true) — local should shadow global", addr, ok)
	}

	gAddr, ok := global.Lookup("x")
	if !ok || gAddr != 100 {
		t.Fatalf("global binding was mutated: got (%d, %v)", gAddr, ok)
	}
}

func TestLocalFallsBackToGlobal(t *testing.T) {
	global := NewGlobal()
	global.Declare("y", 42)

	local := NewLocal("main", global)

	addr, ok := local.Lookup("y")
	if !ok || addr != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", addr, ok)
	}
}

func TestLookupMissingVariable(t *testing.T) {
	local := NewLocal("main", NewGlobal())
	if _, ok := local.Lookup("nope"); ok {
		t.Fatal("expected Lookup to report not-found")
	}
}

func TestDuplicateDeclarationFails(t *testing.T) {
	s := NewGlobal()
	if err := s.Declare("x", 1); err != nil {
		t.Fatalf("first Declare failed: %v", err)
	}
	if err := s.Declare("x", 2); err == nil {
		t.Fatal("expected an error redeclaring x in the same scope")
	}
}

func TestGlobalHasNoParent(t *testing.T) {
	if NewGlobal().Parent() != nil {
		t.Fatal("global scope must have a nil parent")
	}
}
