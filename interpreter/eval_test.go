/*
 * vex
 *
 * Copyright 2026 The Vex Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vexlang/vex/parser"
	"github.com/vexlang/vex/util"
)

/*
run parses and evaluates src against a fresh Provider and returns
whatever the built-ins wrote to stdout.
*/
func run(t *testing.T, src string) (string, error) {
	t.Helper()

	p := NewProvider("test")
	var out bytes.Buffer
	p.Stdout = &out

	root, err := parser.ParseWithRuntime("test", src, p)
	if err != nil {
		return "", err
	}
	if err := root.Runtime.Validate(); err != nil {
		return "", err
	}
	_, err = root.Runtime.Eval(p.Global)
	return out.String(), err
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `func main() { print(1 + 2 * 3); print((1 + 2) * 3); }`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "7\n9\n" {
		t.Errorf("got %q", out)
	}
}

func TestRecursionAndReturn(t *testing.T) {
	out, err := run(t, `
		func fact(n) {
			if (n < 2) { return 1; }
			return n * fact(n - 1);
		}
		func main() { print(fact(5)); }
	`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "120\n" {
		t.Errorf("got %q", out)
	}
}

func TestWhileAndShadowing(t *testing.T) {
	out, err := run(t, `
		var x = 100;
		func main() {
			var x = 0;
			while (x < 3) { print(x); x = x + 1; }
			print(x);
		}
	`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "0\n1\n2\n3\n" {
		t.Errorf("got %q", out)
	}
}

func TestAddressOfAndDeref(t *testing.T) {
	out, err := run(t, `
		func main() {
			var a = 5;
			var p = &a;
			@p = 8;
			print(a);
		}
	`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "8\n" {
		t.Errorf("got %q", out)
	}
}

func TestArrayIndexing(t *testing.T) {
	out, err := run(t, `
		func main() {
			var a[3];
			a[0] = 10;
			a[1] = 20;
			a[2] = 30;
			print(a[0] + a[1] + a[2]);
		}
	`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "60\n" {
		t.Errorf("got %q", out)
	}
}

func TestStringPoolInterning(t *testing.T) {
	out, err := run(t, `func main() { puts("hi"); puts("hi"); }`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "hi\nhi\n" {
		t.Errorf("got %q", out)
	}
}

func TestMissingMainIsRuntimeError(t *testing.T) {
	_, err := run(t, `func other() { return; }`)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, util.ErrMissingMain) {
		t.Errorf("got %v, want ErrMissingMain", err)
	}
}

func TestUnknownVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `func main() { print(y); }`)
	if !errors.Is(err, util.ErrUnknownVariable) {
		t.Errorf("got %v, want ErrUnknownVariable", err)
	}
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		func add(a, b) { return a + b; }
		func main() { print(add(1)); }
	`)
	if !errors.Is(err, util.ErrArityMismatch) {
		t.Errorf("got %v, want ErrArityMismatch", err)
	}
}

func TestInvalidAssignTargetIsRuntimeError(t *testing.T) {
	_, err := run(t, `func main() { 1 + 2 = 3; }`)
	if !errors.Is(err, util.ErrInvalidAssignTarget) {
		t.Errorf("got %v, want ErrInvalidAssignTarget", err)
	}
}

func TestUserFunctionShadowingBuiltinIsRejected(t *testing.T) {
	_, err := run(t, `
		func print(a) { return a; }
		func main() { return; }
	`)
	if !errors.Is(err, util.ErrDuplicateDefinition) {
		t.Errorf("got %v, want ErrDuplicateDefinition", err)
	}
}

func TestCallDepthExceededIsRuntimeError(t *testing.T) {
	p := NewProvider("test")
	p.MaxCallDepth = 3
	var out bytes.Buffer
	p.Stdout = &out

	root, err := parser.ParseWithRuntime("test", `
		func recurse(n) { return recurse(n + 1); }
		func main() { return recurse(0); }
	`, p)
	if err != nil {
		t.Fatal(err)
	}
	if err := root.Runtime.Validate(); err != nil {
		t.Fatal(err)
	}

	_, err = root.Runtime.Eval(p.Global)
	if !errors.Is(err, util.ErrCallDepthExceeded) {
		t.Errorf("got %v, want ErrCallDepthExceeded", err)
	}
}

func TestLocalShadowsGlobalThenGlobalReappears(t *testing.T) {
	out, err := run(t, `
		var v = 1;
		func inner() { print(v); }
		func main() {
			var v = 2;
			print(v);
			inner();
		}
	`)
	if err != nil {
		t.Fatal(err)
	}
	// inner() has its own fresh local scope parented at the global
	// scope directly (vex has no closures), so it never sees main's
	// local v=2 — only the global v=1.
	if out != "2\n1\n" {
		t.Errorf("got %q", out)
	}
}
