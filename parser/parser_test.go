/*
 * vex
 *
 * Copyright 2026 The Vex Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string) *Node {
	t.Helper()
	n, err := Parse("test", src)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return n
}

func TestParseEmptyProgram(t *testing.T) {
	root := mustParse(t, "")
	if root.Kind != NodeRoot || len(root.Children) != 0 {
		t.Fatalf("got %v, want empty Root", root)
	}
}

func TestParseFuncDefNoParams(t *testing.T) {
	root := mustParse(t, "func main() { }")
	if len(root.Children) != 1 {
		t.Fatalf("got %d top-level defs, want 1", len(root.Children))
	}
	fd := root.Children[0]
	if fd.Kind != NodeFuncDef || fd.Token.Text != "main" {
		t.Fatalf("got %v, want FuncDef(main)", fd)
	}
	if len(fd.Children[0].Children) != 0 {
		t.Fatalf("expected empty param list, got %v", fd.Children[0])
	}
}

func TestParseFuncDefWithParams(t *testing.T) {
	root := mustParse(t, "func add(a, b) { return a + b; }")
	fd := root.Children[0]
	params := fd.Children[0]
	if len(params.Children) != 2 || params.Children[0].Token.Text != "a" || params.Children[1].Token.Text != "b" {
		t.Fatalf("got params %v, want [a b]", params.Children)
	}
}

func TestParseVarDefWithInitializer(t *testing.T) {
	root := mustParse(t, "var x = 5;")
	vd := root.Children[0]
	if vd.Kind != NodeVarDef || vd.Token.Text != "x" {
		t.Fatalf("got %v, want VarDef(x)", vd)
	}
	if len(vd.Children) != 1 || vd.Children[0].Kind != NodeNumber || vd.Children[0].Token.Num != 5 {
		t.Fatalf("got init %v, want Number(5)", vd.Children)
	}
}

func TestParseVarDefNoInitializer(t *testing.T) {
	root := mustParse(t, "var x;")
	vd := root.Children[0]
	if vd.Kind != NodeVarDef || len(vd.Children) != 0 {
		t.Fatalf("got %v, want bare VarDef(x)", vd)
	}
}

func TestParseArrDef(t *testing.T) {
	root := mustParse(t, "var a[3];")
	ad := root.Children[0]
	if ad.Kind != NodeArrDef || ad.Token.Text != "a" {
		t.Fatalf("got %v, want ArrDef(a)", ad)
	}
	if ad.Children[0].Kind != NodeNumber || ad.Children[0].Token.Num != 3 {
		t.Fatalf("got size %v, want Number(3)", ad.Children[0])
	}
}

func TestParseArithmeticPrecedence(t *testing.T) {
	root := mustParse(t, "func main() { return 1 + 2 * 3; }")
	ret := root.Children[0].Children[1].Children[0]
	if ret.Kind != NodeReturn {
		t.Fatalf("got %v, want Return", ret)
	}
	expr := ret.Children[0]
	if expr.Kind != NodeAdd {
		t.Fatalf("got %v, want Add at top (mul binds tighter)", expr.Kind)
	}
	if expr.Children[1].Kind != NodeMul {
		t.Fatalf("got %v, want Mul as right operand of Add", expr.Children[1].Kind)
	}
}

func TestParseParenthesesOverridePrecedence(t *testing.T) {
	root := mustParse(t, "func main() { return (1 + 2) * 3; }")
	expr := root.Children[0].Children[1].Children[0].Children[0]
	if expr.Kind != NodeMul {
		t.Fatalf("got %v, want Mul at top", expr.Kind)
	}
	if expr.Children[0].Kind != NodeAdd {
		t.Fatalf("got %v, want Add as left operand of Mul", expr.Children[0].Kind)
	}
}

func TestParseAssignRightAssociative(t *testing.T) {
	root := mustParse(t, "func main() { a = b = 5; }")
	expr := root.Children[0].Children[1].Children[0]
	if expr.Kind != NodeAssign {
		t.Fatalf("got %v, want Assign", expr.Kind)
	}
	rhs := expr.Children[1]
	if rhs.Kind != NodeAssign {
		t.Fatalf("got %v, want nested Assign on the rhs (right-assoc)", rhs.Kind)
	}
}

func TestParseDanglingElseBindsToInnermostIf(t *testing.T) {
	root := mustParse(t, `
		func main() {
			if (1) if (2) a = 1; else a = 2;
		}
	`)
	outer := root.Children[0].Children[1].Children[0]
	if outer.Kind != NodeIf {
		t.Fatalf("got %v, want outer If", outer.Kind)
	}
	if len(outer.Children) != 2 {
		t.Fatalf("outer If has an else-branch, want none: %v", outer.Children)
	}
	inner := outer.Children[1]
	if inner.Kind != NodeIf || len(inner.Children) != 3 {
		t.Fatalf("got %v, want inner If with an else-branch", inner.Kind)
	}
}

func TestParseWhile(t *testing.T) {
	root := mustParse(t, "func main() { while (x < 3) { x = x + 1; } }")
	w := root.Children[0].Children[1].Children[0]
	if w.Kind != NodeWhile {
		t.Fatalf("got %v, want While", w.Kind)
	}
	if w.Children[0].Kind != NodeLess {
		t.Fatalf("got %v, want Less condition", w.Children[0].Kind)
	}
}

func TestParseAddressOfAndDeref(t *testing.T) {
	root := mustParse(t, "func main() { var p = &a; @p = @p + 1; }")
	body := root.Children[0].Children[1]

	addr := body.Children[0].Children[0]
	if addr.Kind != NodeAddr || addr.Children[0].Token.Text != "a" {
		t.Fatalf("got %v, want Addr(a)", addr)
	}

	assign := body.Children[1]
	if assign.Kind != NodeAssign {
		t.Fatalf("got %v, want Assign for @p = ...", assign.Kind)
	}
	if assign.Children[0].Kind != NodeDeref {
		t.Fatalf("got %v, want Deref on lhs of @p = ...", assign.Children[0].Kind)
	}
}

func TestParseDerefParenthesizedExpr(t *testing.T) {
	// `@(a + i*8)` must dereference the whole parenthesized expr, not
	// just `a`.
	root := mustParse(t, "func main() { return @(a + i * 8); }")
	ret := root.Children[0].Children[1].Children[0]
	deref := ret.Children[0]
	if deref.Kind != NodeDeref {
		t.Fatalf("got %v, want Deref", deref.Kind)
	}
	if deref.Children[0].Kind != NodeAdd {
		t.Fatalf("got %v, want Add operand under Deref", deref.Children[0].Kind)
	}
}

func TestParseIndexDesugarsToDerefAddMul(t *testing.T) {
	root := mustParse(t, "func main() { return a[i]; }")
	ret := root.Children[0].Children[1].Children[0]
	deref := ret.Children[0]

	if deref.Kind != NodeDeref {
		t.Fatalf("got %v, want Deref (desugared index)", deref.Kind)
	}
	add := deref.Children[0]
	if add.Kind != NodeAdd || add.Children[0].Token.Text != "a" {
		t.Fatalf("got %v, want Add(a, Mul(i, 8))", add)
	}
	mul := add.Children[1]
	if mul.Kind != NodeMul || mul.Children[1].Token.Num != 8 {
		t.Fatalf("got %v, want Mul(i, 8)", mul)
	}
}

func TestParseFuncCallEmptyArgs(t *testing.T) {
	root := mustParse(t, "func main() { return f(); }")
	call := root.Children[0].Children[1].Children[0].Children[0]
	if call.Kind != NodeFuncCall || len(call.Children[0].Children) != 0 {
		t.Fatalf("got %v, want FuncCall(f) with no args", call)
	}
}

func TestParseFuncCallMultipleArgs(t *testing.T) {
	root := mustParse(t, "func main() { return f(1, 2, 3); }")
	call := root.Children[0].Children[1].Children[0].Children[0]
	if len(call.Children[0].Children) != 3 {
		t.Fatalf("got %d args, want 3", len(call.Children[0].Children))
	}
}

func TestParseTooManyParamsFails(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("func f(")
	for i := 0; i < MaxParams+1; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("p")
		sb.WriteRune(rune('a' + i%26))
	}
	sb.WriteString(") { }")

	_, err := Parse("test", sb.String())
	if err == nil {
		t.Fatal("expected a parse error for too many parameters")
	}
}

func TestParseElseWithoutIfFails(t *testing.T) {
	_, err := Parse("test", "func main() { else a = 1; }")
	if err == nil {
		t.Fatal("expected a parse error for dangling else")
	}
}

func TestParseUnexpectedTokenReportsLine(t *testing.T) {
	_, err := Parse("test", "func main() {\n\n  1 1;\n}")
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got %T, want *ParseError", err)
	}
	if pe.Line != 3 {
		t.Errorf("got line %d, want 3", pe.Line)
	}
}

func TestParseUnterminatedCompoundFails(t *testing.T) {
	_, err := Parse("test", "func main() { ")
	if err == nil {
		t.Fatal("expected a parse error for unterminated compound")
	}
}

func TestParseLeadingLexErrorSurfaces(t *testing.T) {
	_, err := Parse("test", "$ func main() { }")
	le, ok := err.(*LexError)
	if !ok {
		t.Fatalf("got %T (%v), want *LexError for a source starting with an illegal byte", err, err)
	}
	if le.Char != '$' {
		t.Errorf("got Char %q, want '$'", le.Char)
	}
}

func TestParseMissingTopLevelKeywordFails(t *testing.T) {
	_, err := Parse("test", "x = 1;")
	if err == nil {
		t.Fatal("expected a parse error: only func/var allowed at top level")
	}
}

func TestParseCompoundWithMultipleStatements(t *testing.T) {
	root := mustParse(t, `
		func main() {
			var x = 0;
			print(x);
			return x;
		}
	`)
	body := root.Children[0].Children[1]
	if len(body.Children) != 3 {
		t.Fatalf("got %d statements, want 3", len(body.Children))
	}
}
