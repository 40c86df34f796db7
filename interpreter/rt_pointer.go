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
	"github.com/vexlang/vex/parser"
	"github.com/vexlang/vex/util"
)

// Unary minus
// ===========

type negateRuntime struct {
	*baseRuntime
}

func negateRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &negateRuntime{newBaseRuntime(p, node)}
}

func (rt *negateRuntime) Eval(vs parser.Scope) (interface{}, error) {
	v, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}
	// Negating math.MinInt64 overflows back to itself under two's
	// complement wraparound; Go's int64 negation already does this,
	// so no special case is required here.
	return -v.(int64), nil
}

// Address-of
// ==========

/*
addrRuntime implements '&IDENT': only a bare variable is addressable,
enforced at parse time (parseFactor only accepts an identifier after
'&') so this Eval can assume its single child is an identifier.
*/
type addrRuntime struct {
	*baseRuntime
}

func addrRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &addrRuntime{newBaseRuntime(p, node)}
}

func (rt *addrRuntime) Eval(vs parser.Scope) (interface{}, error) {
	id := rt.node.Children[0].Runtime.(*identifierRuntime)
	addr, err := id.address(vs)
	if err != nil {
		return nil, err
	}
	return addr, nil
}

// Dereference
// ===========

/*
derefRuntime implements '@expr': reads the 8 bytes at the evaluated
address as a signed 64-bit integer. It also serves as the assignable
form of the left-hand side of '=' (see rt_assign.go), in which case
its address method is used instead of Eval.
*/
type derefRuntime struct {
	*baseRuntime
}

func derefRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &derefRuntime{newBaseRuntime(p, node)}
}

func (rt *derefRuntime) Eval(vs parser.Scope) (interface{}, error) {
	addr, err := rt.address(vs)
	if err != nil {
		return nil, err
	}

	val, err := rt.p.Heap.ReadInt64(addr)
	if err != nil {
		return nil, rt.errorf(util.ErrHeapAccess, "%v", err)
	}
	return val, nil
}

/*
address evaluates the operand expression and returns it as the
address to read/write — the operand expression's value IS the
address being dereferenced.
*/
func (rt *derefRuntime) address(vs parser.Scope) (int64, error) {
	v, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}
