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

/*
assignRuntime implements '=': the left operand must be addressable —
either a bare identifier or a dereference '@expr' — anything else
(a literal, an arithmetic expression, a call) is rejected with
ErrInvalidAssignTarget. The left operand's address is resolved first,
then the right operand is evaluated and written to that address, and
the written value is
returned so assignment chains like `a = b = 5` thread the value
through each nested Assign node.
*/
type assignRuntime struct {
	*baseRuntime
}

func assignRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &assignRuntime{newBaseRuntime(p, node)}
}

func (rt *assignRuntime) Eval(vs parser.Scope) (interface{}, error) {
	addr, err := rt.lhsAddress(vs)
	if err != nil {
		return nil, err
	}

	rv, err := rt.node.Children[1].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}
	val := rv.(int64)

	if err := rt.p.Heap.WriteInt64(addr, val); err != nil {
		return nil, rt.errorf(util.ErrHeapAccess, "%v", err)
	}
	return val, nil
}

/*
lhsAddress resolves the assignment target's address without reading
through it, dispatching on the concrete Runtime type attached to the
left child.
*/
func (rt *assignRuntime) lhsAddress(vs parser.Scope) (int64, error) {
	lhs := rt.node.Children[0]

	switch r := lhs.Runtime.(type) {
	case *identifierRuntime:
		return r.address(vs)
	case *derefRuntime:
		return r.address(vs)
	}

	return 0, rt.errorf(util.ErrInvalidAssignTarget, "%s", lhs.Kind)
}
