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

import "github.com/vexlang/vex/parser"

/*
arithRuntime evaluates the two's-complement binary operators. All of
them share the same "evaluate left, evaluate right, combine" shape,
so one Runtime type dispatches on node.Kind rather than one type per
operator.

Evaluation order is left-to-right (both for the operands here and,
transitively, for anything with side effects nested inside them),
matching the ordering guarantee the evaluator's contract makes for
binary operators.
*/
type arithRuntime struct {
	*baseRuntime
}

func arithRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &arithRuntime{newBaseRuntime(p, node)}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func (rt *arithRuntime) Eval(vs parser.Scope) (interface{}, error) {
	lv, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}
	rv, err := rt.node.Children[1].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}

	l, r := lv.(int64), rv.(int64)

	switch rt.node.Kind {
	case parser.NodeAdd:
		return l + r, nil
	case parser.NodeSub:
		return l - r, nil
	case parser.NodeMul:
		return l * r, nil
	case parser.NodeDiv:
		// Division by zero is undefined per the language's own
		// contract; a host-level trap (Go's integer divide-by-zero
		// panic) is an acceptable way to satisfy "implementation may
		// trap".
		return l / r, nil
	case parser.NodeEqual:
		return boolToInt(l == r), nil
	case parser.NodeLess:
		return boolToInt(l < r), nil
	case parser.NodeLessEqual:
		return boolToInt(l <= r), nil
	case parser.NodeGreater:
		return boolToInt(l > r), nil
	case parser.NodeGreaterEqual:
		return boolToInt(l >= r), nil
	case parser.NodeBitAnd:
		return l & r, nil
	case parser.NodeBitOr:
		return l | r, nil
	case parser.NodeShl:
		return l << uint64(r), nil
	case parser.NodeShr:
		return l >> uint64(r), nil
	}

	panic("arithRuntime: unreachable node kind")
}
