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

// Number literal
// ==============

type numberRuntime struct {
	*baseRuntime
}

func numberRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &numberRuntime{newBaseRuntime(p, node)}
}

func (rt *numberRuntime) Eval(vs parser.Scope) (interface{}, error) {
	return rt.node.Token.Num, nil
}

// String literal
// ==============

/*
stringRuntime interns the literal's bytes in the Provider's string
pool on first evaluation, and returns the same pool address on every
later evaluation of the same literal node.
*/
type stringRuntime struct {
	*baseRuntime
}

func stringRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &stringRuntime{newBaseRuntime(p, node)}
}

func (rt *stringRuntime) Eval(vs parser.Scope) (interface{}, error) {
	text := rt.node.Token.Text

	if addr, ok := rt.p.Strings[text]; ok {
		return addr, nil
	}

	addr := rt.p.Heap.WriteCString(text)
	rt.p.Strings[text] = addr
	return addr, nil
}

// Identifier (variable reference)
// ================================

type identifierRuntime struct {
	*baseRuntime
}

func identifierRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &identifierRuntime{newBaseRuntime(p, node)}
}

func (rt *identifierRuntime) Eval(vs parser.Scope) (interface{}, error) {
	addr, ok := vs.Lookup(rt.node.Token.Text)
	if !ok {
		return nil, rt.errorf(util.ErrUnknownVariable, "%s", rt.node.Token.Text)
	}

	val, err := rt.p.Heap.ReadInt64(addr)
	if err != nil {
		return nil, rt.errorf(util.ErrHeapAccess, "%v", err)
	}
	return val, nil
}

/*
address returns the heap address bound to this identifier, used by
the Addr ('&') and Assign runtimes instead of reading through it.
*/
func (rt *identifierRuntime) address(vs parser.Scope) (int64, error) {
	addr, ok := vs.Lookup(rt.node.Token.Text)
	if !ok {
		return 0, rt.errorf(util.ErrUnknownVariable, "%s", rt.node.Token.Text)
	}
	return addr, nil
}
