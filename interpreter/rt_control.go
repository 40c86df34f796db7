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

// Root
// ====

/*
rootRuntime drives the top-level execution order: install global
bindings and register user functions in source order, then require and
call main.
*/
type rootRuntime struct {
	*baseRuntime
}

func rootRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &rootRuntime{newBaseRuntime(p, node)}
}

func (rt *rootRuntime) Eval(vs parser.Scope) (interface{}, error) {
	rt.p.Logger.LogInfo("evaluating ", rt.p.Name)

	for _, child := range rt.node.Children {
		if _, err := child.Runtime.Eval(rt.p.Global); err != nil {
			rt.p.Logger.LogError(err)
			return nil, err
		}
	}
	rt.p.Logger.LogDebug("installed ", len(rt.p.Funcs), " function(s), ", len(rt.node.Children), " top-level declaration(s)")

	fn, ok := rt.p.Funcs["main"]
	if !ok {
		err := rt.errorf(util.ErrMissingMain, "")
		rt.p.Logger.LogError(err)
		return nil, err
	}

	synthCall := &funcCallRuntime{newBaseRuntime(rt.p, rt.node)}
	res, err := synthCall.callUser(fn, nil)
	if err != nil {
		rt.p.Logger.LogError(err)
		return nil, err
	}
	rt.p.Logger.LogInfo("main returned ", res)
	return res, nil
}

// Variable / array definitions
// =============================

/*
varDefRuntime allocates one cell for a scalar variable, seeding it
with its initializer's value (or zero if absent), and declares it in
the scope it is evaluated under. For a global definition this is
p.Global; for a local `var` inside a function body it is that call's
local scope.
*/
type varDefRuntime struct {
	*baseRuntime
}

func varDefRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &varDefRuntime{newBaseRuntime(p, node)}
}

func (rt *varDefRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var init int64
	if len(rt.node.Children) > 0 {
		v, err := rt.node.Children[0].Runtime.Eval(vs)
		if err != nil {
			return nil, err
		}
		init = v.(int64)
	}

	addr := rt.p.Heap.AllocCell(init)
	if err := vs.Declare(rt.node.Token.Text, addr); err != nil {
		return nil, rt.errorf(util.ErrDuplicateDefinition, "variable %s", rt.node.Token.Text)
	}
	return nil, nil
}

/*
arrDefRuntime allocates size * CellSize zeroed bytes for a fixed-size
array and declares its base address under the array's own name —
indexing (`a[i]`) is desugared at parse time into address arithmetic
over this same identifier.
*/
type arrDefRuntime struct {
	*baseRuntime
}

func arrDefRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &arrDefRuntime{newBaseRuntime(p, node)}
}

func (rt *arrDefRuntime) Eval(vs parser.Scope) (interface{}, error) {
	sv, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}
	size := sv.(int64)

	base := rt.p.Heap.Alloc(size * CellSize)
	if err := vs.Declare(rt.node.Token.Text, base); err != nil {
		return nil, rt.errorf(util.ErrDuplicateDefinition, "array %s", rt.node.Token.Text)
	}
	return nil, nil
}

// Compound statement
// ===================

/*
compoundRuntime evaluates its statements in source order, stopping
immediately and propagating a *util.ReturnSignal the moment one
surfaces from a nested statement.
*/
type compoundRuntime struct {
	*baseRuntime
}

func compoundRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &compoundRuntime{newBaseRuntime(p, node)}
}

func (rt *compoundRuntime) Eval(vs parser.Scope) (interface{}, error) {
	for _, stmt := range rt.node.Children {
		if _, err := stmt.Runtime.Eval(vs); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// if / while
// ==========

type ifRuntime struct {
	*baseRuntime
}

func ifRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &ifRuntime{newBaseRuntime(p, node)}
}

func (rt *ifRuntime) Eval(vs parser.Scope) (interface{}, error) {
	cv, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}

	if cv.(int64) != 0 {
		return rt.node.Children[1].Runtime.Eval(vs)
	}
	if len(rt.node.Children) > 2 {
		return rt.node.Children[2].Runtime.Eval(vs)
	}
	return nil, nil
}

type whileRuntime struct {
	*baseRuntime
}

func whileRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &whileRuntime{newBaseRuntime(p, node)}
}

func (rt *whileRuntime) Eval(vs parser.Scope) (interface{}, error) {
	for {
		cv, err := rt.node.Children[0].Runtime.Eval(vs)
		if err != nil {
			return nil, err
		}
		if cv.(int64) == 0 {
			return nil, nil
		}
		if _, err := rt.node.Children[1].Runtime.Eval(vs); err != nil {
			return nil, err
		}
	}
}
