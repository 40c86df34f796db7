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
	"fmt"

	"github.com/vexlang/vex/parser"
	"github.com/vexlang/vex/scope"
	"github.com/vexlang/vex/util"
)

// Function definition
// ====================

/*
function models a user-defined function: its parameter names, for
binding arguments into a fresh call scope, and its body, for
evaluation.
*/
type function struct {
	name   string
	params []string
	body   *parser.Node
}

func (f *function) String() string {
	return fmt.Sprintf("func %s(%d params)", f.name, len(f.params))
}

type funcDefRuntime struct {
	*baseRuntime
}

func funcDefRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &funcDefRuntime{newBaseRuntime(p, node)}
}

/*
Eval registers the function in the Provider's function table. Function
definitions are only ever evaluated once, while the root node walks the
program's top-level declarations.
*/
func (rt *funcDefRuntime) Eval(vs parser.Scope) (interface{}, error) {
	name := rt.node.Token.Text

	if _, exists := rt.p.Funcs[name]; exists {
		return nil, rt.errorf(util.ErrDuplicateDefinition, "function %s", name)
	}
	if _, isBuiltin := builtins[name]; isBuiltin {
		return nil, rt.errorf(util.ErrDuplicateDefinition, "function %s shadows a built-in", name)
	}

	paramList := rt.node.Children[0]
	params := make([]string, len(paramList.Children))
	for i, p := range paramList.Children {
		params[i] = p.Token.Text
	}

	rt.p.Funcs[name] = &function{
		name:   name,
		params: params,
		body:   rt.node.Children[1],
	}
	return nil, nil
}

// Function call
// =============

type funcCallRuntime struct {
	*baseRuntime
}

func funcCallRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &funcCallRuntime{newBaseRuntime(p, node)}
}

func (rt *funcCallRuntime) Eval(vs parser.Scope) (interface{}, error) {
	name := rt.node.Token.Text

	argNodes := rt.node.Children[0].Children
	args := make([]int64, len(argNodes))
	for i, a := range argNodes {
		v, err := a.Runtime.Eval(vs)
		if err != nil {
			return nil, err
		}
		args[i] = v.(int64)
	}

	if fn, ok := rt.p.Funcs[name]; ok {
		return rt.callUser(fn, args)
	}
	if b, ok := builtins[name]; ok {
		if err := checkArity(name, b.arity, len(args), rt); err != nil {
			return nil, err
		}
		return b.fn(rt.p, args)
	}

	return nil, rt.errorf(util.ErrUnknownFunction, "%s", name)
}

func checkArity(name string, want, got int, rt *funcCallRuntime) error {
	if want >= 0 && want != got {
		return rt.errorf(util.ErrArityMismatch, "%s expects %d argument(s), got %d", name, want, got)
	}
	return nil
}

/*
callUser runs a user-defined function: a fresh local scope parented
directly at the global scope (vex has exactly two scope levels, no
closures), one cell allocated per parameter, and the call-depth guard
against unbounded recursion.
*/
func (rt *funcCallRuntime) callUser(fn *function, args []int64) (interface{}, error) {
	if len(args) != len(fn.params) {
		return nil, rt.errorf(util.ErrArityMismatch, "%s expects %d argument(s), got %d", fn.name, len(fn.params), len(args))
	}

	rt.p.callDepth++
	defer func() { rt.p.callDepth-- }()
	if rt.p.callDepth > rt.p.MaxCallDepth {
		rt.p.Logger.LogError("call depth exceeded calling ", fn.name)
		return nil, rt.errorf(util.ErrCallDepthExceeded, "calling %s", fn.name)
	}

	rt.p.Logger.LogDebug("calling ", fn.name, " at depth ", rt.p.callDepth)

	local := scope.NewLocal(fn.name, rt.p.Global)
	for i, name := range fn.params {
		addr := rt.p.Heap.AllocCell(args[i])
		if err := local.Declare(name, addr); err != nil {
			return nil, rt.errorf(util.ErrDuplicateDefinition, "parameter %s", name)
		}
	}

	_, err := fn.body.Runtime.Eval(local)
	if rs, ok := util.AsReturn(err); ok {
		return rs.Value, nil
	}
	if err != nil {
		return nil, err
	}

	// A function whose body falls off the end without a return
	// statement yields zero, matching the synthesized zero return
	// value the parser attaches to a bare `return;`.
	return int64(0), nil
}

// Return statement
// ================

type returnRuntime struct {
	*baseRuntime
}

func returnRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &returnRuntime{newBaseRuntime(p, node)}
}

/*
Eval evaluates the return expression and propagates it as a
*util.ReturnSignal, which the statement walkers (Compound/If/While)
recognize and pass up unexamined until a function call catches it.
*/
func (rt *returnRuntime) Eval(vs parser.Scope) (interface{}, error) {
	v, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}
	return nil, &util.ReturnSignal{Value: v.(int64)}
}
