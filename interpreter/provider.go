/*
 * vex
 *
 * Copyright 2026 The Vex Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package interpreter is the tree-walking evaluator: it supplies a
Runtime component for every parser.Node kind, holds the heap, the
global scope, the user/built-in function tables and the string pool,
and drives the top-level execution sequence described in the
language's evaluator contract.
*/
package interpreter

import (
	"io"
	"os"

	"github.com/vexlang/vex/config"
	"github.com/vexlang/vex/parser"
	"github.com/vexlang/vex/scope"
	"github.com/vexlang/vex/util"
)

/*
runtimeCtor instantiates a Runtime for a given Node under a Provider.
*/
type runtimeCtor func(*Provider, *parser.Node) parser.Runtime

/*
providerMap maps each NodeKind to the constructor of its Runtime.
Unhandled kinds fall back to invalidRuntimeInst.
*/
var providerMap = map[parser.NodeKind]runtimeCtor{
	parser.NodeRoot:     rootRuntimeInst,
	parser.NodeFuncDef:  funcDefRuntimeInst,
	parser.NodeVarDef:   varDefRuntimeInst,
	parser.NodeArrDef:   arrDefRuntimeInst,
	parser.NodeFuncCall: funcCallRuntimeInst,
	parser.NodeCompound: compoundRuntimeInst,
	parser.NodeIf:       ifRuntimeInst,
	parser.NodeWhile:    whileRuntimeInst,
	parser.NodeReturn:   returnRuntimeInst,

	parser.NodeNumber:     numberRuntimeInst,
	parser.NodeString:     stringRuntimeInst,
	parser.NodeIdentifier: identifierRuntimeInst,

	parser.NodeAssign:       assignRuntimeInst,
	parser.NodeAdd:          arithRuntimeInst,
	parser.NodeSub:          arithRuntimeInst,
	parser.NodeMul:          arithRuntimeInst,
	parser.NodeDiv:          arithRuntimeInst,
	parser.NodeEqual:        arithRuntimeInst,
	parser.NodeLess:         arithRuntimeInst,
	parser.NodeLessEqual:    arithRuntimeInst,
	parser.NodeGreater:      arithRuntimeInst,
	parser.NodeGreaterEqual: arithRuntimeInst,
	parser.NodeBitAnd:       arithRuntimeInst,
	parser.NodeBitOr:        arithRuntimeInst,
	parser.NodeShl:          arithRuntimeInst,
	parser.NodeShr:          arithRuntimeInst,

	parser.NodeNegate: negateRuntimeInst,
	parser.NodeAddr:   addrRuntimeInst,
	parser.NodeDeref:  derefRuntimeInst,

	// ArgList/ParamList nodes are only ever walked directly by their
	// parent FuncDef/FuncCall runtime, never Eval'd on their own.
	parser.NodeArgList:   voidRuntimeInst,
	parser.NodeParamList: voidRuntimeInst,
}

/*
Provider is the factory object producing Runtime components for a
vex AST, and the owner of all process-wide interpreter state: the
heap, the global scope, the user-function table, the built-in
table, and the string pool.
*/
type Provider struct {
	Name   string
	Logger util.Logger

	Heap    *Heap
	Global  parser.Scope
	Funcs   map[string]*function
	Strings map[string]int64

	// Stdout/Stdin back the print/puts/input_num built-ins; tests
	// substitute buffers here instead of touching the real console.
	Stdout io.Writer
	Stdin  io.Reader

	// MaxCallDepth bounds function-call recursion so a runaway program
	// fails with a RuntimeError instead of exhausting the host stack.
	// Seeded from config.Config at construction time so the CLI's
	// -max-call-depth flag can override it per run.
	MaxCallDepth int

	callDepth int
}

/*
NewProvider creates a fresh Provider with empty state, a NullLogger,
and MaxCallDepth read from config.Config. Assign to Logger or
MaxCallDepth afterward to override either.
*/
func NewProvider(name string) *Provider {
	return &Provider{
		Name:         name,
		Logger:       util.NewNullLogger(),
		Heap:         NewHeap(),
		Global:       scope.NewGlobal(),
		Funcs:        make(map[string]*function),
		Strings:      make(map[string]int64),
		Stdout:       os.Stdout,
		Stdin:        os.Stdin,
		MaxCallDepth: config.Int(config.MaxCallDepth),
	}
}

/*
Runtime returns the runtime component for a given Node.
*/
func (p *Provider) Runtime(node *parser.Node) parser.Runtime {
	if ctor, ok := providerMap[node.Kind]; ok {
		return ctor(p, node)
	}
	return invalidRuntimeInst(p, node)
}

/*
NewRuntimeError builds a util.RuntimeError anchored at node's line.
*/
func (p *Provider) NewRuntimeError(t error, detail string, node *parser.Node) error {
	return util.NewRuntimeError(t, detail, node.Token.Line)
}
