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
	"github.com/vexlang/vex/util"
)

/*
baseRuntime provides the fields and Validate behavior shared by every
concrete Runtime: it walks and validates all children once. No
concrete type overrides Validate.
*/
type baseRuntime struct {
	p         *Provider
	node      *parser.Node
	validated bool
}

func newBaseRuntime(p *Provider, node *parser.Node) *baseRuntime {
	return &baseRuntime{p: p, node: node}
}

func (rt *baseRuntime) Validate() error {
	rt.validated = true
	for _, child := range rt.node.Children {
		if child.Runtime == nil {
			continue
		}
		if err := child.Runtime.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (rt *baseRuntime) Eval(parser.Scope) (interface{}, error) {
	if !rt.validated {
		panic("runtime component has not been validated - call Validate() before Eval()")
	}
	return nil, nil
}

func (rt *baseRuntime) errorf(t error, format string, args ...interface{}) error {
	return rt.p.NewRuntimeError(t, fmt.Sprintf(format, args...), rt.node)
}

// Void Runtime
// ============

/*
voidRuntime is used for constructed nodes (ArgList/ParamList) that are
only ever walked directly by their parent, never Eval'd on their own.
*/
type voidRuntime struct {
	*baseRuntime
}

func voidRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &voidRuntime{newBaseRuntime(p, node)}
}

// Invalid Runtime
// ===============

/*
invalidRuntime guards against a Node kind with no registered
constructor ever reaching Eval.
*/
type invalidRuntime struct {
	*baseRuntime
}

func invalidRuntimeInst(p *Provider, node *parser.Node) parser.Runtime {
	return &invalidRuntime{newBaseRuntime(p, node)}
}

func (rt *invalidRuntime) Eval(vs parser.Scope) (interface{}, error) {
	return nil, rt.errorf(util.ErrInvalidConstruct, "unhandled node kind %v", rt.node.Kind)
}
