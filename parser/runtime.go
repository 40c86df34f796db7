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

/*
RuntimeProvider supplies a Runtime component for a given Node. The
interpreter package implements this to attach evaluation behavior to
the parse tree without the parser package needing to know about
values, the heap, or scopes.
*/
type RuntimeProvider interface {

	/*
	   Runtime returns the runtime component for a given Node.
	*/
	Runtime(node *Node) Runtime
}

/*
Runtime provides the runtime behavior for a Node.
*/
type Runtime interface {

	/*
	   Validate checks this runtime component and all its children
	   before the first Eval. Call arity is checked by Eval, not here.
	*/
	Validate() error

	/*
	   Eval evaluates this runtime component against a scope. The
	   returned value is the result of an expression, or nil for a
	   statement.
	*/
	Eval(Scope) (interface{}, error)
}

/*
Scope models a variable environment. vex programs only ever see at
most two scopes in the lookup chain: a function's local scope and the
global scope beneath it (spec's two-level scoping rule). A scope maps
a name to the heap address of its backing cell rather than to a value
directly — addresses are what stay stable across the scope's
lifetime, which is the guarantee `&` depends on.
*/
type Scope interface {

	/*
	   Parent returns the enclosing scope, or nil for the global scope.
	*/
	Parent() Scope

	/*
	   Declare binds name to addr in this scope. Declaring a name that
	   already exists in this (not a parent) scope is an error.
	*/
	Declare(name string, addr int64) error

	/*
	   Lookup returns the address bound to name, searching this scope
	   then its parent chain.
	*/
	Lookup(name string) (int64, bool)
}
