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
Package scope implements vex's two-level variable environment: a
single local scope per function call, backed by a global scope below
it. Unlike a general nested-block-scope design, there is never a
chain longer than two links — a call pushes exactly one local scope in
front of the fixed global one.
*/
package scope

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/vexlang/vex/parser"
)

/*
varsScope maps variable names to heap addresses. It implements
parser.Scope.
*/
type varsScope struct {
	name    string
	parent  parser.Scope
	storage map[string]int64
}

/*
NewGlobal creates the global scope, which has no parent.
*/
func NewGlobal() parser.Scope {
	return &varsScope{name: "global", storage: make(map[string]int64)}
}

/*
NewLocal creates a function-call local scope backed by parent (the
global scope). A non-global parent would violate the two-level
scoping rule, but the type only ever gets the global scope passed to
it by the interpreter package.
*/
func NewLocal(name string, parent parser.Scope) parser.Scope {
	return &varsScope{name: name, parent: parent, storage: make(map[string]int64)}
}

/*
Parent returns the enclosing scope, or nil for the global scope.
*/
func (s *varsScope) Parent() parser.Scope {
	return s.parent
}

/*
Declare binds name to addr in this scope. Redeclaring a name already
present in this (not a parent) scope is an error — the spec requires
rejecting duplicate definitions within one scope.
*/
func (s *varsScope) Declare(name string, addr int64) error {
	if _, ok := s.storage[name]; ok {
		return fmt.Errorf("variable %q is already defined in this scope", name)
	}
	s.storage[name] = addr
	return nil
}

/*
Lookup returns the address bound to name, searching this scope then
its parent. Lookup never walks past one parent link in practice,
since only the global scope has no parent and local scopes are only
ever created with the global scope as parent.
*/
func (s *varsScope) Lookup(name string) (int64, bool) {
	if addr, ok := s.storage[name]; ok {
		return addr, true
	}
	if s.parent != nil {
		return s.parent.Lookup(name)
	}
	return 0, false
}

/*
String returns a debug rendition of this scope and its parent chain,
used by the -dump-vars-on-error debug flag.
*/
func (s *varsScope) String() string {
	var buf bytes.Buffer
	s.writeTo(&buf)
	if s.parent != nil {
		if ps, ok := s.parent.(*varsScope); ok {
			buf.WriteString("\n")
			ps.writeTo(&buf)
		}
	}
	return buf.String()
}

func (s *varsScope) writeTo(buf *bytes.Buffer) {
	names := make([]string, 0, len(s.storage))
	for n := range s.storage {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Fprintf(buf, "%s {\n", s.name)
	for _, n := range names {
		fmt.Fprintf(buf, "    %s @%d\n", n, s.storage[n])
	}
	buf.WriteString("}")
}
