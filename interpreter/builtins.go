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
	"strconv"
	"strings"
)

/*
builtin pairs a built-in's fixed arity (-1 means variadic, unused by
any current built-in but kept for the arity-check helper's generality)
with its handler. Handlers receive the already-evaluated argument
buffer and return the call's result value.
*/
type builtin struct {
	arity int
	fn    func(p *Provider, args []int64) (int64, error)
}

/*
builtins is the built-in function table (§6). User functions are
consulted first (see funcCallRuntime.Eval), so a user definition
named e.g. "print" shadows the entry here — rejected instead at
definition time by funcDefRuntime, which treats that as a duplicate
definition.
*/
var builtins = map[string]builtin{
	"print":     {1, builtinPrint},
	"printu":    {1, builtinPrintu},
	"putc":      {1, builtinPutc},
	"puts":      {1, builtinPuts},
	"input_num": {0, builtinInputNum},
}

func builtinPrint(p *Provider, args []int64) (int64, error) {
	fmt.Fprintf(p.Stdout, "%d\n", args[0])
	return 0, nil
}

func builtinPrintu(p *Provider, args []int64) (int64, error) {
	fmt.Fprintf(p.Stdout, "%d\n", uint64(args[0]))
	return 0, nil
}

func builtinPutc(p *Provider, args []int64) (int64, error) {
	fmt.Fprintf(p.Stdout, "%c", byte(args[0]))
	return 0, nil
}

func builtinPuts(p *Provider, args []int64) (int64, error) {
	s, err := p.Heap.ReadCString(args[0])
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(p.Stdout, "%s\n", s)
	return 0, nil
}

/*
builtinInputNum reads up to 10 bytes from stdin and parses them as a
signed decimal integer. EOF and a non-numeric line are both reported
as 0, matching the spec's explicit "callers cannot distinguish the
two" edge case.
*/
func builtinInputNum(p *Provider, args []int64) (int64, error) {
	buf := make([]byte, 10)
	n, _ := p.Stdin.Read(buf)

	text := strings.TrimSpace(string(buf[:n]))
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, nil
	}
	return v, nil
}
