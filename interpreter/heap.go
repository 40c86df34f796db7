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
	"encoding/binary"
	"fmt"
)

/*
CellSize is the width in bytes of a single variable cell and an array
element (spec's "arrays of 64-bit cells, element stride 8 bytes").
*/
const CellSize = 8

/*
Heap is a single append-only byte arena backing every variable cell,
array, and interned string in a running program. Addresses are byte
offsets into the arena rather than Go pointers: offsets stay valid
across the arena's own growth (Go reallocates the backing array on
append, but an integer offset re-indexes correctly either way),
which is exactly the address-stability `&` depends on.

There is no garbage collection and no reclamation of freed scopes'
cells — the arena only ever grows, consistent with the spec's
no-GC non-goal. A long-running program leaks arena space the same
way the original implementation's own cell allocator does.
*/
type Heap struct {
	data []byte
}

/*
NewHeap creates an empty heap.
*/
func NewHeap() *Heap {
	return &Heap{data: make([]byte, 0, 4096)}
}

/*
Alloc reserves n zeroed bytes and returns their base address.
*/
func (h *Heap) Alloc(n int64) int64 {
	addr := int64(len(h.data))
	h.data = append(h.data, make([]byte, n)...)
	return addr
}

/*
AllocCell reserves a single CellSize-wide cell seeded with value.
*/
func (h *Heap) AllocCell(value int64) int64 {
	addr := h.Alloc(CellSize)
	h.WriteInt64(addr, value)
	return addr
}

func (h *Heap) checkBounds(addr, width int64) error {
	if addr < 0 || addr+width > int64(len(h.data)) {
		return fmt.Errorf("heap access out of bounds: address %d width %d (heap size %d)", addr, width, len(h.data))
	}
	return nil
}

/*
ReadInt64 reads a signed 64-bit integer at addr. The spec permits
out-of-bounds raw pointer arithmetic with no diagnostic; this
implementation still returns an error (which the evaluator wraps as an
ErrHeapAccess RuntimeError) rather than reading adjacent Go memory,
since Go offers no safe way to do the former.
*/
func (h *Heap) ReadInt64(addr int64) (int64, error) {
	if err := h.checkBounds(addr, CellSize); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(h.data[addr : addr+CellSize])), nil
}

/*
WriteInt64 writes a signed 64-bit integer at addr.
*/
func (h *Heap) WriteInt64(addr int64, value int64) error {
	if err := h.checkBounds(addr, CellSize); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(h.data[addr:addr+CellSize], uint64(value))
	return nil
}

/*
ReadByte reads a single byte at addr.
*/
func (h *Heap) ReadByte(addr int64) (byte, error) {
	if err := h.checkBounds(addr, 1); err != nil {
		return 0, err
	}
	return h.data[addr], nil
}

/*
WriteCString allocates s followed by a terminating zero byte and
returns the base address, used to back interned string literals.
*/
func (h *Heap) WriteCString(s string) int64 {
	addr := int64(len(h.data))
	h.data = append(h.data, s...)
	h.data = append(h.data, 0)
	return addr
}

/*
ReadCString reads bytes starting at addr up to (not including) the
next zero byte.
*/
func (h *Heap) ReadCString(addr int64) (string, error) {
	if err := h.checkBounds(addr, 0); err != nil {
		return "", err
	}
	end := addr
	for end < int64(len(h.data)) && h.data[end] != 0 {
		end++
	}
	if end >= int64(len(h.data)) {
		return "", fmt.Errorf("unterminated string at address %d", addr)
	}
	return string(h.data[addr:end]), nil
}
