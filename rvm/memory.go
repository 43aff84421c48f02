// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

package rvm

import (
	"fmt"

	"github.com/probechain/acvm-go/field"
)

// ErrInvalidAddress is returned when an access falls outside the live
// region of memory.
var ErrInvalidAddress = fmt.Errorf("rvm: invalid memory address")

// Memory is the linear, field-element-addressed memory model for array
// I/O (§4.3). Unlike the byte-level allocator this package's VM is modelled
// on, Brillig arrays are append-only for the lifetime of a block — there is
// no Free, since the spec's materialisation model (§4.4) never deallocates
// a region mid-execution.
type Memory struct {
	cells []field.Element
}

// NewMemory returns an empty linear memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Reserve appends a contiguous block of n zero-valued cells and returns its
// base address, for the caller to populate (Append uses it to materialise
// array inputs before execution).
func (m *Memory) Reserve(n int) int {
	base := len(m.cells)
	for i := 0; i < n; i++ {
		m.cells = append(m.cells, field.Zero())
	}
	return base
}

// Append reserves and fills a contiguous block with values, returning its
// base address.
func (m *Memory) Append(values []field.Element) int {
	base := m.Reserve(len(values))
	copy(m.cells[base:], values)
	return base
}

// Read returns the value at addr.
func (m *Memory) Read(addr int) (field.Element, error) {
	if addr < 0 || addr >= len(m.cells) {
		return field.Zero(), fmt.Errorf("%w: addr=%d len=%d", ErrInvalidAddress, addr, len(m.cells))
	}
	return m.cells[addr], nil
}

// ReadSlice returns a copy of the n values starting at addr.
func (m *Memory) ReadSlice(addr, n int) ([]field.Element, error) {
	if addr < 0 || n < 0 || addr+n > len(m.cells) {
		return nil, fmt.Errorf("%w: addr=%d n=%d len=%d", ErrInvalidAddress, addr, n, len(m.cells))
	}
	out := make([]field.Element, n)
	copy(out, m.cells[addr:addr+n])
	return out, nil
}

// Write sets the value at addr.
func (m *Memory) Write(addr int, v field.Element) error {
	if addr < 0 || addr >= len(m.cells) {
		return fmt.Errorf("%w: addr=%d len=%d", ErrInvalidAddress, addr, len(m.cells))
	}
	m.cells[addr] = v
	return nil
}

// WriteSlice writes values starting at addr.
func (m *Memory) WriteSlice(addr int, values []field.Element) error {
	if addr < 0 || addr+len(values) > len(m.cells) {
		return fmt.Errorf("%w: addr=%d n=%d len=%d", ErrInvalidAddress, addr, len(values), len(m.cells))
	}
	copy(m.cells[addr:], values)
	return nil
}

// Len returns the current number of live cells.
func (m *Memory) Len() int { return len(m.cells) }
