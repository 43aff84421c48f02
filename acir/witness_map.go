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

// Package acir defines the intermediate constraint format solved by package
// acvm: expressions over witnesses, the witness map, opcodes, and embedded
// Brillig blocks.
package acir

import (
	"fmt"

	"github.com/probechain/acvm-go/field"
)

// ErrConflictingBinding is returned by WitnessMap.Insert when a witness is
// already bound to a different value than the one offered.
var ErrConflictingBinding = fmt.Errorf("acir: conflicting witness binding")

// WitnessMap is a single-assignment mapping from witness to field element.
// Binding a witness that is already present is an error unless the incoming
// value equals the one already stored (idempotent rebinding).
type WitnessMap struct {
	values map[field.Witness]field.Element
}

// NewWitnessMap creates an empty witness map.
func NewWitnessMap() *WitnessMap {
	return &WitnessMap{values: make(map[field.Witness]field.Element)}
}

// NewWitnessMapFrom creates a witness map pre-populated with initial, which
// the caller has already checked for internal consistency (the driver does
// not re-validate the caller-supplied initial assignment beyond normal
// Insert semantics).
func NewWitnessMapFrom(initial map[field.Witness]field.Element) *WitnessMap {
	m := NewWitnessMap()
	for w, v := range initial {
		m.values[w] = v
	}
	return m
}

// Get returns the value bound to w, if any.
func (m *WitnessMap) Get(w field.Witness) (field.Element, bool) {
	v, ok := m.values[w]
	return v, ok
}

// Contains reports whether w has a bound value.
func (m *WitnessMap) Contains(w field.Witness) bool {
	_, ok := m.values[w]
	return ok
}

// Insert binds w to v. Rebinding w to the value it already holds is a no-op
// success; rebinding it to a different value returns ErrConflictingBinding.
func (m *WitnessMap) Insert(w field.Witness, v field.Element) error {
	if existing, ok := m.values[w]; ok {
		if existing.Equal(v) {
			return nil
		}
		return fmt.Errorf("%w: witness %d already bound to %s, offered %s", ErrConflictingBinding, w, existing, v)
	}
	m.values[w] = v
	return nil
}

// Len returns the number of bound witnesses.
func (m *WitnessMap) Len() int { return len(m.values) }

// Clone returns an independent copy of m.
func (m *WitnessMap) Clone() *WitnessMap {
	out := NewWitnessMap()
	for w, v := range m.values {
		out.values[w] = v
	}
	return out
}
