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

package acir

import (
	"errors"
	"testing"

	"github.com/probechain/acvm-go/field"
)

func TestWitnessMapInsertAndGet(t *testing.T) {
	m := NewWitnessMap()
	if err := m.Insert(1, field.FromUint64(42)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	v, ok := m.Get(1)
	if !ok || v.BigInt().Uint64() != 42 {
		t.Errorf("Get(1) = (%s, %v); want (42, true)", v, ok)
	}
	if !m.Contains(1) {
		t.Error("Contains(1) = false")
	}
	if m.Contains(2) {
		t.Error("Contains(2) = true")
	}
}

func TestWitnessMapIdempotentRebind(t *testing.T) {
	m := NewWitnessMap()
	if err := m.Insert(1, field.FromUint64(42)); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	if err := m.Insert(1, field.FromUint64(42)); err != nil {
		t.Errorf("rebinding to same value returned error: %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d; want 1", m.Len())
	}
}

func TestWitnessMapConflictingRebind(t *testing.T) {
	m := NewWitnessMap()
	if err := m.Insert(1, field.FromUint64(42)); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	err := m.Insert(1, field.FromUint64(43))
	if !errors.Is(err, ErrConflictingBinding) {
		t.Errorf("Insert with conflicting value = %v; want ErrConflictingBinding", err)
	}
}

func TestWitnessMapClone(t *testing.T) {
	m := NewWitnessMap()
	m.Insert(1, field.FromUint64(1))
	clone := m.Clone()
	clone.Insert(2, field.FromUint64(2))
	if m.Contains(2) {
		t.Error("mutating clone affected original")
	}
	if !clone.Contains(1) || !clone.Contains(2) {
		t.Error("clone missing expected bindings")
	}
}

func TestNewWitnessMapFrom(t *testing.T) {
	initial := map[field.Witness]field.Element{1: field.FromUint64(10), 2: field.FromUint64(20)}
	m := NewWitnessMapFrom(initial)
	if m.Len() != 2 {
		t.Errorf("Len() = %d; want 2", m.Len())
	}
	v, ok := m.Get(2)
	if !ok || v.BigInt().Uint64() != 20 {
		t.Errorf("Get(2) = (%s, %v); want (20, true)", v, ok)
	}
}
