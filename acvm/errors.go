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

package acvm

import (
	"fmt"

	"github.com/probechain/acvm-go/acir"
)

// UnsatisfiedConstraintError means an arithmetic opcode reduced to a
// non-zero constant, or an embedded RVM block trapped (§7).
type UnsatisfiedConstraintError struct {
	Label acir.OpcodeLabel
}

func (e *UnsatisfiedConstraintError) Error() string {
	return fmt.Sprintf("acvm: unsatisfied constraint at %s", e.Label)
}

// OpcodeNotSolvableError means the driver reached a fixed point with work
// still remaining and no opcode was proven false (§4.5 NEW, §9).
type OpcodeNotSolvableError struct {
	Label acir.OpcodeLabel
}

func (e *OpcodeNotSolvableError) Error() string {
	return fmt.Sprintf("acvm: opcode not solvable at %s", e.Label)
}

// BlackBoxError wraps a capability provider's error with the label of the
// opcode that invoked it.
type BlackBoxError struct {
	Label acir.OpcodeLabel
	Inner error
}

func (e *BlackBoxError) Error() string {
	return fmt.Sprintf("acvm: black-box call failed at %s: %s", e.Label, e.Inner)
}

func (e *BlackBoxError) Unwrap() error { return e.Inner }

// IndexOutOfBoundsError means an RVM adapter shape check failed (fatal,
// never a stall).
type IndexOutOfBoundsError struct {
	Label acir.OpcodeLabel
	Inner error
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("acvm: index out of bounds at %s: %s", e.Label, e.Inner)
}

func (e *IndexOutOfBoundsError) Unwrap() error { return e.Inner }

// InvalidInputError means a black-box opcode's declared inputs/outputs did
// not match what the capability provider requires.
type InvalidInputError struct {
	Label acir.OpcodeLabel
	Inner error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("acvm: invalid input at %s: %s", e.Label, e.Inner)
}

func (e *InvalidInputError) Unwrap() error { return e.Inner }
