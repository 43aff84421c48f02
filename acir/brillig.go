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
	"github.com/probechain/acvm-go/field"
	"github.com/probechain/acvm-go/rvm"
)

// BrilligInput is either a single witness-valued expression or an array of
// them, mapped 1:1 onto the RVM's initial register file (§3).
type BrilligInput interface{ brilligInput() }

// BrilligInputSingle materialises as one register.
type BrilligInputSingle struct {
	Value Expression
}

func (BrilligInputSingle) brilligInput() {}

// BrilligInputArray materialises as a memory region plus a pointer register.
type BrilligInputArray struct {
	Values []Expression
}

func (BrilligInputArray) brilligInput() {}

// BrilligOutput is either a single witness binding or an array of them,
// describing how to lift final register values into the witness map (§3).
type BrilligOutput interface{ brilligOutput() }

// BrilligOutputSimple binds one witness to one output register.
type BrilligOutputSimple struct {
	W field.Witness
}

func (BrilligOutputSimple) brilligOutput() {}

// BrilligOutputArray binds each witness to the corresponding memory slot of
// the region an output register points to.
type BrilligOutputArray struct {
	Ws []field.Witness
}

func (BrilligOutputArray) brilligOutput() {}

// BrilligBlock is an embedded RVM program plus the witness-facing glue that
// describes how it is fed and how its results are lifted back (§3).
type BrilligBlock struct {
	Inputs  []BrilligInput
	Outputs []BrilligOutput

	// ForeignCallResults is the append-only journal of answers supplied by
	// the host for this block, in invocation order (§3). The driver appends
	// to it in resolve_pending_foreign_call; the bridge adapter consults it
	// before surfacing a new wait.
	ForeignCallResults []rvm.ForeignCallResult

	Bytecode rvm.Program

	// Predicate, if present, gates the whole block: if it reduces to the
	// constant 0 the block is skipped and its outputs are bound to 0 (§3).
	Predicate *Expression
}
