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

// Package rvm implements the register VM (RVM): an unconstrained byte-code
// interpreter over a register file of field elements plus a flat linear
// memory for array I/O. It knows nothing about witnesses, expressions, or
// the solver that embeds it — package bridge owns that coupling.
package rvm

import (
	"fmt"

	"github.com/probechain/acvm-go/field"
)

// RegisterIndex addresses a slot in a VM's register file.
type RegisterIndex int

// Op is an RVM instruction opcode.
type Op uint8

const (
	// ---- Arithmetic (register-register), the BinaryFieldOp family (§4.3) --

	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpEquals
	OpNot

	// ---- Load/move ---------------------------------------------------------

	OpConst  // Dst = Consts[Imm]
	OpMov    // Dst = R[Src1]

	// ---- Linear memory (array I/O) -----------------------------------------

	OpCalldataCopy // copy Imm consecutive memory cells starting at R[Src1] into registers starting at Dst..Dst+Imm-1 (unused by the adapter; kept for completeness of the contract)
	OpStore        // Mem[R[Dst]+Imm] = R[Src1]
	OpLoad         // Dst = Mem[R[Src1]+Imm]

	// ---- Control flow, the contracts named verbatim in §4.3 ----------------

	OpJump
	OpJumpIf
	OpStop
	OpTrap

	// ---- Foreign call, the contract named verbatim in §4.3 -----------------

	OpForeignCall
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpEquals:
		return "equals"
	case OpNot:
		return "not"
	case OpConst:
		return "const"
	case OpMov:
		return "mov"
	case OpCalldataCopy:
		return "calldatacopy"
	case OpStore:
		return "store"
	case OpLoad:
		return "load"
	case OpJump:
		return "jump"
	case OpJumpIf:
		return "jumpif"
	case OpStop:
		return "stop"
	case OpTrap:
		return "trap"
	case OpForeignCall:
		return "foreign_call"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// OperandKind distinguishes a ForeignCall operand backed by a single
// register from one backed by a contiguous memory region.
type OperandKind uint8

const (
	OperandRegister OperandKind = iota
	OperandMemory
)

// ForeignCallOperand describes one input or output operand of a
// ForeignCall instruction.
type ForeignCallOperand struct {
	Kind OperandKind
	// Reg is the operand's register. When Kind == OperandRegister it holds
	// (for inputs) the scalar value, or (for outputs) is the destination.
	// When Kind == OperandMemory it holds the base address of the memory
	// slice, read at execution time (the pointer convention used throughout
	// this package), for inputs and outputs alike.
	Reg RegisterIndex
	// MemLen is meaningful when Kind == OperandMemory: the slice
	// [R[Reg], R[Reg]+MemLen) holds or receives the values.
	MemLen int
}

// Instruction is one fixed-shape RVM instruction. Not every field is
// meaningful for every Op; see the per-Op doc comments above.
type Instruction struct {
	Op   Op
	Dst  RegisterIndex
	Src1 RegisterIndex
	Src2 RegisterIndex
	Imm  int // constant-pool index (OpConst) or memory offset (OpStore/OpLoad) or jump target (OpJump/OpJumpIf)

	// ForeignCall-only fields.
	Function     string
	FCInputs     []ForeignCallOperand
	FCDestinations []ForeignCallOperand
}

// Program is an RVM bytecode listing plus its constant pool.
type Program struct {
	Code      []Instruction
	Constants []field.Element
}
