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
	"fmt"

	"github.com/probechain/acvm-go/field"
)

// Opcode is a unit of work in the constraint list: an arithmetic assertion,
// a capability call, a solver-local hint, or an embedded Brillig block.
type Opcode interface {
	opcode()
	String() string
}

// ArithmeticOpcode asserts that Expr evaluates to zero under the final
// assignment.
type ArithmeticOpcode struct {
	Expr Expression
}

func (*ArithmeticOpcode) opcode() {}
func (o *ArithmeticOpcode) String() string {
	return fmt.Sprintf("assert_zero(%d quadratic, %d linear terms)", len(o.Expr.Q), len(o.Expr.L))
}

// BlackBoxKind names a capability call (§6).
type BlackBoxKind int

const (
	BlackBoxSchnorrVerify BlackBoxKind = iota
	BlackBoxPedersen
	BlackBoxFixedBaseScalarMul
)

func (k BlackBoxKind) String() string {
	switch k {
	case BlackBoxSchnorrVerify:
		return "schnorr_verify"
	case BlackBoxPedersen:
		return "pedersen"
	case BlackBoxFixedBaseScalarMul:
		return "fixed_base_scalar_mul"
	default:
		return "unknown_blackbox"
	}
}

// BlackBoxOpcode invokes a capability collaborator. Inputs and Outputs are
// expressed as witnesses directly (unlike arithmetic terms, capability
// operands are not folded through Expression substitution by the solver —
// the driver resolves them to concrete values before dispatching).
type BlackBoxOpcode struct {
	Kind    BlackBoxKind
	Inputs  []field.Witness
	Outputs []field.Witness
}

func (*BlackBoxOpcode) opcode() {}
func (o *BlackBoxOpcode) String() string {
	return fmt.Sprintf("blackbox(%s, %d inputs, %d outputs)", o.Kind, len(o.Inputs), len(o.Outputs))
}

// DirectiveKind identifies a solver-local hint. Invert is the only kind
// named by §3; the switch in package solver is left open for future kinds.
type DirectiveKind int

const (
	DirectiveInvert DirectiveKind = iota
)

// DirectiveOpcode is a pure, non-asserting hint (§4.2). It never fails and
// never itself constrains anything — it only ever extends the witness map.
type DirectiveOpcode struct {
	Kind   DirectiveKind
	X      field.Witness // operand for Invert
	Result field.Witness // destination for Invert
}

func (*DirectiveOpcode) opcode() {}
func (o *DirectiveOpcode) String() string {
	return fmt.Sprintf("directive(invert w%d -> w%d)", o.X, o.Result)
}

// BrilligOpcode embeds a Brillig block (§3, §4.4).
type BrilligOpcode struct {
	Block *BrilligBlock
}

func (*BrilligOpcode) opcode() {}
func (o *BrilligOpcode) String() string {
	return fmt.Sprintf("brillig(%d inputs, %d outputs)", len(o.Block.Inputs), len(o.Block.Outputs))
}

// OpcodeLabelKind distinguishes a stable position in the original opcode
// list from a not-yet-assigned label.
type OpcodeLabelKind int

const (
	LabelResolved OpcodeLabelKind = iota
	LabelUnresolved
)

// OpcodeLabel identifies an opcode for error reporting (§3). Resolved names
// the opcode's index in the original list; Unresolved is reserved for
// opcodes synthesised by a future pass that has no original position.
type OpcodeLabel struct {
	Kind  OpcodeLabelKind
	Index int // meaningful only when Kind == LabelResolved
}

// Resolved builds a label naming position i in the original opcode list.
func Resolved(i int) OpcodeLabel { return OpcodeLabel{Kind: LabelResolved, Index: i} }

// Unresolved builds a label with no original position.
func Unresolved() OpcodeLabel { return OpcodeLabel{Kind: LabelUnresolved} }

func (l OpcodeLabel) String() string {
	if l.Kind == LabelResolved {
		return fmt.Sprintf("Resolved(%d)", l.Index)
	}
	return "Unresolved"
}
