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
	"github.com/probechain/acvm-go/field"
	"github.com/probechain/acvm-go/solver"
)

// dispatchBlackBox resolves a black-box opcode's witness-valued inputs,
// invokes the configured capability, and binds its outputs. Shape of
// Inputs/Outputs per kind (the wire format itself is out of scope, §1 —
// this is this driver's own internal convention):
//
//   - SchnorrVerify: inputs [pkX, pkY, sigR, sigS, messageHash], 1 output
//     (0 or 1).
//   - Pedersen: inputs [domainSeparator, v0, v1, ...], 2 outputs (x, y).
//   - FixedBaseScalarMul: inputs [scalar], 2 outputs (x, y).
func (d *Driver) dispatchBlackBox(op *acir.BlackBoxOpcode, label acir.OpcodeLabel) (solver.Outcome, error) {
	values, ready := d.resolveWitnesses(op.Inputs)
	if !ready {
		return solver.Stall, nil
	}

	switch op.Kind {
	case acir.BlackBoxSchnorrVerify:
		if len(values) != 5 {
			return solver.Stall, &InvalidInputError{Label: label, Inner: fmt.Errorf("schnorr_verify expects 5 inputs, got %d", len(values))}
		}
		if len(op.Outputs) != 1 {
			return solver.Stall, &InvalidInputError{Label: label, Inner: fmt.Errorf("schnorr_verify expects 1 output, got %d", len(op.Outputs))}
		}
		rBytes, sBytes, msgBytes := values[2].Bytes(), values[3].Bytes(), values[4].Bytes()
		sig := append(append([]byte{}, rBytes[:]...), sBytes[:]...)
		ok, err := d.capability.SchnorrVerify(values[0], values[1], sig, msgBytes[:])
		if err != nil {
			return solver.Stall, &BlackBoxError{Label: label, Inner: err}
		}
		result := field.Zero()
		if ok {
			result = field.One()
		}
		if err := d.witness.Insert(op.Outputs[0], result); err != nil {
			return solver.Stall, &InvalidInputError{Label: label, Inner: err}
		}
		return solver.Progress, nil

	case acir.BlackBoxPedersen:
		if len(values) < 1 {
			return solver.Stall, &InvalidInputError{Label: label, Inner: fmt.Errorf("pedersen expects at least a domain separator input")}
		}
		if len(op.Outputs) != 2 {
			return solver.Stall, &InvalidInputError{Label: label, Inner: fmt.Errorf("pedersen expects 2 outputs, got %d", len(op.Outputs))}
		}
		domainSeparator := uint32(values[0].BigInt().Uint64())
		x, y, err := d.capability.Pedersen(values[1:], domainSeparator)
		if err != nil {
			return solver.Stall, &BlackBoxError{Label: label, Inner: err}
		}
		if err := d.witness.Insert(op.Outputs[0], x); err != nil {
			return solver.Stall, &InvalidInputError{Label: label, Inner: err}
		}
		if err := d.witness.Insert(op.Outputs[1], y); err != nil {
			return solver.Stall, &InvalidInputError{Label: label, Inner: err}
		}
		return solver.Progress, nil

	case acir.BlackBoxFixedBaseScalarMul:
		if len(values) != 1 {
			return solver.Stall, &InvalidInputError{Label: label, Inner: fmt.Errorf("fixed_base_scalar_mul expects 1 input, got %d", len(values))}
		}
		if len(op.Outputs) != 2 {
			return solver.Stall, &InvalidInputError{Label: label, Inner: fmt.Errorf("fixed_base_scalar_mul expects 2 outputs, got %d", len(op.Outputs))}
		}
		x, y, err := d.capability.FixedBaseScalarMul(values[0])
		if err != nil {
			return solver.Stall, &BlackBoxError{Label: label, Inner: err}
		}
		if err := d.witness.Insert(op.Outputs[0], x); err != nil {
			return solver.Stall, &InvalidInputError{Label: label, Inner: err}
		}
		if err := d.witness.Insert(op.Outputs[1], y); err != nil {
			return solver.Stall, &InvalidInputError{Label: label, Inner: err}
		}
		return solver.Progress, nil

	default:
		return solver.Stall, &InvalidInputError{Label: label, Inner: fmt.Errorf("unknown black-box kind %d", op.Kind)}
	}
}

// resolveWitnesses looks up every witness in ws; ready is false if any is
// still unbound.
func (d *Driver) resolveWitnesses(ws []field.Witness) (values []field.Element, ready bool) {
	values = make([]field.Element, len(ws))
	for i, w := range ws {
		v, ok := d.witness.Get(w)
		if !ok {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}
