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

package solver

import (
	"fmt"

	"github.com/probechain/acvm-go/acir"
	"github.com/probechain/acvm-go/field"
)

// SolveDirective evaluates a directive opcode against m. The hint itself
// never fails (§4.2, §7): the two outcomes are Progress (the hint could be
// computed and was bound) and Stall (its inputs are not yet known). An error
// is returned only when the result witness is already bound to a different
// value, or when the directive kind is unknown.
//
// The driver dispatches directives in opcode-list order within the same pass
// as arithmetic opcodes; a directive whose operand is known is evaluated
// whether or not an arithmetic opcode could also bind its result, so
// arithmetic-derived bindings are not given priority over the hint.
func SolveDirective(d *acir.DirectiveOpcode, m *acir.WitnessMap) (Outcome, error) {
	switch d.Kind {
	case acir.DirectiveInvert:
		x, ok := m.Get(d.X)
		if !ok {
			return Stall, nil
		}
		var result field.Element
		if inv, ok := field.Inverse(x); ok {
			result = inv
		} else {
			result = field.Zero()
		}
		if err := m.Insert(d.Result, result); err != nil {
			return Stall, fmt.Errorf("solver: binding directive result witness %d: %w", d.Result, err)
		}
		return Progress, nil
	default:
		return Stall, fmt.Errorf("solver: unknown directive kind %d", d.Kind)
	}
}
