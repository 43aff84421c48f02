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

import "github.com/probechain/acvm-go/acir"

// Reduce substitutes every witness bound in m into e and returns the
// canonical residual, without classifying it or mutating m. Package bridge
// uses this to test Brillig predicates and inputs for "is this constant
// yet", which is a strict subset of what Solve does.
func Reduce(e acir.Expression, m *acir.WitnessMap) acir.Expression {
	return substitute(e, m)
}
