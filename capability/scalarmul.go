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

package capability

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/probechain/acvm-go/field"
)

// fixedBaseScalarMul multiplies the bn254 G1 generator by scalar and
// returns the resulting affine point's coordinates folded back into the
// circuit's native field by canonical byte encoding.
func fixedBaseScalarMul(scalar field.Element) (field.Element, field.Element, error) {
	_, _, g1Gen, _ := bn254.Generators()

	var base, result bn254.G1Jac
	base.FromAffine(&g1Gen)
	result.ScalarMultiplication(&base, scalar.BigInt())

	var resultAff bn254.G1Affine
	resultAff.FromJacobian(&result)

	xb := resultAff.X.Bytes()
	yb := resultAff.Y.Bytes()
	return field.FromBytes(xb[:]), field.FromBytes(yb[:]), nil
}
