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
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"golang.org/x/crypto/sha3"

	"github.com/probechain/acvm-go/field"
)

// pedersen computes a vector commitment sum(scalar_i * G_i) where each
// per-index generator G_i is derived deterministically from
// domainSeparator and the input's position, rather than from a trusted
// setup: this module never produces proofs (the spec's Non-goals exclude
// proving), so commitments only need to be binding and reproducible within
// a single solve, not part of an external verification key.
func pedersen(inputs []field.Element, domainSeparator uint32) (field.Element, field.Element, error) {
	_, _, g1Gen, _ := bn254.Generators()
	var genBase bn254.G1Jac
	genBase.FromAffine(&g1Gen)

	var acc bn254.G1Jac
	for i, v := range inputs {
		coeff := generatorCoefficient(domainSeparator, i)

		var basis bn254.G1Jac
		basis.ScalarMultiplication(&genBase, coeff)

		var term bn254.G1Jac
		term.ScalarMultiplication(&basis, v.BigInt())

		acc.AddAssign(&term)
	}

	var accAff bn254.G1Affine
	accAff.FromJacobian(&acc)

	xb := accAff.X.Bytes()
	yb := accAff.Y.Bytes()
	return field.FromBytes(xb[:]), field.FromBytes(yb[:]), nil
}

// generatorCoefficient derives the scalar used to build the i-th basis
// point for a given domain separator, via a keccak256 stretch of the two
// indices. It is a pure function of (domainSeparator, i) so the same
// commitment inputs always yield the same commitment.
func generatorCoefficient(domainSeparator uint32, i int) *big.Int {
	h := sha3.NewLegacyKeccak256()
	var buf [12]byte
	binary.BigEndian.PutUint32(buf[:4], domainSeparator)
	binary.BigEndian.PutUint64(buf[4:], uint64(i))
	h.Write(buf[:])
	return new(big.Int).SetBytes(h.Sum(nil))
}
