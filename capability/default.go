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

import "github.com/probechain/acvm-go/field"

// Default is the out-of-the-box Provider: secp256k1/Schnorr signatures and
// bn254-G1-backed Pedersen commitments and fixed-base scalar multiplication.
// Callers that need a different curve or signature scheme supply their own
// Provider rather than extending this one.
type Default struct{}

// NewDefault returns the built-in capability provider.
func NewDefault() Default { return Default{} }

func (Default) SchnorrVerify(pkX, pkY field.Element, signature, message []byte) (bool, error) {
	return schnorrVerify(pkX, pkY, signature, message)
}

func (Default) Pedersen(inputs []field.Element, domainSeparator uint32) (field.Element, field.Element, error) {
	return pedersen(inputs, domainSeparator)
}

func (Default) FixedBaseScalarMul(scalar field.Element) (field.Element, field.Element, error) {
	return fixedBaseScalarMul(scalar)
}
