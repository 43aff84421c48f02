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

// Package capability implements the three black-box operations named in §6
// as "capability collaborators": side-effect-free functions the driver
// calls by reference and never inspects the internals of.
package capability

import "github.com/probechain/acvm-go/field"

// Provider is the black-box capability surface the PWS driver depends on.
// Implementations must be safe to call repeatedly with the same inputs and
// must not observe or mutate solver state (§5).
type Provider interface {
	// SchnorrVerify verifies a Schnorr signature over the public key
	// (pkX, pkY).
	SchnorrVerify(pkX, pkY field.Element, signature, message []byte) (bool, error)

	// Pedersen computes a Pedersen vector commitment over inputs, bound to
	// domainSeparator, and returns the commitment point's affine
	// coordinates.
	Pedersen(inputs []field.Element, domainSeparator uint32) (x, y field.Element, err error)

	// FixedBaseScalarMul multiplies the curve's fixed generator by scalar
	// and returns the resulting point's affine coordinates.
	FixedBaseScalarMul(scalar field.Element) (x, y field.Element, err error)
}
