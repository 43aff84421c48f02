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
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"

	"github.com/probechain/acvm-go/field"
)

// schnorrVerify rebuilds a secp256k1 public key from its affine coordinates
// and checks signature against message under BIP-340-style Schnorr rules.
func schnorrVerify(pkX, pkY field.Element, signature, message []byte) (bool, error) {
	xb := pkX.Bytes()
	yb := pkY.Bytes()

	var x, y secp256k1.FieldVal
	x.SetByteSlice(xb[:])
	y.SetByteSlice(yb[:])

	pub := secp256k1.NewPublicKey(&x, &y)

	sig, err := schnorr.ParseSignature(signature)
	if err != nil {
		return false, fmt.Errorf("capability: parse schnorr signature: %w", err)
	}

	return sig.Verify(message, pub), nil
}
