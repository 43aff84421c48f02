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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/probechain/acvm-go/field"
)

func TestFixedBaseScalarMulDeterministic(t *testing.T) {
	p := NewDefault()
	scalar := field.FromUint64(7)

	x1, y1, err := p.FixedBaseScalarMul(scalar)
	assert.NoError(t, err)
	x2, y2, err := p.FixedBaseScalarMul(scalar)
	assert.NoError(t, err)
	assert.True(t, x1.Equal(x2) && y1.Equal(y2), "FixedBaseScalarMul is not deterministic for identical input")
}

func TestFixedBaseScalarMulVariesWithScalar(t *testing.T) {
	p := NewDefault()
	x1, y1, _ := p.FixedBaseScalarMul(field.FromUint64(3))
	x2, y2, _ := p.FixedBaseScalarMul(field.FromUint64(4))
	if x1.Equal(x2) && y1.Equal(y2) {
		t.Error("scalar multiplication returned identical points for different scalars")
	}
}

func TestPedersenDeterministicAndDomainSeparated(t *testing.T) {
	p := NewDefault()
	inputs := []field.Element{field.FromUint64(1), field.FromUint64(2), field.FromUint64(3)}

	x1, y1, err := p.Pedersen(inputs, 42)
	if err != nil {
		t.Fatalf("Pedersen: %v", err)
	}
	x2, y2, err := p.Pedersen(inputs, 42)
	if err != nil {
		t.Fatalf("Pedersen: %v", err)
	}
	if !x1.Equal(x2) || !y1.Equal(y2) {
		t.Error("Pedersen commitment is not deterministic for identical input")
	}

	x3, y3, err := p.Pedersen(inputs, 43)
	if err != nil {
		t.Fatalf("Pedersen: %v", err)
	}
	if x1.Equal(x3) && y1.Equal(y3) {
		t.Error("different domain separators produced the same commitment")
	}
}

func TestSchnorrVerifyRejectsMalformedSignature(t *testing.T) {
	p := NewDefault()
	_, err := p.SchnorrVerify(field.Zero(), field.Zero(), []byte("not-a-signature"), []byte("message"))
	if err == nil {
		t.Error("expected an error parsing a malformed signature")
	}
}
