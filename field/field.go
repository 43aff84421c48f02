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

// Package field wraps the BN254 scalar field (gnark-crypto's fr.Element) as
// the single finite field shared by every witness, expression, and register
// in this module. Inversion of zero is deliberately left to callers: Inverse
// of a zero element does not panic but returns a zero element and a false ok
// flag so solver code decides what that means in context. Div, by contrast,
// panics on a zero divisor.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is a residue modulo the BN254 scalar field order. The zero value
// is the additive identity and is ready to use.
type Element struct {
	inner fr.Element
}

// Zero returns the additive identity.
func Zero() Element { return Element{} }

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()
	return e
}

// FromUint64 builds an Element from a small unsigned integer. It exists
// mainly for tests and fixtures; production witness values arrive via
// FromBytes.
func FromUint64(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)
	return e
}

// FromBytes decodes a big-endian byte string into an Element, reducing
// modulo the field order.
func FromBytes(b []byte) Element {
	var e Element
	e.inner.SetBytes(b)
	return e
}

// Bytes serialises e as a fixed-width (32-byte) big-endian string.
func (e Element) Bytes() [32]byte {
	return e.inner.Bytes()
}

// Add returns a+b.
func Add(a, b Element) Element {
	var out Element
	out.inner.Add(&a.inner, &b.inner)
	return out
}

// Sub returns a-b.
func Sub(a, b Element) Element {
	var out Element
	out.inner.Sub(&a.inner, &b.inner)
	return out
}

// Mul returns a*b.
func Mul(a, b Element) Element {
	var out Element
	out.inner.Mul(&a.inner, &b.inner)
	return out
}

// Neg returns -a.
func Neg(a Element) Element {
	var out Element
	out.inner.Neg(&a.inner)
	return out
}

// Div returns a/b. The caller must have already established b != 0; Div
// panics on a zero divisor rather than returning a silently wrong answer,
// since unlike Inverse this has no sensible "undefined" return value in the
// field element space.
func Div(a, b Element) Element {
	if b.IsZero() {
		panic("field: division by zero")
	}
	var out Element
	out.inner.Div(&a.inner, &b.inner)
	return out
}

// Inverse returns (a⁻¹, true) when a is non-zero, or (0, false) when a is
// zero. Callers that need the "inv(0)=0" convention used by the Invert
// directive (§4.2) check ok themselves rather than relying on a magic
// sentinel value.
func Inverse(a Element) (Element, bool) {
	if a.IsZero() {
		return Zero(), false
	}
	var out Element
	out.inner.Inverse(&a.inner)
	return out, true
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.inner.IsZero()
}

// Equal reports whether e and o denote the same residue.
func (e Element) Equal(o Element) bool {
	return e.inner.Equal(&o.inner)
}

// BigInt returns e as a big.Int in [0, p).
func (e Element) BigInt() *big.Int {
	var out big.Int
	e.inner.BigInt(&out)
	return &out
}

// String renders e in decimal, mainly for error messages and logging.
func (e Element) String() string {
	return e.inner.String()
}
