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

package acir

import (
	"testing"

	"github.com/probechain/acvm-go/field"
)

func TestNewExpressionDropsZeroCoefficients(t *testing.T) {
	e := NewExpression(
		[]QuadraticTerm{{Coef: field.Zero(), Wi: 1, Wj: 2}},
		[]LinearTerm{{Coef: field.Zero(), W: 3}},
		field.FromUint64(5),
	)
	if len(e.Q) != 0 || len(e.L) != 0 {
		t.Errorf("zero-coefficient terms survived: Q=%v L=%v", e.Q, e.L)
	}
	if !e.C.Equal(field.FromUint64(5)) {
		t.Errorf("C = %s; want 5", e.C)
	}
}

func TestNewExpressionSumsDuplicateTerms(t *testing.T) {
	e := NewExpression(nil,
		[]LinearTerm{{Coef: field.FromUint64(2), W: 1}, {Coef: field.FromUint64(3), W: 1}},
		field.Zero(),
	)
	if len(e.L) != 1 {
		t.Fatalf("len(L) = %d; want 1", len(e.L))
	}
	if !e.L[0].Coef.Equal(field.FromUint64(5)) {
		t.Errorf("summed coefficient = %s; want 5", e.L[0].Coef)
	}
}

func TestNewExpressionCanonicalizesQuadraticOrder(t *testing.T) {
	e := NewExpression(
		[]QuadraticTerm{{Coef: field.One(), Wi: 5, Wj: 1}},
		nil, field.Zero(),
	)
	if len(e.Q) != 1 {
		t.Fatalf("len(Q) = %d; want 1", len(e.Q))
	}
	if e.Q[0].Wi != 1 || e.Q[0].Wj != 5 {
		t.Errorf("Q[0] = (%d,%d); want (1,5)", e.Q[0].Wi, e.Q[0].Wj)
	}
}

func TestIsConst(t *testing.T) {
	if !Zero().IsConst() {
		t.Error("Zero() is not const")
	}
	nonConst := NewExpression(nil, []LinearTerm{{Coef: field.One(), W: 1}}, field.Zero())
	if nonConst.IsConst() {
		t.Error("expression with a linear term reported as const")
	}
}
