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
	"errors"
	"testing"

	"github.com/probechain/acvm-go/acir"
	"github.com/probechain/acvm-go/field"
)

func TestSolveConstSatisfied(t *testing.T) {
	m := acir.NewWitnessMap()
	e := acir.Zero()
	outcome, err := Solve(e, m)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if outcome != Solved {
		t.Errorf("outcome = %s; want solved", outcome)
	}
}

func TestSolveConstUnsatisfied(t *testing.T) {
	m := acir.NewWitnessMap()
	e := acir.NewExpression(nil, nil, field.FromUint64(1))
	_, err := Solve(e, m)
	if !errors.Is(err, ErrUnsatisfied) {
		t.Errorf("Solve(1=0) err = %v; want ErrUnsatisfied", err)
	}
}

// a*w + c = 0 with a=1,c=-4,w unbound should bind w=4.
func TestSolveLinear(t *testing.T) {
	m := acir.NewWitnessMap()
	e := acir.NewExpression(nil,
		[]acir.LinearTerm{{Coef: field.One(), W: 1}},
		field.Neg(field.FromUint64(4)),
	)
	outcome, err := Solve(e, m)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if outcome != Progress {
		t.Errorf("outcome = %s; want progress", outcome)
	}
	v, ok := m.Get(1)
	if !ok || !v.Equal(field.FromUint64(4)) {
		t.Errorf("w1 = (%s, %v); want (4, true)", v, ok)
	}
}

func TestSolveLinearWithKnownWitness(t *testing.T) {
	m := acir.NewWitnessMap()
	m.Insert(1, field.FromUint64(3))
	m.Insert(2, field.FromUint64(5))
	// w1 + w2 + w3 - 12 = 0  =>  w3 = 4
	e := acir.NewExpression(nil, []acir.LinearTerm{
		{Coef: field.One(), W: 1},
		{Coef: field.One(), W: 2},
		{Coef: field.One(), W: 3},
	}, field.Neg(field.FromUint64(12)))

	outcome, err := Solve(e, m)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if outcome != Progress {
		t.Errorf("outcome = %s; want progress", outcome)
	}
	v, ok := m.Get(3)
	if !ok || !v.Equal(field.FromUint64(4)) {
		t.Errorf("w3 = (%s, %v); want (4, true)", v, ok)
	}
}

func TestSolvePureSquareZero(t *testing.T) {
	m := acir.NewWitnessMap()
	// w*w = 0  =>  w = 0
	e := acir.NewExpression([]acir.QuadraticTerm{{Coef: field.One(), Wi: 1, Wj: 1}}, nil, field.Zero())
	outcome, err := Solve(e, m)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if outcome != Progress {
		t.Errorf("outcome = %s; want progress", outcome)
	}
	v, ok := m.Get(1)
	if !ok || !v.IsZero() {
		t.Errorf("w1 = (%s, %v); want (0, true)", v, ok)
	}
}

func TestSolvePureSquareNonZeroStalls(t *testing.T) {
	m := acir.NewWitnessMap()
	// w*w - 4 = 0: a square root exists but the solver must not guess it.
	e := acir.NewExpression([]acir.QuadraticTerm{{Coef: field.One(), Wi: 1, Wj: 1}}, nil, field.Neg(field.FromUint64(4)))
	outcome, err := Solve(e, m)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if outcome != Stall {
		t.Errorf("outcome = %s; want stall", outcome)
	}
	if m.Contains(1) {
		t.Error("solver bound a square root it cannot deterministically choose")
	}
}

func TestSolveMixedQuadraticStalls(t *testing.T) {
	m := acir.NewWitnessMap()
	e := acir.NewExpression([]acir.QuadraticTerm{{Coef: field.One(), Wi: 1, Wj: 2}}, nil, field.Zero())
	outcome, err := Solve(e, m)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if outcome != Stall {
		t.Errorf("outcome = %s; want stall", outcome)
	}
}

func TestSolveQuadraticResolvesWhenOneSideKnown(t *testing.T) {
	m := acir.NewWitnessMap()
	m.Insert(1, field.FromUint64(3))
	// 3*w2 - 12 = 0  =>  w2 = 4
	e := acir.NewExpression([]acir.QuadraticTerm{{Coef: field.One(), Wi: 1, Wj: 2}}, nil, field.Neg(field.FromUint64(12)))
	outcome, err := Solve(e, m)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if outcome != Progress {
		t.Errorf("outcome = %s; want progress", outcome)
	}
	v, ok := m.Get(2)
	if !ok || !v.Equal(field.FromUint64(4)) {
		t.Errorf("w2 = (%s, %v); want (4, true)", v, ok)
	}
}
