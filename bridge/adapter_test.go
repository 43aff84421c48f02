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

package bridge

import (
	"errors"
	"testing"

	"github.com/probechain/acvm-go/acir"
	"github.com/probechain/acvm-go/field"
	"github.com/probechain/acvm-go/rvm"
)

func exprWitness(w field.Witness) acir.Expression {
	return acir.NewExpression(nil, []acir.LinearTerm{{Coef: field.One(), W: w}}, field.Zero())
}

func exprConst(v field.Element) acir.Expression {
	return acir.NewExpression(nil, nil, v)
}

func TestStartSimpleBlockFinishes(t *testing.T) {
	m := acir.NewWitnessMap()
	m.Insert(1, field.FromUint64(2))
	m.Insert(2, field.FromUint64(3))

	block := &acir.BrilligBlock{
		Inputs: []acir.BrilligInput{
			acir.BrilligInputSingle{Value: exprWitness(1)},
			acir.BrilligInputSingle{Value: exprWitness(2)},
		},
		Outputs: []acir.BrilligOutput{acir.BrilligOutputSimple{W: 3}},
		Bytecode: rvm.Program{
			Code: []rvm.Instruction{
				{Op: rvm.OpAdd, Dst: 0, Src1: 0, Src2: 1}, // R0 (output 0's register) = R0+R1
				{Op: rvm.OpStop},
			},
		},
	}

	state, outcome, wait, err := Start(block, m)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if outcome != Solved {
		t.Fatalf("outcome = %d; want Solved", outcome)
	}
	if state != nil {
		t.Error("Solved outcome returned a non-nil BlockState")
	}
	if wait != nil {
		t.Error("Solved outcome returned a non-nil wait info")
	}
	got, ok := m.Get(3)
	if !ok || !got.Equal(field.FromUint64(5)) {
		t.Errorf("w3 = (%s, %v); want (5, true)", got, ok)
	}
}

func TestStartStallsOnUnknownInput(t *testing.T) {
	m := acir.NewWitnessMap()
	block := &acir.BrilligBlock{
		Inputs:  []acir.BrilligInput{acir.BrilligInputSingle{Value: exprWitness(1)}},
		Outputs: []acir.BrilligOutput{acir.BrilligOutputSimple{W: 2}},
		Bytecode: rvm.Program{
			Code: []rvm.Instruction{{Op: rvm.OpStop}},
		},
	}
	_, outcome, _, err := Start(block, m)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if outcome != Stall {
		t.Errorf("outcome = %d; want Stall", outcome)
	}
}

func TestPredicateSkipBindsZero(t *testing.T) {
	m := acir.NewWitnessMap()
	predicate := acir.Zero()
	block := &acir.BrilligBlock{
		Outputs:   []acir.BrilligOutput{acir.BrilligOutputSimple{W: 1}, acir.BrilligOutputArray{Ws: []field.Witness{2, 3}}},
		Predicate: &predicate,
		Bytecode:  rvm.Program{Code: []rvm.Instruction{{Op: rvm.OpTrap}}}, // never reached
	}
	_, outcome, wait, err := Start(block, m)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if outcome != Solved || wait != nil {
		t.Fatalf("outcome = %d, wait = %v; want Solved, nil", outcome, wait)
	}
	for _, w := range []field.Witness{1, 2, 3} {
		v, ok := m.Get(w)
		if !ok || !v.IsZero() {
			t.Errorf("w%d = (%s, %v); want (0, true)", w, v, ok)
		}
	}
}

func TestForeignCallSuspendAndResume(t *testing.T) {
	m := acir.NewWitnessMap()
	m.Insert(1, field.FromUint64(5))

	block := &acir.BrilligBlock{
		Inputs:  []acir.BrilligInput{acir.BrilligInputSingle{Value: exprWitness(1)}},
		Outputs: []acir.BrilligOutput{acir.BrilligOutputSimple{W: 2}},
		Bytecode: rvm.Program{
			Code: []rvm.Instruction{
				{
					Op:             rvm.OpForeignCall,
					Function:       "invert",
					FCInputs:       []rvm.ForeignCallOperand{{Kind: rvm.OperandRegister, Reg: 0}},
					FCDestinations: []rvm.ForeignCallOperand{{Kind: rvm.OperandRegister, Reg: 0}},
				},
				{Op: rvm.OpStop},
			},
		},
	}

	state, outcome, wait, err := Start(block, m)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if outcome != Suspend {
		t.Fatalf("outcome = %d; want Suspend", outcome)
	}
	if wait == nil || wait.Function != "invert" {
		t.Fatalf("wait = %+v; want function=invert", wait)
	}

	inv, _ := field.Inverse(field.FromUint64(5))
	answer := rvm.ForeignCallResult{Values: [][]field.Element{{inv}}}
	outcome2, wait2, err := Resume(state, block, m, answer)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if outcome2 != Solved || wait2 != nil {
		t.Fatalf("outcome2 = %d, wait2 = %v; want Solved, nil", outcome2, wait2)
	}
	got, ok := m.Get(2)
	if !ok || !got.Equal(inv) {
		t.Errorf("w2 = (%s, %v); want (%s, true)", got, ok, inv)
	}
}

func TestPreRecordedForeignCallAnswerSplicedIn(t *testing.T) {
	m := acir.NewWitnessMap()
	m.Insert(1, field.FromUint64(5))
	inv, _ := field.Inverse(field.FromUint64(5))

	block := &acir.BrilligBlock{
		Inputs:             []acir.BrilligInput{acir.BrilligInputSingle{Value: exprWitness(1)}},
		Outputs:            []acir.BrilligOutput{acir.BrilligOutputSimple{W: 2}},
		ForeignCallResults: []rvm.ForeignCallResult{{Values: [][]field.Element{{inv}}}},
		Bytecode: rvm.Program{
			Code: []rvm.Instruction{
				{
					Op:             rvm.OpForeignCall,
					Function:       "invert",
					FCInputs:       []rvm.ForeignCallOperand{{Kind: rvm.OperandRegister, Reg: 0}},
					FCDestinations: []rvm.ForeignCallOperand{{Kind: rvm.OperandRegister, Reg: 0}},
				},
				{Op: rvm.OpStop},
			},
		},
	}

	_, outcome, wait, err := Start(block, m)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if outcome != Solved || wait != nil {
		t.Fatalf("outcome = %d, wait = %v; want Solved (spliced), nil", outcome, wait)
	}
	got, ok := m.Get(2)
	if !ok || !got.Equal(inv) {
		t.Errorf("w2 = (%s, %v); want (%s, true)", got, ok, inv)
	}
}

func TestTrapSurfacesErrTrapped(t *testing.T) {
	m := acir.NewWitnessMap()
	block := &acir.BrilligBlock{
		Bytecode: rvm.Program{Code: []rvm.Instruction{{Op: rvm.OpTrap}}},
	}
	_, _, _, err := Start(block, m)
	if !errors.Is(err, ErrTrapped) {
		t.Errorf("Start err = %v; want ErrTrapped", err)
	}
}
