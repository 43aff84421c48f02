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

// Package bridge implements the RVM adapter (C6): it materialises Brillig
// inputs from witness expressions via package solver, drives a package rvm
// VM to completion or suspension, and hoists register/memory outputs back
// into witness bindings.
package bridge

import (
	"fmt"

	"github.com/probechain/acvm-go/acir"
	"github.com/probechain/acvm-go/field"
	"github.com/probechain/acvm-go/rvm"
	"github.com/probechain/acvm-go/solver"
)

// Outcome is the non-error result of a Start or Resume call. As with
// package solver, Outcome is only meaningful when the returned error is nil.
type Outcome int

const (
	// Solved means the block finished cleanly (or was predicate-skipped)
	// and its outputs are already bound.
	Solved Outcome = iota
	// Stall means the block's inputs (or predicate) are not yet constant;
	// no BlockState is returned and the caller should retry next pass.
	Stall
	// Suspend means the block is waiting on a foreign call; the returned
	// BlockState must be kept and passed back into Resume once the driver
	// has an answer.
	Suspend
)

// ErrTrapped is returned when the embedded RVM executes a Trap instruction
// (§4.4: "the block's label" — the driver attaches the label).
var ErrTrapped = fmt.Errorf("bridge: brillig block trapped")

// BlockState is the suspended state the driver must hold onto (its
// active_brillig slot, §4.5) between a Suspend outcome and the matching
// Resume call.
type BlockState struct {
	vm       *rvm.VM
	consumed int // how many of block.ForeignCallResults this VM has consumed
}

// Start materialises a Brillig block's inputs and runs it until it
// finishes, traps, or genuinely suspends on a foreign call with no
// pre-recorded answer.
func Start(block *acir.BrilligBlock, m *acir.WitnessMap) (*BlockState, Outcome, *rvm.ForeignCallWaitInfo, error) {
	skip, determined, err := evaluatePredicate(block, m)
	if err != nil {
		return nil, Stall, nil, err
	}
	if !determined {
		return nil, Stall, nil, nil
	}
	if skip {
		if err := bindZeroOutputs(block, m); err != nil {
			return nil, Stall, nil, err
		}
		return nil, Solved, nil, nil
	}

	registers, mem, ready, err := materializeInputs(block, m)
	if err != nil {
		return nil, Stall, nil, err
	}
	if !ready {
		return nil, Stall, nil, nil
	}

	state := &BlockState{vm: rvm.New(block.Bytecode, registers, mem)}
	outcome, wait, err := state.run(block, m)
	if err != nil || outcome != Suspend {
		return nil, outcome, wait, err
	}
	return state, outcome, wait, nil
}

// Resume supplies an answer to state's pending foreign call and continues
// execution.
func Resume(state *BlockState, block *acir.BrilligBlock, m *acir.WitnessMap, answer rvm.ForeignCallResult) (Outcome, *rvm.ForeignCallWaitInfo, error) {
	if err := state.vm.Resume(answer); err != nil {
		return Stall, nil, err
	}
	state.consumed++
	return state.run(block, m)
}

// run drives state's VM until it reaches a terminal or genuinely-suspended
// state, transparently splicing in any already-recorded foreign call
// answers along the way (§4.4: "if there is a pre-recorded answer... splice
// it in and continue without surfacing a wait").
func (s *BlockState) run(block *acir.BrilligBlock, m *acir.WitnessMap) (Outcome, *rvm.ForeignCallWaitInfo, error) {
	for {
		res, err := s.vm.Step()
		if err != nil {
			return Stall, nil, err
		}
		switch res.Status {
		case rvm.Running:
			continue
		case rvm.Finished:
			if err := commitOutputs(block, s.vm, m); err != nil {
				return Stall, nil, err
			}
			return Solved, nil, nil
		case rvm.Trapped:
			return Stall, nil, ErrTrapped
		case rvm.AwaitingForeignCall:
			if s.consumed < len(block.ForeignCallResults) {
				answer := block.ForeignCallResults[s.consumed]
				s.consumed++
				if err := s.vm.Resume(answer); err != nil {
					return Stall, nil, err
				}
				continue
			}
			return Suspend, res.Wait, nil
		default:
			return Stall, nil, fmt.Errorf("bridge: unexpected VM status %s", res.Status)
		}
	}
}

func evaluatePredicate(block *acir.BrilligBlock, m *acir.WitnessMap) (skip, determined bool, err error) {
	if block.Predicate == nil {
		return false, true, nil
	}
	reduced := solver.Reduce(*block.Predicate, m)
	if !reduced.IsConst() {
		return false, false, nil
	}
	return reduced.C.IsZero(), true, nil
}

func materializeInputs(block *acir.BrilligBlock, m *acir.WitnessMap) (registers []field.Element, mem *rvm.Memory, ready bool, err error) {
	mem = rvm.NewMemory()
	for _, in := range block.Inputs {
		switch v := in.(type) {
		case acir.BrilligInputSingle:
			reduced := solver.Reduce(v.Value, m)
			if !reduced.IsConst() {
				return nil, nil, false, nil
			}
			registers = append(registers, reduced.C)

		case acir.BrilligInputArray:
			values := make([]field.Element, len(v.Values))
			for i, e := range v.Values {
				reduced := solver.Reduce(e, m)
				if !reduced.IsConst() {
					return nil, nil, false, nil
				}
				values[i] = reduced.C
			}
			base := mem.Append(values)
			registers = append(registers, field.FromUint64(uint64(base)))

		default:
			return nil, nil, false, fmt.Errorf("bridge: unknown brillig input kind %T", in)
		}
	}
	return registers, mem, true, nil
}

func commitOutputs(block *acir.BrilligBlock, vm *rvm.VM, m *acir.WitnessMap) error {
	for i, out := range block.Outputs {
		reg := rvm.RegisterIndex(i)
		switch o := out.(type) {
		case acir.BrilligOutputSimple:
			if err := m.Insert(o.W, vm.Register(reg)); err != nil {
				return err
			}

		case acir.BrilligOutputArray:
			base := int(vm.Register(reg).BigInt().Int64())
			values, err := vm.Memory().ReadSlice(base, len(o.Ws))
			if err != nil {
				return err
			}
			for i, w := range o.Ws {
				if err := m.Insert(w, values[i]); err != nil {
					return err
				}
			}

		default:
			return fmt.Errorf("bridge: unknown brillig output kind %T", out)
		}
	}
	return nil
}

func bindZeroOutputs(block *acir.BrilligBlock, m *acir.WitnessMap) error {
	for _, out := range block.Outputs {
		switch o := out.(type) {
		case acir.BrilligOutputSimple:
			if err := m.Insert(o.W, field.Zero()); err != nil {
				return err
			}
		case acir.BrilligOutputArray:
			for _, w := range o.Ws {
				if err := m.Insert(w, field.Zero()); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("bridge: unknown brillig output kind %T", out)
		}
	}
	return nil
}
