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

package rvm

import (
	"errors"
	"fmt"

	"github.com/probechain/acvm-go/field"
)

// Status is one of the four states named in §4.3. It is never observed
// directly by callers outside this package and package bridge; Step
// returns it wrapped in a StepResult.
type Status uint8

const (
	Running Status = iota
	Finished
	Trapped
	AwaitingForeignCall
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Trapped:
		return "trapped"
	case AwaitingForeignCall:
		return "awaiting_foreign_call"
	default:
		return "unknown"
	}
}

// ForeignCallWaitInfo is published each time a ForeignCall instruction
// executes; the VM itself keeps no pre-recorded answers (package bridge
// splices those in). Inputs[i] is the i'th operand's concrete
// values: a length-1 slice for a register operand, the full contents for a
// memory operand.
type ForeignCallWaitInfo struct {
	Function string
	Inputs   [][]field.Element
}

// ForeignCallResult answers a ForeignCallWaitInfo. Values[i] must match the
// arity the corresponding destination expects: 1 for a register
// destination, the destination's declared length for a memory destination.
type ForeignCallResult struct {
	Values [][]field.Element
}

// StepResult is the outcome of one Step call.
type StepResult struct {
	Status Status
	Wait   *ForeignCallWaitInfo // non-nil iff Status == AwaitingForeignCall
}

// ErrAwaitingForeignCall is returned by Step when the VM is suspended and
// Resume has not yet been called.
var ErrAwaitingForeignCall = errors.New("rvm: awaiting foreign call result")

// ErrHalted is returned by Step when the VM has already finished or trapped.
var ErrHalted = errors.New("rvm: already halted")

// ErrNotAwaiting is returned by Resume when the VM is not currently
// suspended.
var ErrNotAwaiting = errors.New("rvm: not awaiting a foreign call")

// ErrShapeMismatch is returned by Resume when the supplied result's arity
// does not match the pending destinations (§4.3: "fatal VM error, not a
// stall").
var ErrShapeMismatch = fmt.Errorf("rvm: foreign call result shape mismatch")

// VM is the register VM (RVM): a flat register file of field elements, a
// linear memory for array I/O, a program counter, and the four-state status
// machine of §4.3. The zero value is not usable; use New.
type VM struct {
	registers []field.Element
	mem       *Memory
	pc        int
	program   Program

	status  Status
	pending *pendingForeignCall
}

type pendingForeignCall struct {
	info         ForeignCallWaitInfo
	destinations []ForeignCallOperand
}

// New creates a VM over program, with a copy of initialRegisters as the
// register file (which grows when an instruction writes a higher register)
// and the given memory (which may already hold materialised array inputs).
func New(program Program, initialRegisters []field.Element, mem *Memory) *VM {
	if mem == nil {
		mem = NewMemory()
	}
	regs := make([]field.Element, len(initialRegisters))
	copy(regs, initialRegisters)
	return &VM{
		registers: regs,
		mem:       mem,
		program:   program,
		status:    Running,
	}
}

// Status reports the VM's current state.
func (vm *VM) Status() Status { return vm.status }

// Memory exposes the VM's linear memory, e.g. so the adapter can read back
// array outputs after Finished.
func (vm *VM) Memory() *Memory { return vm.mem }

// Register reads register idx, returning zero if idx lies beyond the
// register file (it was never written). The register file is not grown.
func (vm *VM) Register(idx RegisterIndex) field.Element {
	if int(idx) >= len(vm.registers) {
		return field.Zero()
	}
	return vm.registers[idx]
}

func (vm *VM) setRegister(idx RegisterIndex, v field.Element) {
	if int(idx) >= len(vm.registers) {
		grown := make([]field.Element, int(idx)+1)
		copy(grown, vm.registers)
		vm.registers = grown
	}
	vm.registers[idx] = v
}

// Step fetches, decodes, and executes exactly one instruction.
func (vm *VM) Step() (StepResult, error) {
	switch vm.status {
	case Finished, Trapped:
		return StepResult{Status: vm.status}, ErrHalted
	case AwaitingForeignCall:
		return StepResult{Status: vm.status}, ErrAwaitingForeignCall
	}

	if vm.pc < 0 || vm.pc >= len(vm.program.Code) {
		return StepResult{}, fmt.Errorf("rvm: pc %d out of range (%d instructions)", vm.pc, len(vm.program.Code))
	}
	inst := vm.program.Code[vm.pc]
	vm.pc++

	return vm.execute(inst)
}

// Resume supplies the answer to the pending foreign call and transitions
// the VM back to Running. The next Step executes the instruction
// immediately following the ForeignCall, per §4.3.
func (vm *VM) Resume(result ForeignCallResult) error {
	if vm.status != AwaitingForeignCall || vm.pending == nil {
		return ErrNotAwaiting
	}
	if err := vm.commitForeignCallResult(vm.pending.destinations, result); err != nil {
		return err
	}
	vm.pending = nil
	vm.status = Running
	return nil
}

func (vm *VM) execute(inst Instruction) (StepResult, error) {
	switch inst.Op {
	case OpAdd:
		vm.setRegister(inst.Dst, field.Add(vm.Register(inst.Src1), vm.Register(inst.Src2)))
	case OpSub:
		vm.setRegister(inst.Dst, field.Sub(vm.Register(inst.Src1), vm.Register(inst.Src2)))
	case OpMul:
		vm.setRegister(inst.Dst, field.Mul(vm.Register(inst.Src1), vm.Register(inst.Src2)))
	case OpDiv:
		divisor := vm.Register(inst.Src2)
		if divisor.IsZero() {
			vm.status = Trapped
			return StepResult{Status: Trapped}, nil
		}
		vm.setRegister(inst.Dst, field.Div(vm.Register(inst.Src1), divisor))
	case OpEquals:
		if vm.Register(inst.Src1).Equal(vm.Register(inst.Src2)) {
			vm.setRegister(inst.Dst, field.One())
		} else {
			vm.setRegister(inst.Dst, field.Zero())
		}
	case OpNot:
		if vm.Register(inst.Src1).IsZero() {
			vm.setRegister(inst.Dst, field.One())
		} else {
			vm.setRegister(inst.Dst, field.Zero())
		}
	case OpConst:
		if inst.Imm < 0 || inst.Imm >= len(vm.program.Constants) {
			return StepResult{}, fmt.Errorf("rvm: constant index %d out of range", inst.Imm)
		}
		vm.setRegister(inst.Dst, vm.program.Constants[inst.Imm])
	case OpMov:
		vm.setRegister(inst.Dst, vm.Register(inst.Src1))
	case OpCalldataCopy:
		base := int(vm.Register(inst.Src1).BigInt().Int64())
		values, err := vm.mem.ReadSlice(base, inst.Imm)
		if err != nil {
			return StepResult{}, err
		}
		for i, v := range values {
			vm.setRegister(inst.Dst+RegisterIndex(i), v)
		}
	case OpStore:
		addr := int(vm.Register(inst.Dst).BigInt().Int64()) + inst.Imm
		if err := vm.mem.Write(addr, vm.Register(inst.Src1)); err != nil {
			return StepResult{}, err
		}
	case OpLoad:
		addr := int(vm.Register(inst.Src1).BigInt().Int64()) + inst.Imm
		v, err := vm.mem.Read(addr)
		if err != nil {
			return StepResult{}, err
		}
		vm.setRegister(inst.Dst, v)
	case OpJump:
		vm.pc = inst.Imm
	case OpJumpIf:
		if !vm.Register(inst.Dst).IsZero() {
			vm.pc = inst.Imm
		}
	case OpStop:
		vm.status = Finished
		return StepResult{Status: Finished}, nil
	case OpTrap:
		vm.status = Trapped
		return StepResult{Status: Trapped}, nil
	case OpForeignCall:
		return vm.executeForeignCall(inst)
	default:
		return StepResult{}, fmt.Errorf("rvm: invalid opcode %d", inst.Op)
	}
	return StepResult{Status: Running}, nil
}

func (vm *VM) executeForeignCall(inst Instruction) (StepResult, error) {
	inputs := make([][]field.Element, len(inst.FCInputs))
	for i, operand := range inst.FCInputs {
		switch operand.Kind {
		case OperandRegister:
			inputs[i] = []field.Element{vm.Register(operand.Reg)}
		case OperandMemory:
			base := int(vm.Register(operand.Reg).BigInt().Int64())
			values, err := vm.mem.ReadSlice(base, operand.MemLen)
			if err != nil {
				return StepResult{}, err
			}
			inputs[i] = values
		default:
			return StepResult{}, fmt.Errorf("rvm: invalid foreign call operand kind %d", operand.Kind)
		}
	}

	info := ForeignCallWaitInfo{Function: inst.Function, Inputs: inputs}
	vm.status = AwaitingForeignCall
	vm.pending = &pendingForeignCall{info: info, destinations: inst.FCDestinations}
	return StepResult{Status: AwaitingForeignCall, Wait: &info}, nil
}

func (vm *VM) commitForeignCallResult(destinations []ForeignCallOperand, result ForeignCallResult) error {
	if len(result.Values) != len(destinations) {
		return fmt.Errorf("%w: expected %d destinations, got %d values", ErrShapeMismatch, len(destinations), len(result.Values))
	}
	for i, dest := range destinations {
		values := result.Values[i]
		switch dest.Kind {
		case OperandRegister:
			if len(values) != 1 {
				return fmt.Errorf("%w: register destination %d expects 1 value, got %d", ErrShapeMismatch, dest.Reg, len(values))
			}
			vm.setRegister(dest.Reg, values[0])
		case OperandMemory:
			if len(values) != dest.MemLen {
				return fmt.Errorf("%w: memory destination expects %d values, got %d", ErrShapeMismatch, dest.MemLen, len(values))
			}
			base := int(vm.Register(dest.Reg).BigInt().Int64())
			if err := vm.mem.WriteSlice(base, values); err != nil {
				return err
			}
		default:
			return fmt.Errorf("rvm: invalid foreign call destination kind %d", dest.Kind)
		}
	}
	return nil
}
