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

// Package acvm implements the PWS driver (C7): fixed-point opcode
// resolution over package solver and package bridge, with deterministic
// progress detection, stall classification, and foreign-call suspension.
package acvm

import (
	"errors"
	"fmt"

	"github.com/probechain/acvm-go/acir"
	"github.com/probechain/acvm-go/bridge"
	"github.com/probechain/acvm-go/capability"
	"github.com/probechain/acvm-go/internal/obslog"
	"github.com/probechain/acvm-go/rvm"
	"github.com/probechain/acvm-go/solver"
)

type entry struct {
	opcode acir.Opcode
	label  acir.OpcodeLabel
}

type activeBlock struct {
	label acir.OpcodeLabel
	block *acir.BrilligBlock
	state *bridge.BlockState
}

// Driver is the PWS driver (C7). The zero value is not usable; use New.
type Driver struct {
	unresolved []entry
	witness    *acir.WitnessMap

	active        *activeBlock
	pendingWait   *rvm.ForeignCallWaitInfo
	pendingAnswer *rvm.ForeignCallResult

	capability capability.Provider
	logger     *obslog.Logger
	maxPasses  int

	status Status
}

// New builds a Driver over opcodes and initialWitness. A nil capability
// falls back to capability.NewDefault(); WithCapabilityProvider overrides
// either.
func New(cap capability.Provider, opcodes []acir.Opcode, initialWitness *acir.WitnessMap, opts ...Option) *Driver {
	cfg := defaultConfig()
	if cap != nil {
		cfg.capability = cap
	}
	for _, opt := range opts {
		opt(cfg)
	}

	unresolved := make([]entry, len(opcodes))
	for i, op := range opcodes {
		unresolved[i] = entry{opcode: op, label: acir.Resolved(i)}
	}

	return &Driver{
		unresolved: unresolved,
		witness:    initialWitness,
		capability: cfg.capability,
		logger:     cfg.logger,
		maxPasses:  cfg.maxPasses,
		status:     inProgress(),
	}
}

// Status reports the driver's current status without advancing it.
func (d *Driver) Status() Status { return d.status }

// GetPendingForeignCall returns the wait info for the suspended foreign
// call, or nil if the driver is not currently suspended.
func (d *Driver) GetPendingForeignCall() *rvm.ForeignCallWaitInfo { return d.pendingWait }

// ResolvePendingForeignCall supplies the host's answer and transitions the
// driver back to in-progress; the next Solve call resumes the suspended
// Brillig block at the instruction following the ForeignCall.
func (d *Driver) ResolvePendingForeignCall(answer rvm.ForeignCallResult) {
	if d.active != nil {
		d.active.block.ForeignCallResults = append(d.active.block.ForeignCallResults, answer)
	}
	d.pendingAnswer = &answer
	d.pendingWait = nil
	d.status = inProgress()
}

// UnresolvedOpcodes returns the opcodes that have not yet been resolved, in
// their original order. Their labels are not returned.
func (d *Driver) UnresolvedOpcodes() []acir.Opcode {
	out := make([]acir.Opcode, len(d.unresolved))
	for i, e := range d.unresolved {
		out[i] = e.opcode
	}
	return out
}

// Finalize returns the completed witness map. Valid only once Status()
// reports Solved.
func (d *Driver) Finalize() (*acir.WitnessMap, error) {
	if !d.status.Solved() {
		return nil, fmt.Errorf("acvm: finalize called in status %s, not solved", d.status)
	}
	return d.witness, nil
}

// Solve advances the driver by one or more internal fixed-point sweeps
// until it solves, fails, or suspends on a foreign call (§4.5).
func (d *Driver) Solve() Status {
	if d.status.Failed() || d.status.Solved() {
		return d.status
	}

	if d.active != nil {
		if d.pendingAnswer == nil {
			// Nothing new to resume with; wait for the host.
			return d.status
		}
		answer := *d.pendingAnswer
		d.pendingAnswer = nil

		outcome, wait, err := bridge.Resume(d.active.state, d.active.block, d.witness, answer)
		if err != nil {
			d.status = failure(d.wrapBrilligError(err, d.active.label))
			return d.status
		}
		switch outcome {
		case bridge.Solved:
			d.removeEntry(d.active.label)
			d.active = nil
		case bridge.Suspend:
			d.pendingWait = wait
			d.status = requiresForeignCall()
			d.logger.Info("brillig suspended", "label", d.active.label.String(), "function", wait.Function)
			return d.status
		default:
			d.status = failure(&OpcodeNotSolvableError{Label: d.active.label})
			return d.status
		}
	}

	for pass := 0; ; pass++ {
		if pass >= d.maxPasses {
			label := acir.Unresolved()
			if len(d.unresolved) > 0 {
				label = d.unresolved[0].label
			}
			d.logger.Warn("max passes exceeded", "max_passes", d.maxPasses, "unresolved", len(d.unresolved))
			d.status = failure(&OpcodeNotSolvableError{Label: label})
			return d.status
		}

		lenBefore := len(d.unresolved)
		bindingsBefore := d.witness.Len()

		next := make([]entry, 0, len(d.unresolved))
		suspended := false
		for i := 0; i < len(d.unresolved); i++ {
			e := d.unresolved[i]

			switch op := e.opcode.(type) {
			case *acir.ArithmeticOpcode:
				outcome, err := solver.Solve(op.Expr, d.witness)
				if err != nil {
					d.status = failure(&UnsatisfiedConstraintError{Label: e.label})
					return d.status
				}
				if outcome == solver.Stall {
					next = append(next, e)
				}

			case *acir.DirectiveOpcode:
				outcome, err := solver.SolveDirective(op, d.witness)
				if err != nil {
					d.status = failure(&OpcodeNotSolvableError{Label: e.label})
					return d.status
				}
				if outcome == solver.Stall {
					next = append(next, e)
				}

			case *acir.BlackBoxOpcode:
				outcome, err := d.dispatchBlackBox(op, e.label)
				if err != nil {
					d.status = failure(err)
					return d.status
				}
				if outcome == solver.Stall {
					next = append(next, e)
				}

			case *acir.BrilligOpcode:
				if suspended {
					// Only one Brillig block may be active at a time (§4.5);
					// leave this one for a later pass once the current
					// suspension resolves.
					next = append(next, e)
					continue
				}
				state, outcome, wait, err := bridge.Start(op.Block, d.witness)
				if err != nil {
					d.status = failure(d.wrapBrilligError(err, e.label))
					return d.status
				}
				switch outcome {
				case bridge.Stall:
					next = append(next, e)
				case bridge.Suspend:
					// The suspended opcode is now tracked solely via
					// d.active, not left in d.unresolved: unresolved_opcodes
					// reports it gone as soon as it suspends, and the rest
					// of this pass still runs (§8 S1/S3).
					d.active = &activeBlock{label: e.label, block: op.Block, state: state}
					d.pendingWait = wait
					suspended = true
					d.logger.Info("brillig suspended", "label", e.label.String(), "function", wait.Function)
				case bridge.Solved:
					// removed: nothing appended to next
				}

			default:
				d.status = failure(&OpcodeNotSolvableError{Label: e.label})
				return d.status
			}
		}
		d.unresolved = next

		if suspended {
			d.status = requiresForeignCall()
			return d.status
		}

		bindingsAfter := d.witness.Len()
		d.logger.Debug("pass complete", "pass", pass, "unresolved", len(d.unresolved), "bindings", bindingsAfter)

		if len(d.unresolved) == 0 {
			d.status = solved()
			return d.status
		}
		if len(d.unresolved) == lenBefore && bindingsAfter == bindingsBefore {
			d.status = failure(&OpcodeNotSolvableError{Label: d.unresolved[0].label})
			return d.status
		}
	}
}

// removeEntry deletes the first unresolved entry labeled label, used when a
// resumed Brillig block finishes outside the main sweep loop.
func (d *Driver) removeEntry(label acir.OpcodeLabel) {
	for i, e := range d.unresolved {
		if e.label == label {
			d.unresolved = append(d.unresolved[:i], d.unresolved[i+1:]...)
			return
		}
	}
}

// wrapBrilligError classifies a bridge-layer error per §7: a trapped block
// is an unsatisfied constraint; everything else (shape mismatches, bad
// addresses) is a fatal adapter error.
func (d *Driver) wrapBrilligError(err error, label acir.OpcodeLabel) error {
	if errors.Is(err, bridge.ErrTrapped) {
		return &UnsatisfiedConstraintError{Label: label}
	}
	return &IndexOutOfBoundsError{Label: label, Inner: err}
}
