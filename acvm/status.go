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

package acvm

import "fmt"

// Status is the driver's externally observable state (§4.5's ACVMStatus).
// InProgress and RequiresForeignCall are transient; Solved and Failure are
// terminal.
type Status struct {
	kind statusKind
	err  error // non-nil iff kind == statusFailure
}

type statusKind uint8

const (
	statusInProgress statusKind = iota
	statusRequiresForeignCall
	statusSolved
	statusFailure
)

// InProgress reports whether another Solve call may make progress.
func (s Status) InProgress() bool { return s.kind == statusInProgress }

// RequiresForeignCall reports whether the driver is suspended awaiting a
// foreign call answer.
func (s Status) RequiresForeignCall() bool { return s.kind == statusRequiresForeignCall }

// Solved reports whether every opcode has been resolved.
func (s Status) Solved() bool { return s.kind == statusSolved }

// Failed reports whether the driver has entered a terminal error state. Err
// returns the reason.
func (s Status) Failed() bool { return s.kind == statusFailure }

// Err returns the failure reason, or nil if Failed is false.
func (s Status) Err() error { return s.err }

func (s Status) String() string {
	switch s.kind {
	case statusInProgress:
		return "in_progress"
	case statusRequiresForeignCall:
		return "requires_foreign_call"
	case statusSolved:
		return "solved"
	case statusFailure:
		return fmt.Sprintf("failure(%s)", s.err)
	default:
		return "unknown"
	}
}

func inProgress() Status            { return Status{kind: statusInProgress} }
func requiresForeignCall() Status   { return Status{kind: statusRequiresForeignCall} }
func solved() Status                { return Status{kind: statusSolved} }
func failure(err error) Status      { return Status{kind: statusFailure, err: err} }
