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

// Package solver implements the single-step expression reducer (C4) and the
// directive handler (C4.2). Both are stateless with respect to control
// flow: it is package acvm's job to iterate to a fixed point.
package solver

import (
	"fmt"

	"github.com/probechain/acvm-go/acir"
	"github.com/probechain/acvm-go/field"
)

// Outcome is the non-error result of Solve: whether the opcode is now fully
// satisfied, made progress (and should be retired, its binding already
// applied), or could not be advanced this pass.
type Outcome int

const (
	Solved Outcome = iota
	Progress
	Stall
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Progress:
		return "progress"
	case Stall:
		return "stall"
	default:
		return "unknown"
	}
}

// ErrUnsatisfied is wrapped into the error Solve returns when a reduced
// expression is a non-zero constant — a proven constraint violation, not a
// stall (§4.1).
var ErrUnsatisfied = fmt.Errorf("solver: unsatisfied constraint")

// Solve substitutes every witness bound in m into e, classifies the
// residual, and — for the two solvable shapes — inserts the derived binding
// into m itself before returning. A non-nil error always means the
// expression is proven false; Outcome is only meaningful when err == nil.
func Solve(e acir.Expression, m *acir.WitnessMap) (Outcome, error) {
	reduced := substitute(e, m)

	switch {
	case reduced.IsConst():
		if reduced.C.IsZero() {
			return Solved, nil
		}
		return Stall, fmt.Errorf("%w: residual constant %s", ErrUnsatisfied, reduced.C)

	case len(reduced.Q) == 0 && len(reduced.L) == 1:
		term := reduced.L[0]
		// a*w + c = 0  =>  w = -c/a
		val := field.Neg(field.Div(reduced.C, term.Coef))
		if err := m.Insert(term.W, val); err != nil {
			return Stall, fmt.Errorf("solver: binding witness %d: %w", term.W, err)
		}
		return Progress, nil

	case len(reduced.Q) == 1 && len(reduced.L) == 0 && reduced.Q[0].Wi == reduced.Q[0].Wj:
		// A pure square a*w*w + c = 0. Only the c=0 case (w=0) is
		// deterministic; any other value requires a square root the solver
		// has no way to choose canonically, so it stalls and waits for a
		// directive or Brillig block to supply the value instead (§4.1).
		if reduced.C.IsZero() {
			w := reduced.Q[0].Wi
			if err := m.Insert(w, field.Zero()); err != nil {
				return Stall, fmt.Errorf("solver: binding witness %d: %w", w, err)
			}
			return Progress, nil
		}
		return Stall, nil

	default:
		return Stall, nil
	}
}

// substitute folds every witness bound in m into e's constant term and
// drops the corresponding term, returning a new canonical Expression. It
// never mutates m.
func substitute(e acir.Expression, m *acir.WitnessMap) acir.Expression {
	c := e.C
	var q []acir.QuadraticTerm
	var l []acir.LinearTerm

	for _, t := range e.Q {
		vi, iBound := m.Get(t.Wi)
		vj, jBound := m.Get(t.Wj)
		switch {
		case iBound && jBound:
			c = field.Add(c, field.Mul(t.Coef, field.Mul(vi, vj)))
		case iBound && !jBound:
			l = append(l, acir.LinearTerm{Coef: field.Mul(t.Coef, vi), W: t.Wj})
		case !iBound && jBound:
			l = append(l, acir.LinearTerm{Coef: field.Mul(t.Coef, vj), W: t.Wi})
		default:
			q = append(q, t)
		}
	}

	for _, t := range e.L {
		if v, ok := m.Get(t.W); ok {
			c = field.Add(c, field.Mul(t.Coef, v))
			continue
		}
		l = append(l, t)
	}

	return acir.NewExpression(q, l, c)
}
