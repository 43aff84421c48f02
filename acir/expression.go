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
	"sort"

	"github.com/probechain/acvm-go/field"
)

// QuadraticTerm is coef·wi·wj with the canonical ordering wi <= wj.
type QuadraticTerm struct {
	Coef   field.Element
	Wi, Wj field.Witness
}

// LinearTerm is coef·w.
type LinearTerm struct {
	Coef field.Element
	W    field.Witness
}

// Expression is the canonical quadratic form Σcoefij·wi·wj + Σcoefk·wk + c
// described in §3. Within Q and L each witness pairing/witness appears at
// most once and zero-coefficient terms are absent; NewExpression enforces
// both.
type Expression struct {
	Q []QuadraticTerm
	L []LinearTerm
	C field.Element
}

// Zero is the expression denoting the constant 0.
func Zero() Expression { return Expression{C: field.Zero()} }

// One is the expression denoting the constant 1.
func One() Expression { return Expression{C: field.One()} }

// NewExpression builds a canonical Expression from raw terms: quadratic
// terms are reordered to wi<=wj, terms sharing a key are summed, and any
// term whose summed coefficient is zero is dropped.
func NewExpression(q []QuadraticTerm, l []LinearTerm, c field.Element) Expression {
	type qkey struct {
		a, b field.Witness
	}
	qAcc := make(map[qkey]field.Element)
	qOrder := make([]qkey, 0, len(q))
	for _, t := range q {
		wi, wj := t.Wi, t.Wj
		if wi > wj {
			wi, wj = wj, wi
		}
		k := qkey{wi, wj}
		if cur, ok := qAcc[k]; ok {
			qAcc[k] = field.Add(cur, t.Coef)
		} else {
			qAcc[k] = t.Coef
			qOrder = append(qOrder, k)
		}
	}

	lAcc := make(map[field.Witness]field.Element)
	lOrder := make([]field.Witness, 0, len(l))
	for _, t := range l {
		if cur, ok := lAcc[t.W]; ok {
			lAcc[t.W] = field.Add(cur, t.Coef)
		} else {
			lAcc[t.W] = t.Coef
			lOrder = append(lOrder, t.W)
		}
	}

	out := Expression{C: c}
	for _, k := range qOrder {
		coef := qAcc[k]
		if coef.IsZero() {
			continue
		}
		out.Q = append(out.Q, QuadraticTerm{Coef: coef, Wi: k.a, Wj: k.b})
	}
	for _, w := range lOrder {
		coef := lAcc[w]
		if coef.IsZero() {
			continue
		}
		out.L = append(out.L, LinearTerm{Coef: coef, W: w})
	}
	sort.Slice(out.Q, func(i, j int) bool {
		if out.Q[i].Wi != out.Q[j].Wi {
			return out.Q[i].Wi < out.Q[j].Wi
		}
		return out.Q[i].Wj < out.Q[j].Wj
	})
	sort.Slice(out.L, func(i, j int) bool { return out.L[i].W < out.L[j].W })
	return out
}

// IsConst reports whether e has no quadratic or linear terms.
func (e Expression) IsConst() bool {
	return len(e.Q) == 0 && len(e.L) == 0
}
