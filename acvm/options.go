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

import (
	"github.com/probechain/acvm-go/capability"
	"github.com/probechain/acvm-go/internal/obslog"
)

const defaultMaxPasses = 10_000

// Option configures a Driver at construction time. There is no CLI or
// config-file surface (out of scope); options are the only configuration
// mechanism.
type Option func(*config)

type config struct {
	capability capability.Provider
	logger     *obslog.Logger
	maxPasses  int
}

func defaultConfig() *config {
	return &config{
		capability: capability.NewDefault(),
		logger:     obslog.Nop(),
		maxPasses:  defaultMaxPasses,
	}
}

// WithCapabilityProvider overrides the default (secp256k1/bn254-backed)
// black-box capability implementation.
func WithCapabilityProvider(p capability.Provider) Option {
	return func(c *config) { c.capability = p }
}

// WithLogger attaches a structured logger for pass boundaries, suspensions,
// and exceeding the pass limit; other terminal status transitions are not
// logged. Logging never gates control flow.
func WithLogger(l *obslog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMaxPasses bounds the number of fixed-point sweeps (§9 NEW): a
// malformed circuit that never converges fails with OpcodeNotSolvableError
// on the first remaining opcode instead of looping forever. The default is
// generous enough that no well-formed circuit should ever hit it.
func WithMaxPasses(n int) Option {
	return func(c *config) { c.maxPasses = n }
}
