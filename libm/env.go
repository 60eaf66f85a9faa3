// Copyright 2025 go-libm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package libm

import "sync/atomic"

// RoundingMode selects how results on rounding boundaries are resolved.
type RoundingMode uint32

const (
	// ToNearest rounds to the nearest representable value, ties to even.
	ToNearest RoundingMode = iota
	// TowardZero truncates toward zero.
	TowardZero
	// Downward rounds toward negative infinity.
	Downward
	// Upward rounds toward positive infinity.
	Upward
)

func (m RoundingMode) String() string {
	switch m {
	case ToNearest:
		return "to-nearest"
	case TowardZero:
		return "toward-zero"
	case Downward:
		return "downward"
	case Upward:
		return "upward"
	}
	return "unknown"
}

// Exception is a bitmask of the IEEE-754 sticky exception flags.
type Exception uint32

const (
	ExInvalid Exception = 1 << iota
	ExDivByZero
	ExOverflow
	ExUnderflow
	ExInexact

	// ExAll selects every flag, for use with Test and ClearExcept.
	ExAll = ExInvalid | ExDivByZero | ExOverflow | ExUnderflow | ExInexact
)

// Errno is the C math error channel. Domain errors (an argument outside
// the function's domain) report EDOM; range errors (a result that
// overflows or underflows) report ERANGE.
type Errno int32

const (
	EDOM   Errno = 33
	ERANGE Errno = 34
)

// Env is an explicit floating-point environment: a rounding mode, the
// sticky exception flags, and errno. The zero Env rounds to nearest with
// all flags and errno clear.
//
// All fields are accessed atomically, so a shared Env never races; flags
// raised by concurrent calls accumulate. Callers that need to attribute
// flags to a particular computation use a private Env.
type Env struct {
	mode  atomic.Uint32
	flags atomic.Uint32
	errno atomic.Int32
}

// Default is the environment used by the package-level functions.
var Default = NewEnv()

// NewEnv returns an environment rounding to nearest with clear flags.
func NewEnv() *Env { return new(Env) }

// Rounding returns the current rounding mode.
func (e *Env) Rounding() RoundingMode { return RoundingMode(e.mode.Load()) }

// SetRounding selects the rounding mode for subsequent calls.
func (e *Env) SetRounding(m RoundingMode) { e.mode.Store(uint32(m)) }

// Raise sets the given sticky flags. Flags stay set until cleared.
func (e *Env) Raise(ex Exception) {
	if ex != 0 {
		e.flags.Or(uint32(ex))
	}
}

// Test returns the subset of ex currently raised.
func (e *Env) Test(ex Exception) Exception {
	return Exception(e.flags.Load()) & ex
}

// ClearExcept clears the given sticky flags.
func (e *Env) ClearExcept(ex Exception) {
	e.flags.And(^uint32(ex))
}

// Errno returns the last recorded math error, or 0.
func (e *Env) Errno() Errno { return Errno(e.errno.Load()) }

// SetErrno records a math error. Passing 0 clears it.
func (e *Env) SetErrno(no Errno) { e.errno.Store(int32(no)) }

// reportDomain is the shared invalid-argument path: NaN result, EDOM,
// invalid flag.
func (e *Env) reportDomain() {
	e.SetErrno(EDOM)
	e.Raise(ExInvalid)
}

// reportOverflow records a finite argument producing an out-of-range
// magnitude.
func (e *Env) reportOverflow() {
	e.SetErrno(ERANGE)
	e.Raise(ExOverflow | ExInexact)
}

// reportUnderflow records a result too small to represent faithfully.
func (e *Env) reportUnderflow() {
	e.SetErrno(ERANGE)
	e.Raise(ExUnderflow | ExInexact)
}
