// Package libm provides correctly rounded elementary functions with
// C-standard error reporting.
//
// The float32 entry points (Expf, Exp2f, Logf, Sinf, ...) are correctly
// rounded: for every input the result is the representable value nearest
// the infinitely precise one under the selected rounding mode. The float64
// entry points are faithful, with a maximum error of about 1 ULP for the
// exp/log family and about 2 ULP for the trigonometric functions.
//
// # Floating-point environment
//
// Go has no process-wide fenv, so the rounding mode, sticky exception
// flags, and errno live in an explicit [Env]. Every function exists both
// as a method on *Env and as a package-level function operating on
// [Default]. An Env is safe for concurrent use; goroutines that need
// isolated flags use their own Env.
//
//	env := libm.NewEnv()
//	env.SetRounding(libm.Upward)
//	y := env.Exp2f(x)
//	if env.Errno() == libm.ERANGE {
//	    // overflow or underflow
//	}
//
// Directed rounding modes are honored where the algorithms consult the
// mode: boundary cases, the exceptional-input tables, and Rint. The
// polynomial kernels themselves evaluate in round-to-nearest, which the
// table entries account for.
//
// # Special values
//
// All functions follow the C standard: NaN propagates quietly, invalid
// operations (log of a negative, sin of an infinity) return NaN and set
// EDOM plus the invalid flag, and range errors (overflow, underflow,
// log of zero) set ERANGE plus the matching flag. No function panics or
// allocates on any numeric input.
package libm

//go:generate go run github.com/ajroetker/go-libm/cmd/libmgen -o tables.go all
