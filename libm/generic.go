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

// Floats constrains the generic entry points to the two binary
// floating-point types. The constraint is exact, not ~, so the
// type switches below are exhaustive.
type Floats interface {
	float32 | float64
}

// ExpOf computes e**x, dispatching to Expf or Exp by element type.
func ExpOf[T Floats](x T) T {
	switch any(x).(type) {
	case float32:
		return T(Expf(any(x).(float32)))
	case float64:
		return T(Exp(any(x).(float64)))
	default:
		panic("unsupported float type")
	}
}

// LogOf computes the natural logarithm of x, dispatching to Logf or
// Log by element type.
func LogOf[T Floats](x T) T {
	switch any(x).(type) {
	case float32:
		return T(Logf(any(x).(float32)))
	case float64:
		return T(Log(any(x).(float64)))
	default:
		panic("unsupported float type")
	}
}

// SinOf computes sin(x), dispatching to Sinf or Sin by element type.
func SinOf[T Floats](x T) T {
	switch any(x).(type) {
	case float32:
		return T(Sinf(any(x).(float32)))
	case float64:
		return T(Sin(any(x).(float64)))
	default:
		panic("unsupported float type")
	}
}

// CosOf computes cos(x), dispatching to Cosf or Cos by element type.
func CosOf[T Floats](x T) T {
	switch any(x).(type) {
	case float32:
		return T(Cosf(any(x).(float32)))
	case float64:
		return T(Cos(any(x).(float64)))
	default:
		panic("unsupported float type")
	}
}

// SincosOf computes sin(x) and cos(x) together, dispatching to Sincosf
// or Sincos by element type.
func SincosOf[T Floats](x T) (sin, cos T) {
	switch any(x).(type) {
	case float32:
		s, c := Sincosf(any(x).(float32))
		return T(s), T(c)
	case float64:
		s, c := Sincos(any(x).(float64))
		return T(s), T(c)
	default:
		panic("unsupported float type")
	}
}
