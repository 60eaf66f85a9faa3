package libm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpOf(t *testing.T) {
	assert.Equal(t, Expf(1.5), ExpOf(float32(1.5)))
	assert.Equal(t, Exp(1.5), ExpOf(1.5))
}

func TestLogOf(t *testing.T) {
	assert.Equal(t, Logf(7), LogOf(float32(7)))
	assert.Equal(t, Log(7), LogOf(7.0))
}

func TestSinCosOf(t *testing.T) {
	assert.Equal(t, Sinf(2), SinOf(float32(2)))
	assert.Equal(t, Sin(2), SinOf(2.0))
	assert.Equal(t, Cosf(2), CosOf(float32(2)))
	assert.Equal(t, Cos(2), CosOf(2.0))
}

func TestSincosOf(t *testing.T) {
	s32, c32 := SincosOf(float32(math.Pi / 3))
	ws, wc := Sincosf(float32(math.Pi / 3))
	assert.Equal(t, ws, s32)
	assert.Equal(t, wc, c32)

	s64, c64 := SincosOf(math.Pi / 3)
	ws64, wc64 := Sincos(math.Pi / 3)
	assert.Equal(t, ws64, s64)
	assert.Equal(t, wc64, c64)
}
