package libm

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvDefaults(t *testing.T) {
	e := NewEnv()
	assert.Equal(t, ToNearest, e.Rounding())
	assert.Equal(t, Exception(0), e.Test(ExAll))
	assert.Equal(t, Errno(0), e.Errno())
}

func TestEnvRounding(t *testing.T) {
	e := NewEnv()
	for _, m := range []RoundingMode{TowardZero, Downward, Upward, ToNearest} {
		e.SetRounding(m)
		assert.Equal(t, m, e.Rounding())
	}
}

func TestEnvStickyFlags(t *testing.T) {
	e := NewEnv()
	e.Raise(ExInexact)
	e.Raise(ExOverflow)
	assert.Equal(t, ExInexact|ExOverflow, e.Test(ExAll))
	assert.Equal(t, ExOverflow, e.Test(ExOverflow|ExInvalid))

	// Raising an already-set flag is a no-op, clearing is selective.
	e.Raise(ExInexact)
	e.ClearExcept(ExInexact)
	assert.Equal(t, ExOverflow, e.Test(ExAll))
	e.ClearExcept(ExAll)
	assert.Equal(t, Exception(0), e.Test(ExAll))
}

func TestEnvErrno(t *testing.T) {
	e := NewEnv()
	e.SetErrno(EDOM)
	assert.Equal(t, EDOM, e.Errno())
	e.SetErrno(ERANGE)
	assert.Equal(t, ERANGE, e.Errno())
	e.SetErrno(0)
	assert.Equal(t, Errno(0), e.Errno())
}

func TestEnvConcurrentRaise(t *testing.T) {
	e := NewEnv()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		flag := []Exception{ExInvalid, ExDivByZero, ExOverflow, ExUnderflow}[i%4]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				e.Raise(flag)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, ExInvalid|ExDivByZero|ExOverflow|ExUnderflow, e.Test(ExAll))
}

func TestRoundingModeString(t *testing.T) {
	assert.Equal(t, "to-nearest", ToNearest.String())
	assert.Equal(t, "toward-zero", TowardZero.String())
	assert.Equal(t, "downward", Downward.String())
	assert.Equal(t, "upward", Upward.String())
	assert.Equal(t, "unknown", RoundingMode(99).String())
}
