package interval_test

import (
	"testing"

	"github.com/katalvlaran/sigwire/interval"
	"github.com/stretchr/testify/assert"
)

// TestValue_ZeroIsOff verifies that the zero Value is Off with a zero
// payload.
func TestValue_ZeroIsOff(t *testing.T) {
	var v interval.Value[int]

	assert.Equal(t, interval.Off[int](), v, "zero value must be Off")
	assert.False(t, v.IsOn())
	p, ok := v.Get()
	assert.False(t, ok)
	assert.Zero(t, p)
	assert.Equal(t, "Off", v.String())
}

// TestValue_OnCarriesPayload verifies the On variant and its rendering.
func TestValue_OnCarriesPayload(t *testing.T) {
	v := interval.On("hi")

	assert.True(t, v.IsOn())
	p, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, "hi", p)
	assert.Equal(t, "On(hi)", v.String())
}

// TestValue_Elim verifies the eliminator on both variants.
func TestValue_Elim(t *testing.T) {
	double := func(x int) int { return 2 * x }

	assert.Equal(t, -1, interval.Elim(-1, double, interval.Off[int]()))
	assert.Equal(t, 10, interval.Elim(-1, double, interval.On(5)))
}

// TestMapValue_PreservesOff verifies payload mapping on both variants.
func TestMapValue_PreservesOff(t *testing.T) {
	length := func(s string) int { return len(s) }

	assert.Equal(t, interval.Off[int](), interval.MapValue(length, interval.Off[string]()))
	assert.Equal(t, interval.On(4), interval.MapValue(length, interval.On("four")))
}
