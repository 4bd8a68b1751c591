package trigger_test

import (
	"testing"

	"github.com/katalvlaran/sigwire/trigger"
	"github.com/stretchr/testify/assert"
)

// TestNone_IsAbsent verifies the absent event and its zero-value payload.
func TestNone_IsAbsent(t *testing.T) {
	e := trigger.None[int]()

	assert.False(t, e.Fired(), "None must not be fired")
	p, ok := e.Payload()
	assert.False(t, ok)
	assert.Zero(t, p, "absent payload must be the zero value")
	assert.Equal(t, "None", e.String())
}

// TestFire_CarriesPayload verifies the present event.
func TestFire_CarriesPayload(t *testing.T) {
	e := trigger.Fire("ping")

	assert.True(t, e.Fired())
	p, ok := e.Payload()
	assert.True(t, ok)
	assert.Equal(t, "ping", p)
	assert.Equal(t, "Fire(ping)", e.String())
}

// TestZeroValue_IsNone verifies that the zero Event equals None.
func TestZeroValue_IsNone(t *testing.T) {
	var e trigger.Event[string]

	assert.Equal(t, trigger.None[string](), e, "zero value must be the absent event")
}

// TestElim_ChoosesBranch verifies the eliminator on both variants.
func TestElim_ChoosesBranch(t *testing.T) {
	double := func(x int) int { return 2 * x }

	assert.Equal(t, -1, trigger.Elim(-1, double, trigger.None[int]()),
		"absent event must eliminate to the default")
	assert.Equal(t, 14, trigger.Elim(-1, double, trigger.Fire(7)),
		"present event must eliminate through f")
}

// TestMap_PreservesAbsence verifies payload mapping on both variants.
func TestMap_PreservesAbsence(t *testing.T) {
	length := func(s string) int { return len(s) }

	assert.Equal(t, trigger.None[int](), trigger.Map(length, trigger.None[string]()))
	assert.Equal(t, trigger.Fire(3), trigger.Map(length, trigger.Fire("abc")))
}
