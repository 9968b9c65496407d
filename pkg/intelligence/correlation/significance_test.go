package correlation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignificance_TooFewSamples(t *testing.T) {
	engine := newTestEngine(t)

	for _, n := range []int{0, 1, 2} {
		p, confidence, significant := engine.significance(0.9, n)
		assert.Equal(t, 1.0, p, "n=%d", n)
		assert.Equal(t, 0.0, confidence, "n=%d", n)
		assert.False(t, significant, "n=%d", n)
	}
}

func TestSignificance_PerfectCorrelation(t *testing.T) {
	engine := newTestEngine(t)

	p, confidence, significant := engine.significance(1.0, 10)
	assert.Equal(t, 0.001, p)
	assert.InDelta(t, 0.999, confidence, 1e-9)
	assert.True(t, significant)

	p, _, significant = engine.significance(-1.0, 10)
	assert.Equal(t, 0.001, p)
	assert.True(t, significant)
}

func TestSignificance_OutOfRangeCorrelation(t *testing.T) {
	engine := newTestEngine(t)

	// Anything past the boundary is numeric garbage: not significant
	p, confidence, significant := engine.significance(1.5, 10)
	assert.Equal(t, 1.0, p)
	assert.Equal(t, 0.0, confidence)
	assert.False(t, significant)
}

func TestSignificance_StrongCorrelation(t *testing.T) {
	engine := newTestEngine(t)

	// r=0.8, n=10: t = 0.8*sqrt(8/0.36) ~ 3.77 at df=8
	p, confidence, significant := engine.significance(0.8, 10)
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 0.01)
	assert.Greater(t, confidence, 0.99)
	assert.True(t, significant)
}

func TestSignificance_WeakCorrelation(t *testing.T) {
	engine := newTestEngine(t)

	// r=0.2 over 10 days is nowhere near significant
	p, confidence, significant := engine.significance(0.2, 10)
	assert.Greater(t, p, 0.05)
	assert.False(t, significant)
	assert.InDelta(t, 1-p, confidence, 1e-9)
}

func TestSignificance_ZeroCorrelation(t *testing.T) {
	engine := newTestEngine(t)

	p, confidence, significant := engine.significance(0, 20)
	assert.InDelta(t, 1.0, p, 1e-9)
	assert.Equal(t, 0.0, confidence)
	assert.False(t, significant)
}
