package schemas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarmonicOscillatorDerivesSpringConstant(t *testing.T) {
	result := runConcept(t, HarmonicOscillator(), map[string]any{
		"amplitude": 1.0,
		"frequency": 1.0,
	})
	params := requireValid(t, result)

	stiffness, ok := params.Number("springConstant")
	require.True(t, ok)
	omega := 2 * math.Pi
	assert.InDelta(t, omega*omega, stiffness, 1e-9)
}

func TestHarmonicOscillatorDerivesFrequencyFromStiffness(t *testing.T) {
	omega := 2 * math.Pi
	result := runConcept(t, HarmonicOscillator(), map[string]any{
		"amplitude": 1.0,
		"k":         omega * omega,
	})
	params := requireValid(t, result)

	frequency, ok := params.Number("frequency")
	require.True(t, ok)
	assert.InDelta(t, 1.0, frequency, 1e-9)
}

func TestHarmonicOscillatorRejectsInconsistentPair(t *testing.T) {
	result := runConcept(t, HarmonicOscillator(), map[string]any{
		"amplitude":      1.0,
		"frequency":      1.0,
		"springConstant": 5.0,
	})
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "springConstant is inconsistent with mass and frequency")
}

func TestHarmonicOscillatorRequiresFrequencyOrStiffness(t *testing.T) {
	result := runConcept(t, HarmonicOscillator(), map[string]any{"amplitude": 1.0})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Normalization failed: one of frequency or springConstant")
}

func TestHarmonicOscillatorRejectsNonPositiveAmplitude(t *testing.T) {
	result := runConcept(t, HarmonicOscillator(), map[string]any{
		"amplitude": -2.0,
		"frequency": 1.0,
	})
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "amplitude: must be > 0, got -2")
}

func TestHarmonicOscillatorNamesNonPositiveMass(t *testing.T) {
	result := runConcept(t, HarmonicOscillator(), map[string]any{
		"amplitude": 1.0,
		"frequency": 2.0,
		"mass":      -1.0,
	})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Normalization failed: mass: must be > 0, got -1", result.Errors[0])
}

func TestHarmonicOscillatorAliasesAreEquivalent(t *testing.T) {
	viaAliases := runConcept(t, HarmonicOscillator(), map[string]any{
		"A": 2.0, "freq": 1.5, "phi": 0.5,
	})
	viaCanonical := runConcept(t, HarmonicOscillator(), map[string]any{
		"amplitude": 2.0, "frequency": 1.5, "phase": 0.5,
	})
	assert.Equal(t, requireValid(t, viaCanonical), requireValid(t, viaAliases))
}

func TestDampedOscillatorDerivesDampingCoefficient(t *testing.T) {
	result := runConcept(t, DampedOscillator(), map[string]any{
		"amplitude":    1.0,
		"frequency":    2.0,
		"dampingRatio": 0.1,
	})
	params := requireValid(t, result)

	stiffness, ok := params.Number("springConstant")
	require.True(t, ok)
	coefficient, ok := params.Number("dampingCoefficient")
	require.True(t, ok)
	assert.InDelta(t, 2*0.1*math.Sqrt(stiffness*1.0), coefficient, 1e-9)
}

func TestDampedOscillatorRejectsInconsistentCoefficient(t *testing.T) {
	result := runConcept(t, DampedOscillator(), map[string]any{
		"amplitude":          1.0,
		"frequency":          2.0,
		"dampingRatio":       0.1,
		"dampingCoefficient": 42.0,
	})
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "dampingCoefficient is inconsistent with dampingRatio")
}

func TestDampedOscillatorNamesNegativeDampingRatio(t *testing.T) {
	result := runConcept(t, DampedOscillator(), map[string]any{
		"amplitude":    1.0,
		"frequency":    2.0,
		"dampingRatio": -0.5,
	})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Normalization failed: dampingRatio: must be >= 0, got -0.5", result.Errors[0])
}

func TestDampedOscillatorBuildsDampedEvolution(t *testing.T) {
	schema := DampedOscillator()
	result := runConcept(t, schema, schema.Example)
	params := requireValid(t, result)

	assembly := schema.BuildAssembly(params)
	assert.Equal(t, "damped_shm", assembly.Evolution.Tag())
}
