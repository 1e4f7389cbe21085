package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFluidSystemFlattensNestedGeometry(t *testing.T) {
	result := runConcept(t, FluidSystem(), map[string]any{
		"geometry": map[string]any{
			"shape":  "tank",
			"width":  1.0,
			"height": 0.5,
		},
	})
	params := requireValid(t, result)

	assert.False(t, params.Has("geometry"))
	domainShape, ok := params.String("domainShape")
	require.True(t, ok)
	assert.Equal(t, "tank", domainShape)
	width, ok := params.Number("domainWidth")
	require.True(t, ok)
	assert.Equal(t, 1.0, width)
	height, ok := params.Number("domainHeight")
	require.True(t, ok)
	assert.Equal(t, 0.5, height)
}

func TestFluidSystemAppliesWaterPreset(t *testing.T) {
	result := runConcept(t, FluidSystem(), map[string]any{
		"geometry": map[string]any{"shape": "cavity", "width": 1.0, "height": 1.0},
	})
	params := requireValid(t, result)

	fluidType, ok := params.String("fluidType")
	require.True(t, ok)
	assert.Equal(t, "water", fluidType)
	density, ok := params.Number("density")
	require.True(t, ok)
	assert.Equal(t, 998.0, density)
	viscosity, ok := params.Number("viscosity")
	require.True(t, ok)
	assert.Equal(t, 0.001, viscosity)
}

func TestFluidSystemRejectsUnknownGeometryField(t *testing.T) {
	result := runConcept(t, FluidSystem(), map[string]any{
		"geometry": map[string]any{"shape": "tank", "width": 1.0, "depth": 2.0},
	})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Normalization failed: geometry.depth: unknown field")
}

func TestFluidSystemRejectsGeometryConflict(t *testing.T) {
	result := runConcept(t, FluidSystem(), map[string]any{
		"geometry": map[string]any{"shape": "tank", "width": 1.0, "height": 0.5},
		"width":    2.0,
	})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "geometry.width conflicts with top-level domainWidth")
}

func TestFluidSystemCustomFluidRequiresProperties(t *testing.T) {
	result := runConcept(t, FluidSystem(), map[string]any{
		"geometry": map[string]any{"shape": "tank", "width": 1.0, "height": 0.5},
		"fluid":    "custom",
	})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t,
		`Normalization failed: fluidType "custom" requires explicit density and viscosity`,
		result.Errors[0])
}

func TestFluidSystemCustomFluidAcceptsExplicitProperties(t *testing.T) {
	result := runConcept(t, FluidSystem(), map[string]any{
		"geometry": map[string]any{"shape": "channel", "width": 2.0, "height": 0.5},
		"fluid":    "custom",
		"rho":      1200.0,
		"mu":       0.5,
	})
	params := requireValid(t, result)

	density, ok := params.Number("density")
	require.True(t, ok)
	assert.Equal(t, 1200.0, density)
}

func TestFluidSystemRejectsPresetOverride(t *testing.T) {
	result := runConcept(t, FluidSystem(), map[string]any{
		"geometry": map[string]any{"shape": "tank", "width": 1.0, "height": 0.5},
		"fluid":    "glycerin",
		"rho":      500.0,
	})
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], `fluidType "glycerin" implies density 1260`)
}

func TestFluidSystemRejectsZeroFillFraction(t *testing.T) {
	result := runConcept(t, FluidSystem(), map[string]any{
		"geometry": map[string]any{"shape": "tank", "width": 1.0, "height": 0.5},
		"fill":     0.0,
	})
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "fillFraction: must be > 0, got 0")
}

func TestFluidSystemRejectsNonObjectGeometry(t *testing.T) {
	result := runConcept(t, FluidSystem(), map[string]any{
		"geometry": "tank",
	})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "geometry: expected object")
}
