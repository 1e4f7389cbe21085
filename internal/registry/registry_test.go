package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneplan/internal/core"
	"sceneplan/internal/types"
)

func TestBuildRegistersEveryConcept(t *testing.T) {
	r, err := Build(t.Context())
	require.NoError(t, err)

	want := []ConceptInfo{
		{Concept: "annular_flow", Version: "v1"},
		{Concept: "damped_oscillator", Version: "v1"},
		{Concept: "fluid_system", Version: "v1"},
		{Concept: "harmonic_oscillator", Version: "v1"},
		{Concept: "laminar_pipe_flow", Version: "v1"},
		{Concept: "lid_driven_cavity", Version: "v1"},
		{Concept: "pendulum", Version: "v1"},
		{Concept: "projectile_motion", Version: "v1"},
		{Concept: "two_body_orbit", Version: "v1"},
	}
	assert.Equal(t, want, r.Concepts())
}

func TestLookupIsExact(t *testing.T) {
	r, err := Build(t.Context())
	require.NoError(t, err)

	schema, ok := r.Lookup("pendulum", "v1")
	require.True(t, ok)
	assert.Equal(t, "pendulum", schema.Concept)

	_, ok = r.Lookup("pendulum", "v2")
	assert.False(t, ok)
	_, ok = r.Lookup("Pendulum", "v1")
	assert.False(t, ok)
	_, ok = r.Lookup("", "")
	assert.False(t, ok)
}

func TestRegistryServesThePipeline(t *testing.T) {
	r, err := Build(t.Context())
	require.NoError(t, err)

	result := core.Validate(t.Context(), r, types.RawScenePlan{
		"concept":       "projectile_motion",
		"schemaVersion": "v1",
		"parameters":    map[string]any{"v0": 20.0, "thetaDeg": 45.0},
	})
	require.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestSelfCheckRejectsAliasGaps(t *testing.T) {
	schema := types.SceneSchema{
		Concept: "broken",
		Version: "v1",
		Shape: map[string]types.FieldSpec{
			"value": {Kind: types.FieldKindNumber, Required: true},
		},
		// Missing the identity alias for "value".
		Aliases:       map[string]string{"v": "value"},
		BuildAssembly: func(types.CanonicalParameters) types.Assembly { return types.Assembly{} },
		Example:       types.RawParameters{"v": 1.0},
	}

	err := selfCheck(t.Context(), schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must map to itself")
}

func TestSelfCheckRejectsControlClassMismatch(t *testing.T) {
	schema := types.SceneSchema{
		Concept: "broken",
		Version: "v1",
		Shape: map[string]types.FieldSpec{
			"value": {Kind: types.FieldKindNumber, Required: true},
		},
		Aliases: map[string]string{"value": "value"},
		Controls: []types.ParameterControlSpec{
			{Key: "value", Class: types.ControlClassPlanTunable, RequiresValidation: false},
		},
		BuildAssembly: func(types.CanonicalParameters) types.Assembly { return types.Assembly{} },
		Example:       types.RawParameters{"value": 1.0},
	}

	err := selfCheck(t.Context(), schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requiresValidation")
}

func TestSelfCheckRejectsContractOutsideShape(t *testing.T) {
	schema := types.SceneSchema{
		Concept: "broken",
		Version: "v1",
		Shape: map[string]types.FieldSpec{
			"value": {Kind: types.FieldKindNumber, Required: true},
		},
		Aliases: map[string]string{"value": "value"},
		Controls: []types.ParameterControlSpec{
			{Key: "value", Class: types.ControlClassRuntimeTunable},
		},
		Contracts: []types.Contract{{
			Name:   "ghost",
			Fields: []string{"phantom"},
			Check:  func(types.CanonicalParameters) string { return "" },
		}},
		BuildAssembly: func(types.CanonicalParameters) types.Assembly { return types.Assembly{} },
		Example:       types.RawParameters{"value": 1.0},
	}

	err := selfCheck(t.Context(), schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `references field "phantom"`)
}

func TestMustBuildReturnsRegistry(t *testing.T) {
	assert.NotPanics(t, func() {
		r := MustBuild(t.Context())
		require.NotNil(t, r)
	})
}
