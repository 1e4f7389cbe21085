package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneplan/internal/types"
)

// patchSchema extends the toy concept with a derived key and control
// classes, mirroring how the registered concepts declare tunability.
func patchSchema() types.SceneSchema {
	schema := toySchema()
	schema.Shape["period"] = types.FieldSpec{Kind: types.FieldKindNumber, Required: true}
	schema.Aliases["period"] = "period"
	schema.Derive = func(p types.CanonicalParameters) []string {
		frequency, ok := p.Number("frequency")
		if !ok || frequency <= 0 {
			return nil
		}
		if !p.Has("period") {
			p["period"] = 1 / frequency
		}
		return nil
	}
	schema.Controls = []types.ParameterControlSpec{
		{Key: "amplitude", Class: types.ControlClassRuntimeTunable},
		{Key: "frequency", Class: types.ControlClassPlanTunable, RequiresValidation: true},
		{Key: "mass", Class: types.ControlClassPlanTunable, RequiresValidation: true},
		{Key: "mode", Class: types.ControlClassLocked},
		{Key: "period", Class: types.ControlClassReadOnly},
	}
	return schema
}

func patchSource() stubSource {
	schema := patchSchema()
	return stubSource{schema.Concept + "/" + schema.Version: schema}
}

func validatedToyPlan(t *testing.T, source stubSource) types.CanonicalScenePlan {
	t.Helper()
	result := Validate(t.Context(), source, types.RawScenePlan{
		"concept":       "toy_concept",
		"schemaVersion": "v1",
		"parameters":    map[string]any{"amplitude": 1.0, "frequency": 2.0},
	})
	require.True(t, result.Valid, "fixture plan must validate: %v", result.Errors)
	return *result.Plan
}

func TestApplyPatchRecomputesDerivedKeys(t *testing.T) {
	source := patchSource()
	plan := validatedToyPlan(t, source)
	period, ok := plan.Parameters.Number("period")
	require.True(t, ok)
	assert.Equal(t, 0.5, period)

	result := ApplyPatch(t.Context(), source, plan, map[string]any{"frequency": 4.0})
	require.True(t, result.Valid, "patch rejected: %v", result.Errors)

	patched, ok := result.Plan.Parameters.Number("period")
	require.True(t, ok)
	assert.Equal(t, 0.25, patched)
	amplitude, ok := result.Plan.Parameters.Number("amplitude")
	require.True(t, ok)
	assert.Equal(t, 1.0, amplitude)
}

func TestApplyPatchRejectsReadOnlyAndLockedKeys(t *testing.T) {
	source := patchSource()
	plan := validatedToyPlan(t, source)

	result := ApplyPatch(t.Context(), source, plan, map[string]any{
		"period":    9.0,
		"mode":      "driven",
		"frequency": 4.0,
	})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], `parameter "mode" has control class "locked"`)
	assert.Contains(t, result.Errors[1], `parameter "period" has control class "read_only"`)
}

func TestApplyPatchRejectsUnknownKey(t *testing.T) {
	source := patchSource()
	plan := validatedToyPlan(t, source)

	result := ApplyPatch(t.Context(), source, plan, map[string]any{"bogus": 1.0})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `unknown parameter "bogus"`)
}

func TestApplyPatchRejectsStructurallyInvalidValue(t *testing.T) {
	source := patchSource()
	plan := validatedToyPlan(t, source)

	result := ApplyPatch(t.Context(), source, plan, map[string]any{"amplitude": -1.0})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "amplitude: must be > 0")
}

func TestApplyPatchLeavesInputPlanUntouched(t *testing.T) {
	source := patchSource()
	plan := validatedToyPlan(t, source)

	_ = ApplyPatch(t.Context(), source, plan, map[string]any{"frequency": 4.0})

	frequency, ok := plan.Parameters.Number("frequency")
	require.True(t, ok)
	assert.Equal(t, 2.0, frequency)
	period, ok := plan.Parameters.Number("period")
	require.True(t, ok)
	assert.Equal(t, 0.5, period)
}

func TestApplyPatchRejectsUnregisteredPlan(t *testing.T) {
	source := patchSource()
	plan := types.CanonicalScenePlan{Concept: "ghost", SchemaVersion: "v1"}

	result := ApplyPatch(t.Context(), source, plan, map[string]any{"frequency": 1.0})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "no schema registered")
}
