package agent

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneplan/internal/app"
	"sceneplan/internal/core"
	"sceneplan/internal/registry"
)

func newTestToolkit(t *testing.T) Toolkit {
	t.Helper()
	r, err := registry.Build(t.Context())
	require.NoError(t, err)
	return NewToolkit(app.NewService(r))
}

func TestDefinitionsCoverEveryTool(t *testing.T) {
	defs := newTestToolkit(t).Definitions()
	require.Len(t, defs, 3)

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
		assert.NotEmpty(t, def.Description)
		assert.Equal(t, "object", def.InputSchema["type"])
	}
	assert.ElementsMatch(t,
		[]string{ToolValidateScenePlan, ToolPatchScenePlan, ToolListConcepts}, names)
}

func TestInvokeValidate(t *testing.T) {
	kit := newTestToolkit(t)

	out, err := kit.Invoke(t.Context(), ToolValidateScenePlan, map[string]any{
		"concept":       "pendulum",
		"schemaVersion": "v1",
		"parameters":    map[string]any{"length": 1.0, "initialAngleDeg": 15.0},
	})
	require.NoError(t, err)

	result, ok := out.(core.Result)
	require.True(t, ok)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	require.NotNil(t, result.Plan)
	assert.True(t, result.Plan.Parameters.Has("period"))
}

func TestInvokeValidateReturnsProblemsAsData(t *testing.T) {
	kit := newTestToolkit(t)

	out, err := kit.Invoke(t.Context(), ToolValidateScenePlan, map[string]any{
		"concept":       "pendulum",
		"schemaVersion": "v1",
		"parameters":    map[string]any{"length": -1.0, "initialAngleDeg": 15.0},
	})
	require.NoError(t, err, "an invalid plan is a tool result, not a tool failure")

	result, ok := out.(core.Result)
	require.True(t, ok)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestInvokePatchRoundTrip(t *testing.T) {
	kit := newTestToolkit(t)

	first, err := kit.Invoke(t.Context(), ToolValidateScenePlan, map[string]any{
		"concept":       "projectile_motion",
		"schemaVersion": "v1",
		"parameters":    map[string]any{"v0": 20.0, "thetaDeg": 45.0},
	})
	require.NoError(t, err)
	result := first.(core.Result)
	require.True(t, result.Valid)

	planObj := map[string]any{
		"concept":       result.Plan.Concept,
		"schemaVersion": result.Plan.SchemaVersion,
		"parameters":    map[string]any(result.Plan.Parameters),
	}
	out, err := kit.Invoke(t.Context(), ToolPatchScenePlan, map[string]any{
		"canonicalScenePlan": planObj,
		"delta":              map[string]any{"initialSpeed": 30.0},
	})
	require.NoError(t, err)

	patched := out.(core.Result)
	assert.True(t, patched.Valid, "errors: %v", patched.Errors)
	speed, ok := patched.Plan.Parameters.Number("initialSpeed")
	require.True(t, ok)
	assert.Equal(t, 30.0, speed)
}

func TestInvokePatchRejectsMalformedInput(t *testing.T) {
	kit := newTestToolkit(t)

	_, err := kit.Invoke(t.Context(), ToolPatchScenePlan, map[string]any{
		"canonicalScenePlan": "not an object",
		"delta":              map[string]any{},
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = kit.Invoke(t.Context(), ToolPatchScenePlan, map[string]any{
		"canonicalScenePlan": map[string]any{"parameters": map[string]any{}},
		"delta":              map[string]any{},
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestInvokeListConcepts(t *testing.T) {
	kit := newTestToolkit(t)

	out, err := kit.Invoke(t.Context(), ToolListConcepts, map[string]any{})
	require.NoError(t, err)

	body, ok := out.(map[string]any)
	require.True(t, ok)
	concepts, ok := body["concepts"].([]registry.ConceptInfo)
	require.True(t, ok)
	assert.Len(t, concepts, 9)
}

func TestInvokeUnknownTool(t *testing.T) {
	kit := newTestToolkit(t)

	_, err := kit.Invoke(t.Context(), "summon_scene", map[string]any{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
