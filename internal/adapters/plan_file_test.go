package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPlanJSON(t *testing.T) {
	path := writeFile(t, "plan.json", `{
		"concept": "pendulum",
		"schemaVersion": "v1",
		"parameters": {"length": 1.0, "initialAngleDeg": 20}
	}`)

	plan, err := NewPlanFileAdapter().LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, "pendulum", plan["concept"])
	params, ok := plan["parameters"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1.0, params["length"])
}

func TestLoadPlanYAML(t *testing.T) {
	path := writeFile(t, "plan.yaml", `
concept: pendulum
schemaVersion: v1
parameters:
  length: 1.0
  initialAngleDeg: 20
`)

	plan, err := NewPlanFileAdapter().LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, "pendulum", plan["concept"])
	params, ok := plan["parameters"].(map[string]any)
	require.True(t, ok)
	if diff := cmp.Diff(1.0, params["length"]); diff != "" {
		t.Fatalf("unexpected length (-want +got):\n%s", diff)
	}
}

func TestLoadPlanMissingFile(t *testing.T) {
	_, err := NewPlanFileAdapter().LoadPlan(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestLoadPlanRejectsBrokenJSON(t *testing.T) {
	path := writeFile(t, "plan.json", `{"concept": `)
	_, err := NewPlanFileAdapter().LoadPlan(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLoadCanonicalPlan(t *testing.T) {
	path := writeFile(t, "canonical.json", `{
		"concept": "pendulum",
		"schemaVersion": "v1",
		"parameters": {"length": 1.0}
	}`)

	plan, err := NewPlanFileAdapter().LoadCanonicalPlan(path)
	require.NoError(t, err)
	assert.Equal(t, "pendulum", plan.Concept)
	assert.Equal(t, "v1", plan.SchemaVersion)
	length, ok := plan.Parameters.Number("length")
	require.True(t, ok)
	assert.Equal(t, 1.0, length)
}

func TestLoadCanonicalPlanRequiresIdentity(t *testing.T) {
	path := writeFile(t, "canonical.json", `{"parameters": {"length": 1.0}}`)
	_, err := NewPlanFileAdapter().LoadCanonicalPlan(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
