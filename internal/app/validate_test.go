package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneplan/internal/registry"
	"sceneplan/internal/types"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	r, err := registry.Build(t.Context())
	require.NoError(t, err)
	return NewService(r)
}

func TestValidateApp(t *testing.T) {
	service := newTestService(t)

	result := service.Validate(t.Context(), ValidateRequest{
		Plan: types.RawScenePlan{
			"concept":       "harmonic_oscillator",
			"schemaVersion": "v1",
			"parameters":    map[string]any{"amplitude": 1.0, "frequency": 2.0},
		},
	})
	require.True(t, result.Valid, "errors: %v", result.Errors)
	assert.NotNil(t, result.Plan)
}

func TestValidateAppReportsInvalidPlanAsData(t *testing.T) {
	service := newTestService(t)

	result := service.Validate(t.Context(), ValidateRequest{
		Plan: types.RawScenePlan{
			"concept":       "harmonic_oscillator",
			"schemaVersion": "v1",
			"parameters":    map[string]any{"amplitude": 1.0},
		},
	})
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidateFileApp(t *testing.T) {
	service := newTestService(t)
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
concept: pendulum
schemaVersion: v1
parameters:
  length: 1.0
  initialAngleDeg: 20
`), 0644))

	result, err := service.ValidateFile(t.Context(), path)
	require.NoError(t, err)
	require.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestValidateFileAppMissingFile(t *testing.T) {
	service := newTestService(t)

	_, err := service.ValidateFile(t.Context(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestListConceptsApp(t *testing.T) {
	service := newTestService(t)
	concepts := service.ListConcepts()
	assert.Len(t, concepts, 9)
}

func TestControlsApp(t *testing.T) {
	service := newTestService(t)

	controls, err := service.Controls(ControlsRequest{Concept: "pendulum", Version: "v1"})
	require.NoError(t, err)
	assert.NotEmpty(t, controls)

	_, err = service.Controls(ControlsRequest{Concept: "pendulum", Version: "v9"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
