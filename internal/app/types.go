package app

import "sceneplan/internal/types"

type ValidateRequest struct {
	Plan types.RawScenePlan
}

type PatchRequest struct {
	Plan  types.CanonicalScenePlan
	Delta map[string]any
}

type ControlsRequest struct {
	Concept string
	Version string
}
