package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"sceneplan/internal/types"
)

// SchemaSource resolves a (concept, schemaVersion) pair to its
// registered schema. Lookups are exact: no inference, no fuzzy
// matching, no default version.
type SchemaSource interface {
	Lookup(concept, version string) (types.SceneSchema, bool)
}

// Result is the outcome of one validation or patch run. Nothing is
// ever partially applied: either Valid is true and Plan carries the
// canonical scene plan, or Errors holds every detected problem.
type Result struct {
	Valid  bool                      `json:"valid"`
	Errors []string                  `json:"errors"`
	Plan   *types.CanonicalScenePlan `json:"canonicalScenePlan,omitempty"`
}

func failure(errs ...string) Result {
	return Result{Valid: false, Errors: errs}
}

// Validate is the engine's single public entry point. It drives the
// linear state machine: top-level shape, registry lookup,
// normalization, structural validation, semantic contracts. Each step
// gates the next; contract violations are reported exhaustively.
func Validate(ctx context.Context, source SchemaSource, raw types.RawScenePlan) Result {
	concept, conceptOK := raw["concept"].(string)
	version, versionOK := raw["schemaVersion"].(string)
	var topLevel []string
	if !conceptOK || concept == "" {
		topLevel = append(topLevel, msgMalformedConcept())
	}
	if !versionOK || version == "" {
		topLevel = append(topLevel, msgMalformedVersion())
	}
	if len(topLevel) > 0 {
		return failure(topLevel...)
	}

	schema, found := source.Lookup(concept, version)
	if !found {
		return failure(msgUnregisteredSchema(concept, version))
	}

	params := types.RawParameters{}
	if rawParams, present := raw["parameters"]; present {
		switch obj := rawParams.(type) {
		case map[string]any:
			params = types.RawParameters(obj)
		case types.RawParameters:
			params = obj
		default:
			return failure(msgMalformedParameters())
		}
	}

	canonical, normErr := Normalize(schema, params)
	if normErr != "" {
		return failure("Normalization failed: " + normErr)
	}

	if problems := ValidateStructure(schema, canonical); len(problems) > 0 {
		return failure(problems...)
	}

	if problems := RunContracts(ctx, schema, canonical); len(problems) > 0 {
		return failure(problems...)
	}

	log.Ctx(ctx).Debug().
		Str("concept", concept).
		Str("schemaVersion", version).
		Int("parameters", len(canonical)).
		Msg("scene plan validated")

	return Result{
		Valid:  true,
		Errors: []string{},
		Plan: &types.CanonicalScenePlan{
			Concept:       concept,
			SchemaVersion: version,
			Parameters:    canonical,
			Controls:      schema.Controls,
		},
	}
}
