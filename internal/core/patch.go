package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// ApplyPatch merges a delta of tunable keys onto an existing canonical
// plan and re-validates before accepting it. The delta bypasses alias
// normalization (keys must already be canonical) but shares the
// structural and contract checks with Validate.
//
// Patchability follows the control class: plan_tunable and
// runtime_tunable keys may be patched, read_only and locked keys never.
// Derived (read_only) values are recomputed from the patched primaries
// rather than carried over, so a patch can never leave the plan
// internally inconsistent.
func ApplyPatch(ctx context.Context, source SchemaSource, plan types.CanonicalScenePlan, delta map[string]any) Result {
	schema, found := source.Lookup(plan.Concept, plan.SchemaVersion)
	if !found {
		return failure(msgUnregisteredSchema(plan.Concept, plan.SchemaVersion))
	}

	classByKey := make(map[string]types.ControlClass, len(schema.Controls))
	for _, control := range schema.Controls {
		classByKey[control.Key] = control.Class
	}

	var problems []string
	for _, key := range shared.SortedKeys(delta) {
		if _, ok := schema.Shape[key]; !ok {
			problems = append(problems, msgUnknownParameter(key, shared.SortedKeys(schema.Shape)))
			continue
		}
		switch classByKey[key] {
		case types.ControlClassPlanTunable, types.ControlClassRuntimeTunable:
		default:
			problems = append(problems, msgNotPatchable(key, classByKey[key]))
		}
	}
	if len(problems) > 0 {
		return failure(problems...)
	}

	merged := plan.Parameters.Clone()
	for key, class := range classByKey {
		if class == types.ControlClassReadOnly {
			delete(merged, key)
		}
	}
	for key, value := range delta {
		merged[key] = value
	}
	if schema.Derive != nil {
		if deriveProblems := schema.Derive(merged); len(deriveProblems) > 0 {
			return failure("Normalization failed: " + deriveProblems[0])
		}
	}

	if structural := ValidateStructure(schema, merged); len(structural) > 0 {
		return failure(structural...)
	}
	if violations := RunContracts(ctx, schema, merged); len(violations) > 0 {
		return failure(violations...)
	}

	log.Ctx(ctx).Debug().
		Str("concept", plan.Concept).
		Int("patched", len(delta)).
		Msg("scene plan patched")

	return Result{
		Valid:  true,
		Errors: []string{},
		Plan: &types.CanonicalScenePlan{
			Concept:       plan.Concept,
			SchemaVersion: plan.SchemaVersion,
			Parameters:    merged,
			Controls:      schema.Controls,
		},
	}
}
