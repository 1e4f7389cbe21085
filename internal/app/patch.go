package app

import (
	"context"

	"sceneplan/internal/core"
)

// Patch applies a parameter delta to a previously validated canonical
// plan. The patched plan is re-derived and re-validated end to end;
// a rejected patch leaves the input untouched.
func (s Service) Patch(ctx context.Context, req PatchRequest) core.Result {
	return core.ApplyPatch(ctx, s.Schemas, req.Plan, req.Delta)
}

// PatchFile loads a canonical plan from a file and applies a delta.
func (s Service) PatchFile(ctx context.Context, path string, delta map[string]any) (core.Result, error) {
	plan, err := s.PlanSource.LoadCanonicalPlan(path)
	if err != nil {
		return core.Result{}, err
	}
	return s.Patch(ctx, PatchRequest{Plan: plan, Delta: delta}), nil
}
