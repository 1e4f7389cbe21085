package app

import (
	"context"

	"sceneplan/internal/core"
)

// Validate runs a raw scene plan through the full pipeline. A plan
// that fails validation is a normal outcome, not a Go error: the
// Result carries every detected problem as data.
func (s Service) Validate(ctx context.Context, req ValidateRequest) core.Result {
	return core.Validate(ctx, s.Schemas, req.Plan)
}

// ValidateFile loads a plan from a JSON or YAML file and validates
// it. Only the file read itself can produce a Go error.
func (s Service) ValidateFile(ctx context.Context, path string) (core.Result, error) {
	plan, err := s.PlanSource.LoadPlan(path)
	if err != nil {
		return core.Result{}, err
	}
	return s.Validate(ctx, ValidateRequest{Plan: plan}), nil
}
