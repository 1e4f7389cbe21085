package ports

import "sceneplan/internal/types"

// PlanSourcePort loads scene plans from outside the process. Raw
// plans stay untyped maps so the validation pipeline sees exactly
// what the author wrote; canonical plans decode into the typed form
// because they were produced by a prior validation run.
type PlanSourcePort interface {
	LoadPlan(path string) (types.RawScenePlan, error)
	LoadCanonicalPlan(path string) (types.CanonicalScenePlan, error)
}
