package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"sceneplan/internal/ports"
	"sceneplan/internal/types"
)

// PlanFileAdapter reads scene plans from JSON or YAML files. The
// format is chosen by extension; .json decodes strictly as JSON,
// everything else goes through the YAML parser, which accepts JSON
// as a subset anyway.
type PlanFileAdapter struct{}

func NewPlanFileAdapter() PlanFileAdapter {
	return PlanFileAdapter{}
}

func (a PlanFileAdapter) LoadPlan(path string) (types.RawScenePlan, error) {
	var plan map[string]any
	if err := a.load(path, &plan); err != nil {
		return nil, err
	}
	return types.RawScenePlan(plan), nil
}

func (a PlanFileAdapter) LoadCanonicalPlan(path string) (types.CanonicalScenePlan, error) {
	var plan types.CanonicalScenePlan
	if err := a.load(path, &plan); err != nil {
		return types.CanonicalScenePlan{}, err
	}
	if plan.Concept == "" || plan.SchemaVersion == "" {
		return types.CanonicalScenePlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("canonical plan file is missing concept or schemaVersion")
	}
	return plan, nil
}

func (a PlanFileAdapter) load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("plan file not found").
			WithCause(err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, out); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse plan json").
				WithCause(err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse plan yaml").
			WithCause(err)
	}
	return nil
}

var _ ports.PlanSourcePort = PlanFileAdapter{}
