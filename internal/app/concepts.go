package app

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"sceneplan/internal/registry"
	"sceneplan/internal/types"
)

// ListConcepts reports every registered (concept, schemaVersion)
// pair, sorted.
func (s Service) ListConcepts() []registry.ConceptInfo {
	return s.Schemas.Concepts()
}

// Controls returns the parameter control specs for one registered
// schema, for UI layers that build sliders and toggles from them.
func (s Service) Controls(req ControlsRequest) ([]types.ParameterControlSpec, error) {
	schema, ok := s.Schemas.Lookup(req.Concept, req.Version)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no schema registered for concept %q version %q", req.Concept, req.Version))
	}
	return schema.Controls, nil
}
