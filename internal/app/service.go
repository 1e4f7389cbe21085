package app

import (
	"sceneplan/internal/adapters"
	"sceneplan/internal/ports"
	"sceneplan/internal/registry"
)

type Service struct {
	Schemas    *registry.Registry
	PlanSource ports.PlanSourcePort
}

func NewService(schemas *registry.Registry) Service {
	return Service{
		Schemas:    schemas,
		PlanSource: adapters.NewPlanFileAdapter(),
	}
}
