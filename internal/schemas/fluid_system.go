package schemas

import (
	"fmt"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// fluidPresets gives the density/viscosity pairs implied by a named
// fluid type. The "custom" type carries no preset and requires both
// values explicitly.
var fluidPresets = map[string]struct {
	density   float64
	viscosity float64
}{
	"water":    {density: 998, viscosity: 0.001},
	"oil":      {density: 900, viscosity: 0.08},
	"glycerin": {density: 1260, viscosity: 1.412},
}

// FluidSystem is the composite free-surface fluid sandbox. It is the
// one concept that accepts a nested raw object: geometry
// {shape, width, height} is flattened into the domain* keys during
// derivation and never appears in canonical parameters.
func FluidSystem() types.SceneSchema {
	shape := map[string]types.FieldSpec{
		"domainShape":    enumString(true, "channel", "cavity", "tank"),
		"domainWidth":    positiveNumber(true),
		"domainHeight":   positiveNumber(true),
		"fluidType":      enumString(false, "water", "oil", "glycerin", "custom"),
		"density":        positiveNumber(true),
		"viscosity":      positiveNumber(true),
		"gravity":        positiveNumber(false),
		"surfaceTension": nonNegativeNumber(false),
		"fillFraction": {
			Kind:         types.FieldKindNumber,
			Required:     false,
			Min:          shared.Float(0),
			Max:          shared.Float(1),
			ExclusiveMin: true,
		},
		"timeStep": {
			Kind:         types.FieldKindNumber,
			Required:     false,
			Min:          shared.Float(0),
			Max:          shared.Float(1),
			ExclusiveMin: true,
		},
	}

	build := buildFluidSystemAssembly

	return types.SceneSchema{
		Concept: "fluid_system",
		Version: "v1",
		Aliases: buildAliases(shape, map[string]string{
			"shape":            "domainShape",
			"width":            "domainWidth",
			"height":           "domainHeight",
			"fluid":            "fluidType",
			"rho":              "density",
			"mu":               "viscosity",
			"dynamicViscosity": "viscosity",
			"g":                "gravity",
			"sigma":            "surfaceTension",
			"fill":             "fillFraction",
			"dt":               "timeStep",
			"domainGeometry":   "geometry",
		}, []string{"geometry"}),
		Transient: transientSet("geometry"),
		Defaults: map[string]any{
			"fluidType":      "water",
			"gravity":        9.81,
			"surfaceTension": 0.072,
			"fillFraction":   0.5,
			"timeStep":       0.001,
		},
		Shape:  shape,
		Derive: deriveFluidSystem,
		Contracts: []types.Contract{
			fluidPresetContract(),
			tagContract(
				[]string{"domainShape", "domainWidth", "domainHeight", "density", "viscosity", "gravity"},
				build,
				types.PillarTags{
					State:     "flow_state",
					Domain:    "region",
					Material:  "newtonian_fluid",
					Forcing:   "constant_field",
					Evolution: "navier_stokes",
				},
			),
		},
		BuildAssembly: build,
		Controls: []types.ParameterControlSpec{
			control("domainShape", "Domain shape", 0, 0, 0, "", types.ControlClassLocked),
			control("domainWidth", "Domain width", 0.01, 100, 0.01, "m", types.ControlClassPlanTunable),
			control("domainHeight", "Domain height", 0.01, 100, 0.01, "m", types.ControlClassPlanTunable),
			control("fluidType", "Fluid", 0, 0, 0, "", types.ControlClassLocked),
			control("density", "Density", 0.1, 20000, 0.1, "kg/m^3", types.ControlClassPlanTunable),
			control("viscosity", "Dynamic viscosity", 1e-6, 100, 1e-6, "Pa*s", types.ControlClassPlanTunable),
			control("gravity", "Gravity", 0.1, 30, 0.01, "m/s^2", types.ControlClassRuntimeTunable),
			control("surfaceTension", "Surface tension", 0, 1, 0.001, "N/m", types.ControlClassRuntimeTunable),
			control("fillFraction", "Fill fraction", 0.01, 1, 0.01, "", types.ControlClassRuntimeTunable),
			control("timeStep", "Time step", 1e-5, 0.1, 1e-5, "s", types.ControlClassPlanTunable),
		},
		Example: types.RawParameters{
			"geometry": map[string]any{
				"shape":  "tank",
				"width":  1.0,
				"height": 0.5,
			},
		},
	}
}

var geometryFields = map[string]string{
	"shape":  "domainShape",
	"width":  "domainWidth",
	"height": "domainHeight",
}

func deriveFluidSystem(p types.CanonicalParameters) []string {
	if raw, present := p["geometry"]; present {
		object, ok := raw.(map[string]any)
		if !ok {
			return []string{fmt.Sprintf("geometry: expected object, got %T", raw)}
		}
		for _, field := range shared.SortedKeys(object) {
			target, known := geometryFields[field]
			if !known {
				return []string{fmt.Sprintf("geometry.%s: unknown field (accepted: height, shape, width)", field)}
			}
			if p.Has(target) {
				return []string{fmt.Sprintf("geometry.%s conflicts with top-level %s", field, target)}
			}
			p[target] = object[field]
		}
		delete(p, "geometry")
	}

	fluidType, _ := p.String("fluidType")
	if preset, known := fluidPresets[fluidType]; known {
		if !p.Has("density") {
			p["density"] = preset.density
		}
		if !p.Has("viscosity") {
			p["viscosity"] = preset.viscosity
		}
	} else if fluidType == "custom" && (!p.Has("density") || !p.Has("viscosity")) {
		return []string{`fluidType "custom" requires explicit density and viscosity`}
	}
	return nil
}

// fluidPresetContract rejects a named fluid whose explicit density or
// viscosity contradicts the preset; use fluidType "custom" instead.
func fluidPresetContract() types.Contract {
	return types.Contract{
		Name:   "fluid_preset_consistency",
		Fields: []string{"fluidType", "density", "viscosity"},
		Check: func(p types.CanonicalParameters) string {
			fluidType, _ := p.String("fluidType")
			preset, known := fluidPresets[fluidType]
			if !known {
				return ""
			}
			if !shared.NearlyEqual(num(p, "density"), preset.density, 1e-2) ||
				!shared.NearlyEqual(num(p, "viscosity"), preset.viscosity, 1e-2) {
				return fmt.Sprintf(
					`fluidType %q implies density %v and viscosity %v; use fluidType "custom" for other values`,
					fluidType, preset.density, preset.viscosity)
			}
			return ""
		},
	}
}

func buildFluidSystemAssembly(p types.CanonicalParameters) types.Assembly {
	fluidShape, _ := p.String("domainShape")
	return types.Assembly{
		State: types.FlowState{MeanVelocity: 0, ReynoldsNumber: 0},
		Domain: types.RegionDomain{
			Shape:  fluidShape,
			Width:  num(p, "domainWidth"),
			Height: num(p, "domainHeight"),
		},
		Material: types.NewtonianFluid{
			Density:   num(p, "density"),
			Viscosity: num(p, "viscosity"),
		},
		Forcing: types.ConstantField{
			Field:     "gravity",
			Magnitude: num(p, "gravity"),
			Direction: "down",
		},
		Evolution: types.NavierStokes{
			Incompressible: true,
			Newtonian:      true,
			Regime:         types.FlowRegimeLaminar,
		},
		Constraints: []types.Constraint{
			types.NoSlipConstraint{Target: "walls"},
			types.FreeConstraint{Target: "surface"},
		},
	}
}
