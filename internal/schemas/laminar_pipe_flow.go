package schemas

import (
	"fmt"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// LaminarPipeFlow is fully developed incompressible flow in a straight
// circular pipe. The geometry may be given as a radius, a diameter, or
// a hydraulic diameter; whichever is supplied fixes the other two. The
// flow must be driven by exactly one of an inlet velocity or a
// pressure gradient, and the Reynolds number must stay laminar.
func LaminarPipeFlow() types.SceneSchema {
	shape := map[string]types.FieldSpec{
		"pipeRadius":        positiveNumber(true),
		"pipeDiameter":      positiveNumber(true),
		"hydraulicDiameter": positiveNumber(true),
		"pipeLength":        positiveNumber(false),
		"density":           positiveNumber(false),
		"viscosity":         positiveNumber(false),
		"drivingMechanism": enumString(false,
			string(types.DrivingMechanismVelocity), string(types.DrivingMechanismPressure)),
		"meanVelocity":     positiveNumber(false),
		"pressureGradient": positiveNumber(false),
		"reynoldsNumber":   positiveNumber(false),
	}

	build := buildPipeAssembly

	return types.SceneSchema{
		Concept: "laminar_pipe_flow",
		Version: "v1",
		Aliases: buildAliases(shape, map[string]string{
			"radius":           "pipeRadius",
			"r":                "pipeRadius",
			"diameter":         "pipeDiameter",
			"d":                "pipeDiameter",
			"Dh":               "hydraulicDiameter",
			"length":           "pipeLength",
			"L":                "pipeLength",
			"rho":              "density",
			"mu":               "viscosity",
			"dynamicViscosity": "viscosity",
			"mechanism":        "drivingMechanism",
			"driver":           "drivingMechanism",
			"U":                "meanVelocity",
			"velocity":         "meanVelocity",
			"inletVelocity":    "meanVelocity",
			"flowVelocity":     "meanVelocity",
			"dpdx":             "pressureGradient",
			"Re":               "reynoldsNumber",
			"reynolds":         "reynoldsNumber",
		}, nil),
		Defaults: map[string]any{
			"pipeLength": 1.0,
			"density":    998.0,
			"viscosity":  0.001,
		},
		Shape:  shape,
		Derive: derivePipe,
		Contracts: []types.Contract{
			exactlyOneDriverContract(),
			mechanismMatchContract(),
			laminarGateContract(),
			flowForcingContract(build),
			tagContract(
				[]string{"hydraulicDiameter", "pipeLength", "density", "viscosity"},
				build,
				types.PillarTags{
					State:     "flow_state",
					Domain:    "pipe",
					Material:  "newtonian_fluid",
					Evolution: "navier_stokes",
				},
			),
		},
		BuildAssembly: build,
		Controls: []types.ParameterControlSpec{
			control("pipeRadius", "Pipe radius", 0, 5, 0.001, "m", types.ControlClassReadOnly),
			control("pipeDiameter", "Pipe diameter", 0, 10, 0.001, "m", types.ControlClassReadOnly),
			control("hydraulicDiameter", "Hydraulic diameter", 0.001, 10, 0.001, "m", types.ControlClassPlanTunable),
			control("pipeLength", "Pipe length", 0.01, 1000, 0.01, "m", types.ControlClassPlanTunable),
			control("density", "Density", 0.1, 20000, 0.1, "kg/m^3", types.ControlClassPlanTunable),
			control("viscosity", "Dynamic viscosity", 1e-6, 100, 1e-6, "Pa*s", types.ControlClassPlanTunable),
			control("drivingMechanism", "Driving mechanism", 0, 0, 0, "", types.ControlClassLocked),
			control("meanVelocity", "Mean velocity", 0.001, 100, 0.001, "m/s", types.ControlClassPlanTunable),
			control("pressureGradient", "Pressure gradient", 0.001, 1e6, 0.001, "Pa/m", types.ControlClassPlanTunable),
			control("reynoldsNumber", "Reynolds number", 0, 2300, 1, "", types.ControlClassReadOnly),
		},
		Example: types.RawParameters{
			"pipeRadius":   0.05,
			"meanVelocity": 0.01,
		},
	}
}

// derivePipe canonicalizes the pipe geometry from whichever of radius,
// diameter, or hydraulic diameter was supplied, then derives the
// driving mechanism and Reynolds number. Supplying several geometry
// keys is allowed only when they agree.
func derivePipe(p types.CanonicalParameters) []string {
	values, problems := getNumbers(p, "pipeRadius", "pipeDiameter", "hydraulicDiameter")
	if len(problems) > 0 {
		return problems
	}
	radius, hasRadius := values["pipeRadius"]
	diameter, hasDiameter := values["pipeDiameter"]
	hydraulic, hasHydraulic := values["hydraulicDiameter"]

	switch {
	case hasHydraulic:
		if hasDiameter && !shared.NearlyEqual(diameter, hydraulic, 1e-9) {
			return []string{inconsistentPipeGeometry("pipeDiameter", diameter, hydraulic)}
		}
		if hasRadius && !shared.NearlyEqual(2*radius, hydraulic, 1e-9) {
			return []string{inconsistentPipeGeometry("pipeRadius", radius, hydraulic)}
		}
		p["pipeDiameter"] = hydraulic
		p["pipeRadius"] = hydraulic / 2
	case hasDiameter:
		if hasRadius && !shared.NearlyEqual(2*radius, diameter, 1e-9) {
			return []string{inconsistentPipeGeometry("pipeRadius", radius, diameter)}
		}
		p["hydraulicDiameter"] = diameter
		p["pipeRadius"] = diameter / 2
	case hasRadius:
		p["pipeDiameter"] = 2 * radius
		p["hydraulicDiameter"] = 2 * radius
	default:
		return []string{"pipe geometry requires one of pipeRadius, pipeDiameter, or hydraulicDiameter"}
	}

	return deriveFlowDriver(p)
}

func inconsistentPipeGeometry(key string, got, reference float64) string {
	return fmt.Sprintf(
		"inconsistent pipe geometry: %s %v does not agree with the supplied diameter %v",
		key, got, reference)
}

func buildPipeAssembly(p types.CanonicalParameters) types.Assembly {
	var velocity, reynolds float64
	if p.Has("meanVelocity") {
		velocity = num(p, "meanVelocity")
	}
	if p.Has("reynoldsNumber") {
		reynolds = num(p, "reynoldsNumber")
	}

	return types.Assembly{
		State: types.FlowState{MeanVelocity: velocity, ReynoldsNumber: reynolds},
		Domain: types.PipeDomain{
			HydraulicDiameter: num(p, "hydraulicDiameter"),
			Length:            num(p, "pipeLength"),
		},
		Material: types.NewtonianFluid{
			Density:   num(p, "density"),
			Viscosity: num(p, "viscosity"),
		},
		Forcing: flowForcing(p),
		Evolution: types.NavierStokes{
			Incompressible: true,
			Newtonian:      true,
			Regime:         regimeFromReynolds(reynolds),
		},
		Constraints: []types.Constraint{
			types.NoSlipConstraint{Target: "wall"},
			types.PeriodicConstraint{Target: "streamwise", Axis: "x"},
		},
	}
}
