package schemas

import (
	"fmt"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// AnnularFlow is laminar flow through the gap between two concentric
// pipes. The hydraulic diameter of an annulus is the diameter
// difference Do - Di.
func AnnularFlow() types.SceneSchema {
	shape := map[string]types.FieldSpec{
		"innerDiameter":     positiveNumber(true),
		"outerDiameter":     positiveNumber(true),
		"hydraulicDiameter": positiveNumber(false),
		"annulusLength":     positiveNumber(false),
		"density":           positiveNumber(false),
		"viscosity":         positiveNumber(false),
		"drivingMechanism": enumString(false,
			string(types.DrivingMechanismVelocity), string(types.DrivingMechanismPressure)),
		"meanVelocity":     positiveNumber(false),
		"pressureGradient": positiveNumber(false),
		"reynoldsNumber":   positiveNumber(false),
	}

	build := buildAnnulusAssembly

	return types.SceneSchema{
		Concept: "annular_flow",
		Version: "v1",
		Aliases: buildAliases(shape, map[string]string{
			"Di":               "innerDiameter",
			"innerD":           "innerDiameter",
			"Do":               "outerDiameter",
			"outerD":           "outerDiameter",
			"Dh":               "hydraulicDiameter",
			"length":           "annulusLength",
			"L":                "annulusLength",
			"rho":              "density",
			"mu":               "viscosity",
			"dynamicViscosity": "viscosity",
			"mechanism":        "drivingMechanism",
			"driver":           "drivingMechanism",
			"U":                "meanVelocity",
			"velocity":         "meanVelocity",
			"inletVelocity":    "meanVelocity",
			"dpdx":             "pressureGradient",
			"Re":               "reynoldsNumber",
			"reynolds":         "reynoldsNumber",
		}, nil),
		Defaults: map[string]any{
			"annulusLength": 1.0,
			"density":       998.0,
			"viscosity":     0.001,
		},
		Shape:  shape,
		Derive: deriveAnnulus,
		Contracts: []types.Contract{
			annulusGeometryContract(),
			annulusHydraulicContract(),
			exactlyOneDriverContract(),
			mechanismMatchContract(),
			laminarGateContract(),
			flowForcingContract(build),
			tagContract(
				[]string{"innerDiameter", "outerDiameter", "annulusLength", "density", "viscosity"},
				build,
				types.PillarTags{
					State:     "flow_state",
					Domain:    "annulus",
					Material:  "newtonian_fluid",
					Evolution: "navier_stokes",
				},
			),
		},
		BuildAssembly: build,
		Controls: []types.ParameterControlSpec{
			control("innerDiameter", "Inner diameter", 0.001, 10, 0.001, "m", types.ControlClassPlanTunable),
			control("outerDiameter", "Outer diameter", 0.002, 10, 0.001, "m", types.ControlClassPlanTunable),
			control("hydraulicDiameter", "Hydraulic diameter", 0, 10, 0.001, "m", types.ControlClassReadOnly),
			control("annulusLength", "Annulus length", 0.01, 1000, 0.01, "m", types.ControlClassPlanTunable),
			control("density", "Density", 0.1, 20000, 0.1, "kg/m^3", types.ControlClassPlanTunable),
			control("viscosity", "Dynamic viscosity", 1e-6, 100, 1e-6, "Pa*s", types.ControlClassPlanTunable),
			control("drivingMechanism", "Driving mechanism", 0, 0, 0, "", types.ControlClassLocked),
			control("meanVelocity", "Mean velocity", 0.001, 100, 0.001, "m/s", types.ControlClassPlanTunable),
			control("pressureGradient", "Pressure gradient", 0.001, 1e6, 0.001, "Pa/m", types.ControlClassPlanTunable),
			control("reynoldsNumber", "Reynolds number", 0, 2300, 1, "", types.ControlClassReadOnly),
		},
		Example: types.RawParameters{
			"innerDiameter": 0.05,
			"outerDiameter": 0.1,
			"meanVelocity":  0.01,
		},
	}
}

// deriveAnnulus fills the hydraulic diameter only for a geometrically
// valid annulus; an inverted geometry is left for the contracts so the
// caller sees the real problem, not a range violation on a derived key.
func deriveAnnulus(p types.CanonicalParameters) []string {
	values, problems := getNumbers(p, "innerDiameter", "outerDiameter")
	if len(problems) > 0 {
		return problems
	}
	inner, hasInner := values["innerDiameter"]
	outer, hasOuter := values["outerDiameter"]
	if !p.Has("hydraulicDiameter") && hasInner && hasOuter && outer > inner {
		p["hydraulicDiameter"] = outer - inner
	}
	return deriveFlowDriver(p)
}

func annulusGeometryContract() types.Contract {
	return types.Contract{
		Name:   "annulus_geometry",
		Fields: []string{"innerDiameter", "outerDiameter"},
		Check: func(p types.CanonicalParameters) string {
			inner := num(p, "innerDiameter")
			outer := num(p, "outerDiameter")
			if outer <= inner {
				return fmt.Sprintf(
					"outerDiameter must exceed innerDiameter, got outerDiameter %v <= innerDiameter %v",
					outer, inner)
			}
			return ""
		},
	}
}

func annulusHydraulicContract() types.Contract {
	return types.Contract{
		Name:   "hydraulic_diameter_consistency",
		Fields: []string{"innerDiameter", "outerDiameter", "hydraulicDiameter"},
		Check: func(p types.CanonicalParameters) string {
			hydraulic, ok := p.Number("hydraulicDiameter")
			if !ok {
				return ""
			}
			expected := num(p, "outerDiameter") - num(p, "innerDiameter")
			if !shared.NearlyEqual(hydraulic, expected, 1e-9) {
				return fmt.Sprintf(
					"hydraulicDiameter is inconsistent with the annulus: expected Do - Di = %v, got %v",
					expected, hydraulic)
			}
			return ""
		},
	}
}

func buildAnnulusAssembly(p types.CanonicalParameters) types.Assembly {
	var velocity, reynolds float64
	if p.Has("meanVelocity") {
		velocity = num(p, "meanVelocity")
	}
	if p.Has("reynoldsNumber") {
		reynolds = num(p, "reynoldsNumber")
	}

	return types.Assembly{
		State: types.FlowState{MeanVelocity: velocity, ReynoldsNumber: reynolds},
		Domain: types.AnnulusDomain{
			InnerDiameter: num(p, "innerDiameter"),
			OuterDiameter: num(p, "outerDiameter"),
			Length:        num(p, "annulusLength"),
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
			types.NoSlipConstraint{Target: "inner_wall"},
			types.NoSlipConstraint{Target: "outer_wall"},
			types.PeriodicConstraint{Target: "streamwise", Axis: "x"},
		},
	}
}
