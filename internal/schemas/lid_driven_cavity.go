package schemas

import (
	"fmt"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// cavityReynoldsLimit is a sanity bound on the cavity Reynolds number;
// above it a steady lid-driven scene is not meaningful to render.
const cavityReynoldsLimit = 50000.0

// LidDrivenCavity is the classic square-cavity benchmark: a closed box
// of fluid driven by a tangentially moving lid.
func LidDrivenCavity() types.SceneSchema {
	shape := map[string]types.FieldSpec{
		"cavityWidth":    positiveNumber(true),
		"cavityHeight":   positiveNumber(true),
		"lidSpeed":       positiveNumber(true),
		"density":        positiveNumber(false),
		"viscosity":      positiveNumber(false),
		"reynoldsNumber": positiveNumber(true),
		"aspectRatio":    positiveNumber(true),
	}

	build := buildCavityAssembly

	return types.SceneSchema{
		Concept: "lid_driven_cavity",
		Version: "v1",
		Aliases: buildAliases(shape, map[string]string{
			"width":            "cavityWidth",
			"W":                "cavityWidth",
			"height":           "cavityHeight",
			"H":                "cavityHeight",
			"U":                "lidSpeed",
			"lidVelocity":      "lidSpeed",
			"speed":            "lidSpeed",
			"rho":              "density",
			"mu":               "viscosity",
			"dynamicViscosity": "viscosity",
			"Re":               "reynoldsNumber",
			"reynolds":         "reynoldsNumber",
		}, nil),
		Defaults: map[string]any{
			"density":   1.0,
			"viscosity": 0.01,
		},
		Shape:  shape,
		Derive: deriveCavity,
		Contracts: []types.Contract{
			cavityReynoldsContract(),
			cavityReynoldsConsistencyContract(),
			tagContract(
				[]string{"cavityWidth", "cavityHeight", "lidSpeed", "density", "viscosity", "reynoldsNumber"},
				build,
				types.PillarTags{
					State:     "flow_state",
					Domain:    "cavity",
					Material:  "newtonian_fluid",
					Forcing:   "boundary_motion",
					Evolution: "navier_stokes",
				},
			),
		},
		BuildAssembly: build,
		Controls: []types.ParameterControlSpec{
			control("cavityWidth", "Cavity width", 0.01, 100, 0.01, "m", types.ControlClassPlanTunable),
			control("cavityHeight", "Cavity height", 0.01, 100, 0.01, "m", types.ControlClassPlanTunable),
			control("lidSpeed", "Lid speed", 0.001, 100, 0.001, "m/s", types.ControlClassPlanTunable),
			control("density", "Density", 0.1, 20000, 0.1, "kg/m^3", types.ControlClassPlanTunable),
			control("viscosity", "Dynamic viscosity", 1e-6, 100, 1e-6, "Pa*s", types.ControlClassPlanTunable),
			control("reynoldsNumber", "Reynolds number", 0, cavityReynoldsLimit, 1, "", types.ControlClassReadOnly),
			control("aspectRatio", "Aspect ratio", 0, 100, 0.01, "", types.ControlClassReadOnly),
		},
		Example: types.RawParameters{
			"cavityWidth": 1.0,
			"lidSpeed":    1.0,
		},
	}
}

func deriveCavity(p types.CanonicalParameters) []string {
	values, problems := getNumbers(p, "cavityWidth", "cavityHeight", "lidSpeed", "density", "viscosity")
	if len(problems) > 0 {
		return problems
	}
	if problems := positiveInputs(values,
		"cavityWidth", "cavityHeight", "lidSpeed", "density", "viscosity"); len(problems) > 0 {
		return problems
	}
	width, hasWidth := values["cavityWidth"]
	if !p.Has("cavityHeight") && hasWidth {
		p["cavityHeight"] = width
	}
	height, hasHeight := p.Number("cavityHeight")
	if !p.Has("aspectRatio") && hasWidth && hasHeight {
		p["aspectRatio"] = width / height
	}
	speed, hasSpeed := values["lidSpeed"]
	density, hasDensity := values["density"]
	viscosity, hasViscosity := values["viscosity"]
	if !p.Has("reynoldsNumber") && hasWidth && hasSpeed && hasDensity && hasViscosity {
		p["reynoldsNumber"] = density * speed * width / viscosity
	}
	return nil
}

func cavityReynoldsContract() types.Contract {
	return types.Contract{
		Name:   "cavity_reynolds_bound",
		Fields: []string{"reynoldsNumber"},
		Check: func(p types.CanonicalParameters) string {
			if re := num(p, "reynoldsNumber"); re > cavityReynoldsLimit {
				return fmt.Sprintf(
					"lid-driven cavity requires reynoldsNumber <= %v, got %v", cavityReynoldsLimit, re)
			}
			return ""
		},
	}
}

func cavityReynoldsConsistencyContract() types.Contract {
	return types.Contract{
		Name:   "reynolds_consistency",
		Fields: []string{"cavityWidth", "lidSpeed", "density", "viscosity", "reynoldsNumber"},
		Check: func(p types.CanonicalParameters) string {
			expected := num(p, "density") * num(p, "lidSpeed") * num(p, "cavityWidth") / num(p, "viscosity")
			if got := num(p, "reynoldsNumber"); !shared.NearlyEqual(got, expected, 1e-2) {
				return fmt.Sprintf(
					"reynoldsNumber is inconsistent with density, lidSpeed, cavityWidth and viscosity: expected %v, got %v",
					expected, got)
			}
			return ""
		},
	}
}

func buildCavityAssembly(p types.CanonicalParameters) types.Assembly {
	speed := num(p, "lidSpeed")
	return types.Assembly{
		State: types.FlowState{MeanVelocity: speed, ReynoldsNumber: num(p, "reynoldsNumber")},
		Domain: types.CavityDomain{
			Width:  num(p, "cavityWidth"),
			Height: num(p, "cavityHeight"),
		},
		Material: types.NewtonianFluid{
			Density:   num(p, "density"),
			Viscosity: num(p, "viscosity"),
		},
		Forcing: types.BoundaryMotion{Boundary: "lid", Speed: speed},
		Evolution: types.NavierStokes{
			Incompressible: true,
			Newtonian:      true,
			Regime:         regimeFromReynolds(num(p, "reynoldsNumber")),
		},
		Constraints: []types.Constraint{
			types.NoSlipConstraint{Target: "left_wall"},
			types.NoSlipConstraint{Target: "right_wall"},
			types.NoSlipConstraint{Target: "bottom_wall"},
			types.SpecifiedValueConstraint{Target: "lid", Field: "tangentialVelocity", Value: speed},
		},
	}
}
