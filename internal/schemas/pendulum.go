package schemas

import (
	"fmt"
	"math"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// Pendulum is a rigid planar pendulum released from an initial angle.
// The period is derived from the small-angle relation T = 2*pi*sqrt(L/g).
func Pendulum() types.SceneSchema {
	shape := map[string]types.FieldSpec{
		"length": positiveNumber(true),
		"initialAngleDeg": {
			Kind:         types.FieldKindNumber,
			Required:     true,
			Min:          shared.Float(-180),
			Max:          shared.Float(180),
			ExclusiveMin: true,
			ExclusiveMax: true,
		},
		"angularVelocity": boundedNumber(false, -100, 100),
		"gravity":         positiveNumber(false),
		"mass":            positiveNumber(false),
		"period":          positiveNumber(true),
	}

	build := buildPendulumAssembly

	return types.SceneSchema{
		Concept: "pendulum",
		Version: "v1",
		Aliases: buildAliases(shape, map[string]string{
			"L":              "length",
			"pendulumLength": "length",
			"theta0":         "initialAngleDeg",
			"theta0Deg":      "initialAngleDeg",
			"initialAngle":   "initialAngleDeg",
			"angleDeg":       "initialAngleDeg",
			"omega0":         "angularVelocity",
			"g":              "gravity",
			"m":              "mass",
			"T":              "period",
		}, nil),
		Defaults: map[string]any{
			"angularVelocity": 0.0,
			"gravity":         9.81,
			"mass":            1.0,
		},
		Shape:  shape,
		Derive: derivePendulumPeriod,
		Contracts: []types.Contract{
			pendulumPeriodContract(),
			tagContract(
				[]string{"length", "initialAngleDeg", "angularVelocity", "gravity", "mass", "period"},
				build,
				types.PillarTags{
					State:     "angular_state",
					Domain:    "point",
					Material:  "rigid_body",
					Forcing:   "constant_field",
					Evolution: "pendulum",
				},
			),
		},
		BuildAssembly: build,
		Controls: []types.ParameterControlSpec{
			control("length", "Length", 0.05, 20, 0.01, "m", types.ControlClassPlanTunable),
			control("initialAngleDeg", "Initial angle", -179, 179, 1, "deg", types.ControlClassRuntimeTunable),
			control("angularVelocity", "Initial angular velocity", -100, 100, 0.1, "rad/s", types.ControlClassRuntimeTunable),
			control("gravity", "Gravity", 0.1, 30, 0.01, "m/s^2", types.ControlClassPlanTunable),
			control("mass", "Mass", 0.01, 100, 0.01, "kg", types.ControlClassPlanTunable),
			control("period", "Period", 0, 100, 0.01, "s", types.ControlClassReadOnly),
		},
		Example: types.RawParameters{
			"length":          1.0,
			"initialAngleDeg": 20.0,
		},
	}
}

func derivePendulumPeriod(p types.CanonicalParameters) []string {
	values, problems := getNumbers(p, "length", "gravity")
	if len(problems) > 0 {
		return problems
	}
	if problems := positiveInputs(values, "length", "gravity"); len(problems) > 0 {
		return problems
	}
	length, hasLength := values["length"]
	gravity, hasGravity := values["gravity"]
	if !p.Has("period") && hasLength && hasGravity {
		p["period"] = 2 * math.Pi * math.Sqrt(length/gravity)
	}
	return nil
}

func pendulumPeriodContract() types.Contract {
	return types.Contract{
		Name:   "period_consistency",
		Fields: []string{"length", "gravity", "period"},
		Check: func(p types.CanonicalParameters) string {
			expected := 2 * math.Pi * math.Sqrt(num(p, "length")/num(p, "gravity"))
			got := num(p, "period")
			if !shared.NearlyEqual(got, expected, 1e-6) {
				return fmt.Sprintf(
					"period is inconsistent with length and gravity: expected T = 2*pi*sqrt(L/g) = %v, got %v",
					expected, got)
			}
			return ""
		},
	}
}

func buildPendulumAssembly(p types.CanonicalParameters) types.Assembly {
	return types.Assembly{
		State: types.AngularState{
			AngleRad:        num(p, "initialAngleDeg") * math.Pi / 180,
			AngularVelocity: num(p, "angularVelocity"),
		},
		Domain:   types.PointDomain{},
		Material: types.RigidBody{Mass: num(p, "mass")},
		Forcing: types.ConstantField{
			Field:     "gravity",
			Magnitude: num(p, "gravity"),
			Direction: "down",
		},
		Evolution: types.PendulumEvolution{
			Length:  num(p, "length"),
			Gravity: num(p, "gravity"),
		},
		Constraints: []types.Constraint{
			types.FixedConstraint{Target: "pivot"},
			types.FreeConstraint{Target: "bob"},
		},
	}
}
