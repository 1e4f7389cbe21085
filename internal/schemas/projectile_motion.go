package schemas

import (
	"fmt"
	"math"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// ProjectileMotion is ballistic flight over flat ground. A launch
// angle of exactly 0 or below is rejected: the scene would never leave
// the ground.
func ProjectileMotion() types.SceneSchema {
	shape := map[string]types.FieldSpec{
		"initialSpeed": positiveNumber(true),
		"launchAngleDeg": {
			Kind:         types.FieldKindNumber,
			Required:     true,
			Min:          shared.Float(0),
			Max:          shared.Float(90),
			ExclusiveMin: true,
		},
		"initialHeight":   nonNegativeNumber(false),
		"gravity":         positiveNumber(false),
		"mass":            positiveNumber(false),
		"dragCoefficient": boundedNumber(false, 0, 10),
	}

	build := buildProjectileAssembly

	return types.SceneSchema{
		Concept: "projectile_motion",
		Version: "v1",
		Aliases: buildAliases(shape, map[string]string{
			"v0":              "initialSpeed",
			"speed":           "initialSpeed",
			"launchSpeed":     "initialSpeed",
			"initialVelocity": "initialSpeed",
			"thetaDeg":        "launchAngleDeg",
			"theta":           "launchAngleDeg",
			"angle":           "launchAngleDeg",
			"angleDeg":        "launchAngleDeg",
			"launchAngle":     "launchAngleDeg",
			"h0":              "initialHeight",
			"height":          "initialHeight",
			"initialAltitude": "initialHeight",
			"g":               "gravity",
			"m":               "mass",
			"Cd":              "dragCoefficient",
			"drag":            "dragCoefficient",
			"dragCoeff":       "dragCoefficient",
		}, nil),
		Defaults: map[string]any{
			"initialHeight":   0.0,
			"gravity":         9.81,
			"mass":            1.0,
			"dragCoefficient": 0.0,
		},
		Shape: shape,
		Contracts: []types.Contract{
			gravityForcingContract(build),
			tagContract(
				[]string{"initialSpeed", "launchAngleDeg", "initialHeight", "gravity", "mass", "dragCoefficient"},
				build,
				types.PillarTags{
					State:     "kinematic_state",
					Domain:    "half_plane",
					Material:  "rigid_body",
					Forcing:   "constant_field",
					Evolution: "ballistic",
				},
			),
		},
		BuildAssembly: build,
		Controls: []types.ParameterControlSpec{
			control("initialSpeed", "Launch speed", 0.1, 1000, 0.1, "m/s", types.ControlClassRuntimeTunable),
			control("launchAngleDeg", "Launch angle", 1, 90, 1, "deg", types.ControlClassRuntimeTunable),
			control("initialHeight", "Initial height", 0, 1000, 0.1, "m", types.ControlClassRuntimeTunable),
			control("gravity", "Gravity", 0.1, 30, 0.01, "m/s^2", types.ControlClassPlanTunable),
			control("mass", "Mass", 0.01, 1000, 0.01, "kg", types.ControlClassPlanTunable),
			control("dragCoefficient", "Drag coefficient", 0, 10, 0.01, "", types.ControlClassPlanTunable),
		},
		Example: types.RawParameters{
			"v0":       20.0,
			"thetaDeg": 45.0,
		},
	}
}

// gravityForcingContract pins the forcing to a downward gravity field
// whose magnitude equals the gravity parameter.
func gravityForcingContract(build func(types.CanonicalParameters) types.Assembly) types.Contract {
	return types.Contract{
		Name:   "gravity_forcing",
		Fields: []string{"gravity"},
		Check: func(p types.CanonicalParameters) string {
			forcing, ok := build(p).Forcing.(types.ConstantField)
			if !ok {
				return `assembly.forcing: variant must be "constant_field"`
			}
			if forcing.Field != "gravity" || forcing.Direction != "down" {
				return fmt.Sprintf(
					"assembly.forcing: must be a downward gravity field, got field %q direction %q",
					forcing.Field, forcing.Direction)
			}
			if forcing.Magnitude != num(p, "gravity") {
				return fmt.Sprintf(
					"assembly.forcing.magnitude: must equal gravity parameter %v, got %v",
					num(p, "gravity"), forcing.Magnitude)
			}
			return ""
		},
	}
}

func buildProjectileAssembly(p types.CanonicalParameters) types.Assembly {
	speed := num(p, "initialSpeed")
	angle := num(p, "launchAngleDeg") * math.Pi / 180
	gravity := num(p, "gravity")

	return types.Assembly{
		State: types.KinematicState{
			PositionX: 0,
			PositionY: num(p, "initialHeight"),
			VelocityX: speed * math.Cos(angle),
			VelocityY: speed * math.Sin(angle),
		},
		// Lateral extent scaled to the drag-free range.
		Domain:   types.HalfPlaneDomain{Extent: speed * speed / gravity},
		Material: types.RigidBody{Mass: num(p, "mass")},
		Forcing: types.ConstantField{
			Field:     "gravity",
			Magnitude: gravity,
			Direction: "down",
		},
		Evolution: types.Ballistic{
			Gravity:         gravity,
			DragCoefficient: num(p, "dragCoefficient"),
		},
		Constraints: []types.Constraint{
			types.FixedConstraint{Target: "ground"},
			types.FreeConstraint{Target: "projectile"},
		},
	}
}
