package schemas

import (
	"fmt"
	"math"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// DampedOscillator extends the harmonic oscillator with a viscous
// damping ratio; the dimensional damping coefficient is derived as
// c = 2*zeta*sqrt(k*m).
func DampedOscillator() types.SceneSchema {
	shape := map[string]types.FieldSpec{
		"amplitude":          positiveNumber(true),
		"frequency":          positiveNumber(true),
		"springConstant":     positiveNumber(true),
		"mass":               positiveNumber(false),
		"phase":              boundedNumber(false, -2*math.Pi, 2*math.Pi),
		"dampingRatio":       boundedNumber(false, 0, 10),
		"dampingCoefficient": nonNegativeNumber(true),
	}

	build := buildOscillatorAssembly(0.05)

	return types.SceneSchema{
		Concept: "damped_oscillator",
		Version: "v1",
		Aliases: buildAliases(shape, map[string]string{
			"A":                "amplitude",
			"amp":              "amplitude",
			"initialAmplitude": "amplitude",
			"f":                "frequency",
			"freq":             "frequency",
			"frequencyHz":      "frequency",
			"k":                "springConstant",
			"stiffness":        "springConstant",
			"m":                "mass",
			"phi":              "phase",
			"phase0":           "phase",
			"initialPhase":     "phase",
			"zeta":             "dampingRatio",
			"damping":          "dampingRatio",
			"c":                "dampingCoefficient",
		}, nil),
		Defaults: map[string]any{
			"mass":         1.0,
			"phase":        0.0,
			"dampingRatio": 0.05,
		},
		Shape:  shape,
		Derive: deriveDamping,
		Contracts: []types.Contract{
			springConsistencyContract(),
			dampingConsistencyContract(),
			tagContract(
				[]string{"amplitude", "frequency", "springConstant", "mass", "phase", "dampingRatio", "dampingCoefficient"},
				build,
				types.PillarTags{
					State:     "oscillator_state",
					Domain:    "point",
					Material:  "linear_spring",
					Forcing:   "none",
					Evolution: "damped_shm",
				},
			),
		},
		BuildAssembly: build,
		Controls: []types.ParameterControlSpec{
			control("amplitude", "Amplitude", 0.01, 10, 0.01, "m", types.ControlClassRuntimeTunable),
			control("frequency", "Frequency", 0.01, 50, 0.01, "Hz", types.ControlClassPlanTunable),
			control("springConstant", "Spring constant", 0, 1e6, 0.1, "N/m", types.ControlClassReadOnly),
			control("mass", "Mass", 0.01, 100, 0.01, "kg", types.ControlClassPlanTunable),
			control("phase", "Phase", -2*math.Pi, 2*math.Pi, 0.01, "rad", types.ControlClassRuntimeTunable),
			control("dampingRatio", "Damping ratio", 0, 10, 0.01, "", types.ControlClassPlanTunable),
			control("dampingCoefficient", "Damping coefficient", 0, 1e4, 0.01, "N*s/m", types.ControlClassReadOnly),
		},
		Example: types.RawParameters{
			"amplitude":    1.0,
			"frequency":    2.0,
			"dampingRatio": 0.1,
		},
	}
}

func deriveDamping(p types.CanonicalParameters) []string {
	if problems := deriveSpringFrequency(p); len(problems) > 0 {
		return problems
	}
	values, problems := getNumbers(p, "mass", "springConstant", "dampingRatio", "dampingCoefficient")
	if len(problems) > 0 {
		return problems
	}
	mass, hasMass := values["mass"]
	stiffness, hasStiffness := values["springConstant"]
	ratio, hasRatio := values["dampingRatio"]
	if hasRatio && ratio < 0 {
		return []string{fmt.Sprintf("dampingRatio: must be >= 0, got %v", ratio)}
	}
	if _, hasCoefficient := values["dampingCoefficient"]; !hasCoefficient &&
		hasMass && hasStiffness && hasRatio {
		p["dampingCoefficient"] = 2 * ratio * math.Sqrt(stiffness*mass)
	}
	return nil
}

func dampingConsistencyContract() types.Contract {
	return types.Contract{
		Name:   "damping_consistency",
		Fields: []string{"mass", "springConstant", "dampingRatio", "dampingCoefficient"},
		Check: func(p types.CanonicalParameters) string {
			expected := 2 * num(p, "dampingRatio") * math.Sqrt(num(p, "springConstant")*num(p, "mass"))
			got := num(p, "dampingCoefficient")
			if !shared.NearlyEqual(got, expected, 1e-6) {
				return fmt.Sprintf(
					"dampingCoefficient is inconsistent with dampingRatio: expected c = 2*zeta*sqrt(k*m) = %v, got %v",
					expected, got)
			}
			return ""
		},
	}
}
