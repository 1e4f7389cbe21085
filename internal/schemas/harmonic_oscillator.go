package schemas

import (
	"fmt"
	"math"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// HarmonicOscillator is an undamped mass on a linear spring. The
// stiffness and the oscillation frequency are mutually substitutable:
// either may be supplied and the other is derived via k = m*(2*pi*f)^2.
func HarmonicOscillator() types.SceneSchema {
	shape := map[string]types.FieldSpec{
		"amplitude":      positiveNumber(true),
		"frequency":      positiveNumber(true),
		"springConstant": positiveNumber(true),
		"mass":           positiveNumber(false),
		"phase":          boundedNumber(false, -2*math.Pi, 2*math.Pi),
	}

	build := buildOscillatorAssembly(0)

	return types.SceneSchema{
		Concept: "harmonic_oscillator",
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
		}, nil),
		Defaults: map[string]any{
			"mass":  1.0,
			"phase": 0.0,
		},
		Shape:  shape,
		Derive: deriveSpringFrequency,
		Contracts: []types.Contract{
			springConsistencyContract(),
			tagContract(
				[]string{"amplitude", "frequency", "springConstant", "mass", "phase"},
				build,
				types.PillarTags{
					State:     "oscillator_state",
					Domain:    "point",
					Material:  "linear_spring",
					Forcing:   "none",
					Evolution: "shm",
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
		},
		Example: types.RawParameters{
			"amplitude": 1.0,
			"frequency": 1.0,
		},
	}
}

// deriveSpringFrequency fills whichever of frequency/springConstant is
// absent from the other. Deriving an already-complete set is a no-op.
func deriveSpringFrequency(p types.CanonicalParameters) []string {
	values, problems := getNumbers(p, "mass", "frequency", "springConstant")
	if len(problems) > 0 {
		return problems
	}
	if problems := positiveInputs(values, "mass", "frequency", "springConstant"); len(problems) > 0 {
		return problems
	}
	mass, hasMass := values["mass"]
	frequency, hasFrequency := values["frequency"]
	stiffness, hasStiffness := values["springConstant"]
	switch {
	case hasFrequency:
		if !hasStiffness && hasMass {
			omega := 2 * math.Pi * frequency
			p["springConstant"] = mass * omega * omega
		}
	case hasStiffness:
		if hasMass {
			p["frequency"] = math.Sqrt(stiffness/mass) / (2 * math.Pi)
		}
	default:
		return []string{"one of frequency or springConstant must be supplied (aliases: f, freq, frequencyHz, k, stiffness)"}
	}
	return nil
}

func springConsistencyContract() types.Contract {
	return types.Contract{
		Name:   "spring_consistency",
		Fields: []string{"mass", "frequency", "springConstant"},
		Check: func(p types.CanonicalParameters) string {
			mass := num(p, "mass")
			frequency := num(p, "frequency")
			stiffness := num(p, "springConstant")
			omega := 2 * math.Pi * frequency
			expected := mass * omega * omega
			if !shared.NearlyEqual(stiffness, expected, 1e-6) {
				return fmt.Sprintf(
					"springConstant is inconsistent with mass and frequency: expected k = m*(2*pi*f)^2 = %v, got %v",
					expected, stiffness)
			}
			return ""
		},
	}
}

// buildOscillatorAssembly is shared by the harmonic and damped
// oscillator concepts; dampingRatio 0 selects the undamped shm
// evolution variant.
func buildOscillatorAssembly(dampingRatio float64) func(types.CanonicalParameters) types.Assembly {
	return func(p types.CanonicalParameters) types.Assembly {
		amplitude := num(p, "amplitude")
		frequency := num(p, "frequency")
		phase := num(p, "phase")
		omega := 2 * math.Pi * frequency

		ratio := dampingRatio
		if p.Has("dampingRatio") {
			ratio = num(p, "dampingRatio")
		}
		var damping float64
		if p.Has("dampingCoefficient") {
			damping = num(p, "dampingCoefficient")
		}

		var evolution types.Evolution
		if ratio > 0 || p.Has("dampingRatio") {
			evolution = types.DampedSHM{NaturalFrequency: frequency, DampingRatio: ratio}
		} else {
			evolution = types.SHM{NaturalFrequency: frequency}
		}

		return types.Assembly{
			State: types.OscillatorState{
				Displacement: amplitude * math.Cos(phase),
				Velocity:     -amplitude * omega * math.Sin(phase),
			},
			Domain: types.PointDomain{},
			Material: types.LinearSpring{
				Stiffness:          num(p, "springConstant"),
				DampingCoefficient: damping,
			},
			Forcing:   types.NoForcing{},
			Evolution: evolution,
			Constraints: []types.Constraint{
				types.FixedConstraint{Target: "anchor"},
				types.FreeConstraint{Target: "mass"},
			},
		}
	}
}
