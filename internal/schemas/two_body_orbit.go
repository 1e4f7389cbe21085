package schemas

import (
	"fmt"
	"math"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// TwoBodyOrbit is a bound Keplerian two-body system. The standard
// gravitational parameter mu = G*(M+m) and the orbital period follow
// from the masses and the semi-major axis.
func TwoBodyOrbit() types.SceneSchema {
	shape := map[string]types.FieldSpec{
		"primaryMass":           positiveNumber(true),
		"secondaryMass":         positiveNumber(false),
		"semiMajorAxis":         positiveNumber(true),
		"eccentricity":          nonNegativeNumber(false),
		"trueAnomalyDeg":        boundedNumber(false, -360, 360),
		"gravitationalConstant": positiveNumber(false),
		"mu":                    positiveNumber(true),
		"orbitalPeriod":         positiveNumber(true),
	}

	build := buildOrbitAssembly

	return types.SceneSchema{
		Concept: "two_body_orbit",
		Version: "v1",
		Aliases: buildAliases(shape, map[string]string{
			"M":             "primaryMass",
			"centralMass":   "primaryMass",
			"m1":            "primaryMass",
			"m":             "secondaryMass",
			"satelliteMass": "secondaryMass",
			"m2":            "secondaryMass",
			"a":             "semiMajorAxis",
			"sma":           "semiMajorAxis",
			"e":             "eccentricity",
			"ecc":           "eccentricity",
			"nu0":           "trueAnomalyDeg",
			"trueAnomaly":   "trueAnomalyDeg",
			"G":             "gravitationalConstant",
			"period":        "orbitalPeriod",
			"T":             "orbitalPeriod",
		}, nil),
		Defaults: map[string]any{
			"secondaryMass":         1.0,
			"eccentricity":          0.0,
			"trueAnomalyDeg":        0.0,
			"gravitationalConstant": 6.674e-11,
		},
		Shape:  shape,
		Derive: deriveOrbit,
		Contracts: []types.Contract{
			boundOrbitContract(),
			muConsistencyContract(),
			tagContract(
				[]string{"primaryMass", "secondaryMass", "semiMajorAxis", "eccentricity", "trueAnomalyDeg", "mu", "orbitalPeriod"},
				build,
				types.PillarTags{
					State:     "orbital_state",
					Domain:    "orbital_plane",
					Material:  "point_mass_pair",
					Forcing:   "central_gravity",
					Evolution: "kepler_two_body",
				},
			),
		},
		BuildAssembly: build,
		Controls: []types.ParameterControlSpec{
			control("primaryMass", "Primary mass", 1, 1e32, 1, "kg", types.ControlClassPlanTunable),
			control("secondaryMass", "Secondary mass", 1e-3, 1e30, 1, "kg", types.ControlClassPlanTunable),
			control("semiMajorAxis", "Semi-major axis", 1, 1e13, 1, "m", types.ControlClassPlanTunable),
			control("eccentricity", "Eccentricity", 0, 0.99, 0.01, "", types.ControlClassPlanTunable),
			control("trueAnomalyDeg", "Initial true anomaly", -360, 360, 1, "deg", types.ControlClassRuntimeTunable),
			control("gravitationalConstant", "Gravitational constant", 6.674e-11, 6.674e-11, 0, "m^3/(kg*s^2)", types.ControlClassLocked),
			control("mu", "Gravitational parameter", 0, 1e22, 1, "m^3/s^2", types.ControlClassReadOnly),
			control("orbitalPeriod", "Orbital period", 0, 1e10, 1, "s", types.ControlClassReadOnly),
		},
		Example: types.RawParameters{
			"primaryMass":   5.972e24,
			"semiMajorAxis": 7e6,
		},
	}
}

func deriveOrbit(p types.CanonicalParameters) []string {
	values, problems := getNumbers(p,
		"primaryMass", "secondaryMass", "semiMajorAxis", "gravitationalConstant", "mu")
	if len(problems) > 0 {
		return problems
	}
	if problems := positiveInputs(values,
		"primaryMass", "secondaryMass", "semiMajorAxis", "gravitationalConstant", "mu"); len(problems) > 0 {
		return problems
	}
	primary, hasPrimary := values["primaryMass"]
	secondary, hasSecondary := values["secondaryMass"]
	g, hasG := values["gravitationalConstant"]
	if _, hasMu := values["mu"]; !hasMu && hasPrimary && hasSecondary && hasG {
		p["mu"] = g * (primary + secondary)
	}
	mu, hasMu := p.Number("mu")
	axis, hasAxis := values["semiMajorAxis"]
	if !p.Has("orbitalPeriod") && hasMu && hasAxis {
		p["orbitalPeriod"] = 2 * math.Pi * math.Sqrt(axis*axis*axis/mu)
	}
	return nil
}

// boundOrbitContract gates the orbital regime: the scene describes a
// closed orbit, so the eccentricity must stay below 1.
func boundOrbitContract() types.Contract {
	return types.Contract{
		Name:   "bound_orbit",
		Fields: []string{"eccentricity"},
		Check: func(p types.CanonicalParameters) string {
			if e := num(p, "eccentricity"); e >= 1 {
				return fmt.Sprintf("a bound orbit requires eccentricity < 1, got %v", e)
			}
			return ""
		},
	}
}

func muConsistencyContract() types.Contract {
	return types.Contract{
		Name:   "mu_consistency",
		Fields: []string{"primaryMass", "secondaryMass", "gravitationalConstant", "mu"},
		Check: func(p types.CanonicalParameters) string {
			expected := num(p, "gravitationalConstant") * (num(p, "primaryMass") + num(p, "secondaryMass"))
			if got := num(p, "mu"); !shared.NearlyEqual(got, expected, 1e-6) {
				return fmt.Sprintf(
					"mu is inconsistent with the masses: expected G*(M+m) = %v, got %v", expected, got)
			}
			return ""
		},
	}
}

func buildOrbitAssembly(p types.CanonicalParameters) types.Assembly {
	return types.Assembly{
		State: types.OrbitalState{
			SemiMajorAxis:  num(p, "semiMajorAxis"),
			Eccentricity:   num(p, "eccentricity"),
			TrueAnomalyRad: num(p, "trueAnomalyDeg") * math.Pi / 180,
		},
		Domain: types.OrbitalPlaneDomain{SemiMajorAxis: num(p, "semiMajorAxis")},
		Material: types.PointMassPair{
			PrimaryMass:   num(p, "primaryMass"),
			SecondaryMass: num(p, "secondaryMass"),
		},
		Forcing:   types.CentralGravity{Mu: num(p, "mu")},
		Evolution: types.KeplerTwoBody{Mu: num(p, "mu")},
		Constraints: []types.Constraint{
			types.FreeConstraint{Target: "primary"},
			types.FreeConstraint{Target: "secondary"},
		},
	}
}
