package schemas

import (
	"fmt"

	"sceneplan/internal/types"
)

// Shared machinery for the internal-flow concepts (laminar pipe and
// annular flow). Both accept exactly one driving mechanism, derive the
// Reynolds number from whichever driver was supplied, and gate on the
// laminar regime.

const laminarReynoldsLimit = 2300

func regimeFromReynolds(re float64) types.FlowRegime {
	switch {
	case re < laminarReynoldsLimit:
		return types.FlowRegimeLaminar
	case re < 4000:
		return types.FlowRegimeTransitional
	default:
		return types.FlowRegimeTurbulent
	}
}

// deriveFlowDriver infers the driving mechanism from which driver key
// is present and computes reynoldsNumber when unset. For a
// pressure-driven laminar duct the implied mean velocity follows
// Poiseuille: U = G*Dh^2 / (32*mu).
func deriveFlowDriver(p types.CanonicalParameters) []string {
	values, problems := getNumbers(p,
		"meanVelocity", "pressureGradient", "density", "viscosity", "hydraulicDiameter")
	if len(problems) > 0 {
		return problems
	}

	velocity, hasVelocity := values["meanVelocity"]
	gradient, hasGradient := values["pressureGradient"]

	if !p.Has("drivingMechanism") {
		switch {
		case hasVelocity && !hasGradient:
			p["drivingMechanism"] = string(types.DrivingMechanismVelocity)
		case hasGradient && !hasVelocity:
			p["drivingMechanism"] = string(types.DrivingMechanismPressure)
		}
	}

	density, hasDensity := values["density"]
	viscosity, hasViscosity := values["viscosity"]
	diameter, hasDiameter := values["hydraulicDiameter"]
	if !p.Has("reynoldsNumber") && hasDensity && hasViscosity && hasDiameter &&
		density > 0 && viscosity > 0 && diameter > 0 {
		switch {
		case hasVelocity && velocity > 0:
			p["reynoldsNumber"] = density * velocity * diameter / viscosity
		case hasGradient && gradient > 0:
			implied := gradient * diameter * diameter / (32 * viscosity)
			p["reynoldsNumber"] = density * implied * diameter / viscosity
		}
	}
	return nil
}

func exactlyOneDriverContract() types.Contract {
	return types.Contract{
		Name:   "exactly_one_driver",
		Fields: []string{"meanVelocity", "pressureGradient"},
		Check: func(p types.CanonicalParameters) string {
			hasVelocity := p.Has("meanVelocity")
			hasGradient := p.Has("pressureGradient")
			switch {
			case hasVelocity && hasGradient:
				return "exactly one of meanVelocity or pressureGradient must be supplied; got both"
			case !hasVelocity && !hasGradient:
				return "exactly one of meanVelocity or pressureGradient must be supplied; got neither"
			}
			return ""
		},
	}
}

func mechanismMatchContract() types.Contract {
	return types.Contract{
		Name:   "driving_mechanism_match",
		Fields: []string{"drivingMechanism", "meanVelocity", "pressureGradient"},
		Check: func(p types.CanonicalParameters) string {
			mechanism, ok := p.String("drivingMechanism")
			if !ok {
				return "drivingMechanism could not be determined: supply exactly one of meanVelocity or pressureGradient"
			}
			switch types.DrivingMechanism(mechanism) {
			case types.DrivingMechanismVelocity:
				if !p.Has("meanVelocity") {
					return `drivingMechanism "velocity_driven" requires meanVelocity`
				}
				if p.Has("pressureGradient") {
					return `drivingMechanism "velocity_driven" conflicts with pressureGradient`
				}
			case types.DrivingMechanismPressure:
				if !p.Has("pressureGradient") {
					return `drivingMechanism "pressure_driven" requires pressureGradient`
				}
				if p.Has("meanVelocity") {
					return `drivingMechanism "pressure_driven" conflicts with meanVelocity`
				}
			}
			return ""
		},
	}
}

func laminarGateContract() types.Contract {
	return types.Contract{
		Name:   "laminar_regime",
		Fields: []string{"reynoldsNumber"},
		Check: func(p types.CanonicalParameters) string {
			re, ok := p.Number("reynoldsNumber")
			if !ok {
				// Missing Re is reported by the driver contracts.
				return ""
			}
			if re >= laminarReynoldsLimit {
				return fmt.Sprintf("laminar flow requires reynoldsNumber < %d, got %v", laminarReynoldsLimit, re)
			}
			return ""
		},
	}
}

// flowForcing picks the forcing variant matching the driving
// mechanism. A plan with no inferable mechanism gets NoForcing; the
// driver contracts reject such plans before they can be accepted.
func flowForcing(p types.CanonicalParameters) types.Forcing {
	mechanism, _ := p.String("drivingMechanism")
	switch types.DrivingMechanism(mechanism) {
	case types.DrivingMechanismVelocity:
		if p.Has("meanVelocity") {
			return types.InletVelocityForcing{MeanVelocity: num(p, "meanVelocity")}
		}
	case types.DrivingMechanismPressure:
		if p.Has("pressureGradient") {
			return types.PressureGradientForcing{Gradient: num(p, "pressureGradient")}
		}
	}
	// A declared mechanism without its driver key assembles as
	// unforced; the driver contracts name the actual mismatch.
	return types.NoForcing{}
}

// flowForcingContract checks that the assembled forcing variant agrees
// with the declared mechanism and that the evolution is incompressible
// Newtonian Navier-Stokes in the laminar regime.
func flowForcingContract(build func(types.CanonicalParameters) types.Assembly) types.Contract {
	return types.Contract{
		Name:   "flow_assembly_coherence",
		Fields: []string{"drivingMechanism", "meanVelocity", "pressureGradient", "reynoldsNumber"},
		Check: func(p types.CanonicalParameters) string {
			mechanism, ok := p.String("drivingMechanism")
			if !ok {
				return ""
			}
			assembly := build(p)
			wantForcing := "inlet_velocity"
			if types.DrivingMechanism(mechanism) == types.DrivingMechanismPressure {
				wantForcing = "pressure_gradient"
			}
			if got := assembly.Forcing.Tag(); got != wantForcing {
				return fmt.Sprintf("assembly.forcing: variant must be %q for %s flow, got %q",
					wantForcing, mechanism, got)
			}
			evolution, isNS := assembly.Evolution.(types.NavierStokes)
			if !isNS {
				return fmt.Sprintf(`assembly.evolution: variant must be "navier_stokes", got %q`,
					assembly.Evolution.Tag())
			}
			if !evolution.Incompressible || !evolution.Newtonian {
				return "assembly.evolution: navier_stokes must be incompressible and newtonian"
			}
			if evolution.Regime != types.FlowRegimeLaminar {
				return fmt.Sprintf(`assembly.evolution.regime: must be "laminar", got %q`, evolution.Regime)
			}
			return ""
		},
	}
}
