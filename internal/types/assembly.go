package types

import (
	"fmt"
	"math"
)

// Assembly is the composed pillar description derived from a concept's
// canonical parameters. It is transient: assemblies are built to prove
// physical coherence and are never stored or returned to callers.
type Assembly struct {
	State       State
	Domain      Domain
	Material    Material
	Forcing     Forcing
	Evolution   Evolution
	Constraints []Constraint
}

// Tags returns the variant tags carried by each pillar.
func (a Assembly) Tags() PillarTags {
	return PillarTags{
		State:     a.State.Tag(),
		Domain:    a.Domain.Tag(),
		Material:  a.Material.Tag(),
		Forcing:   a.Forcing.Tag(),
		Evolution: a.Evolution.Tag(),
	}
}

// MismatchedTags compares the assembly's tags against the required set
// and returns one message per pillar that differs. An empty string in
// want skips that pillar.
func (a Assembly) MismatchedTags(want PillarTags) []string {
	got := a.Tags()
	var problems []string
	for _, kind := range []PillarKind{PillarState, PillarDomain, PillarMaterial, PillarForcing, PillarEvolution} {
		expected := want.get(kind)
		if expected == "" {
			continue
		}
		if actual := got.get(kind); actual != expected {
			problems = append(problems, fmt.Sprintf(
				"assembly.%s: variant must be %q, got %q", kind, expected, actual))
		}
	}
	return problems
}

// Validate checks that every pillar is well-typed on its own terms.
// Messages are prefixed with assembly.<pillar>.<field> so callers can
// tell them apart from top-level parameter errors.
func (a Assembly) Validate() []string {
	var problems []string
	if a.State == nil {
		problems = append(problems, "assembly.state: missing")
	} else {
		problems = append(problems, validateState(a.State)...)
	}
	if a.Domain == nil {
		problems = append(problems, "assembly.domain: missing")
	} else {
		problems = append(problems, validateDomain(a.Domain)...)
	}
	if a.Material == nil {
		problems = append(problems, "assembly.material: missing")
	} else {
		problems = append(problems, validateMaterial(a.Material)...)
	}
	if a.Forcing == nil {
		problems = append(problems, "assembly.forcing: missing")
	} else {
		problems = append(problems, validateForcing(a.Forcing)...)
	}
	if a.Evolution == nil {
		problems = append(problems, "assembly.evolution: missing")
	} else {
		problems = append(problems, validateEvolution(a.Evolution)...)
	}
	for i, c := range a.Constraints {
		if c.ConstraintTarget() == "" {
			problems = append(problems, fmt.Sprintf(
				"assembly.constraints[%d].target: must not be empty", i))
		}
	}
	return problems
}

func validateState(s State) []string {
	var problems []string
	switch v := s.(type) {
	case OscillatorState:
		problems = appendFinite(problems, "state.displacement", v.Displacement)
		problems = appendFinite(problems, "state.velocity", v.Velocity)
	case AngularState:
		problems = appendFinite(problems, "state.angleRad", v.AngleRad)
		problems = appendFinite(problems, "state.angularVelocity", v.AngularVelocity)
		if math.Abs(v.AngleRad) >= math.Pi {
			problems = append(problems, "assembly.state.angleRad: must lie in (-pi, pi)")
		}
	case KinematicState:
		problems = appendFinite(problems, "state.positionX", v.PositionX)
		problems = appendFinite(problems, "state.positionY", v.PositionY)
		problems = appendFinite(problems, "state.velocityX", v.VelocityX)
		problems = appendFinite(problems, "state.velocityY", v.VelocityY)
	case OrbitalState:
		problems = appendPositive(problems, "state.semiMajorAxis", v.SemiMajorAxis)
		if !(v.Eccentricity >= 0 && v.Eccentricity < 1) {
			problems = append(problems, fmt.Sprintf(
				"assembly.state.eccentricity: must lie in [0, 1), got %v", v.Eccentricity))
		}
		problems = appendFinite(problems, "state.trueAnomalyRad", v.TrueAnomalyRad)
	case FlowState:
		problems = appendFinite(problems, "state.meanVelocity", v.MeanVelocity)
		problems = appendNonNegative(problems, "state.reynoldsNumber", v.ReynoldsNumber)
	default:
		problems = append(problems, fmt.Sprintf("assembly.state: unhandled variant %q", s.Tag()))
	}
	return problems
}

func validateDomain(d Domain) []string {
	var problems []string
	switch v := d.(type) {
	case PointDomain:
	case HalfPlaneDomain:
		problems = appendPositive(problems, "domain.extent", v.Extent)
	case PipeDomain:
		problems = appendPositive(problems, "domain.hydraulicDiameter", v.HydraulicDiameter)
		problems = appendPositive(problems, "domain.length", v.Length)
	case AnnulusDomain:
		problems = appendPositive(problems, "domain.innerDiameter", v.InnerDiameter)
		problems = appendPositive(problems, "domain.outerDiameter", v.OuterDiameter)
		problems = appendPositive(problems, "domain.length", v.Length)
	case CavityDomain:
		problems = appendPositive(problems, "domain.width", v.Width)
		problems = appendPositive(problems, "domain.height", v.Height)
	case RegionDomain:
		if v.Shape == "" {
			problems = append(problems, "assembly.domain.shape: must not be empty")
		}
		problems = appendPositive(problems, "domain.width", v.Width)
		problems = appendPositive(problems, "domain.height", v.Height)
	case OrbitalPlaneDomain:
		problems = appendPositive(problems, "domain.semiMajorAxis", v.SemiMajorAxis)
	default:
		problems = append(problems, fmt.Sprintf("assembly.domain: unhandled variant %q", d.Tag()))
	}
	return problems
}

func validateMaterial(m Material) []string {
	var problems []string
	switch v := m.(type) {
	case RigidBody:
		problems = appendPositive(problems, "material.mass", v.Mass)
	case LinearSpring:
		problems = appendPositive(problems, "material.stiffness", v.Stiffness)
		problems = appendNonNegative(problems, "material.dampingCoefficient", v.DampingCoefficient)
	case NewtonianFluid:
		problems = appendPositive(problems, "material.density", v.Density)
		problems = appendPositive(problems, "material.viscosity", v.Viscosity)
	case PointMassPair:
		problems = appendPositive(problems, "material.primaryMass", v.PrimaryMass)
		problems = appendPositive(problems, "material.secondaryMass", v.SecondaryMass)
	default:
		problems = append(problems, fmt.Sprintf("assembly.material: unhandled variant %q", m.Tag()))
	}
	return problems
}

var constantFieldDirections = map[string]struct{}{
	"down": {}, "up": {}, "left": {}, "right": {},
}

func validateForcing(f Forcing) []string {
	var problems []string
	switch v := f.(type) {
	case NoForcing:
	case ConstantField:
		if v.Field == "" {
			problems = append(problems, "assembly.forcing.field: must not be empty")
		}
		problems = appendPositive(problems, "forcing.magnitude", v.Magnitude)
		if _, ok := constantFieldDirections[v.Direction]; !ok {
			problems = append(problems, fmt.Sprintf(
				"assembly.forcing.direction: must be one of down, up, left, right; got %q", v.Direction))
		}
	case PressureGradientForcing:
		problems = appendPositive(problems, "forcing.gradient", v.Gradient)
	case InletVelocityForcing:
		problems = appendPositive(problems, "forcing.meanVelocity", v.MeanVelocity)
	case BoundaryMotion:
		if v.Boundary == "" {
			problems = append(problems, "assembly.forcing.boundary: must not be empty")
		}
		problems = appendPositive(problems, "forcing.speed", v.Speed)
	case CentralGravity:
		problems = appendPositive(problems, "forcing.mu", v.Mu)
	default:
		problems = append(problems, fmt.Sprintf("assembly.forcing: unhandled variant %q", f.Tag()))
	}
	return problems
}

var flowRegimes = map[FlowRegime]struct{}{
	FlowRegimeLaminar:      {},
	FlowRegimeTransitional: {},
	FlowRegimeTurbulent:    {},
}

func validateEvolution(e Evolution) []string {
	var problems []string
	switch v := e.(type) {
	case SHM:
		problems = appendPositive(problems, "evolution.naturalFrequency", v.NaturalFrequency)
	case DampedSHM:
		problems = appendPositive(problems, "evolution.naturalFrequency", v.NaturalFrequency)
		problems = appendNonNegative(problems, "evolution.dampingRatio", v.DampingRatio)
	case PendulumEvolution:
		problems = appendPositive(problems, "evolution.length", v.Length)
		problems = appendPositive(problems, "evolution.gravity", v.Gravity)
	case Ballistic:
		problems = appendPositive(problems, "evolution.gravity", v.Gravity)
		problems = appendNonNegative(problems, "evolution.dragCoefficient", v.DragCoefficient)
	case KeplerTwoBody:
		problems = appendPositive(problems, "evolution.mu", v.Mu)
	case NavierStokes:
		if _, ok := flowRegimes[v.Regime]; !ok {
			problems = append(problems, fmt.Sprintf(
				"assembly.evolution.regime: must be one of laminar, transitional, turbulent; got %q", v.Regime))
		}
	default:
		problems = append(problems, fmt.Sprintf("assembly.evolution: unhandled variant %q", e.Tag()))
	}
	return problems
}

func appendFinite(problems []string, path string, v float64) []string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return append(problems, fmt.Sprintf("assembly.%s: must be finite, got %v", path, v))
	}
	return problems
}

func appendPositive(problems []string, path string, v float64) []string {
	problems = appendFinite(problems, path, v)
	if !math.IsNaN(v) && !math.IsInf(v, 0) && v <= 0 {
		return append(problems, fmt.Sprintf("assembly.%s: must be > 0, got %v", path, v))
	}
	return problems
}

func appendNonNegative(problems []string, path string, v float64) []string {
	problems = appendFinite(problems, path, v)
	if !math.IsNaN(v) && !math.IsInf(v, 0) && v < 0 {
		return append(problems, fmt.Sprintf("assembly.%s: must be >= 0, got %v", path, v))
	}
	return problems
}
