package types

import "fmt"

// The five pillar families below are closed tagged-variant sets. A
// concept's assembly builder composes one variant of each family; the
// structural validator then proves every pillar is well-typed on its
// own before any cross-field contract runs.
//
// Closedness is enforced with unexported marker methods: a variant can
// only be added inside this package, and every matching site lives in
// assembly.go next to the variant list.

// State describes the initial condition of a scene.
type State interface {
	isState()
	Tag() string
}

// OscillatorState is the initial condition of a single oscillating mass.
type OscillatorState struct {
	Displacement float64
	Velocity     float64
}

func (OscillatorState) isState()    {}
func (OscillatorState) Tag() string { return "oscillator_state" }

// AngularState is the initial condition of a rotating body, angle in
// radians measured from the rest position.
type AngularState struct {
	AngleRad        float64
	AngularVelocity float64
}

func (AngularState) isState()    {}
func (AngularState) Tag() string { return "angular_state" }

// KinematicState is a planar position/velocity pair.
type KinematicState struct {
	PositionX float64
	PositionY float64
	VelocityX float64
	VelocityY float64
}

func (KinematicState) isState()    {}
func (KinematicState) Tag() string { return "kinematic_state" }

// OrbitalState holds Keplerian elements of the relative orbit.
type OrbitalState struct {
	SemiMajorAxis  float64
	Eccentricity   float64
	TrueAnomalyRad float64
}

func (OrbitalState) isState()    {}
func (OrbitalState) Tag() string { return "orbital_state" }

// FlowState is the bulk initial condition of a fluid scene.
type FlowState struct {
	MeanVelocity   float64
	ReynoldsNumber float64
}

func (FlowState) isState()    {}
func (FlowState) Tag() string { return "flow_state" }

// Domain describes the spatial region the scene lives in.
type Domain interface {
	isDomain()
	Tag() string
}

// PointDomain is a dimensionless anchor point; oscillators and
// pendulums need no spatial extent.
type PointDomain struct{}

func (PointDomain) isDomain()   {}
func (PointDomain) Tag() string { return "point" }

// HalfPlaneDomain is the region above flat ground, bounded laterally
// by Extent.
type HalfPlaneDomain struct {
	Extent float64
}

func (HalfPlaneDomain) isDomain()   {}
func (HalfPlaneDomain) Tag() string { return "half_plane" }

// PipeDomain is a straight circular pipe.
type PipeDomain struct {
	HydraulicDiameter float64
	Length            float64
}

func (PipeDomain) isDomain()   {}
func (PipeDomain) Tag() string { return "pipe" }

// AnnulusDomain is the gap between two concentric pipes.
type AnnulusDomain struct {
	InnerDiameter float64
	OuterDiameter float64
	Length        float64
}

func (AnnulusDomain) isDomain()   {}
func (AnnulusDomain) Tag() string { return "annulus" }

// CavityDomain is a closed rectangular box.
type CavityDomain struct {
	Width  float64
	Height float64
}

func (CavityDomain) isDomain()   {}
func (CavityDomain) Tag() string { return "cavity" }

// RegionDomain is a named rectangular region for composite fluid scenes.
type RegionDomain struct {
	Shape  string
	Width  float64
	Height float64
}

func (RegionDomain) isDomain()   {}
func (RegionDomain) Tag() string { return "region" }

// OrbitalPlaneDomain is the plane of a two-body orbit, sized by the
// semi-major axis.
type OrbitalPlaneDomain struct {
	SemiMajorAxis float64
}

func (OrbitalPlaneDomain) isDomain()   {}
func (OrbitalPlaneDomain) Tag() string { return "orbital_plane" }

// Material describes what the scene's bodies or media are made of.
type Material interface {
	isMaterial()
	Tag() string
}

type RigidBody struct {
	Mass float64
}

func (RigidBody) isMaterial() {}
func (RigidBody) Tag() string { return "rigid_body" }

type LinearSpring struct {
	Stiffness          float64
	DampingCoefficient float64
}

func (LinearSpring) isMaterial() {}
func (LinearSpring) Tag() string { return "linear_spring" }

type NewtonianFluid struct {
	Density   float64
	Viscosity float64
}

func (NewtonianFluid) isMaterial() {}
func (NewtonianFluid) Tag() string { return "newtonian_fluid" }

type PointMassPair struct {
	PrimaryMass   float64
	SecondaryMass float64
}

func (PointMassPair) isMaterial() {}
func (PointMassPair) Tag() string { return "point_mass_pair" }

// Forcing describes the mechanism driving the scene.
type Forcing interface {
	isForcing()
	Tag() string
}

type NoForcing struct{}

func (NoForcing) isForcing()  {}
func (NoForcing) Tag() string { return "none" }

// ConstantField is a uniform body force such as gravity. Direction is
// one of "down", "up", "left", "right".
type ConstantField struct {
	Field     string
	Magnitude float64
	Direction string
}

func (ConstantField) isForcing()  {}
func (ConstantField) Tag() string { return "constant_field" }

// PressureGradientForcing drives a flow with a streamwise pressure
// gradient magnitude (Pa/m).
type PressureGradientForcing struct {
	Gradient float64
}

func (PressureGradientForcing) isForcing()  {}
func (PressureGradientForcing) Tag() string { return "pressure_gradient" }

// InletVelocityForcing drives a flow by imposing a mean inlet velocity.
type InletVelocityForcing struct {
	MeanVelocity float64
}

func (InletVelocityForcing) isForcing()  {}
func (InletVelocityForcing) Tag() string { return "inlet_velocity" }

// BoundaryMotion drives a flow by moving one named boundary.
type BoundaryMotion struct {
	Boundary string
	Speed    float64
}

func (BoundaryMotion) isForcing()  {}
func (BoundaryMotion) Tag() string { return "boundary_motion" }

// CentralGravity is the mutual attraction of a two-body system,
// parameterized by the standard gravitational parameter mu.
type CentralGravity struct {
	Mu float64
}

func (CentralGravity) isForcing()  {}
func (CentralGravity) Tag() string { return "central_gravity" }

// Evolution describes the law the scene evolves under.
type Evolution interface {
	isEvolution()
	Tag() string
}

type SHM struct {
	NaturalFrequency float64
}

func (SHM) isEvolution() {}
func (SHM) Tag() string  { return "shm" }

type DampedSHM struct {
	NaturalFrequency float64
	DampingRatio     float64
}

func (DampedSHM) isEvolution() {}
func (DampedSHM) Tag() string  { return "damped_shm" }

type PendulumEvolution struct {
	Length  float64
	Gravity float64
}

func (PendulumEvolution) isEvolution() {}
func (PendulumEvolution) Tag() string  { return "pendulum" }

type Ballistic struct {
	Gravity         float64
	DragCoefficient float64
}

func (Ballistic) isEvolution() {}
func (Ballistic) Tag() string  { return "ballistic" }

type KeplerTwoBody struct {
	Mu float64
}

func (KeplerTwoBody) isEvolution() {}
func (KeplerTwoBody) Tag() string  { return "kepler_two_body" }

type NavierStokes struct {
	Incompressible bool
	Newtonian      bool
	Regime         FlowRegime
}

func (NavierStokes) isEvolution() {}
func (NavierStokes) Tag() string  { return "navier_stokes" }

// PillarTags is the set of variant tags a concept requires its
// assembly to carry, used by tag-coherence contracts.
type PillarTags struct {
	State     string
	Domain    string
	Material  string
	Forcing   string
	Evolution string
}

func (t PillarTags) get(kind PillarKind) string {
	switch kind {
	case PillarState:
		return t.State
	case PillarDomain:
		return t.Domain
	case PillarMaterial:
		return t.Material
	case PillarForcing:
		return t.Forcing
	case PillarEvolution:
		return t.Evolution
	}
	panic(fmt.Sprintf("unknown pillar kind %q", kind))
}
