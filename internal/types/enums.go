package types

// ControlClass is the UI tunability tier of a parameter. It decides
// whether a live edit of that parameter must round-trip through the
// validation pipeline before taking effect.
type ControlClass string

const (
	// ControlClassReadOnly marks derived outputs; never editable.
	ControlClassReadOnly ControlClass = "read_only"
	// ControlClassRuntimeTunable parameters may be edited live
	// without re-validation.
	ControlClassRuntimeTunable ControlClass = "runtime_tunable"
	// ControlClassPlanTunable parameters may be patched, but the
	// patched plan must pass re-validation first.
	ControlClassPlanTunable ControlClass = "plan_tunable"
	// ControlClassLocked parameters are fixed once the plan exists.
	ControlClassLocked ControlClass = "locked"
)

type FlowRegime string

const (
	FlowRegimeLaminar      FlowRegime = "laminar"
	FlowRegimeTransitional FlowRegime = "transitional"
	FlowRegimeTurbulent    FlowRegime = "turbulent"
)

type DrivingMechanism string

const (
	DrivingMechanismVelocity DrivingMechanism = "velocity_driven"
	DrivingMechanismPressure DrivingMechanism = "pressure_driven"
)

// FieldKind is the primitive type a canonical parameter value must have.
type FieldKind string

const (
	FieldKindNumber FieldKind = "number"
	FieldKindString FieldKind = "string"
	FieldKindBool   FieldKind = "bool"
)

// PillarKind names one of the five assembly pillars.
type PillarKind string

const (
	PillarState     PillarKind = "state"
	PillarDomain    PillarKind = "domain"
	PillarMaterial  PillarKind = "material"
	PillarForcing   PillarKind = "forcing"
	PillarEvolution PillarKind = "evolution"
)
