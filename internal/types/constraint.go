package types

// Constraint is one boundary or attachment condition in an assembly.
// Every variant names the piece of the scene it applies to via Target.
type Constraint interface {
	isConstraint()
	Tag() string
	ConstraintTarget() string
}

type FixedConstraint struct {
	Target string
}

func (FixedConstraint) isConstraint()              {}
func (FixedConstraint) Tag() string                { return "fixed" }
func (c FixedConstraint) ConstraintTarget() string { return c.Target }

type FreeConstraint struct {
	Target string
}

func (FreeConstraint) isConstraint()              {}
func (FreeConstraint) Tag() string                { return "free" }
func (c FreeConstraint) ConstraintTarget() string { return c.Target }

// PeriodicConstraint wraps the solution around along Axis ("x" or "y").
type PeriodicConstraint struct {
	Target string
	Axis   string
}

func (PeriodicConstraint) isConstraint()              {}
func (PeriodicConstraint) Tag() string                { return "periodic" }
func (c PeriodicConstraint) ConstraintTarget() string { return c.Target }

type NoSlipConstraint struct {
	Target string
}

func (NoSlipConstraint) isConstraint()              {}
func (NoSlipConstraint) Tag() string                { return "no_slip" }
func (c NoSlipConstraint) ConstraintTarget() string { return c.Target }

// SpecifiedValueConstraint pins Field to Value on the target boundary.
type SpecifiedValueConstraint struct {
	Target string
	Field  string
	Value  float64
}

func (SpecifiedValueConstraint) isConstraint()              {}
func (SpecifiedValueConstraint) Tag() string                { return "specified_value" }
func (c SpecifiedValueConstraint) ConstraintTarget() string { return c.Target }
