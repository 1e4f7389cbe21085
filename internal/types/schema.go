package types

// FieldSpec is the strict shape of one canonical parameter. The
// structural validator re-checks every field against its spec even for
// parameter sets produced by the normalizer, because canonical
// parameters can also reach the pipeline through the patch path.
type FieldSpec struct {
	Kind FieldKind

	// Required marks keys that must be present after defaulting and
	// derivation. Optional keys (e.g. the flow driver that was not
	// chosen) may be absent but are type- and range-checked when set.
	Required bool

	// Min/Max bound numeric fields; nil means unbounded. Exclusive
	// flags turn the bound strict.
	Min          *float64
	Max          *float64
	ExclusiveMin bool
	ExclusiveMax bool

	// Enum restricts string fields to a fixed value set.
	Enum []string
}

// Contract is one semantic, potentially cross-field invariant checked
// after structural validation succeeds. Check returns an empty string
// when the invariant holds. Fields lists every canonical key the check
// reads; the registry self-check verifies each one exists in the
// concept's shape, so a contract can never silently reference a field
// the normalizer does not produce.
type Contract struct {
	Name   string
	Fields []string
	Check  func(CanonicalParameters) string
}

// SceneSchema is the unit registered per (concept, schemaVersion).
// Immutable after registration; built once at process start.
//
// Aliases maps every accepted raw key (canonical names included, each
// mapping to itself) to exactly one canonical key. Transient keys are
// raw-only inputs the derivation consumes and removes, such as a
// composite concept's nested geometry object; they are legal in raw
// input but never appear in canonical parameters.
type SceneSchema struct {
	Concept string
	Version string

	Aliases   map[string]string
	Transient map[string]struct{}
	Defaults  map[string]any
	Shape     map[string]FieldSpec

	// Derive fills derived and mutually-substitutable keys in place
	// on a private copy owned by the normalizer. It must be
	// idempotent: deriving an already-canonical set reproduces it
	// unchanged. Returned messages abort normalization.
	Derive func(CanonicalParameters) []string

	Contracts []Contract

	// BuildAssembly projects canonical parameters into the concept's
	// pillar composition. It may assume structural validity.
	BuildAssembly func(CanonicalParameters) Assembly

	Controls []ParameterControlSpec

	// Example is a known-good raw parameter set. The registry
	// self-check runs it through the full pipeline at startup and
	// refuses to serve a concept whose example does not validate.
	Example RawParameters
}
