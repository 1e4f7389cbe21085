package types

import "math"

// RawScenePlan is the untrusted top-level document produced by the LLM
// planner: {concept, schemaVersion, parameters}. No invariants hold.
type RawScenePlan map[string]any

// RawParameters is the untrusted flat key-value parameter mapping of a
// raw scene plan. Values are JSON-primitive-like; composite concepts
// may carry nested objects that the concept's derivation flattens.
type RawParameters map[string]any

// CanonicalParameters maps canonical keys to fully defaulted and
// derived values. Only the validation pipeline may treat an instance
// as trusted.
type CanonicalParameters map[string]any

// Number returns the value under key as a float64. Integer values are
// widened; anything else reports false.
func (p CanonicalParameters) Number(key string) (float64, bool) {
	return AsNumber(p[key])
}

// String returns the value under key when it is a string.
func (p CanonicalParameters) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// Bool returns the value under key when it is a bool.
func (p CanonicalParameters) Bool(key string) (bool, bool) {
	b, ok := p[key].(bool)
	return b, ok
}

// Has reports whether key is present.
func (p CanonicalParameters) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Clone returns a shallow copy. Values are primitives, so a shallow
// copy is a safe independent snapshot.
func (p CanonicalParameters) Clone() CanonicalParameters {
	out := make(CanonicalParameters, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// AsNumber widens any JSON- or YAML-decoded numeric value to float64.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParameterControlSpec is static per-concept metadata describing how a
// UI may expose one parameter. RequiresValidation mirrors the control
// class: plan_tunable edits must re-run the validation pipeline.
type ParameterControlSpec struct {
	Key                string       `json:"key" yaml:"key"`
	Label              string       `json:"label" yaml:"label"`
	Min                float64      `json:"min" yaml:"min"`
	Max                float64      `json:"max" yaml:"max"`
	Step               float64      `json:"step" yaml:"step"`
	Unit               string       `json:"unit,omitempty" yaml:"unit,omitempty"`
	Class              ControlClass `json:"controlClass" yaml:"controlClass"`
	RequiresValidation bool         `json:"requiresValidation" yaml:"requiresValidation"`
}

// CanonicalScenePlan is the engine's only trusted output. It is
// constructed exclusively by a successful validation pipeline run.
type CanonicalScenePlan struct {
	Concept       string                 `json:"concept" yaml:"concept"`
	SchemaVersion string                 `json:"schemaVersion" yaml:"schemaVersion"`
	Parameters    CanonicalParameters    `json:"parameters" yaml:"parameters"`
	Controls      []ParameterControlSpec `json:"parameterControlSpecs" yaml:"parameterControlSpecs"`
}
