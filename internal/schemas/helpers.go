// Package schemas defines one schema module per physical concept:
// alias map, defaults, derivation, strict shape, semantic contracts,
// assembly builder, and UI control metadata. Concepts are fixed,
// explicit tables; nothing is inferred from field names.
package schemas

import (
	"fmt"
	"strings"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

func positiveNumber(required bool) types.FieldSpec {
	return types.FieldSpec{
		Kind:         types.FieldKindNumber,
		Required:     required,
		Min:          shared.Float(0),
		ExclusiveMin: true,
	}
}

func nonNegativeNumber(required bool) types.FieldSpec {
	return types.FieldSpec{
		Kind:     types.FieldKindNumber,
		Required: required,
		Min:      shared.Float(0),
	}
}

func boundedNumber(required bool, min, max float64) types.FieldSpec {
	return types.FieldSpec{
		Kind:     types.FieldKindNumber,
		Required: required,
		Min:      shared.Float(min),
		Max:      shared.Float(max),
	}
}

func enumString(required bool, values ...string) types.FieldSpec {
	return types.FieldSpec{
		Kind:     types.FieldKindString,
		Required: required,
		Enum:     values,
	}
}

// buildAliases assembles the full alias table: every canonical key
// maps to itself, extra spellings map to their canonical key, and
// transient raw-only keys map to themselves.
func buildAliases(shape map[string]types.FieldSpec, extra map[string]string, transient []string) map[string]string {
	aliases := make(map[string]string, len(shape)+len(extra)+len(transient))
	for key := range shape {
		aliases[key] = key
	}
	for alias, canonical := range extra {
		aliases[alias] = canonical
	}
	for _, key := range transient {
		aliases[key] = key
	}
	return aliases
}

func transientSet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

func control(key, label string, min, max, step float64, unit string, class types.ControlClass) types.ParameterControlSpec {
	return types.ParameterControlSpec{
		Key:                key,
		Label:              label,
		Min:                min,
		Max:                max,
		Step:               step,
		Unit:               unit,
		Class:              class,
		RequiresValidation: class == types.ControlClassPlanTunable,
	}
}

// num reads a numeric parameter that structural validation has already
// proven present and finite. Contracts may call it without re-checking.
func num(p types.CanonicalParameters, key string) float64 {
	v, _ := p.Number(key)
	return v
}

// getNumbers pulls the listed keys for a derivation, reporting keys
// that are present but not finite numbers. Absent keys are simply
// absent from the returned map.
func getNumbers(p types.CanonicalParameters, keys ...string) (map[string]float64, []string) {
	values := make(map[string]float64, len(keys))
	var problems []string
	for _, key := range keys {
		if !p.Has(key) {
			continue
		}
		v, ok := p.Number(key)
		if !ok || !types.IsFinite(v) {
			problems = append(problems, fmt.Sprintf("%s: expected a finite number", key))
			continue
		}
		values[key] = v
	}
	return values, problems
}

// positiveInputs reports supplied primaries that violate their
// positivity bound. Derivations call it before their guarded
// computations so an out-of-range input is named directly instead of
// surfacing as a missing derived key.
func positiveInputs(values map[string]float64, keys ...string) []string {
	var problems []string
	for _, key := range keys {
		if v, ok := values[key]; ok && v <= 0 {
			problems = append(problems, fmt.Sprintf("%s: must be > 0, got %v", key, v))
		}
	}
	return problems
}

// tagContract builds the concept's assembly and verifies it carries
// exactly the pillar variants the concept requires.
func tagContract(fields []string, build func(types.CanonicalParameters) types.Assembly, want types.PillarTags) types.Contract {
	return types.Contract{
		Name:   "assembly_tags",
		Fields: fields,
		Check: func(p types.CanonicalParameters) string {
			if mismatches := build(p).MismatchedTags(want); len(mismatches) > 0 {
				return strings.Join(mismatches, "; ")
			}
			return ""
		},
	}
}
