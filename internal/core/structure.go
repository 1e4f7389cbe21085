package core

import (
	"fmt"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// ValidateStructure re-checks canonical parameters against the
// concept's strict shape: no extra keys, all required keys present,
// correct primitive kinds, finite numbers, per-field ranges and enums.
// The pass is independent of Normalize because canonical parameters
// also enter through the patch path. When the flat shape holds, the
// concept's assembly is built and validated too.
// Returns an empty list on success.
func ValidateStructure(schema types.SceneSchema, p types.CanonicalParameters) []string {
	var problems []string

	for _, key := range shared.SortedKeys(p) {
		if _, ok := schema.Shape[key]; !ok {
			problems = append(problems, msgUnexpectedParameter(key))
		}
	}

	for _, key := range shared.SortedKeys(schema.Shape) {
		spec := schema.Shape[key]
		value, present := p[key]
		if !present {
			if spec.Required {
				problems = append(problems, msgMissingRequired(key, aliasesOf(schema, key)))
			}
			continue
		}
		problems = append(problems, checkField(key, spec, value)...)
	}

	if len(problems) > 0 {
		return problems
	}
	return schema.BuildAssembly(p).Validate()
}

func checkField(key string, spec types.FieldSpec, value any) []string {
	switch spec.Kind {
	case types.FieldKindNumber:
		n, ok := types.AsNumber(value)
		if !ok {
			return []string{msgWrongKind(key, spec.Kind, value)}
		}
		if !types.IsFinite(n) {
			return []string{msgNotFinite(key, n)}
		}
		return checkBounds(key, spec, n)
	case types.FieldKindString:
		s, ok := value.(string)
		if !ok {
			return []string{msgWrongKind(key, spec.Kind, value)}
		}
		return checkEnum(key, spec, s)
	case types.FieldKindBool:
		if _, ok := value.(bool); !ok {
			return []string{msgWrongKind(key, spec.Kind, value)}
		}
		return nil
	default:
		// Unreachable for registered schemas: the registry
		// self-check rejects shapes with unknown field kinds.
		return []string{fmt.Sprintf("%s: unknown field kind %q", key, spec.Kind)}
	}
}

func checkBounds(key string, spec types.FieldSpec, n float64) []string {
	var problems []string
	if spec.Min != nil {
		if spec.ExclusiveMin && n <= *spec.Min {
			problems = append(problems, fmt.Sprintf("%s: must be > %v, got %v", key, *spec.Min, n))
		} else if !spec.ExclusiveMin && n < *spec.Min {
			problems = append(problems, fmt.Sprintf("%s: must be >= %v, got %v", key, *spec.Min, n))
		}
	}
	if spec.Max != nil {
		if spec.ExclusiveMax && n >= *spec.Max {
			problems = append(problems, fmt.Sprintf("%s: must be < %v, got %v", key, *spec.Max, n))
		} else if !spec.ExclusiveMax && n > *spec.Max {
			problems = append(problems, fmt.Sprintf("%s: must be <= %v, got %v", key, *spec.Max, n))
		}
	}
	return problems
}

func checkEnum(key string, spec types.FieldSpec, s string) []string {
	if len(spec.Enum) == 0 {
		return nil
	}
	for _, allowed := range spec.Enum {
		if s == allowed {
			return nil
		}
	}
	return []string{fmt.Sprintf("%s: must be one of %s; got %q",
		key, shared.JoinKeys(spec.Enum), s)}
}
