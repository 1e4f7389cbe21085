package core

import (
	"sort"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// Normalize resolves aliases, applies defaults, and runs the concept's
// derivation. It is pure and deterministic: the same raw input always
// produces the same canonical parameters or the same single error
// message (empty string means success). Raw keys are visited in
// lexicographic order, which defines "input order" for the duplicate
// error message.
func Normalize(schema types.SceneSchema, raw types.RawParameters) (types.CanonicalParameters, string) {
	out := make(types.CanonicalParameters, len(raw)+len(schema.Defaults))
	claimed := make(map[string]string, len(raw))

	for _, key := range shared.SortedKeys(raw) {
		canonical, ok := schema.Aliases[key]
		if !ok {
			return nil, msgUnknownParameter(key, allowedKeys(schema))
		}
		if first, dup := claimed[canonical]; dup {
			return nil, msgDuplicateMapping(canonical, first, key)
		}
		claimed[canonical] = key
		out[canonical] = raw[key]
	}

	for _, key := range shared.SortedKeys(schema.Defaults) {
		if !out.Has(key) {
			out[key] = schema.Defaults[key]
		}
	}

	if schema.Derive != nil {
		if problems := schema.Derive(out); len(problems) > 0 {
			return nil, problems[0]
		}
	}

	for _, key := range shared.SortedKeys(schema.Shape) {
		if schema.Shape[key].Required && !out.Has(key) {
			return nil, msgMissingRequired(key, aliasesOf(schema, key))
		}
	}

	return out, ""
}

// allowedKeys lists every raw key the concept accepts: canonical
// names, their aliases, and transient composite keys.
func allowedKeys(schema types.SceneSchema) []string {
	return shared.SortedKeys(schema.Aliases)
}

// aliasesOf returns the non-canonical spellings accepted for a
// canonical key, sorted.
func aliasesOf(schema types.SceneSchema, canonical string) []string {
	var out []string
	for alias, target := range schema.Aliases {
		if target == canonical && alias != canonical {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}
