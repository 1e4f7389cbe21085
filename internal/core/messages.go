package core

import (
	"fmt"

	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

// Validation outcomes are data, not Go errors: every expected failure
// is rendered as a human-readable string so the caller (UI or LLM
// retry loop) can act on the complete list. The constructors below are
// the single source of wording for each failure kind.

func msgMalformedConcept() string {
	return `scene plan "concept" must be a non-empty string`
}

func msgMalformedVersion() string {
	return `scene plan "schemaVersion" must be a non-empty string`
}

func msgMalformedParameters() string {
	return `scene plan "parameters" must be an object`
}

func msgUnregisteredSchema(concept, version string) string {
	return fmt.Sprintf("no schema registered for concept %q version %q", concept, version)
}

func msgUnknownParameter(key string, allowed []string) string {
	return fmt.Sprintf("unknown parameter %q; allowed keys: %s", key, shared.JoinKeys(allowed))
}

func msgDuplicateMapping(canonical, firstRaw, secondRaw string) string {
	return fmt.Sprintf("duplicate parameter mapping: %q and %q both map to canonical key %q",
		firstRaw, secondRaw, canonical)
}

func msgMissingRequired(canonical string, aliases []string) string {
	if len(aliases) == 0 {
		return fmt.Sprintf("missing required parameter %q", canonical)
	}
	return fmt.Sprintf("missing required parameter %q (accepted aliases: %s)",
		canonical, shared.JoinKeys(aliases))
}

func msgUnexpectedParameter(key string) string {
	return fmt.Sprintf("parameter %q is not part of this concept's canonical shape", key)
}

func msgWrongKind(key string, want types.FieldKind, got any) string {
	return fmt.Sprintf("%s: expected %s, got %s", key, want, valueKind(got))
}

func msgNotFinite(key string, v float64) string {
	return fmt.Sprintf("%s: must be finite, got %v", key, v)
}

func msgNotPatchable(key string, class types.ControlClass) string {
	return fmt.Sprintf("parameter %q has control class %q and cannot be patched", key, class)
}

func valueKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case float64, float32, int, int64, uint64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
