// Package registry holds the explicit two-level (concept,
// schemaVersion) schema table. It is built once at process start and
// read-only afterwards; an unregistered pair is never resolved to a
// nearest match, because applying the wrong physics to an AI-proposed
// plan is worse than refusing it.
package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"sceneplan/internal/core"
	"sceneplan/internal/schemas"
	"sceneplan/internal/shared"
	"sceneplan/internal/types"
)

type ConceptInfo struct {
	Concept string `json:"concept"`
	Version string `json:"schemaVersion"`
}

type Registry struct {
	byConcept map[string]map[string]types.SceneSchema
}

// Build registers every schema module and runs the internal
// consistency self-check on each. A schema that fails the self-check
// is a programming error, not a request-time condition, so Build
// refuses to construct the registry at all.
func Build(ctx context.Context) (*Registry, error) {
	r := &Registry{byConcept: make(map[string]map[string]types.SceneSchema)}
	for _, schema := range schemas.All() {
		assert.NotEmpty(ctx, schema.Concept, "schema concept must be set")
		assert.NotEmpty(ctx, schema.Version, "schema version must be set")
		if err := selfCheck(ctx, schema); err != nil {
			return nil, err
		}
		versions, ok := r.byConcept[schema.Concept]
		if !ok {
			versions = make(map[string]types.SceneSchema)
			r.byConcept[schema.Concept] = versions
		}
		if _, dup := versions[schema.Version]; dup {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("schema %s %s registered twice", schema.Concept, schema.Version))
		}
		versions[schema.Version] = schema
	}
	log.Ctx(ctx).Debug().Int("concepts", len(r.byConcept)).Msg("schema registry built")
	return r, nil
}

// MustBuild is for process startup: an inconsistent schema module
// must fail loudly before any request is served.
func MustBuild(ctx context.Context) *Registry {
	r, err := Build(ctx)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup resolves an exact (concept, schemaVersion) pair.
func (r *Registry) Lookup(concept, version string) (types.SceneSchema, bool) {
	versions, ok := r.byConcept[concept]
	if !ok {
		return types.SceneSchema{}, false
	}
	schema, ok := versions[version]
	return schema, ok
}

// Concepts lists every registered pair, sorted.
func (r *Registry) Concepts() []ConceptInfo {
	var out []ConceptInfo
	for concept, versions := range r.byConcept {
		for version := range versions {
			out = append(out, ConceptInfo{Concept: concept, Version: version})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Concept != out[j].Concept {
			return out[i].Concept < out[j].Concept
		}
		return out[i].Version < out[j].Version
	})
	return out
}

// selfCheck verifies that a schema module is internally consistent:
// the alias table covers the shape, defaults and contracts stay
// inside it, controls cover every key, and the module's own example
// survives the full pipeline. Anything else would surface as a
// confusing request-time failure instead of a broken build.
func selfCheck(ctx context.Context, schema types.SceneSchema) error {
	name := schema.Concept + " " + schema.Version
	fail := func(format string, args ...any) error {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("schema %s: %s", name, fmt.Sprintf(format, args...)))
	}

	if len(schema.Shape) == 0 {
		return fail("shape must not be empty")
	}
	if schema.BuildAssembly == nil {
		return fail("assembly builder must be set")
	}

	validKinds := map[types.FieldKind]struct{}{
		types.FieldKindNumber: {},
		types.FieldKindString: {},
		types.FieldKindBool:   {},
	}
	for _, key := range shared.SortedKeys(schema.Shape) {
		if _, ok := validKinds[schema.Shape[key].Kind]; !ok {
			return fail("field %q has unknown kind %q", key, schema.Shape[key].Kind)
		}
		if target, ok := schema.Aliases[key]; !ok || target != key {
			return fail("canonical key %q must map to itself in the alias table", key)
		}
	}
	for _, alias := range shared.SortedKeys(schema.Aliases) {
		target := schema.Aliases[alias]
		if _, inShape := schema.Shape[target]; inShape {
			continue
		}
		if _, transient := schema.Transient[target]; transient {
			continue
		}
		return fail("alias %q targets unknown canonical key %q", alias, target)
	}
	for _, key := range shared.SortedKeys(schema.Defaults) {
		if _, ok := schema.Shape[key]; !ok {
			return fail("default for unknown canonical key %q", key)
		}
	}
	for _, contract := range schema.Contracts {
		if strings.TrimSpace(contract.Name) == "" {
			return fail("contract with empty name")
		}
		if contract.Check == nil {
			return fail("contract %q has no check function", contract.Name)
		}
		for _, field := range contract.Fields {
			if _, ok := schema.Shape[field]; !ok {
				return fail("contract %q references field %q the normalizer never produces",
					contract.Name, field)
			}
		}
	}

	seen := make(map[string]struct{}, len(schema.Controls))
	for _, spec := range schema.Controls {
		if _, ok := schema.Shape[spec.Key]; !ok {
			return fail("control spec for unknown canonical key %q", spec.Key)
		}
		if _, dup := seen[spec.Key]; dup {
			return fail("duplicate control spec for %q", spec.Key)
		}
		seen[spec.Key] = struct{}{}
		if spec.RequiresValidation != (spec.Class == types.ControlClassPlanTunable) {
			return fail("control %q: requiresValidation must mirror the plan_tunable class", spec.Key)
		}
	}
	for _, key := range shared.SortedKeys(schema.Shape) {
		if _, ok := seen[key]; !ok {
			return fail("canonical key %q has no control spec", key)
		}
	}

	if schema.Example == nil {
		return fail("example parameters must be set")
	}
	canonical, normErr := core.Normalize(schema, schema.Example)
	if normErr != "" {
		return fail("example does not normalize: %s", normErr)
	}
	if problems := core.ValidateStructure(schema, canonical); len(problems) > 0 {
		return fail("example is structurally invalid: %s", strings.Join(problems, "; "))
	}
	if problems := core.RunContracts(ctx, schema, canonical); len(problems) > 0 {
		return fail("example violates contracts: %s", strings.Join(problems, "; "))
	}
	return nil
}
