package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"sceneplan/internal/types"
)

// RunContracts evaluates every semantic contract of the concept and
// collects all violations. Contracts never short-circuit: an LLM retry
// loop needs the complete diagnostic set from a single pass to correct
// its next attempt in one shot.
func RunContracts(ctx context.Context, schema types.SceneSchema, p types.CanonicalParameters) []string {
	var problems []string
	for _, contract := range schema.Contracts {
		if msg := contract.Check(p); msg != "" {
			problems = append(problems, msg)
			log.Ctx(ctx).Debug().
				Str("concept", schema.Concept).
				Str("contract", contract.Name).
				Msg("contract violated")
		}
	}
	return problems
}
