// Package agent wraps the validation engine as synchronous tool
// calls for an LLM planning loop. The model proposes a scene plan,
// the tool validates it, and the error strings go straight back into
// the conversation so the model can repair its own output.
package agent

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"sceneplan/internal/app"
	"sceneplan/internal/types"
)

const (
	ToolValidateScenePlan = "validate_scene_plan"
	ToolPatchScenePlan    = "patch_scene_plan"
	ToolListConcepts      = "list_scene_concepts"
)

// ToolDefinition is the provider-neutral descriptor an LLM client
// advertises to the model. InputSchema is plain JSON Schema.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

type Toolkit struct {
	service app.Service
}

func NewToolkit(service app.Service) Toolkit {
	return Toolkit{service: service}
}

// Definitions lists every tool the kit can execute.
func (t Toolkit) Definitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name: ToolValidateScenePlan,
			Description: "Validate a physics scene plan. Returns valid=true with the " +
				"canonical plan and its parameter control specs, or valid=false with " +
				"every detected problem. Fix the reported problems and call again.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"concept":       map[string]any{"type": "string"},
					"schemaVersion": map[string]any{"type": "string"},
					"parameters":    map[string]any{"type": "object"},
				},
				"required": []string{"concept", "schemaVersion"},
			},
		},
		{
			Name: ToolPatchScenePlan,
			Description: "Apply a parameter delta to a previously validated canonical " +
				"scene plan. Derived values are recomputed; the patched plan is " +
				"re-validated end to end.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"canonicalScenePlan": map[string]any{"type": "object"},
					"delta":              map[string]any{"type": "object"},
				},
				"required": []string{"canonicalScenePlan", "delta"},
			},
		},
		{
			Name:        ToolListConcepts,
			Description: "List every registered (concept, schemaVersion) pair this engine accepts.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
	}
}

// Invoke executes one tool call. The returned value is always
// JSON-serializable; a Go error means the call itself was malformed,
// not that the plan was invalid.
func (t Toolkit) Invoke(ctx context.Context, name string, input map[string]any) (any, error) {
	log.Ctx(ctx).Debug().Str("tool", name).Msg("tool invoked")
	switch name {
	case ToolValidateScenePlan:
		return t.service.Validate(ctx, app.ValidateRequest{Plan: types.RawScenePlan(input)}), nil
	case ToolPatchScenePlan:
		return t.patch(ctx, input)
	case ToolListConcepts:
		return map[string]any{"concepts": t.service.ListConcepts()}, nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown tool %q", name))
	}
}

func (t Toolkit) patch(ctx context.Context, input map[string]any) (any, error) {
	planObj, ok := input["canonicalScenePlan"].(map[string]any)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("canonicalScenePlan must be an object")
	}
	delta, ok := input["delta"].(map[string]any)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("delta must be an object")
	}
	plan, err := planFromObject(planObj)
	if err != nil {
		return nil, err
	}
	return t.service.Patch(ctx, app.PatchRequest{Plan: plan, Delta: delta}), nil
}

// planFromObject lifts a decoded JSON object into the typed canonical
// plan. Controls are deliberately not read back from the input; the
// registry is the authority and Patch reattaches them.
func planFromObject(obj map[string]any) (types.CanonicalScenePlan, error) {
	concept, _ := obj["concept"].(string)
	version, _ := obj["schemaVersion"].(string)
	if concept == "" || version == "" {
		return types.CanonicalScenePlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("canonicalScenePlan must carry concept and schemaVersion")
	}
	params := types.CanonicalParameters{}
	if rawParams, present := obj["parameters"]; present {
		paramObj, ok := rawParams.(map[string]any)
		if !ok {
			return types.CanonicalScenePlan{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("canonicalScenePlan.parameters must be an object")
		}
		params = types.CanonicalParameters(paramObj)
	}
	return types.CanonicalScenePlan{
		Concept:       concept,
		SchemaVersion: version,
		Parameters:    params,
	}, nil
}
