package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type patchOptions struct {
	Plan string
	Set  []string
}

func newPatchCommand() *cobra.Command {
	opts := patchOptions{}
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Apply a parameter delta to a canonical scene plan file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPatch(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Plan, "plan", "", "Canonical scene plan file (json or yaml)")
	cmd.Flags().StringArrayVar(&opts.Set, "set", nil, "Parameter override as key=value (repeatable)")
	_ = viper.BindPFlag("plan", cmd.Flags().Lookup("plan"))
	return cmd
}

func runPatch(cmd *cobra.Command, opts patchOptions) error {
	path := resolveString(cmd, opts.Plan, "plan", "plan")
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan file path is required")
	}
	delta, err := parseSetPairs(opts.Set)
	if err != nil {
		return err
	}
	if len(delta) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one --set key=value is required")
	}
	service := newAppService(cmd)
	result, err := service.PatchFile(cmd.Context(), path, delta)
	if err != nil {
		return err
	}
	return printResult(result)
}

// parseSetPairs turns key=value pairs into a delta. Values decode as
// JSON scalars where possible, so 0.5, true and "free" all arrive
// with the kind the author meant; anything undecodable stays a string.
func parseSetPairs(pairs []string) (map[string]any, error) {
	delta := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid --set %q, expected key=value", pair))
		}
		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err != nil {
			decoded = value
		}
		delta[key] = decoded
	}
	return delta, nil
}
