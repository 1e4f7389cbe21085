package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sceneplan/internal/core"
)

type validateOptions struct {
	Plan string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a raw scene plan file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Plan, "plan", "", "Scene plan file (json or yaml)")
	_ = viper.BindPFlag("plan", cmd.Flags().Lookup("plan"))
	return cmd
}

func runValidate(cmd *cobra.Command, opts validateOptions) error {
	path := resolveString(cmd, opts.Plan, "plan", "plan")
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan file path is required")
	}
	service := newAppService(cmd)
	result, err := service.ValidateFile(cmd.Context(), path)
	if err != nil {
		return err
	}
	return printResult(result)
}

// printResult writes the result as JSON and signals a failed
// validation through the exit code without repeating the problems,
// which are already in the printed payload.
func printResult(result core.Result) error {
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode result").
			WithCause(err)
	}
	fmt.Println(string(payload))
	if !result.Valid {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("scene plan rejected with %d problem(s)", len(result.Errors)))
	}
	return nil
}
