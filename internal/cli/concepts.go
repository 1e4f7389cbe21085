package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sceneplan/internal/app"
)

func newConceptsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "concepts",
		Short: "List registered concepts and schema versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService(cmd)
			for _, info := range service.ListConcepts() {
				fmt.Printf("%s %s\n", info.Concept, info.Version)
			}
			return nil
		},
	}
}

type controlsOptions struct {
	Concept string
	Version string
}

func newControlsCommand() *cobra.Command {
	opts := controlsOptions{}
	cmd := &cobra.Command{
		Use:   "controls",
		Short: "Show the parameter control specs of one schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runControls(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Concept, "concept", "", "Concept identifier")
	cmd.Flags().StringVar(&opts.Version, "schema-version", "", "Schema version")
	_ = viper.BindPFlag("concept", cmd.Flags().Lookup("concept"))
	_ = viper.BindPFlag("schema_version", cmd.Flags().Lookup("schema-version"))
	return cmd
}

func runControls(cmd *cobra.Command, opts controlsOptions) error {
	service := newAppService(cmd)
	controls, err := service.Controls(app.ControlsRequest{
		Concept: resolveString(cmd, opts.Concept, "concept", "concept"),
		Version: resolveString(cmd, opts.Version, "schema_version", "schema-version"),
	})
	if err != nil {
		return err
	}
	for _, spec := range controls {
		line := fmt.Sprintf("%s (%s) class=%s", spec.Key, spec.Label, spec.Class)
		if spec.Max > spec.Min {
			line += fmt.Sprintf(" range=[%g, %g]", spec.Min, spec.Max)
		}
		if spec.Unit != "" {
			line += " unit=" + spec.Unit
		}
		fmt.Println(line)
	}
	return nil
}
