package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/stackmason/ebsplan/pkg/backend"
	"github.com/stackmason/ebsplan/pkg/config"
	"github.com/stackmason/ebsplan/pkg/outputs"
	"github.com/stackmason/ebsplan/pkg/planner"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a volume config, reporting every violation",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := loadConfig(opts)
			if err != nil {
				reportValidation(err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "configuration is valid")
			return nil
		},
	}
}

func newPlanCmd(opts *globalOptions) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Derive the resource intent sequence for a volume config",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := buildPlan(opts)
			if err != nil {
				reportValidation(err)
				return err
			}
			intents, err := plan.Intents()
			if err != nil {
				return err
			}
			zap.S().Debugf("planned %d intents", len(intents))

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close() // nolint:errcheck
				out = f
			}
			return yaml.NewEncoder(out).Encode(intents)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the intent sequence to this file instead of stdout")
	return cmd
}

func newPreviewCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show the outputs a provisioning run would publish, using fake identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := buildPlan(opts)
			if err != nil {
				reportValidation(err)
				return err
			}
			intents, err := plan.Intents()
			if err != nil {
				return err
			}

			fake := backend.NewFake(opts.accountID, opts.region)
			result, err := fake.Apply(context.Background(), intents)
			if err != nil {
				return err
			}
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(outputs.Project(plan, result))
		},
	}
}

func loadConfig(opts *globalOptions) (*config.Config, error) {
	if opts.cfgPath == "" {
		return nil, errors.New("--config is required")
	}
	return config.ReadConfig(opts.cfgPath)
}

func buildPlan(opts *globalOptions) (*planner.Plan, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	env := planner.Environment{AccountID: opts.accountID, Region: opts.region}
	return planner.New(env).Plan(cfg)
}

// reportValidation logs each violation on its own line so a user can fix
// the whole config in one pass.
func reportValidation(err error) {
	var verr *config.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for _, violation := range verr.Violations {
		zap.S().Errorf("config: %v", violation)
	}
}
