// Package cli wires the ebsplan commands. main stays a thin shell around
// Main, mirroring how the library packages are meant to be embedded.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/stackmason/ebsplan/pkg/logging"
)

type globalOptions struct {
	verbose   bool
	logFormat string
	cfgPath   string
	accountID string
	region    string
}

func (opts *globalOptions) SetUpCliFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose flag")
	flags.StringVar(&opts.logFormat, "log-format", "console", "Log format (console or json)")
	flags.StringVarP(&opts.cfgPath, "config", "c", "", "Path to the volume config file (yaml, json or toml)")
	flags.StringVar(&opts.accountID, "account-id", "", "AWS account id resources are planned for")
	flags.StringVar(&opts.region, "region", "", "AWS region resources are planned for")
}

func Main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "ebsplan",
		Short:         "Plan encrypted EBS volume provisioning from a declarative config",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logOpts := logging.LogOpts{
				Verbose:  opts.verbose,
				Encoding: opts.logFormat,
			}
			zap.ReplaceGlobals(logOpts.NewLogger())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			zap.L().Sync() // nolint:errcheck
		},
	}

	opts.SetUpCliFlags(root.PersistentFlags())

	root.AddCommand(newValidateCmd(opts))
	root.AddCommand(newPlanCmd(opts))
	root.AddCommand(newPreviewCmd(opts))
	return root
}
