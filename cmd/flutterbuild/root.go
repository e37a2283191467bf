package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "flutterbuild",
		Short:         "flutterbuild generates Flutter widgets from exported design nodes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logFormatConsole, "Log output format (console|json)")

	cmd.AddCommand(newMakeCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
