package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

type makeOptions struct {
	DocumentPath string
	OutputPath   string
}

func newMakeCmd(root *rootFlags) *cobra.Command {
	opts := makeOptions{}

	cmd := &cobra.Command{
		Use:   "make",
		Short: "Generate Dart widgets from a design document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMake(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.DocumentPath, "config", "c", "", "Path to the design document")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write the Dart file here instead of stdout")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runMake(cmd *cobra.Command, root *rootFlags, opts makeOptions) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	_, result, err := app.generate(cmd.Context(), opts.DocumentPath)
	if err != nil {
		return err
	}

	source := result.Source()
	if opts.OutputPath == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), source)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutputPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(opts.OutputPath, []byte(source), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.OutputPath, err)
	}

	app.Logger.WithFields(map[string]any{"path": opts.OutputPath}).Info("wrote dart file")
	return nil
}
