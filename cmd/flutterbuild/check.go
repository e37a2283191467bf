package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flutterbuild/internal/gitsource"
	"github.com/alexisbeaulieu97/flutterbuild/pkg/diff"
	fberrors "github.com/alexisbeaulieu97/flutterbuild/pkg/errors"
)

type checkOptions struct {
	DocumentPath string
	OutputPath   string
	Revision     string
}

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify a generated Dart file is up to date",
		Long: `Check regenerates the Dart file and compares it with the file on disk, or with
the committed version when --rev is given. Exits 1 and prints a diff on drift.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.DocumentPath, "config", "c", "", "Path to the design document")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Path of the generated Dart file")
	cmd.Flags().StringVar(&opts.Revision, "rev", "", "Compare against the file committed at this git revision")
	cmd.MarkFlagRequired("config") //nolint:errcheck
	cmd.MarkFlagRequired("output") //nolint:errcheck

	return cmd
}

func runCheck(cmd *cobra.Command, root *rootFlags, opts checkOptions) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	_, result, err := app.generate(cmd.Context(), opts.DocumentPath)
	if err != nil {
		return err
	}

	existing, label, err := readExisting(opts)
	if err != nil {
		return err
	}

	generated := []byte(result.Source())
	if d := diff.GenerateUnifiedDiff(existing, generated, label, "generated"); d != "" {
		fmt.Fprint(cmd.OutOrStdout(), d)
		return fberrors.NewDriftError(label, d)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", label)
	return nil
}

// readExisting loads the current output. A file that does not exist yet
// compares as empty so the whole generated file shows up as drift.
func readExisting(opts checkOptions) ([]byte, string, error) {
	if opts.Revision != "" {
		label := fmt.Sprintf("%s@%s", opts.OutputPath, opts.Revision)
		data, err := gitsource.ReadCommitted(opts.OutputPath, opts.Revision)
		if errors.Is(err, gitsource.ErrNotCommitted) {
			return nil, label, nil
		}
		return data, label, err
	}

	data, err := os.ReadFile(opts.OutputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, opts.OutputPath, nil
	}
	if err != nil {
		return nil, opts.OutputPath, fmt.Errorf("read %s: %w", opts.OutputPath, err)
	}
	return data, opts.OutputPath, nil
}
