package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/flutterbuild/internal/tui/preview"
)

type previewOptions struct {
	DocumentPath   string
	NonInteractive bool
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse generated widgets in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.NonInteractive = opts.NonInteractive || !term.IsTerminal(int(os.Stdout.Fd()))
			return runPreview(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.DocumentPath, "config", "c", "", "Path to the design document")
	cmd.Flags().BoolVar(&opts.NonInteractive, "static", false, "Print the preview once instead of starting the interactive view")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, opts previewOptions) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	doc, result, err := app.generate(cmd.Context(), opts.DocumentPath)
	if err != nil {
		return err
	}

	model := preview.NewModel(doc.Name, result.Entries)
	if opts.NonInteractive {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}
