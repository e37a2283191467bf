package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flutterbuild/internal/config"
	"github.com/alexisbeaulieu97/flutterbuild/internal/design"
)

type inspectOptions struct {
	DocumentPath string
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

func newInspectCmd(root *rootFlags) *cobra.Command {
	opts := inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show how each node in a design document would be edited",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.DocumentPath, "config", "c", "", "Path to the design document")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runInspect(cmd *cobra.Command, root *rootFlags, opts inspectOptions) error {
	if err := validateLogFormat(root.logFormat); err != nil {
		return err
	}
	if err := validateDocumentPath(opts.DocumentPath); err != nil {
		return err
	}

	doc, err := config.ParseDocument(opts.DocumentPath)
	if err != nil {
		return err
	}

	nodes := doc.SceneNodes()
	rows := make([][]string, 0, len(nodes))
	for i := range nodes {
		node := &nodes[i]
		rows = append(rows, []string{node.ID, node.Name, string(node.Type), string(design.AnalyzeSelection(node))})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("ID", "NAME", "TYPE", "MODE").
		Rows(rows...)

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
