package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/prefixer/internal/infra/runstore"
)

func runsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved run artifacts",
	}

	c.AddCommand(runsShowCmd())
	return c
}

func runsShowCmd() *cobra.Command {
	var workspace string
	var format string

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print a saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace, workspaceOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = ws.Close() }()

			id := strings.TrimSuffix(strings.TrimSpace(args[0]), ".json")
			run, err := runstore.NewJSONStore(ws.root, ws.cfg).Load(id)
			if err != nil {
				return fmt.Errorf("load run %q: %w", id, err)
			}
			return printRun(cmd.OutOrStdout(), run, id, format)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}
