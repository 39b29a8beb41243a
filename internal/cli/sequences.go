package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func sequencesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "sequences",
		Short: "Manage sequences in a workspace",
	}

	c.AddCommand(sequencesListCmd())
	return c
}

func sequencesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, workspaceOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = ws.Close() }()

			refs, err := ws.sequences.ListSequences(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no sequences found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				marker := " "
				if r.Name == ws.cfg.Defaults.Sequence {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s  (%s)\n", marker, r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
