package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/prefixer/internal/infra/seqfile"
	"github.com/aalvaropc/prefixer/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var sequence string
	var valuesPath string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a sequence file (no transform, no artifact)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, workspaceOptions{valuesPath: valuesPath})
			if err != nil {
				return err
			}
			defer func() { _ = ws.Close() }()

			path, err := resolveSequencePath(ws, sequence)
			if err != nil {
				return err
			}

			seq, err := usecase.NewValidateSequence(ws.sequences).Execute(cmd.Context(), path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK (%s: %d values)\n", seq.Name, len(seq.Values))
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&sequence, "sequence", "s", "", "Sequence name or path (optional; defaults to workspace default sequence)")
	c.Flags().StringVar(&valuesPath, "values-path", seqfile.DefaultValuesPath, "JSONPath to the values array in .json sequences")
	return c
}
