package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/prefixer/internal/domain"
	"github.com/aalvaropc/prefixer/internal/infra/logger"
	"github.com/aalvaropc/prefixer/internal/infra/seqfile"
	"github.com/aalvaropc/prefixer/internal/usecase"
)

func transformCmd() *cobra.Command {
	var workspace string
	var sequence string
	var values string
	var valuesPath string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "transform",
		Short: "Apply the prefix transform to a sequence",
		Long: "Each output element is the input element plus its original predecessor\n" +
			"(0 for the first element): [7, 8, 9] -> [7, 15, 17].",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("values") {
				inline, err := parseValues(values)
				if err != nil {
					return err
				}
				uc := usecase.NewTransformSequence(nil, nil)
				run, _, err := uc.ExecuteValues(cmd.Context(), "inline", inline)
				if err != nil {
					return err
				}
				return printRun(out, run, "", format)
			}

			debug, _ := cmd.Flags().GetBool("debug")
			ws, err := loadWorkspace(workspace, workspaceOptions{valuesPath: valuesPath, debug: debug})
			if err != nil {
				return err
			}
			defer func() { _ = ws.Close() }()

			if debug {
				if p := logger.Path(); p != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "Debug log: %s\n", p)
				}
			}

			path, err := resolveSequencePath(ws, sequence)
			if err != nil {
				return err
			}

			store := ws.store
			if noSave {
				store = nil
			}

			uc := usecase.NewTransformSequence(ws.sequences, store, usecase.WithLogger(ws.log))
			run, runID, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				if run.Output != nil {
					// The transform succeeded but saving did not; still show the result.
					_ = printRun(out, run, "", format)
				}
				return err
			}

			return printRun(out, run, runID, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&sequence, "sequence", "s", "", "Sequence name or path (optional; defaults to workspace default sequence)")
	c.Flags().StringVar(&values, "values", "", "Inline comma-separated values; skips the workspace (e.g. --values=7,8,9, or --values= for an empty sequence)")
	c.Flags().StringVar(&valuesPath, "values-path", seqfile.DefaultValuesPath, "JSONPath to the values array in .json sequences")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	c.MarkFlagsMutuallyExclusive("values", "sequence")
	c.MarkFlagsMutuallyExclusive("values", "workspace")
	return c
}

// parseValues reads a comma-separated integer list. An empty string is the
// empty sequence.
func parseValues(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int64{}, nil
	}

	parts := strings.Split(s, ",")
	out := make([]int64, 0, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("--values element %d (%q): %w", i, strings.TrimSpace(p), err)
		}
		out = append(out, n)
	}
	return out, nil
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printRun(w io.Writer, run domain.TransformRun, runID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"run_id": runID,
			"run":    run,
		})
	case "pretty", "":
		printPrettyRun(w, run, runID)
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyRun(w io.Writer, run domain.TransformRun, runID string) {
	fmt.Fprintf(w, "Sequence: %s\n", run.SequenceName)
	if run.SequencePath != "" {
		fmt.Fprintf(w, "Source:   %s\n", run.SequencePath)
	}
	fmt.Fprintf(w, "Input:    %s\n", formatValues(run.Input))
	fmt.Fprintf(w, "Output:   %s\n", formatValues(run.Output))
	if runID != "" {
		fmt.Fprintf(w, "Run ID:   %s\n", runID)
	}
}

func formatValues(vs []int64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
