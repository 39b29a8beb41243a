package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/prefixer/internal/infra/fsworkspace"
	"github.com/aalvaropc/prefixer/internal/infra/logger"
	"github.com/aalvaropc/prefixer/internal/infra/workspacefinder"
	"github.com/aalvaropc/prefixer/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "prefixer",
		Short:        "prefixer: pairwise prefix transform for numeric sequences",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			logRoot := wd
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, _ := logger.Setup(logger.Config{Root: logRoot, Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			return tui.Run(tui.Deps{
				WorkspaceLocator:     finder,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .prefixer/logs/prefixer.log")

	cmd.AddCommand(
		transformCmd(),
		validateCmd(),
		sequencesCmd(),
		runsCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
