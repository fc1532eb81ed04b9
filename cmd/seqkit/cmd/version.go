package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// no configuration needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			a.printf("seqkit v%s\n", Version)
			a.printf("  Git Commit: %s\n", GitCommit)
			a.printf("  Build Date: %s\n", BuildDate)
			a.printf("  Go Version: %s\n", runtime.Version())
			a.printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
