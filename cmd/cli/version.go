package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Build vars, that must be passed at build time.
var (
	VersionTag = ""
	GitCommit  = ""
)

// VersionCmd returns a CLI command to interactively print the application binary version information.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application binary version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := GetCLILogger()
			if err != nil {
				return err
			}
			log.Info(
				cmd.Context(),
				"Version Info",
				zap.String("Git Tag", VersionTag),
				zap.String("Git Commit", GitCommit),
			)
			return nil
		},
	}
}
