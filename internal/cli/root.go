package cli

import (
	"os"

	"github.com/spf13/cobra"

	"portfolio-backend/config"
	"portfolio-backend/pkg/logger"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the portfolioctl command tree
func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "portfolioctl",
		Short:        "Browse the project catalog and skills, send contact messages",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Init(debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(projectsCmd(config.LoadConfig))
	cmd.AddCommand(skillsCmd(config.LoadConfig))
	cmd.AddCommand(contactCmd(configuredRelay(config.LoadConfig)))
	return cmd
}
