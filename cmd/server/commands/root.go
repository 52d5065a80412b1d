// Package commands is the charterdesk command line: the HTTP server plus a few
// operator tools that reuse the same configuration.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"charterdesk/internal/platform/config"
	"charterdesk/internal/platform/logger"
)

var (
	configPath string

	cfg config.Server
	log *slog.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "charterdesk",
		Short:        "Mobile approval backend for vessel chartering contracts and payments",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			log = logger.New(cfg.LogLevel)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (default $CHARTERDESK_CONFIG)")

	root.AddCommand(serveCmd(), dictCmd(), statusCmd(), tokenCmd())
	return root
}
