package cli

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/storefront-vocabulary/internal/shared/infrastructure/config"
	"github.com/saransh1220/storefront-vocabulary/internal/shared/infrastructure/database"
	"github.com/saransh1220/storefront-vocabulary/internal/shared/logger"
	"github.com/spf13/cobra"
)

// CommandFactory builds the vocabctl command tree. The hooks exist so tests
// can run database-backed commands against sqlmock.
type CommandFactory struct {
	LoadConfig func() (*config.Config, error)
	OpenDB     func(cfg database.PostgresConfig) (*sqlx.DB, error)
	NewLogger  func(cfg config.LogConfig) *slog.Logger
}

var DefaultCommandFactory = CommandFactory{
	LoadConfig: config.Load,
	OpenDB:     database.NewPostgresDB,
	NewLogger: func(cfg config.LogConfig) *slog.Logger {
		return logger.New(logger.Config{Level: cfg.Level, Format: cfg.Format})
	},
}

func (f CommandFactory) CreateRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vocabctl",
		Short:         "Inspect and validate the storefront domain vocabulary",
		Long:          `vocabctl lists the storefront enumerations, validates tokens against them and manages the Postgres enum types that persist them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		f.createListCommand(),
		f.createParseCommand(),
		f.createDriftCommand(),
		f.createMigrateCommand(),
	)
	return root
}

// Execute runs vocabctl with the default factory.
func Execute() error {
	return DefaultCommandFactory.CreateRootCommand().Execute()
}
