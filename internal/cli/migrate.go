package cli

import (
	"fmt"
	"strconv"

	"github.com/saransh1220/storefront-vocabulary/db"
	"github.com/saransh1220/storefront-vocabulary/internal/shared/infrastructure/config"
	"github.com/saransh1220/storefront-vocabulary/pkg/migration"
	"github.com/spf13/cobra"
)

// MigrationConfig resolves where migrations come from: MIGRATIONS_PATH when
// set, the embedded files otherwise.
func MigrationConfig(cfg *config.Config) *migration.Config {
	return &migration.Config{
		MigrationsPath: cfg.Migration.Path,
		FS:             db.Migrations,
		FSDir:          db.MigrationsDir,
		DatabaseURL:    cfg.Database.DSN(),
	}
}

func (f CommandFactory) createMigrateCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the Postgres enum types",
	}

	runner := func() (*migration.Runner, error) {
		cfg, err := f.LoadConfig()
		if err != nil {
			return nil, err
		}
		mc := MigrationConfig(cfg)
		mc.Logger = f.NewLogger(cfg.Log)
		return migration.NewRunner(mc), nil
	}

	c.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := runner()
				if err != nil {
					return err
				}
				return r.Up()
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := runner()
				if err != nil {
					return err
				}
				return r.Down()
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current migration version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := runner()
				if err != nil {
					return err
				}
				version, dirty, err := r.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
				return nil
			},
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Set the migration version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", args[0], err)
				}
				r, err := runner()
				if err != nil {
					return err
				}
				return r.Force(version)
			},
		},
	)
	return c
}
