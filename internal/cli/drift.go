package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saransh1220/storefront-vocabulary/internal/domain"
	"github.com/saransh1220/storefront-vocabulary/internal/repository"
	"github.com/saransh1220/storefront-vocabulary/internal/service"
	"github.com/spf13/cobra"
)

// ErrDrift is returned by the drift command when the database disagrees with
// the vocabulary.
var ErrDrift = errors.New("schema drift detected")

func (f CommandFactory) createDriftCommand() *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "drift",
		Short: "Compare the Postgres enum types with the vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.LoadConfig()
			if err != nil {
				return err
			}
			db, err := f.OpenDB(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := service.NewVocabularyService(repository.NewVocabularyRepository(db), f.NewLogger(cfg.Log))
			report, err := svc.CheckDrift(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				printDrift(cmd, report)
			}

			if !report.InSync {
				return ErrDrift
			}
			return nil
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON.")
	return c
}

func printDrift(cmd *cobra.Command, report *domain.DriftReport) {
	out := cmd.OutOrStdout()
	for _, d := range report.Enumerations {
		switch {
		case d.InSync():
			fmt.Fprintf(out, "ok       %s\n", d.Name)
		case d.TypeMissing:
			fmt.Fprintf(out, "missing  %s: type %s does not exist\n", d.Name, d.PGType)
		default:
			fmt.Fprintf(out, "drift    %s: missing [%s] extra [%s]\n", d.Name,
				strings.Join(d.Missing, ", "), strings.Join(d.Extra, ", "))
		}
	}
}
