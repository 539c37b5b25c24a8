package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/saransh1220/storefront-vocabulary/internal/domain"
	"github.com/spf13/cobra"
)

func (f CommandFactory) createListCommand() *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "list [enumeration]",
		Short: "List enumerations and their members",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enums := domain.Enumerations()
			if len(args) == 1 {
				e, err := domain.Lookup(args[0])
				if err != nil {
					return fmt.Errorf("%w: %s", err, args[0])
				}
				enums = []domain.Enumeration{e}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(enums)
			}
			for _, e := range enums {
				fmt.Fprintf(out, "%s (%s): %s\n", e.Name, e.PGType, strings.Join(e.Members, ", "))
			}
			return nil
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "Print as JSON.")
	return c
}
