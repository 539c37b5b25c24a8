package cli

import (
	"fmt"

	"github.com/saransh1220/storefront-vocabulary/internal/domain"
	"github.com/spf13/cobra"
)

func (f CommandFactory) createParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <enumeration> <token>...",
		Short: "Validate tokens against an enumeration",
		Long:  `Validate tokens against an enumeration. Every token is checked; the command fails if any of them is not a member.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := domain.Lookup(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}

			rejected := 0
			for _, token := range args[1:] {
				v, err := e.Parse(token)
				if err != nil {
					rejected++
					fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			if rejected > 0 {
				return fmt.Errorf("%w: %d of %d tokens rejected", domain.ErrUnknownEnumerationValue, rejected, len(args)-1)
			}
			return nil
		},
	}
}
