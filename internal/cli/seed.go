package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"grocery-app/internal/store"
	"grocery-app/internal/validation"
)

func newSeedCommand() *cobra.Command {
	seed := &cobra.Command{
		Use:   "seed",
		Short: "Work with recipe seed files",
	}

	seed.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Check a recipe seed file without starting the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := store.LoadSeedFile(args[0])
			if err != nil {
				var verr *validation.Error
				if errors.As(err, &verr) {
					for _, is := range verr.Issues {
						fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", strings.Join(is.Path, "."), is.Message)
					}
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d recipe(s) OK\n", args[0], len(recipes))
			for i, r := range recipes {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s (%d min)\n", i+1, r.Name, r.PreparationTime)
			}
			return nil
		},
	})

	return seed
}
