package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/spf13/cobra"
)

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "catalog NAME",
		Aliases: []string{"catalogs"},
		Short:   "Show a catalog",
		Long:    "Display a catalog of values such as card-names, artist-names or keyword-abilities",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				catalog, err := client.Catalogs().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get catalog %q: %w", args[0], err)
				}

				return writeCatalog(cmd.OutOrStdout(), catalog)
			})
		},
	}
}
