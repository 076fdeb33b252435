package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/spf13/cobra"
)

// NewCacheCommand creates the cache command group.
func NewCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the response cache",
		Long:  "Inspect and clear cached API responses",
	}

	cmd.AddCommand(newCacheClearCommand())

	return cmd
}

func newCacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear cached responses",
		Long:  "Remove every response stored in the configured cache backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				if err := client.ClearCache(ctx); err != nil {
					return fmt.Errorf("failed to clear cache: %w", err)
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")

				return nil
			})
		},
	}
}
