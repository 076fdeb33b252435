package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/spf13/cobra"
)

// NewRulingsCommand creates the rulings command.
func NewRulingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rulings CARD_ID",
		Aliases: []string{"ruling"},
		Short:   "List rulings for a card",
		Long:    "Display the official rulings and notes for a card",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				list, err := client.Rulings().ListByCardID(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to list rulings: %w", err)
				}

				view := tableView{
					header: []string{"Published", "Source", "Comment"},
					empty:  "No rulings found",
				}
				for _, ruling := range list.Data {
					view.rows = append(view.rows, []string{ruling.PublishedAt, ruling.Source, ruling.Comment})
				}

				return writeResult(cmd.OutOrStdout(), list.Data, view)
			})
		},
	}
}
