package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/spf13/cobra"
)

// NewBulkDataCommand creates the bulk-data command group.
func NewBulkDataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk-data",
		Short: "Inspect bulk data exports",
		Long:  "List the downloadable bulk data files",
	}

	cmd.AddCommand(newBulkDataListCommand())
	cmd.AddCommand(newBulkDataGetCommand())

	return cmd
}

func newBulkDataListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bulk data files",
		Long:  "List every bulk data export with its size and download URI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				list, err := client.BulkData().List(ctx)
				if err != nil {
					return fmt.Errorf("failed to list bulk data: %w", err)
				}

				view := tableView{
					header: []string{"Type", "Name", "Updated", "Size", "Download URI"},
					empty:  "No bulk data found",
				}
				for _, item := range list.Data {
					view.rows = append(view.rows, []string{
						item.Type, item.Name, item.UpdatedAt, strconv.FormatInt(item.Size, 10), item.DownloadURI,
					})
				}

				return writeResult(cmd.OutOrStdout(), list.Data, view)
			})
		},
	}
}

func newBulkDataGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TYPE",
		Short: "Get a bulk data file",
		Long:  "Display the bulk data export of the given type, such as oracle_cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				item, err := client.BulkData().GetByType(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get bulk data: %w", err)
				}

				view := tableView{
					header: []string{"Property", "Value"},
					rows: [][]string{
						{"Type", item.Type},
						{"Name", item.Name},
						{"Description", item.Description},
						{"Updated", item.UpdatedAt},
						{"Size", strconv.FormatInt(item.Size, 10)},
						{"Download URI", item.DownloadURI},
					},
				}

				return writeResult(cmd.OutOrStdout(), item, view)
			})
		},
	}
}
