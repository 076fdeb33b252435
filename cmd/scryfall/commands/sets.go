package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/spf13/cobra"
)

// NewSetsCommand creates the sets command group.
func NewSetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sets",
		Aliases: []string{"set"},
		Short:   "Look up card sets",
		Long:    "List card sets or show a single set",
	}

	cmd.AddCommand(newSetsListCommand())
	cmd.AddCommand(newSetsGetCommand())

	return cmd
}

func newSetsListCommand() *cobra.Command {
	var setType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sets",
		Long:  "List every card set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				list, err := client.Sets().List(ctx)
				if err != nil {
					return fmt.Errorf("failed to list sets: %w", err)
				}

				sets := list.Data
				if setType != "" {
					filtered := make([]scryfall.Set, 0, len(sets))
					for _, set := range sets {
						if strings.EqualFold(set.SetType, setType) {
							filtered = append(filtered, set)
						}
					}

					sets = filtered
				}

				view := tableView{
					header: []string{"Code", "Name", "Type", "Released", "Cards"},
					empty:  "No sets found",
				}
				for _, set := range sets {
					view.rows = append(view.rows, []string{
						strings.ToUpper(set.Code), set.Name, set.SetType, set.ReleasedAt, strconv.Itoa(set.CardCount),
					})
				}

				return writeResult(cmd.OutOrStdout(), sets, view)
			})
		},
	}

	cmd.Flags().StringVar(&setType, "type", "", "only show sets of this type (core, expansion, ...)")

	return cmd
}

func newSetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SET_CODE",
		Short: "Get set details",
		Long:  "Display a single set identified by its code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				set, err := client.Sets().GetByCode(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get set: %w", err)
				}

				view := tableView{
					header: []string{"Property", "Value"},
					rows: [][]string{
						{"Code", strings.ToUpper(set.Code)},
						{"Name", set.Name},
						{"Type", set.SetType},
						{"Released", set.ReleasedAt},
						{"Block", set.Block},
						{"Parent", set.ParentCode},
						{"Cards", strconv.Itoa(set.CardCount)},
						{"Digital", strconv.FormatBool(set.Digital)},
					},
				}

				return writeResult(cmd.OutOrStdout(), set, view)
			})
		},
	}
}
