package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/scryfall/internal/constants"
	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/spf13/cobra"
)

// NewSymbolsCommand creates the symbols command group.
func NewSymbolsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "symbols",
		Aliases: []string{"symbology"},
		Short:   "Look up card symbols",
		Long:    "List card symbols or parse mana costs",
	}

	cmd.AddCommand(newSymbolsListCommand())
	cmd.AddCommand(newSymbolsParseCommand())

	return cmd
}

func newSymbolsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List card symbols",
		Long:  "List every symbol that can appear on a card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				list, err := client.Symbology().List(ctx)
				if err != nil {
					return fmt.Errorf("failed to list symbols: %w", err)
				}

				view := tableView{
					header: []string{"Symbol", "Description", "Mana Value", "Colors"},
					empty:  "No symbols found",
				}
				for _, symbol := range list.Data {
					view.rows = append(view.rows, []string{
						symbol.Symbol,
						symbol.English,
						strconv.FormatFloat(symbol.ManaValue, 'f', -1, 64),
						strings.Join(symbol.Colors, ""),
					})
				}

				return writeResult(cmd.OutOrStdout(), list.Data, view)
			})
		},
	}
}

func newSymbolsParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse COST",
		Short: "Parse a mana cost",
		Long:  "Normalize a mana cost string and report its colors and mana value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(args[0]) == "" {
				return constants.ErrManaCostRequired
			}

			return withClient(func(ctx context.Context, client scryfall.Client) error {
				cost, err := client.Symbology().ParseMana(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to parse mana cost: %w", err)
				}

				view := tableView{
					header: []string{"Property", "Value"},
					rows: [][]string{
						{"Cost", cost.Cost},
						{"Mana Value", strconv.FormatFloat(cost.CMC, 'f', -1, 64)},
						{"Colors", strings.Join(cost.Colors, "")},
						{"Colorless", strconv.FormatBool(cost.Colorless)},
						{"Multicolored", strconv.FormatBool(cost.Multicolored)},
					},
				}

				return writeResult(cmd.OutOrStdout(), cost, view)
			})
		},
	}
}
