package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/scryfall/internal/constants"
	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/spf13/cobra"
)

// NewCardsCommand creates the cards command group.
func NewCardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cards",
		Aliases: []string{"card"},
		Short:   "Look up cards",
		Long:    "Fetch cards by ID, name, set number or search query",
	}

	cmd.AddCommand(newCardsGetCommand())
	cmd.AddCommand(newCardsRandomCommand())
	cmd.AddCommand(newCardsSearchCommand())
	cmd.AddCommand(newCardsPageCommand())
	cmd.AddCommand(newCardsNamedCommand())
	cmd.AddCommand(newCardsSetNumberCommand())
	cmd.AddCommand(newCardsCollectionCommand())
	cmd.AddCommand(newCardsAutocompleteCommand())

	return cmd
}

func newCardsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CARD_ID",
		Short: "Get a card by ID",
		Long:  "Display a single card identified by its Scryfall ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				card, err := client.Cards().GetByID(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get card: %w", err)
				}

				return writeCard(cmd.OutOrStdout(), card)
			})
		},
	}
}

func newCardsRandomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Get a random card",
		Long:  "Display a random card. Random cards are never cached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				card, err := client.Cards().GetRandom(ctx)
				if err != nil {
					return fmt.Errorf("failed to get random card: %w", err)
				}

				return writeCard(cmd.OutOrStdout(), card)
			})
		},
	}
}

func newCardsSearchCommand() *cobra.Command {
	var (
		page      int
		allPages  bool
		maxPages  int
		order     string
		dir       string
		unique    string
		extras    bool
		multiLang bool
		variants  bool
	)

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search cards",
		Long:  "Search cards with the full-text query syntax",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return constants.ErrQueryRequired
			}

			options := scryfall.NewSearchOptions().
				WithSort(scryfall.CardSort(order)).
				WithDirection(scryfall.SortDirection(dir)).
				WithUnique(scryfall.UniqueMode(unique))
			options.IncludeExtras = extras
			options.IncludeMultilingual = multiLang
			options.IncludeVariations = variants

			return withClient(func(ctx context.Context, client scryfall.Client) error {
				list, err := client.Cards().Search(ctx, query, page, options)
				if err != nil {
					return fmt.Errorf("failed to search cards: %w", err)
				}

				cards := list.Data
				if allPages {
					cards, err = scryfall.CollectAll(ctx, list, client.Cards().NextPage, maxPages)
					if err != nil {
						return fmt.Errorf("failed to fetch further pages: %w", err)
					}
				}

				footer := ""
				if !allPages && list.HasMore {
					footer = fmt.Sprintf("\n%d cards match. Use --page or --all to see more.", list.TotalCards)
				}

				return writeCards(cmd.OutOrStdout(), cards, footer)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "results page")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&maxPages, "max-pages", constants.DefaultMaxPages, "page limit for --all")
	cmd.Flags().StringVar(&order, "order", "", "sort field (name, set, released, cmc, usd, ...)")
	cmd.Flags().StringVar(&dir, "dir", "", "sort direction (auto, asc, desc)")
	cmd.Flags().StringVar(&unique, "unique", "", "uniqueness mode (cards, art, prints)")
	cmd.Flags().BoolVar(&extras, "include-extras", false, "include tokens and other extras")
	cmd.Flags().BoolVar(&multiLang, "include-multilingual", false, "include all languages")
	cmd.Flags().BoolVar(&variants, "include-variations", false, "include rare card variants")

	return cmd
}

func newCardsPageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "page [PAGE]",
		Short: "List a page of all cards",
		Long:  "Display one page of the complete card listing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := 1
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid page %q: %w", args[0], err)
				}

				page = parsed
			}

			return withClient(func(ctx context.Context, client scryfall.Client) error {
				list, err := client.Cards().GetPage(ctx, page)
				if err != nil {
					return fmt.Errorf("failed to list cards: %w", err)
				}

				return writeCards(cmd.OutOrStdout(), list.Data, "")
			})
		},
	}
}

func newCardsNamedCommand() *cobra.Command {
	var fuzzy bool

	cmd := &cobra.Command{
		Use:   "named NAME...",
		Short: "Get a card by name",
		Long:  "Display the card with the given exact or fuzzy name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			return withClient(func(ctx context.Context, client scryfall.Client) error {
				card, err := client.Cards().GetNamed(ctx, name, fuzzy)
				if err != nil {
					return fmt.Errorf("failed to get card %q: %w", name, err)
				}

				return writeCard(cmd.OutOrStdout(), card)
			})
		},
	}

	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "match names approximately")

	return cmd
}

func newCardsSetNumberCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-number SET_CODE COLLECTOR_NUMBER",
		Short: "Get a card by set and collector number",
		Long:  "Display the card printed in a set under a collector number",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return constants.ErrSetNumberArgs
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				card, err := client.Cards().GetBySetNumber(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to get card: %w", err)
				}

				return writeCard(cmd.OutOrStdout(), card)
			})
		},
	}
}

func newCardsCollectionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collection CARD_ID...",
		Short: "Get several cards by ID",
		Long:  "Fetch a batch of cards by their Scryfall IDs in one request",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return constants.ErrCardIDsRequired
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				list, err := client.Cards().Collection(ctx, args)
				if err != nil {
					return fmt.Errorf("failed to fetch collection: %w", err)
				}

				return writeCards(cmd.OutOrStdout(), list.Data, "")
			})
		},
	}
}

func newCardsAutocompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "autocomplete PREFIX",
		Short: "Suggest card names",
		Long:  "List card names starting with a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client scryfall.Client) error {
				catalog, err := client.Cards().Autocomplete(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to autocomplete: %w", err)
				}

				return writeCatalog(cmd.OutOrStdout(), catalog)
			})
		},
	}
}

func writeCard(out io.Writer, card *scryfall.Card) error {
	view := tableView{
		header: []string{"Property", "Value"},
		rows: [][]string{
			{"ID", card.ID},
			{"Name", card.Name},
			{"Mana Cost", card.ManaCost},
			{"Type", card.TypeLine},
			{"Oracle Text", card.OracleText},
			{"Set", fmt.Sprintf("%s (%s)", card.SetName, strings.ToUpper(card.Set))},
			{"Number", card.CollectorNumber},
			{"Rarity", card.Rarity},
			{"Artist", card.Artist},
		},
	}

	if card.Power != "" || card.Toughness != "" {
		view.rows = append(view.rows, []string{"P/T", card.Power + "/" + card.Toughness})
	}

	return writeResult(out, card, view)
}

func writeCards(out io.Writer, cards []scryfall.Card, footer string) error {
	view := tableView{
		header: []string{"Name", "Set", "Number", "Mana Cost", "Type", "ID"},
		empty:  "No cards found",
		footer: footer,
	}

	for _, card := range cards {
		view.rows = append(view.rows, []string{
			card.Name, strings.ToUpper(card.Set), card.CollectorNumber, card.ManaCost, card.TypeLine, card.ID,
		})
	}

	return writeResult(out, cards, view)
}

func writeCatalog(out io.Writer, catalog *scryfall.Catalog) error {
	view := tableView{header: []string{"Value"}, empty: "No values found"}
	for _, value := range catalog.Data {
		view.rows = append(view.rows, []string{value})
	}

	return writeResult(out, catalog.Data, view)
}
