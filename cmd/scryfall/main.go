package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/scryfall/cmd/scryfall/commands"
	"github.com/fivetwenty-io/scryfall/internal/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "scryfall",
	Short: "Scryfall card catalog CLI",
	Long: `A command-line interface for the Scryfall card catalog API.

Look up cards, sets, rulings, symbols and catalogs. Responses are cached
between runs in ~/.scryfall/cache.db unless another backend is configured.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.scryfall/config.yml)")
	flags.StringP("api", "a", "", "API base URL (default https://api.scryfall.com)")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Bool("no-cache", false, "disable response caching")
	flags.String("cache-backend", "bolt", "cache backend (memory, bolt, redis, nats, none)")
	flags.Duration("cache-duration", 0, "cache entry lifetime (default 30m)")
	flags.Bool("sliding", true, "extend cache entries on every hit")

	for _, name := range []string{"config", "api", "output", "verbose", "no-cache", "cache-backend", "cache-duration", "sliding"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewCardsCommand())
	rootCmd.AddCommand(commands.NewSetsCommand())
	rootCmd.AddCommand(commands.NewRulingsCommand())
	rootCmd.AddCommand(commands.NewSymbolsCommand())
	rootCmd.AddCommand(commands.NewCatalogCommand())
	rootCmd.AddCommand(commands.NewBulkDataCommand())
	rootCmd.AddCommand(commands.NewCacheCommand())
}

func initConfig() {
	_ = godotenv.Load()

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, constants.DefaultCacheDirName)
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SCRYFALL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
