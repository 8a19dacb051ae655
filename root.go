package main

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	configPath string
	debugFlag  bool
	apiKey     string
	baseURL    string
	debounce   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "moviegrip [title]",
	Short: "Search a movie catalog from the terminal",
	Long: `moviegrip searches an OMDb-compatible movie catalog as you type.

A search runs 500ms after the last keystroke, or immediately on Enter.
Tab toggles sorting the results by title.

Examples:
  moviegrip                      # start with an empty search box
  moviegrip titanic              # search for "titanic" on start
  moviegrip --debounce 300ms     # search sooner after typing stops
  MOVIEGRIP_API_KEY=... moviegrip`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runSearch,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/moviegrip/config.toml)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Write debug logs")
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "Catalog API key (overrides config and MOVIEGRIP_API_KEY)")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "Catalog base URL")
	rootCmd.Flags().DurationVar(&debounce, "debounce", 0, "Delay between the last keystroke and the search")
}
