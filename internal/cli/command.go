package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/askov/ordkort/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ordkort",
		Short: "Danish Anki Flashcard Generator",
		Long: `ordkort enriches a Danish vocabulary CSV with pronunciation audio
scraped from ordnet.dk and emits flashcard-ready CSV files.

Dictionary pages are rendered in a headless browser and cached locally;
resolved pronunciation MP3s land in the Anki media directory so the
generated [sound:] tags work on import.

Examples:
  ordkort                                   # Process the default input CSV
  ordkort --input my_words.csv              # Process a specific CSV
  ordkort --tts-fallback                    # Synthesize audio for words ordnet.dk lacks`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.ordkort.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.InputCSV, "input", "i", flags.InputCSV, "Input vocabulary CSV (semicolon-delimited)")
	cmd.Flags().StringVar(&flags.CacheDir, "cache-dir", flags.CacheDir, "Directory for cached dictionary HTML pages")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Directory for generated flashcard CSVs")
	cmd.Flags().StringVar(&flags.MediaDir, "media-dir", flags.MediaDir, "Anki collection.media directory for downloaded MP3s")
	cmd.Flags().StringVar(&flags.LedgerPath, "ledger", flags.LedgerPath, "SQLite ledger recording fetch outcomes")

	// Scraping flags
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", flags.BaseURL, "Dictionary lookup URL prefix")
	cmd.Flags().DurationVar(&flags.RenderWait, "render-wait", flags.RenderWait, "Delay after page load for dynamic content to settle")

	// TTS fallback flags
	cmd.Flags().BoolVar(&flags.TTSFallback, "tts-fallback", false, "Synthesize audio via OpenAI TTS when ordnet.dk has no pronunciation")
	cmd.Flags().StringVar(&flags.TTSModel, "tts-model", flags.TTSModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.TTSVoice, "tts-voice", flags.TTSVoice, "OpenAI voice: alloy, ash, coral, echo, fable, onyx, nova, sage, shimmer")
	cmd.Flags().Float64Var(&flags.TTSSpeed, "tts-speed", flags.TTSSpeed, "OpenAI speech speed (0.25 to 4.0)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("paths.input", cmd.Flags().Lookup("input"))
	viper.BindPFlag("paths.cache_dir", cmd.Flags().Lookup("cache-dir"))
	viper.BindPFlag("paths.output_dir", cmd.Flags().Lookup("output"))
	viper.BindPFlag("paths.media_dir", cmd.Flags().Lookup("media-dir"))
	viper.BindPFlag("paths.ledger", cmd.Flags().Lookup("ledger"))
	viper.BindPFlag("scrape.base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("scrape.render_wait", cmd.Flags().Lookup("render-wait"))
	viper.BindPFlag("tts.fallback", cmd.Flags().Lookup("tts-fallback"))
	viper.BindPFlag("tts.model", cmd.Flags().Lookup("tts-model"))
	viper.BindPFlag("tts.voice", cmd.Flags().Lookup("tts-voice"))
	viper.BindPFlag("tts.speed", cmd.Flags().Lookup("tts-speed"))
}

// ApplyConfig resolves the effective settings back onto flags after the
// config file and environment have been loaded. Each key is bound to its
// pflag, so viper already prefers an explicit command-line value over the
// config file, and the config file over the flag default.
func ApplyConfig(flags *Flags) {
	flags.InputCSV = viper.GetString("paths.input")
	flags.CacheDir = viper.GetString("paths.cache_dir")
	flags.OutputDir = viper.GetString("paths.output_dir")
	flags.MediaDir = viper.GetString("paths.media_dir")
	flags.LedgerPath = viper.GetString("paths.ledger")
	flags.BaseURL = viper.GetString("scrape.base_url")
	flags.RenderWait = viper.GetDuration("scrape.render_wait")
	flags.TTSFallback = viper.GetBool("tts.fallback")
	flags.TTSModel = viper.GetString("tts.model")
	flags.TTSVoice = viper.GetString("tts.voice")
	flags.TTSSpeed = viper.GetFloat64("tts.speed")
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".ordkort" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ordkort")
	}

	// Environment variables
	viper.SetEnvPrefix("ORDKORT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("tts.openai_key")
}
