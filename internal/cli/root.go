package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	verbose  bool
	storeDir string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shortsman",
	Short: "Shortsman - movie-trivia short script generation with duplicate control",
	Long: `Shortsman manages a library of YouTube Shorts channels, each with its own
prompt and a growing corpus of used trivia titles.

It generates new short scripts through an LLM provider, extracts the fact
titles they contain, and rejects anything that repeats a fact already used
on the channel: exact repeats, rewordings, facts about an already-covered
movie, or too many facts of the same kind for one film.

Every accepted title feeds back into the exclusion prompt of the next
generation call.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Shortsman.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shortsman v0.3.2")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.shortsman/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&storeDir, "store-dir", "", "channel store directory (default: $HOME/.shortsman/channels)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("store.dir", rootCmd.PersistentFlags().Lookup("store-dir"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.shortsman")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match SHORTSMAN_*
	viper.SetEnvPrefix("SHORTSMAN")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
