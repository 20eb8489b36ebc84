package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "animethemes",
	Short: "Query the AnimeThemes.moe API",
	Long: `animethemes is a command line client for the AnimeThemes.moe API,
a database of anime opening and ending themes. It can search across
resource types and look up anime, artists, themes and seasonal listings.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.animethemes.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL (default is the public staging API)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().String("cache-dir", "", "directory for the response cache (default is the user cache directory)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "bypass the response cache")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Bind flags to viper
	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("cache_dir", rootCmd.PersistentFlags().Lookup("cache-dir"))
	viper.BindPFlag("no_cache", rootCmd.PersistentFlags().Lookup("no-cache"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory and current directory
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".animethemes")
		viper.SetConfigName("config")
	}

	// Environment variables
	viper.SetEnvPrefix("ANIMETHEMES")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
