package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tagpulse-org/tagpulse/config"
)

var dataFile string

var rootCmd = &cobra.Command{
	Use:   "tagpulse",
	Short: "Programming-language popularity trends from Stack Overflow tag counts",
	Long: `Tagpulse analyzes a pre-aggregated Stack Overflow tag-count table
(year, tag, num_questions, year_total) and computes tag rankings,
per-year percentage shares, year-over-year growth rates, and a coarse
rising/declining/stable classification per tag.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/tagpulse/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "path to the tag-count CSV (required)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = rootCmd.MarkPersistentFlagRequired("file")
}

func initConfig() {
	// Set defaults first so they're available even without a config file.
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TAGPULSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found).
	_ = viper.ReadInConfig()
}
