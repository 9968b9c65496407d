// Package cli implements the glutara command line surface. The CLI is
// the calling layer around the pure engine: it loads events, enforces
// data-sufficiency preconditions and serializes results; the engine
// itself stays free of I/O.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/glutara/glutara/pkg/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "glutara",
	Short: "Gluten exposure / symptom correlation analysis",
	Long: `Glutara determines whether logged symptoms are statistically
explained by logged gluten exposures, at what delay, and whether the
relationship strengthens with exposure magnitude.

It consumes exported event logs (YAML or JSON) and prints verdicts,
dashboard summaries and full reports as JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.glutara.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".glutara")
	}

	viper.SetEnvPrefix("GLUTARA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the engine/insights configuration: an explicit
// file via --config wins, otherwise shipped defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return config.Load(used)
	}
	return config.Default(), nil
}

// buildLogger creates the CLI logger; verbose switches to development
// output at debug level.
func buildLogger() (*zap.Logger, error) {
	if viper.GetBool("verbose") || verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
