package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evtools/evtchart/internal/config"
	"github.com/evtools/evtchart/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "evtchart",
	Short: "Log activity chart tool",
	Long: `A command line tool that parses timestamped event logs
(code-server exthost.log and similar) and renders activity charts
to help spot anomalous activity patterns.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("interval", "", "Bucketing interval (1m/5m/30m/1h)")
	rootCmd.PersistentFlags().String("alignment", "", "Bucket alignment (floor/ceil/round)")
	rootCmd.PersistentFlags().String("order", "", "Bar ordering (count/name)")
	rootCmd.PersistentFlags().String("log-level", "", "Diagnostic log level (debug/info/warn/error)")
	rootCmd.PersistentFlags().String("log-format", "", "Diagnostic log format (text/json)")
	viper.BindPFlag("interval", rootCmd.PersistentFlags().Lookup("interval"))
	viper.BindPFlag("alignment", rootCmd.PersistentFlags().Lookup("alignment"))
	viper.BindPFlag("order", rootCmd.PersistentFlags().Lookup("order"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	// Environment variables
	viper.SetEnvPrefix("EVTCHART")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("mode", "line")
	viper.SetDefault("interval", "30m")
	viper.SetDefault("alignment", "floor")
	viper.SetDefault("order", "count")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
}

// setup validates the effective configuration and installs the logger.
// Every command calls it before doing any work.
func setup() (*config.Config, error) {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	return cfg, nil
}
