package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Valid configuration values
var (
	validModes = map[string]bool{
		"line": true, "bar": true,
	}
	validIntervals = map[string]bool{
		"1m": true, "5m": true, "30m": true, "1h": true,
	}
	validAlignments = map[string]bool{
		"floor": true, "ceil": true, "round": true,
	}
	validOrders = map[string]bool{
		"count": true, "name": true,
	}
	validLogLevels = map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	validLogFormats = map[string]bool{
		"text": true, "json": true,
	}
)

type Config struct {
	Mode      string
	Interval  string
	Alignment string
	Order     string
	LogLevel  string
	LogFormat string
}

func New() *Config {
	return &Config{
		Mode:      viper.GetString("mode"),
		Interval:  viper.GetString("interval"),
		Alignment: viper.GetString("alignment"),
		Order:     viper.GetString("order"),
		LogLevel:  viper.GetString("log_level"),
		LogFormat: viper.GetString("log_format"),
	}
}

func (c *Config) Validate() error {
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode: %s (valid: line, bar)", c.Mode)
	}

	if !validIntervals[c.Interval] {
		return fmt.Errorf("invalid interval: %s (valid: 1m, 5m, 30m, 1h)", c.Interval)
	}

	if !validAlignments[c.Alignment] {
		return fmt.Errorf("invalid alignment: %s (valid: floor, ceil, round)", c.Alignment)
	}

	if !validOrders[c.Order] {
		return fmt.Errorf("invalid order: %s (valid: count, name)", c.Order)
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.LogLevel)
	}

	if !validLogFormats[c.LogFormat] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", c.LogFormat)
	}

	return nil
}
