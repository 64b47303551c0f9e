package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evtools/evtchart/internal/bucket"
	"github.com/evtools/evtchart/internal/models"
	"github.com/evtools/evtchart/internal/parser"
)

var statsCmd = &cobra.Command{
	Use:   "stats <logfile>",
	Short: "Print per-bucket event counts",
	Long:  "Parse a log file and print aggregated event counts without rendering a chart",
	Args:  cobra.ExactArgs(1),
	RunE:  stats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("mode", "", "Aggregation mode (line/bar)")
	statsCmd.Flags().String("format", "text", "Output format (text/json)")
}

type statsOutput struct {
	Mode     string        `json:"mode"`
	Interval string        `json:"interval,omitempty"`
	Total    int           `json:"total"`
	Skipped  int           `json:"skipped"`
	Buckets  models.Series `json:"buckets"`
}

func stats(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	logPath := args[0]
	mode, _ := cmd.Flags().GetString("mode")
	format, _ := cmd.Flags().GetString("format")

	if mode == "" {
		mode = cfg.Mode
	}
	if mode != "line" && mode != "bar" {
		return fmt.Errorf("invalid mode: %s (valid: line, bar)", mode)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (valid: text, json)", format)
	}

	records, skipped, err := parser.ReadFile(logPath)
	if err != nil {
		return err
	}

	var series models.Series
	switch mode {
	case "line":
		series, err = bucket.ByInterval(records, cfg.Interval, cfg.Alignment)
	case "bar":
		series, err = bucket.ByCategory(records, cfg.Order)
	}
	if err != nil {
		return err
	}

	if format == "json" {
		output := statsOutput{
			Mode:    mode,
			Total:   series.Total(),
			Skipped: skipped,
			Buckets: series,
		}
		if mode == "line" {
			output.Interval = cfg.Interval
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}

	for _, b := range series {
		fmt.Printf("%s : %d\n", b.Label, b.Count)
	}
	fmt.Printf("Total: %d records in %d buckets", series.Total(), len(series))
	if skipped > 0 {
		fmt.Printf(" (%d lines skipped)", skipped)
	}
	fmt.Println()

	return nil
}
