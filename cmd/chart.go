package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/evtools/evtchart/internal/bucket"
	"github.com/evtools/evtchart/internal/models"
	"github.com/evtools/evtchart/internal/parser"
	"github.com/evtools/evtchart/internal/render"
)

var chartCmd = &cobra.Command{
	Use:   "chart <logfile>",
	Short: "Render an activity chart from a log file",
	Long: `Parse a log file and render event counts as a line chart
(counts over time buckets) or a bar chart (counts per event type).`,
	Args: cobra.ExactArgs(1),
	RunE: chart,
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().String("mode", "", "Chart mode (line/bar)")
	chartCmd.Flags().String("out", "", "Output path (default: <logfile>-<mode>.html)")
	chartCmd.Flags().String("options-file", "", "Chart options from file (JSON/YAML)")
	chartCmd.Flags().String("title", "", "Chart title")
	chartCmd.Flags().Bool("open", false, "Open the rendered chart in the default browser")
}

func chart(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	// Parse flags
	logPath := args[0]
	mode, _ := cmd.Flags().GetString("mode")
	outPath, _ := cmd.Flags().GetString("out")
	optionsFile, _ := cmd.Flags().GetString("options-file")
	title, _ := cmd.Flags().GetString("title")
	open, _ := cmd.Flags().GetBool("open")

	// Use config defaults if not specified
	if mode == "" {
		mode = cfg.Mode
	}
	if mode != "line" && mode != "bar" {
		return fmt.Errorf("invalid mode: %s (valid: line, bar)", mode)
	}
	if outPath == "" {
		outPath = logPath + "-" + mode + ".html"
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

	var fileOptions *models.ChartOptionsFile
	if optionsFile != "" {
		fileOptions, err = parseOptionsFile(optionsFile)
		if err != nil {
			return err
		}
	}
	options := chartOptions(mode, title, fileOptions)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outPath, err)
	}
	defer out.Close()

	switch mode {
	case "line":
		err = render.Line(series, options, out)
	case "bar":
		err = render.Bar(series, options, out)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Rendered %d records into %d buckets: %s\n", len(records), len(series), outPath)
	if skipped > 0 {
		fmt.Printf("Skipped %d malformed lines\n", skipped)
	}

	if open {
		if err := browser.OpenFile(outPath); err != nil {
			return fmt.Errorf("failed to open chart in browser: %w", err)
		}
	}

	return nil
}

// chartOptions builds render options for a chart: defaults first, then the
// options file, then the --title flag, which always wins.
func chartOptions(mode, title string, fileOptions *models.ChartOptionsFile) render.Options {
	options := render.Options{
		Title:  "Log activity to time",
		XLabel: "Time of log written",
		YLabel: "Log activity count",
	}
	if mode == "bar" {
		options.XLabel = "Event type"
	}

	options = options.Merge(fileOptions)
	if title != "" {
		options.Title = title
	}
	return options
}

func parseOptionsFile(path string) (*models.ChartOptionsFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return parser.ParseJSONOptions(file)
	case ".yaml", ".yml":
		return parser.ParseYAMLOptions(file)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .json, .yaml, .yml)", ext)
	}
}
