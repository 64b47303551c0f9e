package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/evtools/evtchart/internal/bucket"
	"github.com/evtools/evtchart/internal/models"
	"github.com/evtools/evtchart/internal/parser"
	"github.com/evtools/evtchart/internal/render"
)

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Chart every exthost.log under a code-server logs directory",
	Long: `Walk a code-server logs directory and render one line chart per
daily log directory. The default root is ~/.local/share/code-server/logs;
each <day>/extension-host/exthost.log becomes <day>-line.html in the
output directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: scan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().String("out-dir", ".", "Directory to write rendered charts into")
}

func scan(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out-dir")

	root := ""
	if len(args) > 0 {
		root = args[0]
	}
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		root = filepath.Join(home, ".local", "share", "code-server", "logs")
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return &models.FileAccessError{Path: root, Err: err}
	}

	charted := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		logPath := filepath.Join(root, entry.Name(), "extension-host", "exthost.log")
		records, skipped, err := parser.ReadFile(logPath)
		if err != nil {
			// A daily directory without the log is skipped, not fatal.
			slog.Warn("skipping log directory", "dir", entry.Name(), "error", err)
			continue
		}

		series, err := bucket.ByInterval(records, cfg.Interval, cfg.Alignment)
		if err != nil {
			return err
		}

		outPath := filepath.Join(outDir, entry.Name()+"-line.html")
		if err := renderScanChart(series, entry.Name(), outPath); err != nil {
			return err
		}

		fmt.Printf("%s: %d records, %d buckets -> %s\n", entry.Name(), len(records), len(series), outPath)
		if skipped > 0 {
			slog.Info("skipped malformed lines", "dir", entry.Name(), "count", skipped)
		}
		charted++
	}

	fmt.Printf("Rendered %d charts from %s\n", charted, root)
	return nil
}

func renderScanChart(series models.Series, name, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outPath, err)
	}
	defer out.Close()

	options := render.Options{
		Title:  "Log activity: " + name,
		XLabel: "Time of log written",
		YLabel: "Log activity count",
	}
	return render.Line(series, options, out)
}
