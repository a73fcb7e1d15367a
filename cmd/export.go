package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Haston00/DABO/internal/cpm"
	"github.com/Haston00/DABO/internal/export"
	"github.com/Haston00/DABO/internal/telemetry"
	"github.com/Haston00/DABO/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export [plan]",
	Short: "Export the computed schedule with calendar dates as CSV or JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	exportCmd.Flags().String("format", "", "output format: csv or json (default: from file extension, else csv)")
	exportCmd.Flags().String("start", "", "override the project start date (YYYY-MM-DD)")
	exportCmd.Flags().String("weekends", "", "override weekend handling: skip or work")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, path, p, err := loadPlan(cmd, args)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	acts := p.Activities()
	res, err := cpm.Compute(acts)
	if err != nil {
		return reportComputeError(printer, path, acts, err)
	}

	cal, err := calendarFor(cmd, p, cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	rows := export.Rows(acts, res, cal)

	out, _ := cmd.Flags().GetString("out")
	format, err := exportFormat(cmd, out)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		err = export.WriteJSON(w, rows)
	default:
		err = export.WriteCSV(w, rows)
	}
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	if out != "" {
		printer.Exported(out, len(rows))
	}

	emitter, err := openEmitter(cfg)
	if err != nil {
		printer.Error(err.Error())
	}
	defer emitter.Close()
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindExported,
		Project:   projectName(p, cfg),
		Data:      map[string]any{"format": format, "rows": len(rows), "out": out},
	})

	return nil
}

// exportFormat resolves the output format from the flag, then the
// output file extension, then defaults to CSV.
func exportFormat(cmd *cobra.Command, out string) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" && out != "" {
		format = strings.TrimPrefix(filepath.Ext(out), ".")
	}
	switch format {
	case "", "csv":
		return "csv", nil
	case "json":
		return "json", nil
	default:
		return "", fmt.Errorf("unsupported format %q (use csv or json)", format)
	}
}
