package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/glutara/glutara/pkg/intelligence/correlation"
	"github.com/glutara/glutara/pkg/sources/file"
)

var (
	eventsPath string
	fromDate   string
	toDate     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute a correlation verdict over an event log",
	Long: `Analyze reads an exported event log and prints the correlation
verdict: score, confidence, significance, time lag and dose-response.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&eventsPath, "events", "e", "", "event log file (YAML or JSON)")
	analyzeCmd.Flags().StringVar(&fromDate, "from", "", "window start (YYYY-MM-DD, optional)")
	analyzeCmd.Flags().StringVar(&toDate, "to", "", "window end (YYYY-MM-DD, optional)")
	analyzeCmd.MarkFlagRequired("events")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine, err := correlation.NewEngine(logger, cfg.Engine)
	if err != nil {
		return err
	}

	start, end, err := parseWindow(fromDate, toDate)
	if err != nil {
		return err
	}

	source := file.New(logger, eventsPath)
	exposures, outcomes, err := source.Events(cmd.Context(), start, end)
	if err != nil {
		return err
	}

	verdict := engine.ComputeVerdict(cmd.Context(), exposures, outcomes)
	return printJSON(cmd, verdict)
}

// parseWindow turns optional YYYY-MM-DD flags into window bounds. The
// end date is inclusive: it extends to the last instant of that day.
func parseWindow(from, to string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if from != "" {
		start, err = time.Parse("2006-01-02", from)
		if err != nil {
			return start, end, fmt.Errorf("invalid --from date %q: %w", from, err)
		}
	}
	if to != "" {
		end, err = time.Parse("2006-01-02", to)
		if err != nil {
			return start, end, fmt.Errorf("invalid --to date %q: %w", to, err)
		}
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return start, end, fmt.Errorf("--to %s before --from %s", to, from)
	}
	return start, end, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
