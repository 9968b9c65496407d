package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/glutara/glutara/pkg/intelligence/correlation"
	"github.com/glutara/glutara/pkg/intelligence/insights"
	"github.com/glutara/glutara/pkg/sources/file"
)

var dashboardEventsPath string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Summarize recent activity for dashboard display",
	Long: `Dashboard prints the rolling summary for an event log: totals,
exposure-heavy and symptom days, stream averages, a correlation preview
once enough data exists, and the recent timeline.`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardEventsPath, "events", "e", "", "event log file (YAML or JSON)")
	dashboardCmd.MarkFlagRequired("events")
}

func runDashboard(cmd *cobra.Command, args []string) error {
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
	summarizer, err := insights.NewSummarizer(logger, engine, cfg.Insights)
	if err != nil {
		return err
	}

	source := file.New(logger, dashboardEventsPath)
	exposures, outcomes, err := source.Events(cmd.Context(), time.Time{}, time.Time{})
	if err != nil {
		return err
	}

	summary := summarizer.Summarize(cmd.Context(), exposures, outcomes)
	return printJSON(cmd, summary)
}
