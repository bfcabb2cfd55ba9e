package main

import (
	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-insights/internal/handlers/v1/analytics"
	"github.com/carson-networks/budget-insights/internal/service"
)

var flagPeriod string

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Totals, category breakdown, daily series and trend for a user",
	RunE:  runAnalytics,
}

func init() {
	analyticsCmd.Flags().StringVarP(&flagPeriod, "period", "p", string(service.PeriodAll), "all, month or week")
	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(cmd *cobra.Command, _ []string) error {
	userID, err := parseUserFlag()
	if err != nil {
		return err
	}

	_, store, calendar, err := openReadSide()
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := service.NewAnalyticsService(store, calendar).
		ComputeAnalytics(cmd.Context(), userID, service.ParsePeriod(flagPeriod))
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), result, analytics.NewResponse(result))
}
