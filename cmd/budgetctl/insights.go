package main

import (
	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-insights/internal/handlers/v1/insights"
	"github.com/carson-networks/budget-insights/internal/service"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Daily limit, forecast, overspending, streak and top spending for a user",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, _ []string) error {
	userID, err := parseUserFlag()
	if err != nil {
		return err
	}

	env, store, calendar, err := openReadSide()
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := service.NewInsightService(store, calendar, env.ForecastNegativeThreshold).
		ComputeInsights(cmd.Context(), userID)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), result, insights.NewResponse(result))
}
