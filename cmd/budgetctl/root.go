package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-insights/internal/config"
	"github.com/carson-networks/budget-insights/internal/service"
	"github.com/carson-networks/budget-insights/internal/storage"
)

var (
	flagUser string
	flagDump bool
)

var rootCmd = &cobra.Command{
	Use:          "budgetctl",
	Short:        "Inspect budget analytics from the command line",
	Long:         "Computes analytics and insights straight from the ledger database, without the HTTP server.",
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		config.LoadEnvFile()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "User UUID")
	rootCmd.PersistentFlags().BoolVar(&flagDump, "dump", false, "Print a Go dump of the raw result instead of JSON")
}

func parseUserFlag() (uuid.UUID, error) {
	if flagUser == "" {
		return uuid.Nil, fmt.Errorf("--user is required")
	}
	id, err := uuid.FromString(flagUser)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --user %q: %w", flagUser, err)
	}
	return id, nil
}

// openReadSide connects to the ledger and builds a calendar in the configured time zone.
func openReadSide() (*config.Config, *storage.Storage, *service.Calendar, error) {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := storage.NewStorage(env)
	if err != nil {
		return nil, nil, nil, err
	}
	return env, store, service.NewCalendar(env.Location(), time.Now), nil
}

// printResult writes the wire model as indented JSON, or raw when dumping.
func printResult(w io.Writer, raw any, wire any) error {
	if flagDump {
		spew.Fdump(w, raw)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(wire)
}
