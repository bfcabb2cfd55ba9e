package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	Port     string
	LogLevel string

	// Timezone decides what "today" is for month and week windows.
	Timezone        string
	OperatorWorkers int

	// ForecastNegativeThreshold is how far below zero a forecast balance may go
	// before the forecast is reported as negative instead of a warning.
	ForecastNegativeThreshold decimal.Decimal
}

// LoadEnvFile loads a .env file for local development. A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:           "localhost",
		PostgresPort:              "5433",
		PostgresDB:                "postgres",
		PostgresUsername:          "postgres",
		PostgresPassword:          "testpassword",
		Port:                      "9446",
		LogLevel:                  "info",
		Timezone:                  "UTC",
		OperatorWorkers:           1,
		ForecastNegativeThreshold: decimal.NewFromInt(50000),
	}

	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	overrideString(&env.Port, "PORT")
	overrideString(&env.LogLevel, "LOG_LEVEL")
	overrideString(&env.Timezone, "BUDGET_TIMEZONE")

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q: %w", v, err)
		}
		env.OperatorWorkers = workers
	}

	if v := os.Getenv("FORECAST_NEGATIVE_THRESHOLD"); len(v) != 0 {
		threshold, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FORECAST_NEGATIVE_THRESHOLD %q: %w", v, err)
		}
		env.ForecastNegativeThreshold = threshold
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if c.OperatorWorkers < 1 || c.OperatorWorkers > 64 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be between 1 and 64", c.OperatorWorkers))
	}

	if c.ForecastNegativeThreshold.IsNegative() {
		problems = append(problems, "forecast negative threshold must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// Location returns the configured time zone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// PostgresURL builds the lib/pq connection string.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func overrideString(target *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*target = v
	}
}
