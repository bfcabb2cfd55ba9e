package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogData_Missing(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))
}

func TestGetLogData_RoundTrip(t *testing.T) {
	logData := NewLogData(SetupLogging())
	ctx := WithLogData(context.Background(), logData)

	assert.Same(t, logData, GetLogData(ctx))
}

func TestLogData_Log(t *testing.T) {
	logger := SetupLogging()
	buf := &bytes.Buffer{}
	logger.Out = buf

	logData := NewLogData(logger)
	logData.AddData("userID", "abc")
	stop := logData.AddTiming("queryMs")
	stop()
	logData.Log().Info("done")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "abc", line["userID"])
	assert.Equal(t, "info", line["loglevel"])
	assert.Contains(t, line, "queryMs")
}

func TestLogData_AddToExistingTimingAccumulates(t *testing.T) {
	logger := SetupLogging()
	buf := &bytes.Buffer{}
	logger.Out = buf

	logData := NewLogData(logger)
	logData.AddToExistingTiming("settingsMs")()
	logData.AddToExistingTiming("settingsMs")()
	logData.Log().Info("done")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Contains(t, line, "settingsMs")
}

func TestSetupLoggingWithLevel(t *testing.T) {
	assert.Equal(t, "debug", SetupLoggingWithLevel("debug").GetLevel().String())
	assert.Equal(t, "info", SetupLoggingWithLevel("nonsense").GetLevel().String())
}

func TestLoggingWrapper_PassesLogDataInContext(t *testing.T) {
	logger := SetupLogging()
	buf := &bytes.Buffer{}
	logger.Out = buf

	var seen *LogData
	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		seen = GetLogData(req.Context())
		assert.Same(t, logData, seen)
		w.WriteHeader(http.StatusOK)
		return nil
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.NotNil(t, seen)
	assert.Contains(t, buf.String(), "Handler.Test.Complete")
}

func TestLoggingWrapper_LogsError(t *testing.T) {
	logger := SetupLogging()
	buf := &bytes.Buffer{}
	logger.Out = buf

	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		return errors.New("boom")
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Contains(t, buf.String(), "Handler.Test.Error")
	assert.Contains(t, buf.String(), "boom")
}
