package status

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-insights/internal/logging"
)

// serveStatus runs the handler behind the logging wrapper and returns the
// recorder plus the final log line.
func serveStatus(t *testing.T, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	logger := logging.SetupLogging()
	buf := &bytes.Buffer{}
	logger.Out = buf

	statusHandler := NewHandler()
	w := httptest.NewRecorder()
	logging.LoggingWrapper("Status", logger, statusHandler.Handler)(w, httptest.NewRequest(method, "/status", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "expected a start and an end line")

	var last map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &last))
	return w, last
}

func TestHandler_GetLogsOk(t *testing.T) {
	w, line := serveStatus(t, http.MethodGet)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Handler.Status.Complete", line["msg"])
	assert.Equal(t, "ok", line["status"])
	assert.Contains(t, line, "duration")
}

func TestHandler_NonGetIsRejected(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			w, line := serveStatus(t, method)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Handler.Status.Error", line["msg"])
			assert.Equal(t, "error", line["loglevel"])
			assert.Equal(t, "status: method not GET", line["error"])
			assert.NotContains(t, line, "status")
		})
	}
}
