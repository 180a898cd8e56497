package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/abhisek/blockhint/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hint composed", "category", "type_error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug line must be filtered")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "hint composed", entry["msg"])
	assert.Equal(t, "type_error", entry["category"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(config.LogConfig{Level: "debug", Format: "text"}, &buf)
	require.NoError(t, err)
	logger.Debug("parsed", "nodes", 3)
	assert.Contains(t, buf.String(), "nodes=3")
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := NewLogger(config.LogConfig{Level: "loud", Format: "json"}, &bytes.Buffer{})
	assert.Error(t, err)
	_, err = NewLogger(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestInitTracer_None(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), "none", "blockhint", "test", &bytes.Buffer{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracer_Unknown(t *testing.T) {
	_, err := InitTracer(context.Background(), "zipkin", "blockhint", "test", &bytes.Buffer{})
	assert.True(t, errors.Is(err, ErrUnknownExporter))
}

func TestInitTracer_StdoutExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := InitTracer(context.Background(), "stdout", "blockhint", "test", &buf)
	require.NoError(t, err)

	_, span := otel.Tracer(TracerName).Start(context.Background(), "unit-span")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), "unit-span")
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	return rec.Body.String()
}

func TestMetrics_ObserveHint(t *testing.T) {
	m := NewMetrics()
	m.ObserveHint("type_error", OutcomeHint)
	m.ObserveHint("type_error", OutcomeHint)
	m.ObserveHint("", OutcomeNoHint)

	body := scrape(t, m)
	assert.Contains(t, body, `blockhint_hints_total{category="type_error",outcome="hint"} 2`)
	assert.Contains(t, body, `blockhint_hints_total{category="none",outcome="no_hint"} 1`)
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveRequest("/get_debugging_hint", "200", 3*time.Millisecond)
	assert.Contains(t, scrape(t, m), `blockhint_http_request_duration_seconds_count{route="/get_debugging_hint",status="200"} 1`)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	a.ObserveHint("type_error", OutcomeHint)
	assert.NotContains(t, scrape(t, b), "blockhint_hints_total")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHint("type_error", OutcomeHint)
		m.ObserveRequest("/", "200", time.Millisecond)
	})
}
