package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/cats-api/internal/config"
	"github.com/deppfellow/cats-api/internal/errs"
	"github.com/deppfellow/cats-api/internal/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(logger zerolog.Logger) *server.Server {
	cfg := config.DefaultConfig()
	cfg.Observability = config.DefaultObservabilityConfig()
	return server.NewWithoutDatabase(cfg, &logger, nil)
}

// newTestEcho builds an Echo instance with the error handler and the
// logging chain installed, mirroring the router's order.
func newTestEcho(s *server.Server) *echo.Echo {
	m := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(
		RequestID(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Metrics.Collect(),
		m.Global.Recover(),
	)
	return e
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGlobalErrorHandler(t *testing.T) {
	e := newTestEcho(newTestServer(zerolog.Nop()))

	e.GET("/boom", func(c echo.Context) error {
		return errors.New("connection refused")
	})
	e.GET("/bad", func(c echo.Context) error {
		return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{
			{Field: "id", Error: "must be a positive integer"},
		})
	})
	e.GET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("unexpected")
	})

	tests := []struct {
		name    string
		method  string
		target  string
		status  int
		code    string
		message string
		errors  []any
	}{
		{
			name:    "unknown error is generic",
			method:  http.MethodGet,
			target:  "/boom",
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
		{
			name:    "http error keeps field errors",
			method:  http.MethodGet,
			target:  "/bad",
			status:  http.StatusBadRequest,
			code:    "BAD_REQUEST",
			message: "Validation failed",
			errors:  []any{map[string]any{"field": "id", "error": "must be a positive integer"}},
		},
		{
			name:    "echo error keeps status and message",
			method:  http.MethodGet,
			target:  "/teapot",
			status:  http.StatusTeapot,
			code:    "I'M_A_TEAPOT",
			message: "short and stout",
		},
		{
			name:    "unmatched route",
			method:  http.MethodGet,
			target:  "/dogs",
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Route not found",
		},
		{
			name:    "method not allowed",
			method:  http.MethodPost,
			target:  "/boom",
			status:  http.StatusMethodNotAllowed,
			code:    "METHOD_NOT_ALLOWED",
			message: "Method Not Allowed",
		},
		{
			name:    "panic",
			method:  http.MethodGet,
			target:  "/panic",
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.target)
			assert.Equal(t, tt.status, rec.Code)

			body := decode(t, rec)
			assert.Equal(t, float64(tt.status), body["statusCode"])
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, tt.message, body["message"])
			assert.Equal(t, tt.target, body["path"])
			assert.NotContains(t, body, "success")

			if tt.errors == nil {
				assert.NotContains(t, body, "errors")
			} else {
				assert.Equal(t, tt.errors, body["errors"])
			}

			ts, ok := body["timestamp"].(string)
			require.True(t, ok)
			_, err := time.Parse(time.RFC3339, ts)
			assert.NoError(t, err)
		})
	}
}

func TestGlobalErrorHandler_PathExcludesQuery(t *testing.T) {
	e := newTestEcho(newTestServer(zerolog.Nop()))

	rec := serve(e, http.MethodGet, "/dogs?name=rex")

	assert.Equal(t, "/dogs", decode(t, rec)["path"])
}

func TestGlobalErrorHandler_CommittedResponse(t *testing.T) {
	e := newTestEcho(newTestServer(zerolog.Nop()))
	e.GET("/late", func(c echo.Context) error {
		if err := c.String(http.StatusOK, "ok"); err != nil {
			return err
		}
		return errors.New("failed after write")
	})

	rec := serve(e, http.MethodGet, "/late")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestGlobalErrorHandler_Head(t *testing.T) {
	e := newTestEcho(newTestServer(zerolog.Nop()))

	rec := serve(e, http.MethodHead, "/dogs")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusFromError(nil, http.StatusOK))
	assert.Equal(t, http.StatusBadRequest, StatusFromError(errs.NewBadRequestError("bad", false, nil, nil), http.StatusOK))
	assert.Equal(t, http.StatusNotFound, StatusFromError(echo.ErrNotFound, http.StatusOK))
	assert.Equal(t, http.StatusInternalServerError, StatusFromError(errors.New("boom"), http.StatusOK))
}

func TestRequestID(t *testing.T) {
	e := newTestEcho(newTestServer(zerolog.Nop()))
	e.GET("/id", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/id")

		id := rec.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-123", rec.Body.String())
	})

	t.Run("on errors", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/missing")
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	})
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func linesWithMessage(lines []map[string]any, msg string) []map[string]any {
	var out []map[string]any
	for _, line := range lines {
		if line["message"] == msg {
			out = append(out, line)
		}
	}
	return out
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		status int
		level  string
	}{
		{name: "success", method: http.MethodGet, target: "/cats/5", status: http.StatusOK, level: "info"},
		{name: "client error", method: http.MethodGet, target: "/cats/-1", status: http.StatusBadRequest, level: "warn"},
		{name: "unmatched", method: http.MethodDelete, target: "/nowhere", status: http.StatusNotFound, level: "warn"},
		{name: "server error", method: http.MethodGet, target: "/boom", status: http.StatusInternalServerError, level: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newTestEcho(newTestServer(zerolog.New(&buf)))
			e.GET("/cats/:id", func(c echo.Context) error {
				if c.Param("id") == "-1" {
					return errs.NewBadRequestError("Validation failed", true, nil, nil)
				}
				return c.JSON(http.StatusOK, "get One Cat")
			})
			e.GET("/boom", func(c echo.Context) error {
				return errors.New("boom")
			})

			rec := serve(e, tt.method, tt.target)
			require.Equal(t, tt.status, rec.Code)

			lines := logLines(t, &buf)

			incoming := linesWithMessage(lines, "incoming request")
			require.Len(t, incoming, 1)
			assert.Equal(t, tt.method, incoming[0]["method"])
			assert.Equal(t, tt.target, incoming[0]["uri"])

			completed := linesWithMessage(lines, "API")
			require.Len(t, completed, 1)
			assert.Equal(t, tt.level, completed[0]["level"])
			assert.Equal(t, float64(tt.status), completed[0]["status"])
			assert.Equal(t, tt.method, completed[0]["method"])
			assert.NotEmpty(t, completed[0]["request_id"])
		})
	}
}

func TestRequestLogger_DoesNotAlterResponse(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(newTestServer(zerolog.New(&buf)))
	e.GET("/common/router", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"success": true, "data": "Hello World!"})
	})

	rec := serve(e, http.MethodGet, "/common/router")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":"Hello World!"}`, rec.Body.String())
}

func TestGetLogger_Fallback(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	logger := GetLogger(c)
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestEnhanceContext_StoresLoggerInRequestContext(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(newTestServer(zerolog.New(&buf)))
	e.GET("/ctx", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from context")
		return c.NoContent(http.StatusNoContent)
	})

	serve(e, http.MethodGet, "/ctx")

	lines := linesWithMessage(logLines(t, &buf), "from context")
	require.Len(t, lines, 1)
	assert.Equal(t, "/ctx", lines[0]["path"])
	assert.NotEmpty(t, lines[0]["request_id"])
}

func TestMetrics_Collect(t *testing.T) {
	s := newTestServer(zerolog.Nop())
	e := newTestEcho(s)
	e.GET("/cats/:id", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "get One Cat")
	})

	serve(e, http.MethodGet, "/cats/1")
	serve(e, http.MethodGet, "/cats/2")
	serve(e, http.MethodGet, "/nowhere")

	families, err := s.Registry.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, label := range metric.GetLabel() {
				labels[label.GetName()] = label.GetValue()
			}
			counts[labels["route"]+" "+labels["status"]] = metric.GetCounter().GetValue()
		}
	}

	assert.Equal(t, float64(2), counts["/cats/:id 200"])
	assert.Equal(t, float64(1), counts["unmatched 404"])
}

func TestNewMetricsMiddleware_Twice(t *testing.T) {
	s := newTestServer(zerolog.Nop())

	assert.NotPanics(t, func() {
		NewMetricsMiddleware(s)
		NewMetricsMiddleware(s)
	})
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("req-123"))
	assert.True(t, validRequestID(uuid.NewString()))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("has space"))
	assert.False(t, validRequestID("line\nbreak"))
	assert.False(t, validRequestID(strings.Repeat("a", maxRequestIDLength+1)))
}

func TestTracing_DisabledPassesThrough(t *testing.T) {
	tm := NewTracingMiddleware(newTestServer(zerolog.Nop()), nil)
	e := echo.New()
	e.Use(tm.NewRelicMiddleware(), tm.EnhanceTracing())
	e.GET("/cats", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := serve(e, http.MethodGet, "/cats")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
