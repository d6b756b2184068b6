package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"weather-checker/pkg/log"
	"weather-checker/pkg/msg"
)

func TestMain(m *testing.M) {
	if err := msg.Init("../../../configs/messages.yml"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newEcho() *echo.Echo {
	e := echo.New()
	SetupRequestID(e)
	SetupRequestLogger(e)
	e.GET("/weather-checker/places", func(c echo.Context) error { return c.String(http.StatusOK, "[]") })
	e.GET("/weather-checker/health", func(c echo.Context) error { return c.String(http.StatusOK, "UP") })
	return e
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log.SetCore(core)

	e := newEcho()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/weather-checker/places", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "/weather-checker/places", entry.ContextMap()["uri"])
	assert.Equal(t, int64(http.StatusOK), entry.ContextMap()["status"])

	requestID := rec.Header().Get(echo.HeaderXRequestID)
	_, err := uuid.Parse(requestID)
	assert.NoError(t, err)
	assert.Equal(t, requestID, entry.ContextMap()["request_id"])
}

func TestRequestLogger_SkipsHealth(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log.SetCore(core)

	e := newEcho()
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/weather-checker/health", nil))

	assert.Zero(t, logs.Len())
}
