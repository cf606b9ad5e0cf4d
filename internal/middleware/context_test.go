package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecomportal/backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := context.WithValue(context.Background(), loggerContextKey, &logger)

	GetLoggerFromContext(ctx).Info().Msg("request-scoped")
	assert.Contains(t, buf.String(), "request-scoped")
}

func TestGetLoggerFromContext_Fallback(t *testing.T) {
	log := GetLoggerFromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestEnhanceContext_PropagatesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	s := &server.Server{Logger: &logger}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/customers/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(RequestIDKey, "req-1")

	// Code below the handlers sees only a context.Context; the enhancer must
	// make the correlated logger reachable from there.
	next := func(c echo.Context) error {
		GetLoggerFromContext(c.Request().Context()).Info().Msg("store failure")
		return nil
	}
	require.NoError(t, NewContextEnhancer(s).EnhanceContext()(next)(c))

	assert.Contains(t, buf.String(), "store failure")
	assert.Contains(t, buf.String(), "req-1")
}
