package worker

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"membership/config"
	"membership/internal/delivery/worker/handler"
	"membership/internal/domain/constants"
	"membership/internal/infra/metrics"
	mockUsecase "membership/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServerParams(t *testing.T, cfg *config.Config) ServerParams {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	processor := handler.NewOrderEventProcessor(handler.OrderEventProcessorParams{
		MembershipUC: mockUsecase.NewMockMembershipUsecase(t),
		Logger:       logger,
	})

	return ServerParams{
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:    cfg,
			Processor: processor,
			Logger:    logger,
		}),
		Metrics: metrics.NewRecorder(),
	}
}

func TestWorkerEcho_Routes(t *testing.T) {
	t.Run("pubsub source exposes push endpoint", func(t *testing.T) {
		cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
		e := newEcho(newTestServerParams(t, cfg))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constants.OrderEventsProviderPubSub, body["source"])

		// A malformed envelope is rejected by the push handler, not the router.
		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("kafka source has no push endpoint", func(t *testing.T) {
		cfg := &config.Config{OrderEvents: &config.OrderEventsConfig{Provider: constants.OrderEventsProviderKafka}}
		e := newEcho(newTestServerParams(t, cfg))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader("{}")))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Contains(t, rec.Body.String(), `"source":"kafka"`)
	})
}
