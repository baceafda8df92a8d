package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"membership/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()

	r.OrderCredited()
	r.OrderCredited()
	r.OrderSkipped(service.SkipReasonDuplicate)
	r.OrderSkipped(service.SkipReasonNonPositive)
	r.OrderSkipped(service.SkipReasonDuplicate)
	r.CardUpgraded()
	r.DefaultCardIssued()

	assert.InDelta(t, 2, testutil.ToFloat64(r.ordersCredited), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(r.ordersSkipped.WithLabelValues(service.SkipReasonDuplicate)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.ordersSkipped.WithLabelValues(service.SkipReasonNonPositive)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.cardUpgrades), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.defaultCardsIssued), 0)
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.OrderCredited()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "membership_orders_credited_total 1")
}
