package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCompletion(t *testing.T) {
	m := New()

	m.ObserveCompletion("generate", 2*time.Second, nil)
	m.ObserveCompletion("generate", time.Second, errors.New("upstream down"))
	m.ObserveCompletion("refine", time.Second, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CompletionRequests.WithLabelValues("generate", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CompletionRequests.WithLabelValues("generate", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CompletionRequests.WithLabelValues("refine", OutcomeSuccess)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.CompletionDurationSeconds))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCompletion("generate", time.Second, nil)
		m.ObserveHTTP("GET", "/", "200", time.Millisecond)
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveHTTP("POST", "/generate", "200", 10*time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `mixoholic_http_requests_total{method="POST",route="/generate",status="200"} 1`)
}
