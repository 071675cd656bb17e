package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := New()
	m.ObserveAttempt(true)
	m.ObserveAttempt(true)
	m.ObserveAttempt(false)
	m.ObserveSession("quiz")
	m.CardUses.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Attempts.WithLabelValues("correct")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Attempts.WithLabelValues("incorrect")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Sessions.WithLabelValues("quiz")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CardUses))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveSession("memory")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `soundlearn_sessions_tracked_total{mode="memory"} 1`)
}
