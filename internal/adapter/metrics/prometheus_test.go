package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-decision/internal/core/domain"
)

func TestDecisionCounters(t *testing.T) {
	p := NewPrometheus()

	p.ObserveDecision("filled", 3*time.Millisecond)
	p.ObserveDecision("filled", 4*time.Millisecond)
	p.ObserveDecision("no_fill", time.Millisecond)
	p.IncFrequencyCapped(domain.EventImpression)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.decisions.WithLabelValues("filled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.decisions.WithLabelValues("no_fill")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.frequencyCaps.WithLabelValues("impression")))
	assert.Equal(t, 0.0, testutil.ToFloat64(p.frequencyCaps.WithLabelValues("click")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	p := NewPrometheus()
	p.ObserveClearingPrice(0.26)
	p.ObserveCandidates(4)
	p.ObserveDecision("filled", time.Millisecond)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	out := string(body)
	for _, name := range []string{
		"mesa_auction_clearing_price_count 1",
		"mesa_decision_eligible_candidates_sum 4",
		`mesa_decision_requests_total{outcome="filled"} 1`,
		"go_goroutines",
	} {
		assert.True(t, strings.Contains(out, name), "missing %q", name)
	}
}
