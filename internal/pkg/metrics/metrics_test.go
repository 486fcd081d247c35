package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveClientRequest(t *testing.T) {
	counter := ClientRequestsTotal.WithLabelValues("fetch_castings", "network_failure")
	before := testutil.ToFloat64(counter)

	ObserveClientRequest("fetch_castings", "network_failure", 20*time.Millisecond)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Fatalf("expected counter %v, got %v", before+1, got)
	}
	if n := testutil.CollectAndCount(ClientRequestDuration, "castmate_client_request_duration_seconds"); n == 0 {
		t.Fatalf("expected a duration series")
	}
}
