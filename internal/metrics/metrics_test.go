package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/derschnepf/Synergy-app/internal/metrics"
)

func TestStoreOperationsCounter(t *testing.T) {
	c := metrics.StoreOperationsTotal.WithLabelValues("movies", "create", "ok")
	before := testutil.ToFloat64(c)
	c.Inc()
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}

func TestCacheLookupsCounter(t *testing.T) {
	c := metrics.CacheLookupsTotal.WithLabelValues("hit")
	before := testutil.ToFloat64(c)
	c.Add(2)
	if got := testutil.ToFloat64(c); got != before+2 {
		t.Fatalf("expected %v, got %v", before+2, got)
	}
}
