package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// The registry must gather cleanly after package init; a collector
// registered twice would already have panicked before this runs.
func TestRegistryGathers(t *testing.T) {
	families, err := Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected at least the Go collector families")
	}
}

func TestHandlerServesScrape(t *testing.T) {
	OrdersPlaced.Inc()

	rr := httptest.NewRecorder()
	Handler()(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, metric := range []string{"warung_orders_placed_total", "go_goroutines"} {
		if !strings.Contains(body, metric) {
			t.Errorf("scrape missing %s", metric)
		}
	}
}
