package iot

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, predictions map[string]Prediction) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/machine/list", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"machines": [{"id": "m1", "name": "Bench Press A"}, {"id": "m2", "name": "Bench Press B"}]}`)
	})
	mux.HandleFunc("/api/machine/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		// /api/machine/{id}/prediction
		if len(parts) != 5 || parts[4] != "prediction" {
			http.NotFound(w, r)
			return
		}
		p, ok := predictions[parts[3]]
		if !ok {
			http.Error(w, "unknown machine", http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, `{"data": {"available": %t, "time_to_wait": %d}}`, p.Available, p.TimeToWait)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestListMachines(t *testing.T) {
	srv := newTestServer(t, nil)
	c := NewClient(srv.URL, nil, 0)

	machines, err := c.ListMachines(context.Background())
	if err != nil {
		t.Fatalf("ListMachines() error = %v", err)
	}
	if len(machines) != 2 {
		t.Fatalf("machines = %d, want 2", len(machines))
	}
	if machines[0].ID != "m1" || machines[0].Name != "Bench Press A" {
		t.Errorf("machines[0] = %+v", machines[0])
	}
}

func TestPredictWait(t *testing.T) {
	srv := newTestServer(t, map[string]Prediction{
		"m1": {Available: false, TimeToWait: 12},
	})
	c := NewClient(srv.URL, nil, 0)

	p, err := c.PredictWait(context.Background(), "m1")
	if err != nil {
		t.Fatalf("PredictWait() error = %v", err)
	}
	if p.Available || p.TimeToWait != 12 {
		t.Errorf("prediction = %+v", p)
	}
}

func TestPredictWaitNonOKStatus(t *testing.T) {
	srv := newTestServer(t, nil)
	c := NewClient(srv.URL, nil, 0)

	if _, err := c.PredictWait(context.Background(), "ghost"); err == nil {
		t.Fatal("PredictWait() error = nil, want status error")
	}
}

func TestEstimateWaitTakesMinimum(t *testing.T) {
	srv := newTestServer(t, map[string]Prediction{
		"m1": {Available: false, TimeToWait: 12},
		"m2": {Available: false, TimeToWait: 4},
	})
	c := NewClient(srv.URL, nil, 0)

	wait, source := c.EstimateWait(context.Background(), []string{"m1", "m2"})
	if wait != 4 {
		t.Errorf("wait = %d, want 4", wait)
	}
	if source != DatasetSourceLive {
		t.Errorf("source = %q, want %q", source, DatasetSourceLive)
	}
}

func TestEstimateWaitAvailableMachineWinsImmediately(t *testing.T) {
	srv := newTestServer(t, map[string]Prediction{
		"m1": {Available: false, TimeToWait: 20},
		"m2": {Available: true, TimeToWait: 7},
	})
	c := NewClient(srv.URL, nil, 0)

	wait, source := c.EstimateWait(context.Background(), []string{"m1", "m2"})
	if wait != 0 {
		t.Errorf("wait = %d, want 0 when a machine is available", wait)
	}
	if source != DatasetSourceLive {
		t.Errorf("source = %q, want %q", source, DatasetSourceLive)
	}
}

func TestEstimateWaitFailsOpen(t *testing.T) {
	srv := newTestServer(t, map[string]Prediction{
		"m1": {Available: false, TimeToWait: 12},
	})
	c := NewClient(srv.URL, nil, 0)

	// m2 returns 404, so the whole estimate falls back to zero wait
	wait, source := c.EstimateWait(context.Background(), []string{"m1", "m2"})
	if wait != 0 {
		t.Errorf("wait = %d, want 0 on partial failure", wait)
	}
	if source != DatasetSourceFallback {
		t.Errorf("source = %q, want %q", source, DatasetSourceFallback)
	}
}

func TestEstimateWaitNoMachines(t *testing.T) {
	c := NewClient("http://unused", nil, 0)

	wait, source := c.EstimateWait(context.Background(), nil)
	if wait != 0 || source != DatasetSourceFallback {
		t.Errorf("EstimateWait(nil) = (%d, %q), want (0, %q)", wait, source, DatasetSourceFallback)
	}
}

func TestEstimateWaitUnreachableService(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", nil, 0)

	wait, source := c.EstimateWait(context.Background(), []string{"m1"})
	if wait != 0 || source != DatasetSourceFallback {
		t.Errorf("EstimateWait = (%d, %q), want (0, %q)", wait, source, DatasetSourceFallback)
	}
}
