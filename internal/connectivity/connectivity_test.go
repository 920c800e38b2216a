package connectivity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestHTTPProbeOnline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Even an auth failure proves reachability.
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	probe := NewHTTPProbe(server.URL)
	if !probe.IsOnline() {
		t.Error("Expected reachable endpoint to count as online")
	}
}

func TestHTTPProbeOffline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	probe := NewHTTPProbe(server.URL)
	if probe.IsOnline() {
		t.Error("Expected closed endpoint to count as offline")
	}
}

func TestMonitorRaisesTransitionsOnce(t *testing.T) {
	online := false
	oracle := OracleFunc(func() bool { return online })

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	var onlineEvents, offlineEvents int
	m := NewMonitor(oracle, 3600, func() { onlineEvents++ }, func() { offlineEvents++ }, logger)

	// Drive probes directly; the cron schedule is not under test. The
	// first probe seeds the baseline without raising a callback.
	m.probe()
	if offlineEvents != 0 || onlineEvents != 0 {
		t.Fatalf("First probe must only seed the state, got %d offline / %d online events", offlineEvents, onlineEvents)
	}

	m.probe()
	if offlineEvents != 0 {
		t.Error("Steady state must not raise a transition")
	}

	online = true
	m.probe()
	m.probe()
	if onlineEvents != 1 {
		t.Errorf("Expected exactly one online transition, got %d", onlineEvents)
	}

	online = false
	m.probe()
	if offlineEvents != 1 {
		t.Errorf("Expected one offline transition, got %d", offlineEvents)
	}
}

func TestMonitorDoesNotFireWhenStartingOnline(t *testing.T) {
	oracle := OracleFunc(func() bool { return true })

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	var onlineEvents int
	m := NewMonitor(oracle, 3600, func() { onlineEvents++ }, nil, logger)

	m.probe()
	m.probe()
	if onlineEvents != 0 {
		t.Errorf("Already-online startup must not trigger a reconcile, got %d events", onlineEvents)
	}
}
