package provider

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrSyncInFlight is returned when a reconciliation pass is requested
// while one is already running.
var ErrSyncInFlight = errors.New("sync already in flight")

// SyncRunner serializes reconciliation: the gateway assumes at most one
// Sync call in flight, and the runner is where that assumption is
// enforced. Both the connectivity monitor and the HTTP trigger go
// through it.
type SyncRunner struct {
	provider *Provider
	running  atomic.Bool
}

// NewSyncRunner wraps a provider.
func NewSyncRunner(p *Provider) *SyncRunner {
	return &SyncRunner{provider: p}
}

// Run performs one reconciliation pass, rejecting overlap with
// ErrSyncInFlight.
func (r *SyncRunner) Run(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrSyncInFlight
	}
	defer r.running.Store(false)

	return r.provider.Sync(ctx)
}

// Running reports whether a pass is currently in flight.
func (r *SyncRunner) Running() bool {
	return r.running.Load()
}
