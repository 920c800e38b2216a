package connectivity

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Monitor polls an Oracle on a fixed schedule and invokes the
// registered callbacks on state transitions. The online callback is the
// "connectivity restored" event the host uses to trigger a
// reconciliation pass; it fires once per transition, never on a timer
// while the state is steady.
type Monitor struct {
	cron     *cron.Cron
	oracle   Oracle
	interval int
	logger   *logrus.Logger

	onOnline  func()
	onOffline func()

	mu     sync.Mutex
	known  bool
	online bool
}

// NewMonitor creates a monitor probing every intervalSeconds.
func NewMonitor(oracle Oracle, intervalSeconds int, onOnline, onOffline func(), logger *logrus.Logger) *Monitor {
	return &Monitor{
		cron:      cron.New(),
		oracle:    oracle,
		interval:  intervalSeconds,
		logger:    logger,
		onOnline:  onOnline,
		onOffline: onOffline,
	}
}

// Start begins probing. The first probe runs immediately so later
// probes have a baseline; it only seeds the state and never raises a
// callback, since startup already loads the catalog itself.
func (m *Monitor) Start() error {
	m.logger.Info("Starting connectivity monitor")

	m.probe()

	_, err := m.cron.AddFunc(fmt.Sprintf("@every %ds", m.interval), m.probe)
	if err != nil {
		return fmt.Errorf("failed to add probe job: %w", err)
	}

	m.cron.Start()
	return nil
}

// Stop stops probing.
func (m *Monitor) Stop() {
	m.logger.Info("Stopping connectivity monitor")
	m.cron.Stop()
}

func (m *Monitor) probe() {
	online := m.oracle.IsOnline()

	m.mu.Lock()
	changed := m.known && online != m.online
	m.known = true
	m.online = online
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.WithField("online", online).Info("Connectivity changed")

	if online {
		if m.onOnline != nil {
			m.onOnline()
		}
	} else if m.onOffline != nil {
		m.onOffline()
	}
}
