package services

import (
	"sync"
	"time"

	"netbank-prototype/internal/ui"
)

// fakeMetricsRecorder records calls without touching a prometheus registry,
// which would panic on duplicate registration across suites
type fakeMetricsRecorder struct {
	mu            sync.Mutex
	screenViews   []string
	loginAttempts []string
	transfers     []string
	delays        []string
}

func (f *fakeMetricsRecorder) RecordScreenView(screen string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.screenViews = append(f.screenViews, screen)
}

func (f *fakeMetricsRecorder) RecordLoginAttempt(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginAttempts = append(f.loginAttempts, status)
}

func (f *fakeMetricsRecorder) RecordTransfer(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transfers = append(f.transfers, status)
}

func (f *fakeMetricsRecorder) RecordSimulatedDelay(operation string, duration time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delays = append(f.delays, operation)
}

// noSleep skips the simulated processing delay in tests
func noSleep(time.Duration) {}

// effectKinds extracts the ordered kinds from an effect list for assertions
func effectKinds(effects []ui.Effect) []ui.EffectKind {
	kinds := make([]ui.EffectKind, 0, len(effects))
	for _, e := range effects {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}
