// Package notify implements the transient notification channel: dismissible,
// severity-tagged notices that expire after a fixed display window with a
// short fade-out before removal. Notices coexist in insertion order; there is
// no de-duplication.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"netbank-prototype/internal/models"
	"netbank-prototype/internal/validation"
)

const (
	// DefaultDuration is the display window applied when the caller passes 0
	DefaultDuration = 4000 * time.Millisecond

	// fadeOutGrace is the transition window between expiry and removal
	fadeOutGrace = 300 * time.Millisecond
)

// Sink collects and expires user-facing notices
type Sink struct {
	mu              sync.Mutex
	notices         []models.Notification
	defaultDuration time.Duration
	logger          *slog.Logger
	now             func() time.Time
}

// NewSink creates a notification sink
func NewSink(logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{defaultDuration: DefaultDuration, logger: logger, now: time.Now}
}

// WithDefaultDuration overrides the display window applied to notices posted
// without an explicit duration
func (s *Sink) WithDefaultDuration(d time.Duration) *Sink {
	if d > 0 {
		s.mu.Lock()
		s.defaultDuration = d
		s.mu.Unlock()
	}
	return s
}

// WithClock overrides the sink's clock; used by tests to control expiry
func (s *Sink) WithClock(now func() time.Time) *Sink {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// Notify sanitizes the message and appends a notice tagged with the given
// severity. A zero duration uses the default display window.
func (s *Sink) Notify(message, severity string, duration time.Duration) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if duration <= 0 {
		duration = s.defaultDuration
	}

	created := s.now()
	notice := models.Notification{
		ID:        uuid.New(),
		Message:   validation.Sanitize(message),
		Severity:  severity,
		Duration:  duration,
		CreatedAt: created,
		ExpiresAt: created.Add(duration),
	}

	if err := notice.Validate(); err != nil {
		return models.Notification{}, err
	}

	s.pruneLocked(created)
	s.notices = append(s.notices, notice)

	s.logger.Debug("notification added",
		"id", notice.ID.String(),
		"severity", notice.Severity,
		"duration", duration.String(),
	)

	return notice, nil
}

// Dismiss removes a notice before its display window ends
func (s *Sink) Dismiss(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notices {
		if n.ID == id {
			s.notices = append(s.notices[:i], s.notices[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns the live notices in insertion order. Expired notices within
// the fade-out grace are returned with FadingOut set; older ones are removed.
func (s *Sink) Active() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	out := make([]models.Notification, len(s.notices))
	copy(out, s.notices)
	for i := range out {
		out[i].FadingOut = out[i].IsExpired(now)
	}
	return out
}

// Count returns the number of live notices
func (s *Sink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(s.now())
	return len(s.notices)
}

// pruneLocked drops notices whose fade-out has completed. Caller holds the lock.
func (s *Sink) pruneLocked(now time.Time) {
	kept := s.notices[:0]
	for _, n := range s.notices {
		if now.Before(n.ExpiresAt.Add(fadeOutGrace)) {
			kept = append(kept, n)
		}
	}
	s.notices = kept
}
