package ui

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"netbank-prototype/internal/models"
)

// DefaultAnnouncementDuration is how long a navigation announcement stays in
// the assistive-technology live region before removal
const DefaultAnnouncementDuration = 1500 * time.Millisecond

// ScreenState describes the rendered visibility contract for one screen
type ScreenState struct {
	Screen     models.Screen `json:"screen"`
	Visible    bool          `json:"visible"`
	AriaHidden bool          `json:"aria_hidden"`
	// TabSelected is only meaningful for screens with a tab control
	TabSelected bool `json:"tab_selected"`
}

// Announcement is the transient, polite live-region status message emitted
// on navigation, removed after a fixed short delay
type Announcement struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ViewState is the full description of what the document should show:
// exactly one visible screen, the tab navigation state, and any live
// announcement
type ViewState struct {
	ActiveScreen  models.Screen `json:"active_screen"`
	Screens       []ScreenState `json:"screens"`
	TabNavVisible bool          `json:"tab_nav_visible"`
	Announcement  *Announcement `json:"announcement,omitempty"`
}

// ViewController owns screen navigation. ShowScreen makes exactly the given
// screen visible, hides all others, and toggles the secondary tab navigation
// based on the destination.
type ViewController struct {
	state *ApplicationState

	mu                   sync.Mutex
	announcement         *Announcement
	announcementDuration time.Duration

	logger  *slog.Logger
	metrics ScreenMetrics
	now     func() time.Time
}

// ScreenMetrics records navigation events
type ScreenMetrics interface {
	RecordScreenView(screen string)
}

// NewViewController creates a view controller over the given state
func NewViewController(state *ApplicationState, announcementDuration time.Duration, metrics ScreenMetrics, logger *slog.Logger) *ViewController {
	if announcementDuration <= 0 {
		announcementDuration = DefaultAnnouncementDuration
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ViewController{
		state:                state,
		announcementDuration: announcementDuration,
		logger:               logger,
		metrics:              metrics,
		now:                  time.Now,
	}
}

// WithClock overrides the controller's clock; used by tests to control
// announcement expiry
func (vc *ViewController) WithClock(now func() time.Time) *ViewController {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.now = now
	return vc
}

// ShowScreen makes exactly the given screen visible and all others hidden,
// toggles the tab navigation, marks the matching tab selected, and emits a
// transient announcement naming the destination. Unknown identifiers are a
// caller contract violation and rejected.
func (vc *ViewController) ShowScreen(screen models.Screen) (ViewState, error) {
	if !models.IsValidScreen(screen) {
		return ViewState{}, models.ErrUnknownScreen
	}

	vc.state.setActiveScreen(screen)

	vc.mu.Lock()
	now := vc.now()
	vc.announcement = &Announcement{
		Message:   fmt.Sprintf("Navigated to %s", screen.Title()),
		ExpiresAt: now.Add(vc.announcementDuration),
	}
	vc.mu.Unlock()

	if vc.metrics != nil {
		vc.metrics.RecordScreenView(string(screen))
	}

	vc.logger.Debug("screen shown", "screen", string(screen))

	return vc.View(), nil
}

// View returns the current view state snapshot. Expired announcements are
// dropped on read.
func (vc *ViewController) View() ViewState {
	active := vc.state.ActiveScreen()

	screens := make([]ScreenState, 0, len(models.AllScreens()))
	for _, screen := range models.AllScreens() {
		visible := screen == active
		screens = append(screens, ScreenState{
			Screen:      screen,
			Visible:     visible,
			AriaHidden:  !visible,
			TabSelected: visible && screen.HasTabNavigation(),
		})
	}

	vc.mu.Lock()
	now := vc.now()
	if vc.announcement != nil && !now.Before(vc.announcement.ExpiresAt) {
		vc.announcement = nil
	}
	announcement := vc.announcement
	vc.mu.Unlock()

	return ViewState{
		ActiveScreen:  active,
		Screens:       screens,
		TabNavVisible: active.HasTabNavigation(),
		Announcement:  announcement,
	}
}
