package ui

import (
	"log/slog"

	"netbank-prototype/internal/notify"
)

// Applier carries effect descriptions out to the stateful components: screen
// changes to the view controller, notices to the notification sink. Field
// validity, control enablement, and form resets are rendering contract
// entries passed through to the document layer untouched.
type Applier struct {
	view   *ViewController
	sink   *notify.Sink
	logger *slog.Logger
}

// NewApplier creates an effect applier
func NewApplier(view *ViewController, sink *notify.Sink, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{view: view, sink: sink, logger: logger}
}

// Apply performs the stateful effects strictly in slice order and returns
// the untouched pass-through effects for the document layer
func (a *Applier) Apply(effects []Effect) ([]Effect, error) {
	passThrough := make([]Effect, 0, len(effects))

	for _, effect := range effects {
		switch effect.Kind {
		case EffectShowScreen:
			if _, err := a.view.ShowScreen(effect.Screen); err != nil {
				return passThrough, err
			}

		case EffectNotify:
			if _, err := a.sink.Notify(effect.Message, effect.Severity, effect.Duration); err != nil {
				return passThrough, err
			}

		case EffectSetFieldValidity, EffectSetControlEnabled, EffectResetForm,
			EffectTogglePasswordVisibility, EffectSetInlineStatus:
			passThrough = append(passThrough, effect)

		default:
			a.logger.Warn("unknown effect kind skipped", "kind", string(effect.Kind))
		}
	}

	return passThrough, nil
}
