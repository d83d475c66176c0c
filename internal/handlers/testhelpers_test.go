package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"netbank-prototype/internal/middleware"
	"netbank-prototype/internal/notify"
	"netbank-prototype/internal/services"
	"netbank-prototype/internal/session"
	"netbank-prototype/internal/staticdata"
	"netbank-prototype/internal/ui"
	"netbank-prototype/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// nopMetrics satisfies the metrics interface without touching the global
// prometheus registry
type nopMetrics struct{}

func (nopMetrics) RecordScreenView(string)                    {}
func (nopMetrics) RecordLoginAttempt(string)                  {}
func (nopMetrics) RecordTransfer(string)                      {}
func (nopMetrics) RecordSimulatedDelay(string, time.Duration) {}

// testEnv wires the full controller stack over an in-memory session store
// with the simulated delays skipped
type testEnv struct {
	echo            *echo.Echo
	store           *session.MemoryStore
	state           *ui.ApplicationState
	view            *ui.ViewController
	sink            *notify.Sink
	applier         *ui.Applier
	dispatcher      *ui.Dispatcher
	loginService    *services.LoginService
	transferService *services.TransferService
	statement       *services.StatementService
}

func newTestEnv() *testEnv {
	store := session.NewMemoryStore()
	state := ui.NewApplicationState(store)
	view := ui.NewViewController(state, 0, nopMetrics{}, nil)
	sink := notify.NewSink(nil)
	applier := ui.NewApplier(view, sink, nil)

	formValidator := validation.NewFormValidator(4, decimal.NewFromInt(10000), staticdata.AccountByID)

	noSleep := func(time.Duration) {}
	loginService := services.NewLoginService(formValidator, state, time.Millisecond, nopMetrics{}, nil).
		WithSleeper(noSleep)
	transferService := services.NewTransferService(formValidator, time.Millisecond, nopMetrics{}, nil).
		WithSleeper(noSleep)
	navigationService := services.NewNavigationService(state, nil)

	dispatcher := ui.NewDispatcher()
	dispatcher.Register(ui.ActionTabSelect, func(ctx context.Context, action ui.Action) []ui.Effect {
		return navigationService.SelectTab(action.Screen)
	})
	dispatcher.Register(ui.ActionLogoutClick, func(ctx context.Context, action ui.Action) []ui.Effect {
		return loginService.Logout()
	})
	dispatcher.Register(ui.ActionPasswordToggle, func(ctx context.Context, action ui.Action) []ui.Effect {
		return navigationService.TogglePasswordVisibility()
	})

	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	return &testEnv{
		echo:            e,
		store:           store,
		state:           state,
		view:            view,
		sink:            sink,
		applier:         applier,
		dispatcher:      dispatcher,
		loginService:    loginService,
		transferService: transferService,
		statement:       services.NewStatementService(nil),
	}
}

// request builds an echo context for a JSON request
func (env *testEnv) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}
