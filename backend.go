package telemetry

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

//go:generate mockgen -destination=internal/mocks/backend.go -package=mocks github.com/sqltoolbox/telemetry Backend

// Backend is the surface of the error-tracking client the Reporter
// forwards to.
type Backend interface {
	// SetEnabled flips the client's own send gate. The client is
	// built disabled so nothing leaks before consent is known.
	SetEnabled(enabled bool)
	// SetTags attaches static tags to every future capture.
	SetTags(tags map[string]string)
	// SetUser attaches the install/session identity to every
	// future capture.
	SetUser(user sentry.User)
	// CaptureException forwards an error with extra scope data.
	CaptureException(err error, extra map[string]any)
	// CaptureMessage forwards a free-text message at the given
	// level.
	CaptureMessage(msg string, level sentry.Level)
	// CaptureEvent forwards a prebuilt event.
	CaptureEvent(event *sentry.Event)
	// Flush waits for buffered events to be sent. It reports
	// false if the timeout was reached first.
	Flush(timeout time.Duration) bool
}

// sentryBackend implements Backend on top of the Sentry SDK. It owns
// a dedicated hub so the reporter never touches Sentry's global
// state.
type sentryBackend struct {
	hub *sentry.Hub
	// enabled is the client-side gate checked by BeforeSend. It
	// is independent from the reporter's flag: both must be true
	// for an event to leave the process, so a race between a
	// Disable and an in-flight capture can never send data.
	enabled atomic.Bool
}

func newSentryBackend(cfg Config, reporterEnabled func() bool) (*sentryBackend, error) {
	b := &sentryBackend{}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Release:          cfg.Product + "@" + cfg.Version,
		Environment:      cfg.Environment,
		SampleRate:       1.0,
		MaxBreadcrumbs:   50,
		AttachStacktrace: true,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			if !b.enabled.Load() || !reporterEnabled() {
				return nil
			}
			return event
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create sentry client: %w", err)
	}
	b.hub = sentry.NewHub(client, sentry.NewScope())
	return b, nil
}

func (b *sentryBackend) SetEnabled(enabled bool) {
	b.enabled.Store(enabled)
}

func (b *sentryBackend) SetTags(tags map[string]string) {
	b.hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
	})
}

func (b *sentryBackend) SetUser(user sentry.User) {
	b.hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetUser(user)
	})
}

func (b *sentryBackend) CaptureException(err error, extra map[string]any) {
	b.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetExtras(extra)
		b.hub.CaptureException(err)
	})
}

func (b *sentryBackend) CaptureMessage(msg string, level sentry.Level) {
	b.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		b.hub.CaptureMessage(msg)
	})
}

func (b *sentryBackend) CaptureEvent(event *sentry.Event) {
	b.hub.CaptureEvent(event)
}

func (b *sentryBackend) Flush(timeout time.Duration) bool {
	return b.hub.Flush(timeout)
}
