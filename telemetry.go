// Package telemetry forwards exceptions, messages, events, and
// timing measurements to an error-tracking backend, gated by a
// runtime enable/disable flag. The backend client is built disabled
// and stays silent until the user opts in.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
)

// ExtraInfo carries the identifiers used to correlate telemetry
// coming from the same install of the tool.
type ExtraInfo struct {
	// UniqueID identifies the installation.
	UniqueID string
	// SessionID identifies the current run.
	SessionID string
}

// ReporterConfig is the runtime configuration accepted by Configure.
type ReporterConfig struct {
	// TelemetryEnabled turns reporting on or off.
	TelemetryEnabled bool
	// ExtraInfo replaces the stored identifiers when non-nil, and
	// is kept as-is otherwise.
	ExtraInfo *ExtraInfo
}

// Reporter forwards telemetry to an error-tracking backend. It is
// meant to be created once at startup by the application's
// composition root and shared by reference.
//
// The enabled flag is a plain bool on purpose: configure/enable/
// disable are the only writers, the register methods only read it,
// and a race between a Disable and an in-flight capture is bounded
// by the backend client's own gate.
type Reporter struct {
	backend   Backend
	log       *slog.Logger
	cfg       Config
	extraInfo *ExtraInfo
	enabled   bool
}

// New creates a Reporter backed by the Sentry SDK. The reporter
// starts disabled; call Configure or Enable once consent is known.
func New(cfg Config) (*Reporter, error) {
	r := newReporter(cfg)
	// r.cfg, not cfg: the product default must also end up in the
	// client's release identifier
	backend, err := newSentryBackend(r.cfg, r.isEnabled)
	if err != nil {
		return nil, err
	}
	r.backend = backend
	return r, nil
}

// NewWithBackend creates a Reporter forwarding to the provided
// backend instead of the real SDK.
func NewWithBackend(cfg Config, backend Backend) *Reporter {
	r := newReporter(cfg)
	r.backend = backend
	return r
}

func newReporter(cfg Config) *Reporter {
	if cfg.Product == "" {
		cfg.Product = "core"
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Reporter{
		log: log.With("component", "telemetry"),
		cfg: cfg,
	}
}

// Configure updates the reporter's runtime state. A non-nil
// ExtraInfo replaces the stored one; a nil ExtraInfo keeps whatever
// was there. The enabled flag always follows opts.TelemetryEnabled.
// Calling Configure twice with the same input is a no-op the second
// time.
func (r *Reporter) Configure(ctx context.Context, opts ReporterConfig) {
	if opts.ExtraInfo != nil {
		r.extraInfo = opts.ExtraInfo
	}
	if opts.TelemetryEnabled {
		r.Enable(ctx)
		return
	}
	r.Disable(ctx)
}

// Enable turns reporting on. It flips the backend client's own send
// gate and attaches the static tags and, when known, the install
// identity. Noop if already enabled.
func (r *Reporter) Enable(ctx context.Context) {
	if r.enabled {
		return
	}
	r.enabled = true
	r.backend.SetEnabled(true)
	r.backend.SetTags(map[string]string{
		"product":      r.cfg.Product,
		"os":           runtime.GOOS,
		"arch":         runtime.GOARCH,
		"version":      r.cfg.Version,
		"version_code": strconv.Itoa(numericVersion(r.cfg.Version)),
		"go_version":   runtime.Version(),
	})
	if r.extraInfo != nil {
		r.backend.SetUser(sentry.User{
			ID: r.extraInfo.UniqueID,
			Data: map[string]string{
				"device_id":  r.extraInfo.UniqueID,
				"session_id": r.extraInfo.SessionID,
			},
		})
	}
	r.log.DebugContext(ctx, "telemetry enabled")
}

// Disable turns reporting off. Noop if already disabled.
func (r *Reporter) Disable(ctx context.Context) {
	if !r.enabled {
		return
	}
	r.enabled = false
	r.backend.SetEnabled(false)
	r.log.DebugContext(ctx, "telemetry disabled")
}

// Close flushes buffered events before shutdown. The flush timeout
// comes from the context deadline when one is set.
func (r *Reporter) Close(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("flush telemetry: %w", err)
	}
	timeout := 2 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		timeout = max(time.Until(deadline), 0)
	}
	if !r.backend.Flush(timeout) {
		return errors.New("flush telemetry: timed out")
	}
	return nil
}

func (r *Reporter) isEnabled() bool {
	return r.enabled
}

// prefixed returns the product-prefixed form of an identifier sent
// to the backend.
func (r *Reporter) prefixed(key string) string {
	return r.cfg.Product + ":" + key
}
