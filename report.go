package telemetry

import (
	"context"
	"errors"
	"maps"
	"time"

	"github.com/getsentry/sentry-go"
)

// Timer exposes the elapsed time of an operation measured by the
// caller.
type Timer interface {
	Elapsed() time.Duration
}

// RegisterException forwards an error to the backend with the data
// carried by the error (when it implements Data) merged with the
// caller-supplied data. Errors whose message matches the benign
// deny-list are dropped silently: routine database and network noise
// is not an actionable bug. Noop when disabled or err is nil.
func (r *Reporter) RegisterException(ctx context.Context, err error, data map[string]any) {
	if !r.enabled || err == nil {
		return
	}
	if isBenignError(err.Error()) {
		return
	}

	extra := map[string]any{}
	var carrier interface{ Data() map[string]any }
	if errors.As(err, &carrier) {
		maps.Copy(extra, carrier.Data())
	}
	maps.Copy(extra, data)

	r.log.ErrorContext(ctx, "reporting exception", "error", err.Error())
	r.backend.CaptureException(err, extra)
}

// RegisterMessage forwards a free-text message to the backend at the
// backend level mapped from severity. value only ends up in the
// local log line, never in the forwarded payload. An empty value
// defaults to "Dismissed". Noop when disabled.
func (r *Reporter) RegisterMessage(ctx context.Context, severity Severity, message, value string) {
	if !r.enabled {
		return
	}
	if value == "" {
		value = "Dismissed"
	}
	r.log.Log(ctx, severity.slogLevel(), message, "value", value)
	r.backend.CaptureMessage(r.prefixed(message), severity.sentryLevel())
}

// RegisterEvent forwards a discrete event to the backend: the
// product-prefixed name as identifier, the name itself as message,
// the properties bag as extra data, and the current time as capture
// timestamp. Noop when disabled.
func (r *Reporter) RegisterEvent(ctx context.Context, name string, properties map[string]any) {
	if !r.enabled {
		return
	}
	r.log.DebugContext(ctx, "registering event", "name", name, "properties", properties)
	r.backend.CaptureEvent(&sentry.Event{
		Transaction: r.prefixed(name),
		Message:     name,
		Extra:       properties,
		Timestamp:   time.Now(),
	})
}

// RegisterTime forwards an elapsed-time measurement as an event
// named time:<timeKey> whose value property is the elapsed duration
// in milliseconds. Noop when disabled or timer is nil.
func (r *Reporter) RegisterTime(ctx context.Context, timeKey string, timer Timer) {
	if !r.enabled || timer == nil {
		return
	}
	elapsed := timer.Elapsed()
	r.log.DebugContext(ctx, "registering time", "key", timeKey, "elapsed", elapsed)
	r.RegisterEvent(ctx, "time:"+timeKey, map[string]any{
		"value": elapsed.Milliseconds(),
	})
}
