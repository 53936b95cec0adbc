package calendar

import "log/slog"

// Result is the outcome of mirroring one event. It is only ever logged,
// the appointment itself never depends on it.
type Result struct {
	ok     bool
	reason string
}

func Ok() Result { return Result{ok: true} }

func Failed(reason string) Result { return Result{reason: reason} }

func (r Result) OK() bool { return r.ok }

// Reason is empty for an Ok result.
func (r Result) Reason() string { return r.reason }

func (r Result) String() string {
	if r.ok {
		return "ok"
	}
	return "failed: " + r.reason
}

// LogResult records r on logger.
func LogResult(logger *slog.Logger, r Result) {
	if r.ok {
		logger.Info("calendar event created")
		return
	}
	logger.Warn("calendar event not created", "reason", r.reason)
}
