package session

import (
	"io"
	"log/slog"
)

// Event captures one session-level operation for telemetry.
type Event struct {
	Action string // "push", "undo", "redo", "set_index", "close"
	Text   string // command description, when applicable
	Index  int    // stack position after the operation
	Len    int    // stack length after the operation
	Err    error
}

// Observer receives session events.
type Observer interface {
	Observe(event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Observe(Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes session events to the provided writer.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) Observe(event Event) {
	attrs := []any{
		"action", event.Action,
		"index", event.Index,
		"len", event.Len,
	}
	if event.Text != "" {
		attrs = append(attrs, "command", event.Text)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Error("tailoring_session", attrs...)
		return
	}
	o.logger.Info("tailoring_session", attrs...)
}
