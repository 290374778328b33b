package robotlog

import (
	"context"
	"log/slog"
)

// SlogAdapter writes match events to an slog.Logger.
// Useful for development when you want to see robot events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("phase", event.Phase.String()),
		slog.String("category", event.Category.String()),
	}

	if event.Source != "" {
		attrs = append(attrs, slog.String("source", event.Source))
	}

	// Add type-specific attributes
	switch {
	case event.Command != nil:
		attrs = append(attrs,
			slog.String("command", event.Command.Name),
			slog.String("action", event.Command.Action.String()),
		)
		if len(event.Command.Requirements) > 0 {
			attrs = append(attrs, slog.Any("requirements", event.Command.Requirements))
		}
		if event.Command.InterruptedBy != "" {
			attrs = append(attrs, slog.String("interrupted_by", event.Command.InterruptedBy))
		}
	case event.State != nil:
		attrs = append(attrs,
			slog.String("entity", event.State.Entity),
			slog.String("old_state", event.State.OldState),
			slog.String("new_state", event.State.NewState),
		)
		if event.State.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.State.Reason))
		}
	case event.Dashboard != nil:
		attrs = append(attrs,
			slog.String("client_id", event.Dashboard.ClientID),
			slog.String("direction", event.Dashboard.Direction.String()),
		)
		if event.Dashboard.Entry != "" {
			attrs = append(attrs, slog.String("entry", event.Dashboard.Entry))
		}
		if event.Dashboard.Size > 0 {
			attrs = append(attrs, slog.Int("size", event.Dashboard.Size))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Op != "" {
			attrs = append(attrs, slog.String("error_op", event.Error.Op))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "robot", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
