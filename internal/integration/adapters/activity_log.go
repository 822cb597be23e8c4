// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"log/slog"
	"sync"
	"time"

	"github.com/homeledger/backend/internal/application/adapter"
)

// ActivityLog implements adapter.ActivitySink. It keeps the most recent
// outcome for the frontend's toast endpoint and mirrors everything to the
// structured log.
type ActivityLog struct {
	mu   sync.Mutex
	last *adapter.Activity
}

// NewActivityLog creates a new activity log instance.
func NewActivityLog() *ActivityLog {
	return &ActivityLog{}
}

// Success records a successful outcome.
func (l *ActivityLog) Success(message string) {
	l.record(message, adapter.ActivitySuccess)
	slog.Info("activity", "kind", "success", "message", message)
}

// Error records a failed outcome with its reason.
func (l *ActivityLog) Error(message string) {
	l.record(message, adapter.ActivityError)
	slog.Warn("activity", "kind", "error", "message", message)
}

// Last returns the most recent activity, or nil if none.
func (l *ActivityLog) Last() *adapter.Activity {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.last == nil {
		return nil
	}
	copied := *l.last
	return &copied
}

func (l *ActivityLog) record(message string, kind adapter.ActivityKind) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last = &adapter.Activity{
		Message:   message,
		Kind:      kind,
		Timestamp: time.Now(),
	}
}
