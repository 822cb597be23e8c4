// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// ActivityKind classifies a terminal outcome reported to the user.
type ActivityKind string

const (
	ActivitySuccess ActivityKind = "success"
	ActivityError   ActivityKind = "error"
)

// Activity is one user-visible outcome message.
type Activity struct {
	Message   string
	Kind      ActivityKind
	Timestamp time.Time
}

// ActivitySink is the single notification sink every mutating action
// reports its terminal outcome to: success, success-while-offline, or
// error-with-reason. Failures are never swallowed silently and never crash
// the process.
type ActivitySink interface {
	// Success records a successful outcome.
	Success(message string)

	// Error records a failed outcome with its reason.
	Error(message string)

	// Last returns the most recent activity, or nil if none.
	Last() *Activity
}
