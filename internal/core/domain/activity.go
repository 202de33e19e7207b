package domain

import (
	"errors"
	"time"
)

// Activity actions recorded in the audit trail.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

var ErrInvalidAction = errors.New("invalid activity action")

// Activity is a single audit entry for a task mutation.
type Activity struct {
	TaskID    string
	UserID    string
	Action    string
	Timestamp time.Time
}
