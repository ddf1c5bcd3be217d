package match

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("match request not found")

	// ErrPendingExists: the mentee already has a request in the pending state.
	ErrPendingExists = errors.New("pending match request already exists")

	// ErrNotPending: the request has left the pending state; every
	// non-pending state is terminal.
	ErrNotPending = errors.New("match request is not pending")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s.Valid() && s != StatusPending
}

// Request references mentor and mentee profile rows, not user rows.
type Request struct {
	ID        int64
	MentorID  int64
	MenteeID  int64
	Message   string
	Status    Status
	CreatedAt time.Time
}
