package match

import (
	"context"
	"errors"
	"time"

	"mentor-match/internal/domain/match"
	"mentor-match/internal/domain/user"
	"mentor-match/internal/repository"
)

var (
	ErrNotMentee      = errors.New("caller has no mentee profile")
	ErrMentorNotFound = errors.New("mentor not found")
	ErrForbidden      = errors.New("forbidden")
	ErrNotOwner       = errors.New("caller does not own the request")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInternal       = errors.New("internal error")
)

type CreateInput struct {
	MentorUserID int64
	MenteeUserID int64
	Message      string
}

// Created echoes the ids the caller sent, as the create endpoint always has.
type Created struct {
	ID       int64
	MentorID int64
	MenteeID int64
	Message  string
	Status   match.Status
}

// Transitioned reports profile ids, as the transition endpoints always have.
type Transitioned struct {
	ID       int64
	MentorID int64
	MenteeID int64
	Message  string
	Status   match.Status
}

// Event is pushed to the counterpart user when a request is created or
// leaves the pending state.
type Event struct {
	Type      string       `json:"type"`
	RequestID int64        `json:"requestId"`
	Status    match.Status `json:"status"`
	Message   string       `json:"message,omitempty"`
	Timestamp string       `json:"timestamp"`
}

type Notifier interface {
	NotifyUser(userID int64, event Event)
}

type Service struct {
	requests repository.MatchRequestRepository
	notifier Notifier
}

func NewService(requests repository.MatchRequestRepository, notifier Notifier) *Service {
	return &Service{requests: requests, notifier: notifier}
}

// Create inserts a pending request from the caller's mentee profile to the
// given mentor. Preconditions, in order: the caller owns a mentee profile,
// the caller has no other pending request, and the target mentor profile
// exists. The pending check is repeated inside the insert transaction.
func (s *Service) Create(ctx context.Context, callerID int64, in CreateInput) (Created, error) {
	menteeProfileID, err := s.requests.MenteeProfileIDByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Created{}, ErrNotMentee
		}
		return Created{}, ErrInternal
	}

	pending, err := s.requests.HasPending(ctx, menteeProfileID)
	if err != nil {
		return Created{}, ErrInternal
	}
	if pending {
		return Created{}, match.ErrPendingExists
	}

	mentorProfileID, err := s.requests.MentorProfileIDByUserID(ctx, in.MentorUserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Created{}, ErrMentorNotFound
		}
		return Created{}, ErrInternal
	}

	req, err := s.requests.Create(ctx, mentorProfileID, menteeProfileID, in.Message)
	if err != nil {
		if errors.Is(err, match.ErrPendingExists) {
			return Created{}, match.ErrPendingExists
		}
		return Created{}, ErrInternal
	}

	s.notify(in.MentorUserID, req.ID, req.Status, req.Message)

	return Created{
		ID:       req.ID,
		MentorID: in.MentorUserID,
		MenteeID: in.MenteeUserID,
		Message:  req.Message,
		Status:   req.Status,
	}, nil
}

// ListReceived returns requests addressed to the mentor behind userID; the
// caller must be that user.
func (s *Service) ListReceived(ctx context.Context, callerID, userID int64) ([]repository.ReceivedRequestRow, error) {
	if callerID != userID {
		return nil, ErrForbidden
	}
	rows, err := s.requests.ListReceived(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (s *Service) ListSent(ctx context.Context, callerID, userID int64) ([]repository.SentRequestRow, error) {
	if callerID != userID {
		return nil, ErrForbidden
	}
	rows, err := s.requests.ListSent(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (s *Service) ListIncoming(ctx context.Context, callerID int64) ([]repository.RequestSummary, error) {
	rows, err := s.requests.ListIncoming(ctx, callerID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (s *Service) ListOutgoing(ctx context.Context, callerID int64) ([]repository.RequestSummary, error) {
	rows, err := s.requests.ListOutgoing(ctx, callerID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (s *Service) Accept(ctx context.Context, callerID, requestID int64) (Transitioned, error) {
	return s.mentorTransition(ctx, callerID, requestID, match.StatusAccepted)
}

func (s *Service) Reject(ctx context.Context, callerID, requestID int64) (Transitioned, error) {
	return s.mentorTransition(ctx, callerID, requestID, match.StatusRejected)
}

// Cancel moves a request to cancelled on behalf of its mentee. The row is
// kept; cancelled is a terminal status, not a deletion.
func (s *Service) Cancel(ctx context.Context, callerID, requestID int64) (Transitioned, error) {
	o, err := s.loadOwners(ctx, requestID)
	if err != nil {
		return Transitioned{}, err
	}
	if o.MenteeUserID != callerID {
		return Transitioned{}, ErrNotOwner
	}
	return s.transition(ctx, o, match.StatusCancelled, o.MentorUserID)
}

// SetStatus is the legacy transition path; new clients use Accept/Reject.
func (s *Service) SetStatus(ctx context.Context, callerID, requestID int64, status string) (Transitioned, error) {
	st := match.Status(status)
	if st != match.StatusAccepted && st != match.StatusRejected {
		return Transitioned{}, ErrInvalidStatus
	}
	return s.mentorTransition(ctx, callerID, requestID, st)
}

func (s *Service) mentorTransition(ctx context.Context, callerID, requestID int64, status match.Status) (Transitioned, error) {
	o, err := s.loadOwners(ctx, requestID)
	if err != nil {
		return Transitioned{}, err
	}
	if o.MentorUserID != callerID {
		return Transitioned{}, ErrNotOwner
	}
	return s.transition(ctx, o, status, o.MenteeUserID)
}

func (s *Service) loadOwners(ctx context.Context, requestID int64) (repository.RequestOwners, error) {
	o, err := s.requests.GetWithOwners(ctx, requestID)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return repository.RequestOwners{}, match.ErrNotFound
		}
		return repository.RequestOwners{}, ErrInternal
	}
	return o, nil
}

func (s *Service) transition(ctx context.Context, o repository.RequestOwners, status match.Status, notifyUserID int64) (Transitioned, error) {
	if err := s.requests.SetStatusIfPending(ctx, o.ID, status); err != nil {
		if errors.Is(err, match.ErrNotPending) {
			return Transitioned{}, match.ErrNotPending
		}
		return Transitioned{}, ErrInternal
	}

	s.notify(notifyUserID, o.ID, status, o.Message)

	return Transitioned{
		ID:       o.ID,
		MentorID: o.MentorProfileID,
		MenteeID: o.MenteeProfileID,
		Message:  o.Message,
		Status:   status,
	}, nil
}

func (s *Service) notify(userID, requestID int64, status match.Status, message string) {
	if s.notifier == nil {
		return
	}
	s.notifier.NotifyUser(userID, Event{
		Type:      "match_request",
		RequestID: requestID,
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
