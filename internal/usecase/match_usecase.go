package usecase

import (
	"context"

	"mentor-match/internal/repository"
	ucmatch "mentor-match/internal/usecase/match"
)

type MatchUsecase interface {
	Create(ctx context.Context, callerID int64, in ucmatch.CreateInput) (ucmatch.Created, error)
	ListReceived(ctx context.Context, callerID, userID int64) ([]repository.ReceivedRequestRow, error)
	ListSent(ctx context.Context, callerID, userID int64) ([]repository.SentRequestRow, error)
	ListIncoming(ctx context.Context, callerID int64) ([]repository.RequestSummary, error)
	ListOutgoing(ctx context.Context, callerID int64) ([]repository.RequestSummary, error)
	Accept(ctx context.Context, callerID, requestID int64) (ucmatch.Transitioned, error)
	Reject(ctx context.Context, callerID, requestID int64) (ucmatch.Transitioned, error)
	Cancel(ctx context.Context, callerID, requestID int64) (ucmatch.Transitioned, error)
	SetStatus(ctx context.Context, callerID, requestID int64, status string) (ucmatch.Transitioned, error)
}

type Match struct {
	svc *ucmatch.Service
}

func NewMatchUsecase(requests repository.MatchRequestRepository, notifier ucmatch.Notifier) *Match {
	return &Match{svc: ucmatch.NewService(requests, notifier)}
}

func (m *Match) Create(ctx context.Context, callerID int64, in ucmatch.CreateInput) (ucmatch.Created, error) {
	return m.svc.Create(ctx, callerID, in)
}

func (m *Match) ListReceived(ctx context.Context, callerID, userID int64) ([]repository.ReceivedRequestRow, error) {
	return m.svc.ListReceived(ctx, callerID, userID)
}

func (m *Match) ListSent(ctx context.Context, callerID, userID int64) ([]repository.SentRequestRow, error) {
	return m.svc.ListSent(ctx, callerID, userID)
}

func (m *Match) ListIncoming(ctx context.Context, callerID int64) ([]repository.RequestSummary, error) {
	return m.svc.ListIncoming(ctx, callerID)
}

func (m *Match) ListOutgoing(ctx context.Context, callerID int64) ([]repository.RequestSummary, error) {
	return m.svc.ListOutgoing(ctx, callerID)
}

func (m *Match) Accept(ctx context.Context, callerID, requestID int64) (ucmatch.Transitioned, error) {
	return m.svc.Accept(ctx, callerID, requestID)
}

func (m *Match) Reject(ctx context.Context, callerID, requestID int64) (ucmatch.Transitioned, error) {
	return m.svc.Reject(ctx, callerID, requestID)
}

func (m *Match) Cancel(ctx context.Context, callerID, requestID int64) (ucmatch.Transitioned, error) {
	return m.svc.Cancel(ctx, callerID, requestID)
}

func (m *Match) SetStatus(ctx context.Context, callerID, requestID int64, status string) (ucmatch.Transitioned, error) {
	return m.svc.SetStatus(ctx, callerID, requestID, status)
}
