package match

import (
	"context"
	"errors"
	"testing"

	"mentor-match/internal/domain/match"
	"mentor-match/internal/domain/user"
	"mentor-match/internal/repository"
)

type mockRequestRepo struct {
	menteeProfiles map[int64]int64
	mentorProfiles map[int64]int64

	requests map[int64]*repository.RequestOwners
	nextID   int64
}

func newMockRequestRepo() *mockRequestRepo {
	return &mockRequestRepo{
		menteeProfiles: map[int64]int64{},
		mentorProfiles: map[int64]int64{},
		requests:       map[int64]*repository.RequestOwners{},
		nextID:         1,
	}
}

func (m *mockRequestRepo) MenteeProfileIDByUserID(_ context.Context, userID int64) (int64, error) {
	id, ok := m.menteeProfiles[userID]
	if !ok {
		return 0, user.ErrNotFound
	}
	return id, nil
}

func (m *mockRequestRepo) MentorProfileIDByUserID(_ context.Context, userID int64) (int64, error) {
	id, ok := m.mentorProfiles[userID]
	if !ok {
		return 0, user.ErrNotFound
	}
	return id, nil
}

func (m *mockRequestRepo) HasPending(_ context.Context, menteeProfileID int64) (bool, error) {
	for _, o := range m.requests {
		if o.MenteeProfileID == menteeProfileID && o.Status == match.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRequestRepo) Create(_ context.Context, mentorProfileID, menteeProfileID int64, message string) (match.Request, error) {
	if pending, _ := m.HasPending(context.Background(), menteeProfileID); pending {
		return match.Request{}, match.ErrPendingExists
	}
	id := m.nextID
	m.nextID++
	m.requests[id] = &repository.RequestOwners{
		ID:              id,
		MentorProfileID: mentorProfileID,
		MenteeProfileID: menteeProfileID,
		MentorUserID:    m.userIDForMentorProfile(mentorProfileID),
		MenteeUserID:    m.userIDForMenteeProfile(menteeProfileID),
		Message:         message,
		Status:          match.StatusPending,
	}
	return match.Request{ID: id, MentorID: mentorProfileID, MenteeID: menteeProfileID, Message: message, Status: match.StatusPending}, nil
}

func (m *mockRequestRepo) userIDForMentorProfile(profileID int64) int64 {
	for userID, id := range m.mentorProfiles {
		if id == profileID {
			return userID
		}
	}
	return 0
}

func (m *mockRequestRepo) userIDForMenteeProfile(profileID int64) int64 {
	for userID, id := range m.menteeProfiles {
		if id == profileID {
			return userID
		}
	}
	return 0
}

func (m *mockRequestRepo) ListReceived(context.Context, int64) ([]repository.ReceivedRequestRow, error) {
	return []repository.ReceivedRequestRow{}, nil
}

func (m *mockRequestRepo) ListSent(_ context.Context, menteeUserID int64) ([]repository.SentRequestRow, error) {
	out := make([]repository.SentRequestRow, 0)
	for _, o := range m.requests {
		if o.MenteeUserID != menteeUserID {
			continue
		}
		out = append(out, repository.SentRequestRow{
			ID:      o.ID,
			Message: o.Message,
			Status:  o.Status,
		})
	}
	return out, nil
}

func (m *mockRequestRepo) ListIncoming(context.Context, int64) ([]repository.RequestSummary, error) {
	return []repository.RequestSummary{}, nil
}

func (m *mockRequestRepo) ListOutgoing(context.Context, int64) ([]repository.RequestSummary, error) {
	return []repository.RequestSummary{}, nil
}

func (m *mockRequestRepo) GetWithOwners(_ context.Context, requestID int64) (repository.RequestOwners, error) {
	o, ok := m.requests[requestID]
	if !ok {
		return repository.RequestOwners{}, match.ErrNotFound
	}
	return *o, nil
}

func (m *mockRequestRepo) SetStatusIfPending(_ context.Context, requestID int64, status match.Status) error {
	o, ok := m.requests[requestID]
	if !ok || o.Status != match.StatusPending {
		return match.ErrNotPending
	}
	o.Status = status
	return nil
}

type mockNotifier struct {
	events map[int64][]Event
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{events: map[int64][]Event{}}
}

func (m *mockNotifier) NotifyUser(userID int64, event Event) {
	m.events[userID] = append(m.events[userID], event)
}

func newTestService() (*Service, *mockRequestRepo, *mockNotifier) {
	repo := newMockRequestRepo()
	repo.mentorProfiles[10] = 100
	repo.menteeProfiles[20] = 200
	notifier := newMockNotifier()
	return NewService(repo, notifier), repo, notifier
}

func TestService_Create_Success(t *testing.T) {
	svc, _, notifier := newTestService()

	created, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 10, MenteeUserID: 20, Message: "please mentor me"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != match.StatusPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}
	if created.MentorID != 10 || created.MenteeID != 20 {
		t.Fatalf("expected echoed user ids 10/20, got %d/%d", created.MentorID, created.MenteeID)
	}
	if len(notifier.events[10]) != 1 {
		t.Fatalf("expected 1 event for mentor, got %d", len(notifier.events[10]))
	}
	if notifier.events[10][0].Status != match.StatusPending {
		t.Fatalf("expected pending event, got %s", notifier.events[10][0].Status)
	}
}

func TestService_Create_NotMentee(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), 10, CreateInput{MentorUserID: 10, MenteeUserID: 10})
	if !errors.Is(err, ErrNotMentee) {
		t.Fatalf("expected ErrNotMentee, got %v", err)
	}
}

func TestService_Create_MentorNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 999, MenteeUserID: 20})
	if !errors.Is(err, ErrMentorNotFound) {
		t.Fatalf("expected ErrMentorNotFound, got %v", err)
	}
}

func TestService_Create_SecondPendingRejected(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 10, MenteeUserID: 20}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 10, MenteeUserID: 20})
	if !errors.Is(err, match.ErrPendingExists) {
		t.Fatalf("expected ErrPendingExists, got %v", err)
	}
}

func TestService_Create_PendingCheckedBeforeMentorLookup(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 10, MenteeUserID: 20}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// A mentee with a pending request hears about the pending conflict even
	// when the new target mentor does not exist.
	_, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 999, MenteeUserID: 20})
	if !errors.Is(err, match.ErrPendingExists) {
		t.Fatalf("expected ErrPendingExists, got %v", err)
	}
}

func TestService_ListReceived_Forbidden(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListReceived(context.Background(), 10, 99)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestService_ListSent_ShowsAcceptedEntry(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 10, MenteeUserID: 20, Message: "hi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Accept(context.Background(), 10, created.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	rows, err := svc.ListSent(context.Background(), 20, 20)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 sent entry, got %d", len(rows))
	}
	if rows[0].Status != match.StatusAccepted {
		t.Fatalf("expected accepted, got %s", rows[0].Status)
	}
}

func TestService_ListSent_Forbidden(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListSent(context.Background(), 20, 99)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestService_Accept_Success(t *testing.T) {
	svc, repo, notifier := newTestService()
	created, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 10, MenteeUserID: 20, Message: "hi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := svc.Accept(context.Background(), 10, created.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Status != match.StatusAccepted {
		t.Fatalf("expected accepted, got %s", res.Status)
	}
	if res.MentorID != 100 || res.MenteeID != 200 {
		t.Fatalf("expected profile ids 100/200, got %d/%d", res.MentorID, res.MenteeID)
	}
	if repo.requests[created.ID].Status != match.StatusAccepted {
		t.Fatalf("expected stored status accepted, got %s", repo.requests[created.ID].Status)
	}
	if len(notifier.events[20]) != 1 {
		t.Fatalf("expected 1 event for mentee, got %d", len(notifier.events[20]))
	}
}

func TestService_Accept_NotOwner(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 10, MenteeUserID: 20})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Accept(context.Background(), 99, created.ID)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestService_Accept_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Accept(context.Background(), 10, 404)
	if !errors.Is(err, match.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Accept_AlreadyTerminal(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 10, MenteeUserID: 20})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Reject(context.Background(), 10, created.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}

	_, err = svc.Accept(context.Background(), 10, created.ID)
	if !errors.Is(err, match.ErrNotPending) {
		t.Fatalf("expected ErrNotPending, got %v", err)
	}
}

func TestService_Cancel_Success(t *testing.T) {
	svc, repo, notifier := newTestService()
	created, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 10, MenteeUserID: 20})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := svc.Cancel(context.Background(), 20, created.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Status != match.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", res.Status)
	}
	// The row stays around as history; only the status flips.
	if _, ok := repo.requests[created.ID]; !ok {
		t.Fatalf("expected request row to survive cancellation")
	}
	if repo.requests[created.ID].Status != match.StatusCancelled {
		t.Fatalf("expected stored status cancelled, got %s", repo.requests[created.ID].Status)
	}
	if len(notifier.events[10]) != 2 {
		t.Fatalf("expected create+cancel events for mentor, got %d", len(notifier.events[10]))
	}
}

func TestService_Cancel_NotOwner(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 10, MenteeUserID: 20})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Cancel(context.Background(), 10, created.ID)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestService_SetStatus_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService()

	for _, status := range []string{"pending", "cancelled", "done", ""} {
		if _, err := svc.SetStatus(context.Background(), 10, 1, status); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("status %q: expected ErrInvalidStatus, got %v", status, err)
		}
	}
}

func TestService_SetStatus_Accepted(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 10, MenteeUserID: 20})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := svc.SetStatus(context.Background(), 10, created.ID, "accepted")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Status != match.StatusAccepted {
		t.Fatalf("expected accepted, got %s", res.Status)
	}
}

func TestService_SetStatus_NotOwner(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.Create(context.Background(), 20, CreateInput{MentorUserID: 10, MenteeUserID: 20})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.SetStatus(context.Background(), 20, created.ID, "rejected")
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}
