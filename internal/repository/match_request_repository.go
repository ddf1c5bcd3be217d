package repository

import (
	"context"
	"errors"
	"time"

	"mentor-match/internal/database"
	"mentor-match/internal/domain/match"
	"mentor-match/internal/domain/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type ReceivedRequestRow struct {
	ID              int64
	Message         string
	Status          match.Status
	CreatedAt       time.Time
	MenteeName      string
	MenteeEmail     string
	MenteeInterests *string
}

type SentRequestRow struct {
	ID                    int64
	Message               string
	Status                match.Status
	CreatedAt             time.Time
	MentorName            string
	MentorEmail           string
	MentorSkills          *string
	MentorExperienceYears int
}

type RequestSummary struct {
	ID       int64
	MentorID int64
	MenteeID int64
	Message  string
	Status   match.Status
}

// RequestOwners carries a request together with the user ids behind both
// profile references, so one load serves authorization and notification.
type RequestOwners struct {
	ID              int64
	MentorProfileID int64
	MenteeProfileID int64
	MentorUserID    int64
	MenteeUserID    int64
	Message         string
	Status          match.Status
}

type MatchRequestRepository interface {
	MenteeProfileIDByUserID(ctx context.Context, userID int64) (int64, error)
	MentorProfileIDByUserID(ctx context.Context, userID int64) (int64, error)

	HasPending(ctx context.Context, menteeProfileID int64) (bool, error)
	Create(ctx context.Context, mentorProfileID, menteeProfileID int64, message string) (match.Request, error)

	ListReceived(ctx context.Context, mentorUserID int64) ([]ReceivedRequestRow, error)
	ListSent(ctx context.Context, menteeUserID int64) ([]SentRequestRow, error)
	ListIncoming(ctx context.Context, mentorUserID int64) ([]RequestSummary, error)
	ListOutgoing(ctx context.Context, menteeUserID int64) ([]RequestSummary, error)

	GetWithOwners(ctx context.Context, requestID int64) (RequestOwners, error)
	SetStatusIfPending(ctx context.Context, requestID int64, status match.Status) error
}

type PostgresMatchRequestRepository struct {
	db database.DB
}

func NewPostgresMatchRequestRepository(db database.DB) *PostgresMatchRequestRepository {
	return &PostgresMatchRequestRepository{db: db}
}

func (r *PostgresMatchRequestRepository) MenteeProfileIDByUserID(ctx context.Context, userID int64) (int64, error) {
	return r.profileID(ctx, `SELECT id FROM mentees WHERE user_id = $1`, userID)
}

func (r *PostgresMatchRequestRepository) MentorProfileIDByUserID(ctx context.Context, userID int64) (int64, error) {
	return r.profileID(ctx, `SELECT id FROM mentors WHERE user_id = $1`, userID)
}

func (r *PostgresMatchRequestRepository) profileID(ctx context.Context, query string, userID int64) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, user.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *PostgresMatchRequestRepository) HasPending(ctx context.Context, menteeProfileID int64) (bool, error) {
	var pending bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM match_requests WHERE mentee_id = $1 AND status = 'pending')`,
		menteeProfileID,
	).Scan(&pending)
	if err != nil {
		return false, err
	}
	return pending, nil
}

// Create checks the at-most-one-pending invariant and inserts inside one
// transaction. The partial unique index on pending requests backs the same
// invariant at the storage level, so a concurrent insert that slips past the
// check still surfaces as match.ErrPendingExists.
func (r *PostgresMatchRequestRepository) Create(ctx context.Context, mentorProfileID, menteeProfileID int64, message string) (match.Request, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return match.Request{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var pending bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM match_requests WHERE mentee_id = $1 AND status = 'pending')`,
		menteeProfileID,
	).Scan(&pending)
	if err != nil {
		return match.Request{}, err
	}
	if pending {
		return match.Request{}, match.ErrPendingExists
	}

	req := match.Request{
		MentorID: mentorProfileID,
		MenteeID: menteeProfileID,
		Message:  message,
		Status:   match.StatusPending,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO match_requests (mentor_id, mentee_id, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		mentorProfileID, menteeProfileID, message,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return match.Request{}, match.ErrPendingExists
		}
		return match.Request{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return match.Request{}, match.ErrPendingExists
		}
		return match.Request{}, err
	}
	return req, nil
}

func (r *PostgresMatchRequestRepository) ListReceived(ctx context.Context, mentorUserID int64) ([]ReceivedRequestRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT mr.id, COALESCE(mr.message, ''), mr.status, mr.created_at,
		        COALESCE(mu.name, ''), mu.email, me.interests
		 FROM match_requests mr
		 JOIN mentors m ON mr.mentor_id = m.id
		 JOIN mentees me ON mr.mentee_id = me.id
		 JOIN users mu ON me.user_id = mu.id
		 WHERE m.user_id = $1
		 ORDER BY mr.created_at DESC`,
		mentorUserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ReceivedRequestRow, 0)
	for rows.Next() {
		var row ReceivedRequestRow
		var status string
		if err := rows.Scan(&row.ID, &row.Message, &status, &row.CreatedAt, &row.MenteeName, &row.MenteeEmail, &row.MenteeInterests); err != nil {
			return nil, err
		}
		row.Status = match.Status(status)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMatchRequestRepository) ListSent(ctx context.Context, menteeUserID int64) ([]SentRequestRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT mr.id, COALESCE(mr.message, ''), mr.status, mr.created_at,
		        COALESCE(mu.name, ''), mu.email, m.skills, m.experience_years
		 FROM match_requests mr
		 JOIN mentees me ON mr.mentee_id = me.id
		 JOIN mentors m ON mr.mentor_id = m.id
		 JOIN users mu ON m.user_id = mu.id
		 WHERE me.user_id = $1
		 ORDER BY mr.created_at DESC`,
		menteeUserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SentRequestRow, 0)
	for rows.Next() {
		var row SentRequestRow
		var status string
		if err := rows.Scan(&row.ID, &row.Message, &status, &row.CreatedAt, &row.MentorName, &row.MentorEmail, &row.MentorSkills, &row.MentorExperienceYears); err != nil {
			return nil, err
		}
		row.Status = match.Status(status)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMatchRequestRepository) ListIncoming(ctx context.Context, mentorUserID int64) ([]RequestSummary, error) {
	return r.listSummaries(ctx,
		`SELECT mr.id, m.id, me.id, COALESCE(mr.message, ''), mr.status
		 FROM match_requests mr
		 JOIN mentors m ON mr.mentor_id = m.id
		 JOIN mentees me ON mr.mentee_id = me.id
		 WHERE m.user_id = $1
		 ORDER BY mr.created_at DESC`,
		mentorUserID,
	)
}

func (r *PostgresMatchRequestRepository) ListOutgoing(ctx context.Context, menteeUserID int64) ([]RequestSummary, error) {
	return r.listSummaries(ctx,
		`SELECT mr.id, m.id, me.id, COALESCE(mr.message, ''), mr.status
		 FROM match_requests mr
		 JOIN mentees me ON mr.mentee_id = me.id
		 JOIN mentors m ON mr.mentor_id = m.id
		 WHERE me.user_id = $1
		 ORDER BY mr.created_at DESC`,
		menteeUserID,
	)
}

func (r *PostgresMatchRequestRepository) listSummaries(ctx context.Context, query string, userID int64) ([]RequestSummary, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RequestSummary, 0)
	for rows.Next() {
		var s RequestSummary
		var status string
		if err := rows.Scan(&s.ID, &s.MentorID, &s.MenteeID, &s.Message, &status); err != nil {
			return nil, err
		}
		s.Status = match.Status(status)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMatchRequestRepository) GetWithOwners(ctx context.Context, requestID int64) (RequestOwners, error) {
	var o RequestOwners
	var status string
	err := r.db.QueryRow(ctx,
		`SELECT mr.id, m.id, me.id, m.user_id, me.user_id, COALESCE(mr.message, ''), mr.status
		 FROM match_requests mr
		 JOIN mentors m ON mr.mentor_id = m.id
		 JOIN mentees me ON mr.mentee_id = me.id
		 WHERE mr.id = $1`,
		requestID,
	).Scan(&o.ID, &o.MentorProfileID, &o.MenteeProfileID, &o.MentorUserID, &o.MenteeUserID, &o.Message, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RequestOwners{}, match.ErrNotFound
		}
		return RequestOwners{}, err
	}
	o.Status = match.Status(status)
	return o, nil
}

// SetStatusIfPending transitions a request out of pending. Zero affected rows
// means the request is gone or already terminal; callers that loaded the row
// first can tell the two apart.
func (r *PostgresMatchRequestRepository) SetStatusIfPending(ctx context.Context, requestID int64, status match.Status) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE match_requests SET status = $2 WHERE id = $1 AND status = 'pending'`,
		requestID, string(status),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return match.ErrNotPending
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
