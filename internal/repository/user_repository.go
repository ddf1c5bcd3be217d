package repository

import (
	"context"
	"errors"

	"mentor-match/internal/database"
	"mentor-match/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetByID(ctx context.Context, id int64) (user.User, error)
	CreateWithProfile(ctx context.Context, u user.User) (user.User, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, COALESCE(name, ''), role, bio, created_at
		 FROM users
		 WHERE email = $1`,
		email,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, COALESCE(name, ''), role, bio, created_at
		 FROM users
		 WHERE id = $1`,
		id,
	)
	return scanUser(row)
}

// CreateWithProfile inserts the user row and its role-specific profile row in
// one transaction, so a signup can never leave a user without a profile.
func (r *PostgresUserRepository) CreateWithProfile(ctx context.Context, u user.User) (user.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return user.User{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	err = tx.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Email, u.PasswordHash, u.Name, string(u.Role),
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return user.User{}, err
	}

	switch u.Role {
	case user.RoleMentor:
		_, err = tx.Exec(ctx, `INSERT INTO mentors (user_id) VALUES ($1)`, u.ID)
	case user.RoleMentee:
		_, err = tx.Exec(ctx, `INSERT INTO mentees (user_id) VALUES ($1)`, u.ID)
	default:
		err = errors.New("invalid role")
	}
	if err != nil {
		return user.User{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &role, &u.Bio, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}
