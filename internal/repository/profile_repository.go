package repository

import (
	"context"
	"errors"

	"mentor-match/internal/database"
	"mentor-match/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

// ProfileView joins a user row with whichever role profile it owns. The
// role-specific columns stay nullable because only one side is ever set.
type ProfileView struct {
	ID    int64
	Email string
	Name  string
	Role  user.Role
	Bio   *string

	Skills          *string
	ExperienceYears *int
	Rating          *float64

	Interests *string
	Goals     *string
}

type MentorRow struct {
	UserID          int64
	Email           string
	Name            string
	Bio             *string
	Skills          *string
	ExperienceYears int
	Rating          float64
}

type MentorListFilter struct {
	Skill   string
	OrderBy string
}

type ProfileRepository interface {
	GetView(ctx context.Context, userID int64) (ProfileView, error)
	UpdateNameBio(ctx context.Context, userID int64, name, bio *string) error
	UpdateImage(ctx context.Context, userID int64, image []byte) error
	UpdateSkills(ctx context.Context, userID int64, skills string) error
	ListMentors(ctx context.Context, f MentorListFilter) ([]MentorRow, error)
	GetImage(ctx context.Context, userID int64, role user.Role) ([]byte, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetView(ctx context.Context, userID int64) (ProfileView, error) {
	var v ProfileView
	var role string
	err := r.db.QueryRow(ctx,
		`SELECT u.id, u.email, COALESCE(u.name, ''), u.role, u.bio,
		        m.skills, m.experience_years, m.rating,
		        me.interests, me.goals
		 FROM users u
		 LEFT JOIN mentors m ON u.id = m.user_id
		 LEFT JOIN mentees me ON u.id = me.user_id
		 WHERE u.id = $1`,
		userID,
	).Scan(
		&v.ID, &v.Email, &v.Name, &role, &v.Bio,
		&v.Skills, &v.ExperienceYears, &v.Rating,
		&v.Interests, &v.Goals,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProfileView{}, user.ErrNotFound
		}
		return ProfileView{}, err
	}
	v.Role = user.Role(role)
	return v, nil
}

func (r *PostgresProfileRepository) UpdateNameBio(ctx context.Context, userID int64, name, bio *string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET name = $2, bio = $3 WHERE id = $1`,
		userID, name, bio,
	)
	return err
}

func (r *PostgresProfileRepository) UpdateImage(ctx context.Context, userID int64, image []byte) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET profile_image = $2 WHERE id = $1`,
		userID, image,
	)
	return err
}

func (r *PostgresProfileRepository) UpdateSkills(ctx context.Context, userID int64, skills string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE mentors SET skills = $2 WHERE user_id = $1`,
		userID, skills,
	)
	return err
}

func (r *PostgresProfileRepository) ListMentors(ctx context.Context, f MentorListFilter) ([]MentorRow, error) {
	query := `SELECT u.id, u.email, COALESCE(u.name, ''), u.bio,
	                 m.skills, m.experience_years, m.rating
	          FROM users u
	          JOIN mentors m ON u.id = m.user_id
	          WHERE u.role = 'mentor'`
	args := []any{}

	if f.Skill != "" {
		args = append(args, "%"+f.Skill+"%")
		query += ` AND m.skills LIKE $1`
	}

	switch f.OrderBy {
	case "skill":
		query += ` ORDER BY m.skills ASC`
	case "name":
		query += ` ORDER BY u.name ASC`
	default:
		query += ` ORDER BY u.id ASC`
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MentorRow, 0)
	for rows.Next() {
		var m MentorRow
		if err := rows.Scan(&m.UserID, &m.Email, &m.Name, &m.Bio, &m.Skills, &m.ExperienceYears, &m.Rating); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetImage returns the stored image bytes, which may be nil when the user has
// never uploaded one. A missing user/role pair is user.ErrNotFound.
func (r *PostgresProfileRepository) GetImage(ctx context.Context, userID int64, role user.Role) ([]byte, error) {
	var img []byte
	err := r.db.QueryRow(ctx,
		`SELECT profile_image FROM users WHERE id = $1 AND role = $2`,
		userID, string(role),
	).Scan(&img)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return img, nil
}
