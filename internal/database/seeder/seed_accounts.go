package seeder

import (
	"context"
	"fmt"

	"mentor-match/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// AccountsSeeder inserts a demo mentor and mentee pair for local testing.
// Existing rows with the same emails are replaced so the passwords stay known.
type AccountsSeeder struct{}

func (AccountsSeeder) Name() string { return "accounts" }

func (AccountsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "name", "role", "bio"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "mentors", "id", "user_id", "skills", "experience_years", "rating"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "mentees", "id", "user_id", "interests", "goals"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	const mentorEmail = "mentor@test.com"
	const menteeEmail = "mentee@test.com"

	if _, err := tx.Exec(
		ctx,
		`DELETE FROM match_requests WHERE mentor_id IN (SELECT m.id FROM mentors m JOIN users u ON u.id = m.user_id WHERE u.email = $1)
			OR mentee_id IN (SELECT m.id FROM mentees m JOIN users u ON u.id = m.user_id WHERE u.email = $2)`,
		mentorEmail, menteeEmail,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM mentors WHERE user_id IN (SELECT id FROM users WHERE email = $1)`, mentorEmail); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM mentees WHERE user_id IN (SELECT id FROM users WHERE email = $1)`, menteeEmail); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE email IN ($1, $2)`, mentorEmail, menteeEmail); err != nil {
		return err
	}

	mentorHash, err := bcrypt.GenerateFromPassword([]byte("mentor123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash mentor password: %w", err)
	}
	menteeHash, err := bcrypt.GenerateFromPassword([]byte("mentee123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash mentee password: %w", err)
	}

	var mentorID int64
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO users (email, password_hash, name, role, bio) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		mentorEmail,
		string(mentorHash),
		"John Mentor",
		"mentor",
		"Experienced software engineer with 10+ years in full-stack development. Passionate about helping junior developers grow their skills.",
	).Scan(&mentorID); err != nil {
		return err
	}
	if _, err := tx.Exec(
		ctx,
		`INSERT INTO mentors (user_id, skills, experience_years, rating) VALUES ($1, $2, $3, $4)`,
		mentorID,
		"Python,JavaScript,React,Node.js,Go",
		10,
		4.8,
	); err != nil {
		return err
	}

	var menteeID int64
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO users (email, password_hash, name, role, bio) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		menteeEmail,
		string(menteeHash),
		"Jane Mentee",
		"mentee",
		"Computer science student looking to learn web development and gain industry experience.",
	).Scan(&menteeID); err != nil {
		return err
	}
	if _, err := tx.Exec(
		ctx,
		`INSERT INTO mentees (user_id, interests, goals) VALUES ($1, $2, $3)`,
		menteeID,
		"Web Development,Go Programming,Career Guidance",
		"Learn full-stack development, Build portfolio projects, Get industry mentorship",
	); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
