package user

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

type Role string

const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

func (r Role) Valid() bool {
	return r == RoleMentor || r == RoleMentee
}

// Role is fixed at signup and never changes afterwards.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Bio          *string
	ProfileImage []byte
	CreatedAt    time.Time
}

// MentorProfile extends a mentor user one-to-one. Skills is an ordered
// list persisted as comma-delimited text.
type MentorProfile struct {
	ID              int64
	UserID          int64
	Skills          []string
	ExperienceYears int
	Rating          float64
}

// MenteeProfile extends a mentee user one-to-one.
type MenteeProfile struct {
	ID        int64
	UserID    int64
	Interests *string
	Goals     *string
}
