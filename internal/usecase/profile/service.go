package profile

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"mentor-match/internal/domain/user"
	"mentor-match/internal/repository"
)

var (
	ErrNotMentee = errors.New("caller is not a mentee")
	ErrInternal  = errors.New("internal error")
)

const (
	placeholderMentorURL = "https://placehold.co/500x500.jpg?text=MENTOR"
	placeholderMenteeURL = "https://placehold.co/500x500.jpg?text=MENTEE"
)

// View is the user-facing profile shape. Skills is populated for mentors,
// Interests/Goals for mentees.
type View struct {
	ID        int64
	Email     string
	Role      user.Role
	Name      string
	Bio       *string
	ImageURL  string
	Skills    []string
	Interests *string
	Goals     *string
}

type UpdateInput struct {
	Name   *string
	Bio    *string
	Image  *string
	Skills []string
}

type ListMentorsInput struct {
	Skill   string
	OrderBy string
}

type Service struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
}

func NewService(users repository.UserRepository, profiles repository.ProfileRepository) *Service {
	return &Service{users: users, profiles: profiles}
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (View, error) {
	pv, err := s.profiles.GetView(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return View{}, user.ErrNotFound
		}
		return View{}, ErrInternal
	}
	return viewFromRow(pv), nil
}

// UpdateProfile writes name/bio with whatever the caller sent, stores the
// image when it decodes, and touches skills only for mentors. A malformed
// image payload is skipped; the rest of the update still applies.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, in UpdateInput) (View, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return View{}, user.ErrNotFound
		}
		return View{}, ErrInternal
	}

	if err := s.profiles.UpdateNameBio(ctx, userID, in.Name, in.Bio); err != nil {
		return View{}, ErrInternal
	}

	if in.Image != nil && *in.Image != "" {
		if img, decErr := base64.StdEncoding.DecodeString(*in.Image); decErr == nil {
			if err := s.profiles.UpdateImage(ctx, userID, img); err != nil {
				return View{}, ErrInternal
			}
		}
	}

	if u.Role == user.RoleMentor && in.Skills != nil {
		if err := s.profiles.UpdateSkills(ctx, userID, strings.Join(in.Skills, ",")); err != nil {
			return View{}, ErrInternal
		}
	}

	return s.GetCurrentUser(ctx, userID)
}

func (s *Service) ListMentors(ctx context.Context, callerID int64, in ListMentorsInput) ([]View, error) {
	caller, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrNotMentee
		}
		return nil, ErrInternal
	}
	if caller.Role != user.RoleMentee {
		return nil, ErrNotMentee
	}

	rows, err := s.profiles.ListMentors(ctx, repository.MentorListFilter{
		Skill:   strings.TrimSpace(in.Skill),
		OrderBy: strings.TrimSpace(in.OrderBy),
	})
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]View, 0, len(rows))
	for _, m := range rows {
		out = append(out, View{
			ID:       m.UserID,
			Email:    m.Email,
			Role:     user.RoleMentor,
			Name:     m.Name,
			Bio:      m.Bio,
			ImageURL: imageURL(user.RoleMentor, m.UserID),
			Skills:   splitSkills(m.Skills),
		})
	}
	return out, nil
}

// ImageURL resolves the profile image for a role/user pair. Missing users and
// missing images both fall back to the role placeholder; this endpoint never
// reports not-found.
func (s *Service) ImageURL(ctx context.Context, role user.Role, userID int64) (string, error) {
	img, err := s.profiles.GetImage(ctx, userID, role)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return placeholderURL(role), nil
		}
		return "", ErrInternal
	}
	if len(img) == 0 {
		return placeholderURL(role), nil
	}
	return fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(img)), nil
}

func viewFromRow(pv repository.ProfileView) View {
	v := View{
		ID:       pv.ID,
		Email:    pv.Email,
		Role:     pv.Role,
		Name:     pv.Name,
		Bio:      pv.Bio,
		ImageURL: imageURL(pv.Role, pv.ID),
	}
	switch pv.Role {
	case user.RoleMentor:
		v.Skills = splitSkills(pv.Skills)
	case user.RoleMentee:
		v.Interests = pv.Interests
		v.Goals = pv.Goals
	}
	return v
}

func imageURL(role user.Role, userID int64) string {
	return fmt.Sprintf("/images/%s/%d", role, userID)
}

func placeholderURL(role user.Role) string {
	if role == user.RoleMentor {
		return placeholderMentorURL
	}
	return placeholderMenteeURL
}

func splitSkills(s *string) []string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return []string{}
	}
	parts := strings.Split(*s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
