package usecase

import (
	"context"

	"mentor-match/internal/domain/user"
	"mentor-match/internal/repository"
	ucprofile "mentor-match/internal/usecase/profile"
)

type ProfileUsecase interface {
	GetCurrentUser(ctx context.Context, userID int64) (ucprofile.View, error)
	UpdateProfile(ctx context.Context, userID int64, in ucprofile.UpdateInput) (ucprofile.View, error)
	ListMentors(ctx context.Context, callerID int64, in ucprofile.ListMentorsInput) ([]ucprofile.View, error)
	ImageURL(ctx context.Context, role user.Role, userID int64) (string, error)
}

type Profile struct {
	svc *ucprofile.Service
}

func NewProfileUsecase(users repository.UserRepository, profiles repository.ProfileRepository) *Profile {
	return &Profile{svc: ucprofile.NewService(users, profiles)}
}

func (p *Profile) GetCurrentUser(ctx context.Context, userID int64) (ucprofile.View, error) {
	return p.svc.GetCurrentUser(ctx, userID)
}

func (p *Profile) UpdateProfile(ctx context.Context, userID int64, in ucprofile.UpdateInput) (ucprofile.View, error) {
	return p.svc.UpdateProfile(ctx, userID, in)
}

func (p *Profile) ListMentors(ctx context.Context, callerID int64, in ucprofile.ListMentorsInput) ([]ucprofile.View, error) {
	return p.svc.ListMentors(ctx, callerID, in)
}

func (p *Profile) ImageURL(ctx context.Context, role user.Role, userID int64) (string, error) {
	return p.svc.ImageURL(ctx, role, userID)
}
