package dto

import (
	ucprofile "mentor-match/internal/usecase/profile"
)

type UserResponse struct {
	ID      int64           `json:"id"`
	Email   string          `json:"email"`
	Role    string          `json:"role"`
	Profile ProfileResponse `json:"profile"`
}

type ProfileResponse struct {
	Name      string   `json:"name"`
	Bio       *string  `json:"bio"`
	ImageURL  string   `json:"imageUrl"`
	Skills    []string `json:"skills,omitempty"`
	Interests *string  `json:"interests,omitempty"`
	Goals     *string  `json:"goals,omitempty"`
}

func NewUserResponse(v ucprofile.View) UserResponse {
	return UserResponse{
		ID:    v.ID,
		Email: v.Email,
		Role:  string(v.Role),
		Profile: ProfileResponse{
			Name:      v.Name,
			Bio:       v.Bio,
			ImageURL:  v.ImageURL,
			Skills:    v.Skills,
			Interests: v.Interests,
			Goals:     v.Goals,
		},
	}
}

func NewUserResponseList(views []ucprofile.View) []UserResponse {
	out := make([]UserResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewUserResponse(v))
	}
	return out
}
