package dto

import (
	"time"

	"mentor-match/internal/repository"
	ucmatch "mentor-match/internal/usecase/match"
)

type MatchRequestResponse struct {
	ID       int64  `json:"id"`
	MentorID int64  `json:"mentorId"`
	MenteeID int64  `json:"menteeId"`
	Message  string `json:"message"`
	Status   string `json:"status"`
}

func NewCreatedResponse(c ucmatch.Created) MatchRequestResponse {
	return MatchRequestResponse{
		ID:       c.ID,
		MentorID: c.MentorID,
		MenteeID: c.MenteeID,
		Message:  c.Message,
		Status:   string(c.Status),
	}
}

func NewTransitionedResponse(t ucmatch.Transitioned) MatchRequestResponse {
	return MatchRequestResponse{
		ID:       t.ID,
		MentorID: t.MentorID,
		MenteeID: t.MenteeID,
		Message:  t.Message,
		Status:   string(t.Status),
	}
}

type RequestUserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReceivedRequestResponse struct {
	ID        int64           `json:"id"`
	Message   string          `json:"message"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	Mentee    MenteeBriefInfo `json:"mentee"`
}

type MenteeBriefInfo struct {
	User      RequestUserInfo `json:"user"`
	Interests *string         `json:"interests"`
}

func NewReceivedResponseList(rows []repository.ReceivedRequestRow) []ReceivedRequestResponse {
	out := make([]ReceivedRequestResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReceivedRequestResponse{
			ID:        r.ID,
			Message:   r.Message,
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt,
			Mentee: MenteeBriefInfo{
				User:      RequestUserInfo{Name: r.MenteeName, Email: r.MenteeEmail},
				Interests: r.MenteeInterests,
			},
		})
	}
	return out
}

type SentRequestResponse struct {
	ID        int64           `json:"id"`
	Message   string          `json:"message"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	Mentor    MentorBriefInfo `json:"mentor"`
}

type MentorBriefInfo struct {
	User            RequestUserInfo `json:"user"`
	Skills          *string         `json:"skills"`
	ExperienceYears int             `json:"experience_years"`
}

func NewSentResponseList(rows []repository.SentRequestRow) []SentRequestResponse {
	out := make([]SentRequestResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, SentRequestResponse{
			ID:        r.ID,
			Message:   r.Message,
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt,
			Mentor: MentorBriefInfo{
				User:            RequestUserInfo{Name: r.MentorName, Email: r.MentorEmail},
				Skills:          r.MentorSkills,
				ExperienceYears: r.MentorExperienceYears,
			},
		})
	}
	return out
}

type IncomingRequestResponse struct {
	ID       int64  `json:"id"`
	MentorID int64  `json:"mentorId"`
	MenteeID int64  `json:"menteeId"`
	Message  string `json:"message"`
	Status   string `json:"status"`
}

func NewIncomingResponseList(rows []repository.RequestSummary) []IncomingRequestResponse {
	out := make([]IncomingRequestResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, IncomingRequestResponse{
			ID:       r.ID,
			MentorID: r.MentorID,
			MenteeID: r.MenteeID,
			Message:  r.Message,
			Status:   string(r.Status),
		})
	}
	return out
}

// Outgoing listings omit the message on purpose.
type OutgoingRequestResponse struct {
	ID       int64  `json:"id"`
	MentorID int64  `json:"mentorId"`
	MenteeID int64  `json:"menteeId"`
	Status   string `json:"status"`
}

func NewOutgoingResponseList(rows []repository.RequestSummary) []OutgoingRequestResponse {
	out := make([]OutgoingRequestResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, OutgoingRequestResponse{
			ID:       r.ID,
			MentorID: r.MentorID,
			MenteeID: r.MenteeID,
			Status:   string(r.Status),
		})
	}
	return out
}
