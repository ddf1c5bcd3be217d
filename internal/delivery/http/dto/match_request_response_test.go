package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"mentor-match/internal/domain/match"
	"mentor-match/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestNewSentResponseList_JoinedMentorShape(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := []repository.SentRequestRow{{
		ID:                    3,
		Message:               "please mentor me",
		Status:                match.StatusAccepted,
		CreatedAt:             created,
		MentorName:            "John Mentor",
		MentorEmail:           "mentor@test.com",
		MentorSkills:          strPtr("Go,React"),
		MentorExperienceYears: 10,
	}}

	out := NewSentResponseList(rows)
	if len(out) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(out))
	}
	e := out[0]
	if e.Status != "accepted" {
		t.Fatalf("expected accepted, got %s", e.Status)
	}
	if e.Mentor.User.Name != "John Mentor" || e.Mentor.User.Email != "mentor@test.com" {
		t.Fatalf("unexpected mentor user: %+v", e.Mentor.User)
	}
	if e.Mentor.Skills == nil || *e.Mentor.Skills != "Go,React" {
		t.Fatalf("unexpected mentor skills: %v", e.Mentor.Skills)
	}
	if e.Mentor.ExperienceYears != 10 {
		t.Fatalf("unexpected experience: %d", e.Mentor.ExperienceYears)
	}

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"mentor"`, `"user"`, `"name"`, `"email"`, `"skills"`, `"experience_years"`, `"created_at"`, `"status":"accepted"`} {
		if !strings.Contains(string(b), key) {
			t.Fatalf("expected %s in payload: %s", key, b)
		}
	}
}

func TestNewReceivedResponseList_JoinedMenteeShape(t *testing.T) {
	rows := []repository.ReceivedRequestRow{{
		ID:              4,
		Message:         "hi",
		Status:          match.StatusPending,
		CreatedAt:       time.Now().UTC(),
		MenteeName:      "Jane Mentee",
		MenteeEmail:     "mentee@test.com",
		MenteeInterests: strPtr("Web Development"),
	}}

	out := NewReceivedResponseList(rows)
	if len(out) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(out))
	}
	e := out[0]
	if e.Status != "pending" {
		t.Fatalf("expected pending, got %s", e.Status)
	}
	if e.Mentee.User.Name != "Jane Mentee" || e.Mentee.User.Email != "mentee@test.com" {
		t.Fatalf("unexpected mentee user: %+v", e.Mentee.User)
	}
	if e.Mentee.Interests == nil || *e.Mentee.Interests != "Web Development" {
		t.Fatalf("unexpected interests: %v", e.Mentee.Interests)
	}

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"mentee"`, `"user"`, `"interests"`} {
		if !strings.Contains(string(b), key) {
			t.Fatalf("expected %s in payload: %s", key, b)
		}
	}
}

func TestNewOutgoingResponseList_OmitsMessage(t *testing.T) {
	out := NewOutgoingResponseList([]repository.RequestSummary{{
		ID: 5, MentorID: 1, MenteeID: 2, Message: "secret", Status: match.StatusPending,
	}})
	if len(out) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(out))
	}

	b, err := json.Marshal(out[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "secret") {
		t.Fatalf("outgoing payload must omit the message: %s", b)
	}
}
