package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/google/uuid"
)

var testEmailCounter atomic.Int64

// NewTestUser builds a user with a unique email.
func NewTestUser(name string) *domain.User {
	now := time.Now().UTC()
	n := testEmailCounter.Add(1)
	return &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     fmt.Sprintf("user%d@test.local", n),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Project options
type ProjectOption func(*domain.Project)

func WithColor(color string) ProjectOption {
	return func(p *domain.Project) {
		p.Color = color
	}
}

func WithArchivedAt(t time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.ArchivedAt = &t
	}
}

func NewTestProject(userID, name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Color:     domain.Colors[0],
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Session options
type SessionOption func(*domain.Session)

func WithNote(note string) SessionOption {
	return func(s *domain.Session) {
		s.Note = note
	}
}

// NewActiveSession builds a running session started at the given time.
func NewActiveSession(userID, projectID string, startedAt time.Time, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProjectID: projectID,
		StartedAt: startedAt.UTC(),
		CreatedAt: startedAt.UTC(),
		UpdatedAt: startedAt.UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewCompletedSession builds a session that ran for durationSeconds starting
// at startedAt.
func NewCompletedSession(userID, projectID string, startedAt time.Time, durationSeconds int, opts ...SessionOption) *domain.Session {
	endedAt := startedAt.UTC().Add(time.Duration(durationSeconds) * time.Second)
	s := &domain.Session{
		ID:              uuid.New().String(),
		UserID:          userID,
		ProjectID:       projectID,
		StartedAt:       startedAt.UTC(),
		EndedAt:         &endedAt,
		DurationSeconds: &durationSeconds,
		CreatedAt:       startedAt.UTC(),
		UpdatedAt:       endedAt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
