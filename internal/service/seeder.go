package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/adrianistaken/time-tracker/internal/repository"
	"github.com/google/uuid"
)

// Default user created by the seeder.
const (
	DefaultUserEmail = "user@timetracker.local"
	DefaultUserName  = "Default User"
)

var sampleNotes = []string{
	"Wrapped up the refactor.",
	"Slow going, lots of context switching.",
	"Good deep-work block.",
	"Reviewed and merged open PRs.",
}

// Seeder creates the default user and, when the user has no projects yet,
// a set of demo projects with a week of completed sessions.
type Seeder struct {
	users    repository.UserRepo
	projects repository.ProjectRepo
	sessions repository.SessionRepo
	rng      *rand.Rand
}

func NewSeeder(users repository.UserRepo, projects repository.ProjectRepo, sessions repository.SessionRepo, rng *rand.Rand) *Seeder {
	return &Seeder{users: users, projects: projects, sessions: sessions, rng: rng}
}

// Run is idempotent: the user is found or created, and sample data is only
// generated when the user owns no projects.
func (s *Seeder) Run(ctx context.Context) (*domain.User, error) {
	user, err := s.EnsureDefaultUser(ctx)
	if err != nil {
		return nil, err
	}

	count, err := s.projects.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return user, nil
	}

	samples := []struct {
		name  string
		color string
	}{
		{"Side Project", domain.Colors[0]},
		{"Client Work", domain.Colors[4]},
		{"Learning", domain.Colors[6]},
	}
	for _, sample := range samples {
		if err := s.seedProject(ctx, user.ID, sample.name, sample.color); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// EnsureDefaultUser finds or creates the default user without touching any
// project or session data.
func (s *Seeder) EnsureDefaultUser(ctx context.Context) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, DefaultUserEmail)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		now := time.Now().UTC()
		user = &domain.User{
			ID:        uuid.New().String(),
			Name:      DefaultUserName,
			Email:     DefaultUserEmail,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *Seeder) seedProject(ctx context.Context, userID, name, color string) error {
	now := time.Now().UTC()
	project := &domain.Project{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return err
	}

	// 3-5 completed sessions over the past week, working hours only.
	sessionCount := 3 + s.rng.Intn(3)
	for i := 0; i < sessionCount; i++ {
		daysAgo := s.rng.Intn(7)
		startHour := 9 + s.rng.Intn(10)
		durationMinutes := 15 + s.rng.Intn(106)

		day := now.AddDate(0, 0, -daysAgo)
		startedAt := time.Date(day.Year(), day.Month(), day.Day(), startHour, s.rng.Intn(60), 0, 0, time.UTC)
		endedAt := startedAt.Add(time.Duration(durationMinutes) * time.Minute)
		if endedAt.After(now) {
			continue
		}

		note := ""
		if s.rng.Intn(10) > 7 {
			note = sampleNotes[s.rng.Intn(len(sampleNotes))]
		}

		duration := durationMinutes * 60
		sess := &domain.Session{
			ID:              uuid.New().String(),
			UserID:          userID,
			ProjectID:       project.ID,
			StartedAt:       startedAt,
			EndedAt:         &endedAt,
			DurationSeconds: &duration,
			Note:            note,
			CreatedAt:       startedAt,
			UpdatedAt:       endedAt,
		}
		if err := s.sessions.Create(ctx, sess); err != nil {
			return err
		}
	}
	return nil
}
