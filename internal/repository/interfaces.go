package repository

import (
	"context"
	"errors"
	"time"

	"github.com/adrianistaken/time-tracker/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SessionWithProject is a joined view of a session with the project it was
// tracked against, used by the dashboard history and breakdown.
type SessionWithProject struct {
	Session      domain.Session
	ProjectName  string
	ProjectColor string
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// GetForUser resolves a project only if it belongs to the given user.
	GetForUser(ctx context.Context, id, userID string) (*domain.Project, error)
	ListActive(ctx context.Context, userID string) ([]*domain.Project, error)
	ListArchived(ctx context.Context, userID string) ([]*domain.Project, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	// TotalSeconds sums duration_seconds over the project's completed sessions.
	TotalSeconds(ctx context.Context, projectID string) (int, error)
	// LastWorkedAt is the latest ended_at over the project's completed
	// sessions, or nil if it has none.
	LastWorkedAt(ctx context.Context, projectID string) (*time.Time, error)
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// GetActiveByUser returns the user's running session, or nil if there is
	// none. The ux_sessions_active index guarantees at most one row.
	GetActiveByUser(ctx context.Context, userID string) (*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	// ListCompletedSince returns completed sessions with started_at >= since,
	// joined with their project, oldest first.
	ListCompletedSince(ctx context.Context, userID string, since time.Time) ([]*SessionWithProject, error)
	// ListRecentCompleted returns completed sessions ordered by ended_at
	// descending, capped at limit.
	ListRecentCompleted(ctx context.Context, userID string, limit int) ([]*SessionWithProject, error)
	// SumCompletedBetween sums duration_seconds over completed sessions whose
	// started_at falls in [from, to).
	SumCompletedBetween(ctx context.Context, userID string, from, to time.Time) (int, error)
	CountActiveByUser(ctx context.Context, userID string) (int, error)
}
