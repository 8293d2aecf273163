package service

import (
	"context"
	"time"

	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/adrianistaken/time-tracker/internal/repository"
)

type ProjectService interface {
	Create(ctx context.Context, userID, name, color string) (*domain.Project, error)
	GetForUser(ctx context.Context, projectID, userID string) (*domain.Project, error)
	Update(ctx context.Context, userID, projectID, name, color string) (*domain.Project, error)
	Archive(ctx context.Context, userID, projectID string) (*domain.Project, error)
	Unarchive(ctx context.Context, userID, projectID string) (*domain.Project, error)
	ListActive(ctx context.Context, userID string) ([]*domain.Project, error)
	ListArchived(ctx context.Context, userID string) ([]*domain.Project, error)
	// TotalSeconds sums completed-session durations for one project.
	TotalSeconds(ctx context.Context, projectID string) (int, error)
	LastWorkedAt(ctx context.Context, projectID string) (*time.Time, error)
}

type SessionService interface {
	// Start begins a new session on the given project, stopping any session
	// the user already has running. Exactly one active session exists for the
	// user afterwards, and it is the returned one.
	Start(ctx context.Context, userID, projectID string) (*domain.Session, error)
	// Stop completes the session. Stopping an already-completed session is a
	// no-op; the returned bool reports whether this call did the completing.
	Stop(ctx context.Context, userID, sessionID, note string) (*domain.Session, bool, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// Active returns the user's running session, or nil if there is none.
	Active(ctx context.Context, userID string) (*domain.Session, error)
	// CreateProjectAndStart stops any running session, creates a project and
	// starts a session on it, all in one transaction.
	CreateProjectAndStart(ctx context.Context, userID, name, color string) (*domain.Session, *domain.Project, error)
}

// TrendBucket is one calendar day of tracked time in the 7-day chart.
type TrendBucket struct {
	Date     string  `json:"date"`      // display label, e.g. "Jan 2"
	FullDate string  `json:"full_date"` // "2006-01-02"
	Seconds  int     `json:"seconds"`
	Hours    float64 `json:"hours"` // seconds/3600 rounded to 2 decimals
}

// ProjectTotal is one project's share of tracked time within a range.
type ProjectTotal struct {
	ProjectID    string `json:"project_id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	TotalSeconds int    `json:"total_seconds"`
}

// Dashboard aggregates everything the insight view needs for one user.
type Dashboard struct {
	Projects      []*domain.Project
	ProjectTotals map[string]int // project ID -> lifetime completed seconds
	TodaySeconds  int
	WeekSeconds   int
	Breakdown     []ProjectTotal
	Trend         []TrendBucket
	Recent        []*repository.SessionWithProject
	ActiveSession *domain.Session
	ActiveProject *domain.Project
	Range         string
}

type StatsService interface {
	Dashboard(ctx context.Context, userID, rangeName string) (*Dashboard, error)
}
