package service

import (
	"context"
	"time"

	"github.com/adrianistaken/time-tracker/internal/db"
	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/adrianistaken/time-tracker/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSessionService(sessions repository.SessionRepo, projects repository.ProjectRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		projects: projects,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Start(ctx context.Context, userID, projectID string) (*domain.Session, error) {
	started := time.Now()
	var created *domain.Session

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		// Ownership check first: starting on someone else's project is a
		// not-found, never an information leak.
		if _, err := txProjects.GetForUser(ctx, projectID, userID); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := stopActiveSession(ctx, txSessions, userID, now); err != nil {
			return err
		}

		sess := newSession(userID, projectID, now)
		if err := txSessions.Create(ctx, sess); err != nil {
			return err
		}
		created = sess
		return nil
	})

	s.observe(ctx, "session.start", started, err, map[string]any{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *sessionService) Stop(ctx context.Context, userID, sessionID, note string) (*domain.Session, bool, error) {
	started := time.Now()

	if err := domain.ValidateNote(note); err != nil {
		return nil, false, err
	}

	var (
		sess    *domain.Session
		stopped bool
	)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		found, err := txSessions.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if found.UserID != userID {
			return repository.ErrNotFound
		}
		sess = found

		// Already completed: leave it untouched. Repeated stops and lost
		// stop races land here and are treated as success.
		if !sess.IsActive() {
			return nil
		}

		sess.Stop(time.Now().UTC(), note)
		stopped = true
		return txSessions.Update(ctx, sess)
	})

	s.observe(ctx, "session.stop", started, err, map[string]any{"session_id": sessionID, "stopped": stopped})
	if err != nil {
		return nil, false, err
	}
	return sess, stopped, nil
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) Active(ctx context.Context, userID string) (*domain.Session, error) {
	return s.sessions.GetActiveByUser(ctx, userID)
}

func (s *sessionService) CreateProjectAndStart(ctx context.Context, userID, name, color string) (*domain.Session, *domain.Project, error) {
	started := time.Now()

	var (
		created *domain.Session
		project *domain.Project
	)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		now := time.Now().UTC()
		p := &domain.Project{
			ID:        uuid.New().String(),
			UserID:    userID,
			Name:      name,
			Color:     color,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := p.Validate(); err != nil {
			return err
		}

		if err := stopActiveSession(ctx, txSessions, userID, now); err != nil {
			return err
		}
		if err := txProjects.Create(ctx, p); err != nil {
			return err
		}

		sess := newSession(userID, p.ID, now)
		if err := txSessions.Create(ctx, sess); err != nil {
			return err
		}
		created = sess
		project = p
		return nil
	})

	s.observe(ctx, "session.create_project_and_start", started, err, map[string]any{"name": name})
	if err != nil {
		return nil, nil, err
	}
	return created, project, nil
}

func (s *sessionService) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}

// stopActiveSession completes the user's running session, if any, with no note.
func stopActiveSession(ctx context.Context, sessions repository.SessionRepo, userID string, now time.Time) error {
	active, err := sessions.GetActiveByUser(ctx, userID)
	if err != nil {
		return err
	}
	if active == nil {
		return nil
	}
	active.Stop(now, "")
	return sessions.Update(ctx, active)
}

func newSession(userID, projectID string, now time.Time) *domain.Session {
	return &domain.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProjectID: projectID,
		StartedAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
