package service

import (
	"context"
	"time"

	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/adrianistaken/time-tracker/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, userID, name, color string) (*domain.Project, error) {
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
		return nil, err
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) GetForUser(ctx context.Context, projectID, userID string) (*domain.Project, error) {
	return s.projects.GetForUser(ctx, projectID, userID)
}

func (s *projectService) Update(ctx context.Context, userID, projectID, name, color string) (*domain.Project, error) {
	p, err := s.projects.GetForUser(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	p.Name = name
	p.Color = color
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Archive(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	p, err := s.projects.GetForUser(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Archive(ctx, p.ID); err != nil {
		return nil, err
	}
	return s.projects.GetByID(ctx, p.ID)
}

func (s *projectService) Unarchive(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	p, err := s.projects.GetForUser(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Unarchive(ctx, p.ID); err != nil {
		return nil, err
	}
	return s.projects.GetByID(ctx, p.ID)
}

func (s *projectService) ListActive(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.projects.ListActive(ctx, userID)
}

func (s *projectService) ListArchived(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.projects.ListArchived(ctx, userID)
}

func (s *projectService) TotalSeconds(ctx context.Context, projectID string) (int, error) {
	return s.projects.TotalSeconds(ctx, projectID)
}

func (s *projectService) LastWorkedAt(ctx context.Context, projectID string) (*time.Time, error) {
	return s.projects.LastWorkedAt(ctx, projectID)
}
