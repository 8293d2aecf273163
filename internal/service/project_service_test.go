package service

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/adrianistaken/time-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectServiceCreate(t *testing.T) {
	users, projects, _, _ := setupRepos(t)
	ctx := context.Background()
	user := seedUser(t, users)

	svc := NewProjectService(projects)

	p, err := svc.Create(ctx, user.ID, "Side Project", domain.Colors[4])
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, user.ID, p.UserID)
	assert.Equal(t, domain.Colors[4], p.Color)
	assert.False(t, p.IsArchived())

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Side Project", got.Name)
	assert.Equal(t, domain.Colors[4], got.Color)
}

func TestProjectServiceCreateRejectsBadInput(t *testing.T) {
	users, projects, _, _ := setupRepos(t)
	ctx := context.Background()
	user := seedUser(t, users)

	svc := NewProjectService(projects)

	_, err := svc.Create(ctx, user.ID, "", domain.Colors[0])
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages["name"][0], "required")

	_, err = svc.Create(ctx, user.ID, "Valid Name", "#123456")
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "color")

	// Nothing was persisted.
	list, err := projects.ListActive(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProjectServiceUpdate(t *testing.T) {
	users, projects, _, _ := setupRepos(t)
	ctx := context.Background()
	user := seedUser(t, users)
	p := seedProject(t, projects, user.ID, "Old Name")

	svc := NewProjectService(projects)

	updated, err := svc.Update(ctx, user.ID, p.ID, "New Name", domain.Colors[7])
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, domain.Colors[7], updated.Color)

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
}

func TestProjectServiceUpdateChecksOwnership(t *testing.T) {
	users, projects, _, _ := setupRepos(t)
	ctx := context.Background()
	owner := seedUser(t, users)
	other := seedUser(t, users)
	p := seedProject(t, projects, owner.ID, "Mine")

	svc := NewProjectService(projects)

	_, err := svc.Update(ctx, other.ID, p.ID, "Stolen", domain.Colors[0])
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Name)
}

func TestProjectServiceUpdateRejectsInvalidColor(t *testing.T) {
	users, projects, _, _ := setupRepos(t)
	ctx := context.Background()
	user := seedUser(t, users)
	p := seedProject(t, projects, user.ID, "Stable")

	svc := NewProjectService(projects)

	_, err := svc.Update(ctx, user.ID, p.ID, "Stable", "magenta")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Colors[0], got.Color, "invalid update must not persist")
}

func TestProjectServiceArchiveUnarchive(t *testing.T) {
	users, projects, _, _ := setupRepos(t)
	ctx := context.Background()
	user := seedUser(t, users)
	p := seedProject(t, projects, user.ID, "Onoff")

	svc := NewProjectService(projects)

	archived, err := svc.Archive(ctx, user.ID, p.ID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived())

	active, err := svc.ListActive(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, active)

	shelved, err := svc.ListArchived(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, shelved, 1)
	assert.Equal(t, p.ID, shelved[0].ID)

	restored, err := svc.Unarchive(ctx, user.ID, p.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsArchived())

	active, err = svc.ListActive(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
}

func TestProjectServiceArchiveChecksOwnership(t *testing.T) {
	users, projects, _, _ := setupRepos(t)
	ctx := context.Background()
	owner := seedUser(t, users)
	other := seedUser(t, users)
	p := seedProject(t, projects, owner.ID, "Mine")

	svc := NewProjectService(projects)

	_, err := svc.Archive(ctx, other.ID, p.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsArchived())
}
