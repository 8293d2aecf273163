package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/adrianistaken/time-tracker/internal/db"
	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/adrianistaken/time-tracker/internal/repository"
	"github.com/adrianistaken/time-tracker/internal/testutil"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (*repository.SQLiteUserRepo, *repository.SQLiteProjectRepo, *repository.SQLiteSessionRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return reposOn(database)
}

func reposOn(database *sql.DB) (*repository.SQLiteUserRepo, *repository.SQLiteProjectRepo, *repository.SQLiteSessionRepo, db.UnitOfWork) {
	return repository.NewSQLiteUserRepo(database),
		repository.NewSQLiteProjectRepo(database),
		repository.NewSQLiteSessionRepo(database),
		db.NewSQLiteUnitOfWork(database)
}

func seedUser(t *testing.T, users repository.UserRepo) *domain.User {
	t.Helper()
	user := testutil.NewTestUser("Tester")
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func seedProject(t *testing.T, projects repository.ProjectRepo, userID, name string) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(userID, name)
	require.NoError(t, projects.Create(context.Background(), p))
	return p
}
