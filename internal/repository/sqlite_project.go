package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adrianistaken/time-tracker/internal/db"
	"github.com/adrianistaken/time-tracker/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

const projectColumns = `id, user_id, name, color, archived_at, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.UserID,
		p.Name,
		p.Color,
		nullableTimeToString(p.ArchivedAt, time.RFC3339),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProjectRepo) GetForUser(ctx context.Context, id, userID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ? AND user_id = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, id, userID))
}

func (r *SQLiteProjectRepo) ListActive(ctx context.Context, userID string) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
		WHERE user_id = ? AND archived_at IS NULL ORDER BY name`
	return r.list(ctx, query, userID)
}

func (r *SQLiteProjectRepo) ListArchived(ctx context.Context, userID string) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
		WHERE user_id = ? AND archived_at IS NOT NULL ORDER BY name`
	return r.list(ctx, query, userID)
}

func (r *SQLiteProjectRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting projects: %w", err)
	}
	return count, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, color = ?, archived_at = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Color,
		nullableTimeToString(p.ArchivedAt, time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Archive(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE projects SET archived_at = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Unarchive(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE projects SET archived_at = NULL, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, now, id)
	if err != nil {
		return fmt.Errorf("unarchiving project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) TotalSeconds(ctx context.Context, projectID string) (int, error) {
	query := `SELECT COALESCE(SUM(duration_seconds), 0) FROM tracking_sessions
		WHERE project_id = ? AND ended_at IS NOT NULL`
	var total int
	if err := r.db.QueryRowContext(ctx, query, projectID).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing project durations: %w", err)
	}
	return total, nil
}

func (r *SQLiteProjectRepo) LastWorkedAt(ctx context.Context, projectID string) (*time.Time, error) {
	query := `SELECT MAX(ended_at) FROM tracking_sessions
		WHERE project_id = ? AND ended_at IS NOT NULL`
	var endedAt sql.NullString
	if err := r.db.QueryRowContext(ctx, query, projectID).Scan(&endedAt); err != nil {
		return nil, fmt.Errorf("finding last worked at: %w", err)
	}
	return parseNullableTime(endedAt, time.RFC3339), nil
}

func (r *SQLiteProjectRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := r.scanProjectFromRows(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

// scanProject scans a single project row from a *sql.Row.
func (r *SQLiteProjectRepo) scanProject(row *sql.Row) (*domain.Project, error) {
	var p domain.Project
	var archivedAtStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Color, &archivedAtStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return r.populateProject(&p, archivedAtStr, createdAtStr, updatedAtStr)
}

// scanProjectFromRows scans a single project row from *sql.Rows.
func (r *SQLiteProjectRepo) scanProjectFromRows(rows *sql.Rows) (*domain.Project, error) {
	var p domain.Project
	var archivedAtStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Color, &archivedAtStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning project row: %w", err)
	}
	return r.populateProject(&p, archivedAtStr, createdAtStr, updatedAtStr)
}

func (r *SQLiteProjectRepo) populateProject(p *domain.Project, archivedAtStr sql.NullString, createdAtStr, updatedAtStr string) (*domain.Project, error) {
	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	p.ArchivedAt = parseNullableTime(archivedAtStr, time.RFC3339)
	return p, nil
}
