package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adrianistaken/time-tracker/internal/db"
	"github.com/adrianistaken/time-tracker/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

const sessionColumns = `id, user_id, project_id, started_at, ended_at, duration_seconds, note, created_at, updated_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO tracking_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.ProjectID,
		s.StartedAt.UTC().Format(time.RFC3339),
		nullableTimeToString(s.EndedAt, time.RFC3339),
		nullableIntToValue(s.DurationSeconds),
		s.Note,
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM tracking_sessions WHERE id = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSessionRepo) GetActiveByUser(ctx context.Context, userID string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM tracking_sessions
		WHERE user_id = ? AND ended_at IS NULL`
	s, err := r.scanSession(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE tracking_sessions
		SET ended_at = ?, duration_seconds = ?, note = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(s.EndedAt, time.RFC3339),
		nullableIntToValue(s.DurationSeconds),
		s.Note,
		s.UpdatedAt.UTC().Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) ListCompletedSince(ctx context.Context, userID string, since time.Time) ([]*SessionWithProject, error) {
	query := `SELECT s.` + joinedSessionColumns + `, p.name, p.color
		FROM tracking_sessions s
		JOIN projects p ON s.project_id = p.id
		WHERE s.user_id = ? AND s.ended_at IS NOT NULL AND s.started_at >= ?
		ORDER BY s.started_at, s.created_at`
	rows, err := r.db.QueryContext(ctx, query, userID, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing completed sessions: %w", err)
	}
	defer rows.Close()
	return r.scanJoined(rows)
}

func (r *SQLiteSessionRepo) ListRecentCompleted(ctx context.Context, userID string, limit int) ([]*SessionWithProject, error) {
	query := `SELECT s.` + joinedSessionColumns + `, p.name, p.color
		FROM tracking_sessions s
		JOIN projects p ON s.project_id = p.id
		WHERE s.user_id = ? AND s.ended_at IS NOT NULL
		ORDER BY s.ended_at DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	defer rows.Close()
	return r.scanJoined(rows)
}

func (r *SQLiteSessionRepo) SumCompletedBetween(ctx context.Context, userID string, from, to time.Time) (int, error) {
	query := `SELECT COALESCE(SUM(duration_seconds), 0) FROM tracking_sessions
		WHERE user_id = ? AND ended_at IS NOT NULL AND started_at >= ? AND started_at < ?`
	var total int
	err := r.db.QueryRowContext(ctx, query, userID,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing completed sessions: %w", err)
	}
	return total, nil
}

func (r *SQLiteSessionRepo) CountActiveByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tracking_sessions WHERE user_id = ? AND ended_at IS NULL`,
		userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting active sessions: %w", err)
	}
	return count, nil
}

const joinedSessionColumns = `id, s.user_id, s.project_id, s.started_at, s.ended_at, s.duration_seconds, s.note, s.created_at, s.updated_at`

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var startedAtStr, createdAtStr, updatedAtStr string
	var endedAtStr sql.NullString
	var durationSecs sql.NullInt64
	var note sql.NullString

	err := row.Scan(&s.ID, &s.UserID, &s.ProjectID, &startedAtStr, &endedAtStr,
		&durationSecs, &note, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	return r.populateSession(&s, startedAtStr, createdAtStr, updatedAtStr, endedAtStr, durationSecs, note)
}

// scanJoined scans session rows joined with project name and color.
func (r *SQLiteSessionRepo) scanJoined(rows *sql.Rows) ([]*SessionWithProject, error) {
	var sessions []*SessionWithProject
	for rows.Next() {
		var sp SessionWithProject
		var startedAtStr, createdAtStr, updatedAtStr string
		var endedAtStr sql.NullString
		var durationSecs sql.NullInt64
		var note sql.NullString

		err := rows.Scan(&sp.Session.ID, &sp.Session.UserID, &sp.Session.ProjectID,
			&startedAtStr, &endedAtStr, &durationSecs, &note,
			&createdAtStr, &updatedAtStr, &sp.ProjectName, &sp.ProjectColor)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		if _, err := r.populateSession(&sp.Session, startedAtStr, createdAtStr, updatedAtStr, endedAtStr, durationSecs, note); err != nil {
			return nil, err
		}
		sessions = append(sessions, &sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a Session after scanning raw values.
func (r *SQLiteSessionRepo) populateSession(s *domain.Session, startedAtStr, createdAtStr, updatedAtStr string, endedAtStr sql.NullString, durationSecs sql.NullInt64, note sql.NullString) (*domain.Session, error) {
	var parseErr error
	s.StartedAt, parseErr = time.Parse(time.RFC3339, startedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	s.EndedAt = parseNullableTime(endedAtStr, time.RFC3339)
	s.DurationSeconds = intToNullable(durationSecs)
	s.Note = note.String
	return s, nil
}
