package domain

import "time"

// MaxNoteLength bounds the free-text note attached on stop.
const MaxNoteLength = 1000

type Session struct {
	ID              string
	UserID          string
	ProjectID       string
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds *int
	Note            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive reports whether the session is still running.
func (s *Session) IsActive() bool {
	return s.EndedAt == nil
}

// Stop completes the session at the given instant and records its duration.
// Stopping an already-completed session is a no-op.
func (s *Session) Stop(endedAt time.Time, note string) {
	if !s.IsActive() {
		return
	}
	duration := ComputeDuration(s.StartedAt, endedAt)
	s.EndedAt = &endedAt
	s.DurationSeconds = &duration
	s.Note = note
	s.UpdatedAt = endedAt
}

// ElapsedSeconds returns the stored duration for completed sessions, or the
// wall-clock seconds since start for active ones. Active elapsed time is
// recomputed on every call rather than cached.
func (s *Session) ElapsedSeconds(now time.Time) int {
	if s.EndedAt != nil {
		if s.DurationSeconds == nil {
			return 0
		}
		return *s.DurationSeconds
	}
	return ComputeDuration(s.StartedAt, now)
}

// ValidateNote checks the optional stop note against the length limit.
func ValidateNote(note string) error {
	if len(note) > MaxNoteLength {
		v := NewValidationError()
		v.Add("note", "Note may not be longer than 1000 characters.")
		return v
	}
	return nil
}
