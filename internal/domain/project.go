package domain

import "time"

type Project struct {
	ID         string
	UserID     string
	Name       string
	Color      string
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsArchived reports whether the project has been archived.
func (p *Project) IsArchived() bool {
	return p.ArchivedAt != nil
}

// Validate checks that the project has a non-empty name and a palette color.
func (p *Project) Validate() error {
	v := NewValidationError()
	if p.Name == "" {
		v.Add("name", "Project name is required.")
	}
	if !ValidColor(p.Color) {
		v.Add("color", "Color must be one of the available palette colors.")
	}
	return v.OrNil()
}
