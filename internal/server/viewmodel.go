package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/adrianistaken/time-tracker/internal/repository"
	"github.com/adrianistaken/time-tracker/internal/service"
)

// View models are the typed payload contract consumed by any client. They
// carry formatting only; all business logic happens before this layer.

type ProjectRefVM struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ProjectVM struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	TotalSeconds int    `json:"total_seconds"`
}

type ActiveSessionVM struct {
	ID        string       `json:"id"`
	StartedAt string       `json:"started_at"`
	Project   ProjectRefVM `json:"project"`
}

type SessionVM struct {
	ID                string       `json:"id"`
	Project           ProjectRefVM `json:"project"`
	StartedAt         string       `json:"started_at"`
	EndedAt           string       `json:"ended_at"`
	DurationSeconds   int          `json:"duration_seconds"`
	FormattedDuration string       `json:"formatted_duration"`
	EndedAgo          string       `json:"ended_ago"`
	Note              string       `json:"note,omitempty"`
}

type DashboardVM struct {
	Projects         []ProjectVM            `json:"projects"`
	Colors           []string               `json:"colors"`
	TodaySeconds     int                    `json:"todaySeconds"`
	WeekSeconds      int                    `json:"weekSeconds"`
	ProjectBreakdown []service.ProjectTotal `json:"projectBreakdown"`
	DailyTrend       []service.TrendBucket  `json:"dailyTrend"`
	RecentSessions   []SessionVM            `json:"recentSessions"`
	ActiveSession    *ActiveSessionVM       `json:"activeSession"`
	Range            string                 `json:"range"`
	Flash            *Flash                 `json:"flash,omitempty"`
}

type FocusVM struct {
	Session ActiveSessionVM `json:"session"`
	Flash   *Flash          `json:"flash,omitempty"`
}

func dashboardVM(d *service.Dashboard, now time.Time) DashboardVM {
	vm := DashboardVM{
		Projects:         make([]ProjectVM, 0, len(d.Projects)),
		Colors:           domain.Colors,
		TodaySeconds:     d.TodaySeconds,
		WeekSeconds:      d.WeekSeconds,
		ProjectBreakdown: emptyIfNil(d.Breakdown),
		DailyTrend:       d.Trend,
		RecentSessions:   make([]SessionVM, 0, len(d.Recent)),
		Range:            d.Range,
	}
	for _, p := range d.Projects {
		vm.Projects = append(vm.Projects, ProjectVM{
			ID:           p.ID,
			Name:         p.Name,
			Color:        p.Color,
			TotalSeconds: d.ProjectTotals[p.ID],
		})
	}
	for _, sp := range d.Recent {
		vm.RecentSessions = append(vm.RecentSessions, sessionVM(sp, now))
	}
	if d.ActiveSession != nil && d.ActiveProject != nil {
		active := activeSessionVM(d.ActiveSession, d.ActiveProject)
		vm.ActiveSession = &active
	}
	return vm
}

func sessionVM(sp *repository.SessionWithProject, now time.Time) SessionVM {
	s := sp.Session
	vm := SessionVM{
		ID: s.ID,
		Project: ProjectRefVM{
			ID:    s.ProjectID,
			Name:  sp.ProjectName,
			Color: sp.ProjectColor,
		},
		StartedAt:         s.StartedAt.UTC().Format(time.RFC3339),
		FormattedDuration: domain.FormatHMS(s.ElapsedSeconds(now)),
		Note:              s.Note,
	}
	if s.EndedAt != nil {
		vm.EndedAt = s.EndedAt.UTC().Format(time.RFC3339)
		vm.EndedAgo = domain.FormatRelative(*s.EndedAt, now)
	}
	if s.DurationSeconds != nil {
		vm.DurationSeconds = *s.DurationSeconds
	}
	return vm
}

func activeSessionVM(s *domain.Session, p *domain.Project) ActiveSessionVM {
	return ActiveSessionVM{
		ID:        s.ID,
		StartedAt: s.StartedAt.UTC().Format(time.RFC3339),
		Project: ProjectRefVM{
			ID:    p.ID,
			Name:  p.Name,
			Color: p.Color,
		},
	}
}

func emptyIfNil(totals []service.ProjectTotal) []service.ProjectTotal {
	if totals == nil {
		return []service.ProjectTotal{}
	}
	return totals
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
