package service

import (
	"context"
	"math"
	"time"

	"github.com/adrianistaken/time-tracker/internal/repository"
)

type statsService struct {
	sessions repository.SessionRepo
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewStatsService(sessions repository.SessionRepo, projects repository.ProjectRepo, observers ...UseCaseObserver) StatsService {
	return &statsService{
		sessions: sessions,
		projects: projects,
		observer: useCaseObserverOrNoop(observers),
	}
}

// RangeStart resolves a named lookback window to its starting instant.
// Unrecognized ranges fall back to 7 days.
func RangeStart(rangeName string, now time.Time) time.Time {
	switch rangeName {
	case "today":
		return startOfDay(now)
	case "30d":
		return startOfDay(now.AddDate(0, 0, -30))
	default:
		return startOfDay(now.AddDate(0, 0, -7))
	}
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek truncates t to the preceding Monday at midnight.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func (s *statsService) Dashboard(ctx context.Context, userID, rangeName string) (*Dashboard, error) {
	started := time.Now()
	d, err := s.buildDashboard(ctx, userID, rangeName, time.Now())
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "stats.dashboard",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"range": rangeName},
		StartedAt: started,
	})
	return d, err
}

func (s *statsService) buildDashboard(ctx context.Context, userID, rangeName string, now time.Time) (*Dashboard, error) {
	d := &Dashboard{Range: rangeName, ProjectTotals: make(map[string]int)}

	projects, err := s.projects.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	d.Projects = projects
	for _, p := range projects {
		total, err := s.projects.TotalSeconds(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		d.ProjectTotals[p.ID] = total
	}

	endOfToday := startOfDay(now).AddDate(0, 0, 1)

	d.TodaySeconds, err = s.sessions.SumCompletedBetween(ctx, userID, startOfDay(now), endOfToday)
	if err != nil {
		return nil, err
	}
	d.WeekSeconds, err = s.sessions.SumCompletedBetween(ctx, userID, startOfWeek(now), endOfToday)
	if err != nil {
		return nil, err
	}

	inRange, err := s.sessions.ListCompletedSince(ctx, userID, RangeStart(rangeName, now))
	if err != nil {
		return nil, err
	}
	d.Breakdown = breakdownByProject(inRange)

	d.Trend, err = s.dailyTrend(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	d.Recent, err = s.sessions.ListRecentCompleted(ctx, userID, RecentSessionLimit)
	if err != nil {
		return nil, err
	}

	active, err := s.sessions.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		d.ActiveSession = active
		d.ActiveProject, err = s.projects.GetByID(ctx, active.ProjectID)
		if err != nil {
			return nil, err
		}
	}

	return d, nil
}

// RecentSessionLimit caps the dashboard history list.
const RecentSessionLimit = 20

// breakdownByProject groups completed sessions by project and sums their
// durations, sorted descending by total. Ties keep the order in which a
// project was first seen.
func breakdownByProject(sessions []*repository.SessionWithProject) []ProjectTotal {
	index := make(map[string]int)
	var totals []ProjectTotal

	for _, sp := range sessions {
		if sp.Session.DurationSeconds == nil {
			continue
		}
		i, seen := index[sp.Session.ProjectID]
		if !seen {
			i = len(totals)
			index[sp.Session.ProjectID] = i
			totals = append(totals, ProjectTotal{
				ProjectID: sp.Session.ProjectID,
				Name:      sp.ProjectName,
				Color:     sp.ProjectColor,
			})
		}
		totals[i].TotalSeconds += *sp.Session.DurationSeconds
	}

	// Insertion sort keeps discovery order between equal totals.
	for i := 1; i < len(totals); i++ {
		for j := i; j > 0 && totals[j].TotalSeconds > totals[j-1].TotalSeconds; j-- {
			totals[j], totals[j-1] = totals[j-1], totals[j]
		}
	}
	return totals
}

// dailyTrend returns the last 7 calendar days including today, oldest first.
// Buckets with no tracked time are zero, never omitted.
func (s *statsService) dailyTrend(ctx context.Context, userID string, now time.Time) ([]TrendBucket, error) {
	buckets := make([]TrendBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := startOfDay(now.AddDate(0, 0, -i))
		seconds, err := s.sessions.SumCompletedBetween(ctx, userID, day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, TrendBucket{
			Date:     day.Format("Jan 2"),
			FullDate: day.Format("2006-01-02"),
			Seconds:  seconds,
			Hours:    math.Round(float64(seconds)/3600*100) / 100,
		})
	}
	return buckets, nil
}
