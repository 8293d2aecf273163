package service

import (
	"context"
	"testing"
	"time"

	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/adrianistaken/time-tracker/internal/repository"
	"github.com/adrianistaken/time-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeStart(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), RangeStart("today", now))
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), RangeStart("7d", now))
	assert.Equal(t, time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC), RangeStart("30d", now))

	// Unknown ranges fall back to 7 days.
	assert.Equal(t, RangeStart("7d", now), RangeStart("bogus", now))
	assert.Equal(t, RangeStart("7d", now), RangeStart("", now))
}

func TestStartOfWeekIsMonday(t *testing.T) {
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	// 2026-03-09 is a Monday; every day that week maps back to it.
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i).Add(13 * time.Hour)
		assert.Equal(t, monday, startOfWeek(day), "day %s", day.Weekday())
	}

	// Sunday belongs to the week that started six days earlier.
	sunday := time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), startOfWeek(sunday))
}

func TestDashboardTotals(t *testing.T) {
	users, projects, sessions, _ := setupRepos(t)
	ctx := context.Background()

	user := seedUser(t, users)
	p := seedProject(t, projects, user.ID, "Work")

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Two sessions today, one yesterday.
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, p.ID, today.Add(time.Hour), 3600)))
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, p.ID, today.Add(2*time.Hour), 1800)))
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, p.ID, today.Add(-20*time.Hour), 900)))

	svc := NewStatsService(sessions, projects)
	d, err := svc.Dashboard(ctx, user.ID, "7d")
	require.NoError(t, err)

	assert.Equal(t, 5400, d.TodaySeconds)
	assert.GreaterOrEqual(t, d.WeekSeconds, 5400)
	assert.Equal(t, "7d", d.Range)
	require.Len(t, d.Projects, 1)
	assert.Equal(t, 6300, d.ProjectTotals[p.ID])
	assert.Nil(t, d.ActiveSession)
}

func TestProjectBreakdown(t *testing.T) {
	users, projects, sessions, _ := setupRepos(t)
	ctx := context.Background()

	user := seedUser(t, users)
	work := seedProject(t, projects, user.ID, "Work")
	study := seedProject(t, projects, user.ID, "Study")

	now := time.Now().UTC()

	// Work: 3600 + 1800 + 900 = 6300. Study: 1200.
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, work.ID, now.Add(-30*time.Hour), 3600)))
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, work.ID, now.Add(-20*time.Hour), 1800)))
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, work.ID, now.Add(-10*time.Hour), 900)))
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, study.ID, now.Add(-8*time.Hour), 1200)))
	// Outside the 7d range: ignored.
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, study.ID, now.AddDate(0, 0, -10), 7200)))

	svc := NewStatsService(sessions, projects)
	d, err := svc.Dashboard(ctx, user.ID, "7d")
	require.NoError(t, err)

	require.Len(t, d.Breakdown, 2)
	assert.Equal(t, work.ID, d.Breakdown[0].ProjectID)
	assert.Equal(t, 6300, d.Breakdown[0].TotalSeconds)
	assert.Equal(t, "Work", d.Breakdown[0].Name)
	assert.Equal(t, study.ID, d.Breakdown[1].ProjectID)
	assert.Equal(t, 1200, d.Breakdown[1].TotalSeconds)

	// Group totals add up to the range-wide sum.
	rangeTotal := 0
	for _, g := range d.Breakdown {
		rangeTotal += g.TotalSeconds
	}
	assert.Equal(t, 6300+1200, rangeTotal)
}

func TestProjectBreakdownTieKeepsDiscoveryOrder(t *testing.T) {
	row := func(projectID, name string, seconds int) *repository.SessionWithProject {
		return &repository.SessionWithProject{
			Session:     domain.Session{ProjectID: projectID, DurationSeconds: &seconds},
			ProjectName: name,
		}
	}
	totals := breakdownByProject([]*repository.SessionWithProject{
		row("p1", "First", 600),
		row("p2", "Second", 600),
		row("p3", "Third", 1200),
	})

	require.Len(t, totals, 3)
	assert.Equal(t, "p3", totals[0].ProjectID)
	// Equal totals stay in the order their projects were first seen.
	assert.Equal(t, "p1", totals[1].ProjectID)
	assert.Equal(t, "p2", totals[2].ProjectID)
}

func TestDailyTrend(t *testing.T) {
	users, projects, sessions, _ := setupRepos(t)
	ctx := context.Background()

	user := seedUser(t, users)
	p := seedProject(t, projects, user.ID, "Work")

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// 1h today, 2h three days ago, 45m six days ago.
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, p.ID, today, 3600)))
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, p.ID, today.AddDate(0, 0, -3).Add(9*time.Hour), 7200)))
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, p.ID, today.AddDate(0, 0, -6).Add(9*time.Hour), 2700)))
	// Eight days ago: outside the window.
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, p.ID, today.AddDate(0, 0, -8), 9999)))

	svc := NewStatsService(sessions, projects)
	d, err := svc.Dashboard(ctx, user.ID, "7d")
	require.NoError(t, err)

	require.Len(t, d.Trend, 7, "always exactly 7 buckets")

	// Oldest first, contiguous dates, last bucket is today.
	for i, bucket := range d.Trend {
		wantDay := today.AddDate(0, 0, i-6)
		assert.Equal(t, wantDay.Format("2006-01-02"), bucket.FullDate, "bucket %d", i)
		assert.Equal(t, wantDay.Format("Jan 2"), bucket.Date, "bucket %d", i)
	}

	assert.Equal(t, 2700, d.Trend[0].Seconds)
	assert.Equal(t, 0.75, d.Trend[0].Hours)
	assert.Equal(t, 7200, d.Trend[3].Seconds)
	assert.Equal(t, 2.0, d.Trend[3].Hours)
	assert.Equal(t, 3600, d.Trend[6].Seconds)
	assert.Equal(t, 1.0, d.Trend[6].Hours)
	// Empty days are zero buckets, not gaps.
	assert.Equal(t, 0, d.Trend[1].Seconds)
}

func TestDailyTrendHoursRounding(t *testing.T) {
	users, projects, sessions, _ := setupRepos(t)
	ctx := context.Background()

	user := seedUser(t, users)
	p := seedProject(t, projects, user.ID, "Work")

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// 5000s = 1.3888...h, rounds to 1.39.
	require.NoError(t, sessions.Create(ctx, testutil.NewCompletedSession(user.ID, p.ID, today, 5000)))

	svc := NewStatsService(sessions, projects)
	d, err := svc.Dashboard(ctx, user.ID, "7d")
	require.NoError(t, err)

	assert.Equal(t, 1.39, d.Trend[6].Hours)
}

func TestRecentSessionsCappedAndOrdered(t *testing.T) {
	users, projects, sessions, _ := setupRepos(t)
	ctx := context.Background()

	user := seedUser(t, users)
	p := seedProject(t, projects, user.ID, "Work")

	base := time.Now().UTC().Add(-72 * time.Hour)
	for i := 0; i < 25; i++ {
		require.NoError(t, sessions.Create(ctx,
			testutil.NewCompletedSession(user.ID, p.ID, base.Add(time.Duration(i)*time.Hour), 600)))
	}

	svc := NewStatsService(sessions, projects)
	d, err := svc.Dashboard(ctx, user.ID, "7d")
	require.NoError(t, err)

	require.Len(t, d.Recent, RecentSessionLimit)
	for i := 1; i < len(d.Recent); i++ {
		prev := d.Recent[i-1].Session.EndedAt
		cur := d.Recent[i].Session.EndedAt
		assert.False(t, prev.Before(*cur), "recent sessions must be newest first")
	}
}

func TestDashboardReportsActiveSession(t *testing.T) {
	users, projects, sessions, _ := setupRepos(t)
	ctx := context.Background()

	user := seedUser(t, users)
	p := seedProject(t, projects, user.ID, "Work")
	running := testutil.NewActiveSession(user.ID, p.ID, time.Now().UTC().Add(-5*time.Minute))
	require.NoError(t, sessions.Create(ctx, running))

	svc := NewStatsService(sessions, projects)
	d, err := svc.Dashboard(ctx, user.ID, "7d")
	require.NoError(t, err)

	require.NotNil(t, d.ActiveSession)
	assert.Equal(t, running.ID, d.ActiveSession.ID)
	require.NotNil(t, d.ActiveProject)
	assert.Equal(t, p.ID, d.ActiveProject.ID)
}
