package domain_test

import (
	"testing"
	"time"

	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	// 2025-06-11 is a Wednesday; its week starts Monday 2025-06-09
	assert.Equal(t, date(2025, 6, 9, 0, 0), domain.WeekStart(date(2025, 6, 11, 15, 30)))

	// Monday maps to itself
	assert.Equal(t, date(2025, 6, 9, 0, 0), domain.WeekStart(date(2025, 6, 9, 0, 0)))

	// Sunday belongs to the week that started the previous Monday
	assert.Equal(t, date(2025, 6, 9, 0, 0), domain.WeekStart(date(2025, 6, 15, 23, 59)))
}

func TestWeekEnd(t *testing.T) {
	end := domain.WeekEnd(date(2025, 6, 11, 15, 30))
	assert.Equal(t, time.Date(2025, 6, 15, 23, 59, 59, 999000000, time.UTC), end)
}

func TestInWindow_WeekBoundaries(t *testing.T) {
	start := domain.WeekStart(date(2025, 6, 11, 0, 0))
	end := domain.WeekEnd(date(2025, 6, 11, 0, 0))

	lastSundayInstant := time.Date(2025, 6, 15, 23, 59, 59, 999000000, time.UTC)
	nextMonday := date(2025, 6, 16, 0, 0)

	assert.True(t, domain.InWindow(lastSundayInstant, start, end))
	assert.False(t, domain.InWindow(nextMonday, start, end))

	// the excluded Monday starts the following week
	nextStart := domain.WeekStart(nextMonday)
	assert.True(t, domain.InWindow(nextMonday, nextStart, domain.WeekEnd(nextMonday)))
}

func TestDaysAgo(t *testing.T) {
	now := date(2025, 6, 30, 12, 0)
	assert.Equal(t, date(2025, 5, 31, 12, 0), domain.DaysAgo(now, 30))
}

func TestDaysRemaining(t *testing.T) {
	now := date(2025, 6, 1, 12, 0)

	assert.Equal(t, 14, domain.DaysRemaining(now, date(2025, 6, 15, 12, 0)))
	// partial days round up
	assert.Equal(t, 1, domain.DaysRemaining(now, date(2025, 6, 2, 0, 0)))
	// past deadlines go negative
	assert.Equal(t, -2, domain.DaysRemaining(now, date(2025, 5, 30, 12, 0)))
}

func TestPeriodContains(t *testing.T) {
	now := date(2025, 6, 20, 0, 0)
	start := date(2025, 6, 1, 0, 0)
	end := date(2025, 6, 10, 0, 0)

	archived := &domain.DevelopmentPlan{StartDate: start, EndDate: &end}
	assert.True(t, archived.PeriodContains(date(2025, 6, 1, 0, 0), now), "start is included")
	assert.True(t, archived.PeriodContains(date(2025, 6, 9, 23, 59), now))
	assert.False(t, archived.PeriodContains(end, now), "end is excluded")
	assert.False(t, archived.PeriodContains(date(2025, 5, 31, 23, 59), now))

	active := &domain.DevelopmentPlan{StartDate: end, Active: true}
	assert.True(t, active.PeriodContains(date(2025, 6, 15, 0, 0), now))
	assert.False(t, active.PeriodContains(now, now), "open end is bounded by now")
}
