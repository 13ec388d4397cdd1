package service

import (
	"sort"
	"time"

	"github.com/mpb/coaching-dashboard/internal/domain"
)

// Dashboard reductions. Everything in this file is a pure function over
// already-fetched record sets; callers may run them concurrently over
// independent slices.

// CountObservationsInWindow counts observations whose date falls in
// [start, end], both bounds included.
func CountObservationsInWindow(observations []*domain.Observation, start, end time.Time) int {
	count := 0
	for _, obs := range observations {
		if domain.InWindow(obs.ObservationDate, start, end) {
			count++
		}
	}
	return count
}

func CountActivePlans(plans []*domain.DevelopmentPlan) int {
	count := 0
	for _, plan := range plans {
		if plan.Active {
			count++
		}
	}
	return count
}

// CountHighPerformers counts players whose skill level meets threshold.
func CountHighPerformers(players []*domain.Player, threshold float64) int {
	count := 0
	for _, player := range players {
		if player.SkillLevel >= threshold {
			count++
		}
	}
	return count
}

// WeekBucket is one point of the weekly activity series.
type WeekBucket struct {
	WeekStart time.Time `json:"weekStart"`
	Count     int       `json:"count"`
}

// GroupObservationsByCalendarWeek buckets observations by the Monday that
// starts their week, ordered chronologically. Weeks with no observations
// are not synthesized; use DenseWeeklySeries when a chart needs continuity.
func GroupObservationsByCalendarWeek(observations []*domain.Observation) []WeekBucket {
	counts := make(map[time.Time]int)
	for _, obs := range observations {
		counts[domain.WeekStart(obs.ObservationDate)]++
	}

	buckets := make([]WeekBucket, 0, len(counts))
	for weekStart, count := range counts {
		buckets = append(buckets, WeekBucket{WeekStart: weekStart, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].WeekStart.Before(buckets[j].WeekStart)
	})
	return buckets
}

// DenseWeeklySeries is the zero-filled variant: one bucket per calendar
// week from the week containing `from` through the week containing `to`,
// inclusive, counting only observations inside each week.
func DenseWeeklySeries(observations []*domain.Observation, from, to time.Time) []WeekBucket {
	if to.Before(from) {
		return nil
	}

	counts := make(map[time.Time]int)
	for _, obs := range observations {
		counts[domain.WeekStart(obs.ObservationDate)]++
	}

	var buckets []WeekBucket
	last := domain.WeekStart(to)
	for week := domain.WeekStart(from); !week.After(last); week = week.AddDate(0, 0, 7) {
		buckets = append(buckets, WeekBucket{WeekStart: week, Count: counts[week]})
	}
	return buckets
}

// ComputePeriodAverages returns the arithmetic mean of metric over the
// players admitted by include. An empty filtered set yields 0, never NaN.
func ComputePeriodAverages(players []*domain.Player, metric func(*domain.Player) float64, include func(*domain.Player) bool) float64 {
	sum := 0.0
	n := 0
	for _, player := range players {
		if include(player) {
			sum += metric(player)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// LastObservedSince admits players whose last observation date is at or
// after start. Players never observed are excluded.
func LastObservedSince(start time.Time) func(*domain.Player) bool {
	return func(p *domain.Player) bool {
		return p.LastObservationDate != nil && !p.LastObservationDate.Before(start)
	}
}

// LastObservedBetween admits players whose last observation date falls in
// [start, end). Players never observed are excluded.
func LastObservedBetween(start, end time.Time) func(*domain.Player) bool {
	return func(p *domain.Player) bool {
		if p.LastObservationDate == nil {
			return false
		}
		d := *p.LastObservationDate
		return !d.Before(start) && d.Before(end)
	}
}
