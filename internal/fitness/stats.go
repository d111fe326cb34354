package fitness

import (
	"sort"
	"time"
)

// ComputeStats derives statistics from the full history log. It is pure; the
// clock is a parameter so that streaks are testable.
func ComputeStats(history []CompletedSession, now time.Time) Stats {
	stats := Stats{
		TotalWorkouts:  len(history),
		WorkoutsByType: map[ExerciseType]int{},
		LastWorkout:    nil,
		StreakDays:     calculateStreakDays(history, now),
	}

	// The log is kept most-recent-first on insert, so the first entry is the
	// latest workout.
	if len(history) > 0 {
		last := history[0]
		stats.LastWorkout = &last
	}

	for _, session := range history {
		// Sessions without a type are excluded from the histogram.
		if session.Type != "" {
			stats.WorkoutsByType[session.Type]++
		}
	}

	return stats
}

// calculateStreakDays counts consecutive calendar days with at least one
// session, ending today or yesterday. Multiple sessions on the same day count
// as a single streak day: the walk deduplicates by calendar day before the
// consecutive-day check.
func calculateStreakDays(history []CompletedSession, now time.Time) int {
	if len(history) == 0 {
		return 0
	}

	days := uniqueDaysDescending(history)

	today := truncateToDay(now)
	yesterday := today.AddDate(0, 0, -1)
	if !days[0].Equal(today) && !days[0].Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}
	return streak
}

// uniqueDaysDescending returns the distinct calendar days present in history,
// most recent first.
func uniqueDaysDescending(history []CompletedSession) []time.Time {
	seen := make(map[time.Time]struct{}, len(history))
	days := make([]time.Time, 0, len(history))
	for _, session := range history {
		day := truncateToDay(session.Date)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
