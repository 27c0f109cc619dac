package testutil

import (
	"time"

	"wordrep/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a never-studied word record
func NewTestWord(id, term, translation string) *domain.WordRecord {
	return &domain.WordRecord{
		ID:          id,
		Term:        term,
		Translation: translation,
		Mastery:     domain.MasteryNew,
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// NewScheduledWord creates a word record with a review scheduled at the
// given time
func NewScheduledWord(id string, mastery domain.MasteryLevel, next time.Time) *domain.WordRecord {
	w := NewTestWord(id, "term-"+id, "translation-"+id)
	w.Mastery = mastery
	w.TimesStudied = 1
	if mastery != domain.MasteryNew {
		w.TimesCorrect = 1
		w.ConsecutiveCorrect = 1
	}
	w.IntervalDays = 1
	w.NextReview = &next
	return w
}

// NewTestStats creates user stats with the given streak state
func NewTestStats(streak int, lastStudy *time.Time, freezes int) *domain.UserStats {
	longest := streak
	return &domain.UserStats{
		CurrentStreak: streak,
		LongestStreak: longest,
		LastStudyDate: lastStudy,
		StreakFreezes: freezes,
	}
}

// DayPtr returns a pointer to the day-truncated time
func DayPtr(t time.Time) *time.Time {
	d := domain.DayOf(t)
	return &d
}
