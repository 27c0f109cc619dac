package domain

import "time"

// DailyProgress accumulates study results for one calendar day.
// Exactly one record exists per distinct day (upsert semantics).
type DailyProgress struct {
	Date             time.Time // day-truncated UTC
	WordsLearned     int
	WordsReviewed    int
	StudyTimeSeconds int
}

// MaxStreakFreezes bounds how many unused freezes a user can hold.
const MaxStreakFreezes = 3

// UserStats is the per-user study aggregate: streak state, freeze
// tokens and lifetime totals.
type UserStats struct {
	CurrentStreak     int
	LongestStreak     int
	LastStudyDate     *time.Time // day the streak was last extended, nil before first session
	TotalWordsLearned int
	StreakFreezes     int
	LastFreezeUsed    *time.Time
	Version           int
}

// StudiedOn reports whether the streak already covers the given day.
func (u *UserStats) StudiedOn(day time.Time) bool {
	return u.LastStudyDate != nil && SameDay(*u.LastStudyDate, day)
}
