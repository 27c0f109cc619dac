package domain

import "time"

// SessionStats accumulates answer events for one learning session.
// It is an ephemeral aggregate: finalized at session end and folded
// into DailyProgress, never persisted on its own.
type SessionStats struct {
	StartedAt     time.Time
	TotalReviewed int
	KnownCount    int
	UnknownCount  int
	LearnedCount  int
	finalized     bool
}

// NewSessionStats starts a session at the given moment.
func NewSessionStats(now time.Time) *SessionStats {
	return &SessionStats{StartedAt: now}
}

// RecordAnswer adds one answer event to the running counts.
// Answers after Finalize are ignored.
func (s *SessionStats) RecordAnswer(outcome Outcome) {
	if s.finalized {
		return
	}
	s.TotalReviewed++
	if outcome.Correct() {
		s.KnownCount++
	} else {
		s.UnknownCount++
	}
}

// RecordLearned notes that a word left the new state during this session.
func (s *SessionStats) RecordLearned() {
	if s.finalized {
		return
	}
	s.LearnedCount++
}

// Accuracy returns the known ratio, 0 when nothing was reviewed.
func (s *SessionStats) Accuracy() float64 {
	if s.TotalReviewed == 0 {
		return 0
	}
	return float64(s.KnownCount) / float64(s.TotalReviewed)
}

// WordsPerMinute returns the review speed for the given moment,
// 0 when no time has elapsed.
func (s *SessionStats) WordsPerMinute(now time.Time) float64 {
	elapsed := now.Sub(s.StartedAt).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.TotalReviewed) / (elapsed / 60)
}

// Finalize freezes the session and returns its read-only summary.
// Further RecordAnswer calls have no effect.
func (s *SessionStats) Finalize(now time.Time) SessionSummary {
	s.finalized = true
	return SessionSummary{
		TotalReviewed:   s.TotalReviewed,
		KnownCount:      s.KnownCount,
		UnknownCount:    s.UnknownCount,
		LearnedCount:    s.LearnedCount,
		Accuracy:        s.Accuracy(),
		DurationSeconds: int(now.Sub(s.StartedAt).Seconds()),
		WordsPerMinute:  s.WordsPerMinute(now),
	}
}

// SessionSummary is the immutable end-of-session report.
type SessionSummary struct {
	TotalReviewed   int
	KnownCount      int
	UnknownCount    int
	LearnedCount    int
	Accuracy        float64
	DurationSeconds int
	WordsPerMinute  float64
}
