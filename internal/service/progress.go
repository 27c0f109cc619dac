package service

import (
	"fmt"
	"time"

	"wordrep/internal/domain"
	"wordrep/internal/repository"

	"go.uber.org/zap"
)

// streakFreezeInterval is the streak length granting one freeze token.
const streakFreezeInterval = 7

// ProgressService folds sessions into daily totals and maintains
// streak state
type ProgressService struct {
	progressRepo repository.ProgressRepository
	wordRepo     repository.WordRepository
	logger       *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo repository.ProgressRepository, wordRepo repository.WordRepository, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		wordRepo:     wordRepo,
		logger:       logger,
	}
}

// FoldSessionIntoDay adds a finished session to today's record and
// recomputes streak state. Safe to call for multiple sessions on the
// same day; the streak extends at most once per calendar day. A
// session with no reviewed words is a no-op: it neither writes the day
// record nor extends the streak.
func (s *ProgressService) FoldSessionIntoDay(summary domain.SessionSummary, now time.Time) (*domain.DailyProgress, *domain.UserStats, error) {
	day := domain.DayOf(now)

	if summary.TotalReviewed == 0 {
		return s.currentDay(day)
	}

	stats, err := s.progressRepo.GetUserStats()
	if err != nil {
		return nil, nil, fmt.Errorf("load user stats: %w", err)
	}

	extendStreak(stats, now)
	stats.TotalWordsLearned += summary.LearnedCount

	// The versioned stats write goes first: a conflict aborts the fold
	// before any day totals are committed, so a retry cannot
	// double-count the session.
	if err := s.progressRepo.SaveUserStats(stats); err != nil {
		return nil, nil, fmt.Errorf("save user stats: %w", err)
	}

	delta := &domain.DailyProgress{
		Date:             day,
		WordsLearned:     summary.LearnedCount,
		WordsReviewed:    summary.TotalReviewed,
		StudyTimeSeconds: summary.DurationSeconds,
	}
	if err := s.progressRepo.AddDailyProgress(delta); err != nil {
		return nil, nil, fmt.Errorf("add daily progress: %w", err)
	}

	progress, err := s.progressRepo.GetDailyProgress(day)
	if err != nil {
		return nil, nil, fmt.Errorf("load daily progress: %w", err)
	}
	if progress == nil {
		progress = delta
	}

	s.logger.Info("Session folded into day",
		zap.String("day", domain.DateString(now)),
		zap.Int("streak", stats.CurrentStreak),
		zap.Int("words_reviewed", progress.WordsReviewed),
	)
	return progress, stats, nil
}

// currentDay returns the day record and stats without mutating either.
func (s *ProgressService) currentDay(day time.Time) (*domain.DailyProgress, *domain.UserStats, error) {
	progress, err := s.progressRepo.GetDailyProgress(day)
	if err != nil {
		return nil, nil, fmt.Errorf("load daily progress: %w", err)
	}
	if progress == nil {
		progress = &domain.DailyProgress{Date: day}
	}
	stats, err := s.progressRepo.GetUserStats()
	if err != nil {
		return nil, nil, fmt.Errorf("load user stats: %w", err)
	}
	return progress, stats, nil
}

// extendStreak updates streak state for a study event at the given
// moment. Keyed off calendar-day transitions of LastStudyDate, so
// repeated sessions within one day are idempotent.
func extendStreak(stats *domain.UserStats, now time.Time) {
	today := domain.DayOf(now)

	switch {
	case stats.LastStudyDate == nil:
		stats.CurrentStreak = 1
	case domain.SameDay(*stats.LastStudyDate, now):
		return
	case domain.DaysBetween(*stats.LastStudyDate, now) == 1:
		stats.CurrentStreak++
	default:
		stats.CurrentStreak = 1
	}
	stats.LastStudyDate = &today

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	if stats.CurrentStreak > 0 && stats.CurrentStreak%streakFreezeInterval == 0 &&
		stats.StreakFreezes < domain.MaxStreakFreezes {
		stats.StreakFreezes++
	}
}

// UseStreakFreeze spends one freeze token to bridge a single missed
// day: LastStudyDate moves to yesterday so the next fold extends the
// streak instead of resetting it. Returns false when no freeze is
// applicable (no tokens, or the gap is not exactly one missed day).
func (s *ProgressService) UseStreakFreeze(now time.Time) (bool, error) {
	stats, err := s.progressRepo.GetUserStats()
	if err != nil {
		return false, fmt.Errorf("load user stats: %w", err)
	}

	if stats.StreakFreezes <= 0 || stats.LastStudyDate == nil {
		return false, nil
	}
	if domain.DaysBetween(*stats.LastStudyDate, now) != 2 {
		return false, nil
	}

	yesterday := domain.DayOf(now).AddDate(0, 0, -1)
	stats.StreakFreezes--
	stats.LastFreezeUsed = &now
	stats.LastStudyDate = &yesterday

	// Single write keeps spending the token and bridging the gap atomic.
	if err := s.progressRepo.SaveUserStats(stats); err != nil {
		return false, fmt.Errorf("save user stats: %w", err)
	}

	s.logger.Info("Streak freeze used",
		zap.Int("remaining", stats.StreakFreezes),
		zap.Int("streak", stats.CurrentStreak),
	)
	return true, nil
}

// ResetProgress clears all learning state: per-word counters and
// scheduling, daily history and user stats. Word content is retained.
func (s *ProgressService) ResetProgress() error {
	s.logger.Info("Resetting learning progress")

	if err := s.wordRepo.ResetLearningState(); err != nil {
		return fmt.Errorf("reset word state: %w", err)
	}
	if err := s.progressRepo.ClearDailyHistory(); err != nil {
		return fmt.Errorf("clear daily history: %w", err)
	}
	if err := s.progressRepo.ResetUserStats(); err != nil {
		return fmt.Errorf("reset user stats: %w", err)
	}
	return nil
}
