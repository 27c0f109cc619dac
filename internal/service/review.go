package service

import (
	"fmt"
	"time"

	"wordrep/internal/domain"
	"wordrep/internal/repository"
	"wordrep/internal/srs"

	"go.uber.org/zap"
)

// ReviewService handles answer processing and review scheduling
type ReviewService struct {
	wordRepo repository.WordRepository
	policy   *srs.Policy
	logger   *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(wordRepo repository.WordRepository, policy *srs.Policy, logger *zap.Logger) *ReviewService {
	if policy == nil {
		policy = srs.DefaultPolicy()
	}
	return &ReviewService{
		wordRepo: wordRepo,
		policy:   policy,
		logger:   logger,
	}
}

// SubmitAnswer applies one answer to a word record and persists the
// updated state. Returns repository.ErrWordNotFound for unknown ids and
// repository.ErrConflict when a concurrent writer got there first.
func (s *ReviewService) SubmitAnswer(wordID string, outcome domain.Outcome, now time.Time) (*domain.WordRecord, srs.Result, error) {
	word, err := s.wordRepo.GetWord(wordID)
	if err != nil {
		return nil, srs.Result{}, fmt.Errorf("load word %s: %w", wordID, err)
	}

	res := s.policy.Apply(word, outcome, now)

	if err := s.wordRepo.UpdateWord(word); err != nil {
		return nil, srs.Result{}, fmt.Errorf("save word %s: %w", wordID, err)
	}

	s.logger.Debug("Answer processed",
		zap.String("word_id", word.ID),
		zap.String("outcome", outcome.String()),
		zap.String("mastery", word.Mastery.String()),
		zap.Int("interval_days", word.IntervalDays),
	)

	return word, res, nil
}

// DueWords returns words whose review time has arrived, earliest first.
// limit <= 0 means no limit. Unscheduled words are never returned.
func (s *ReviewService) DueWords(now time.Time, limit int) ([]domain.WordRecord, error) {
	return s.wordRepo.ListDue(now, limit)
}

// NewWords returns never-studied words for introduction into a
// session, oldest first. limit <= 0 means no limit.
func (s *ReviewService) NewWords(limit int) ([]domain.WordRecord, error) {
	return s.wordRepo.ListUnscheduled(limit)
}

// Forecast projects the review load for the next N days.
func (s *ReviewService) Forecast(now time.Time, days int) ([]srs.ForecastDay, error) {
	scheduled, err := s.wordRepo.ListScheduled()
	if err != nil {
		return nil, err
	}
	return srs.Forecast(scheduled, now, days), nil
}
