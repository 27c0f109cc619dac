package service

import (
	"errors"
	"time"

	"wordrep/internal/domain"

	"go.uber.org/zap"
)

// ErrNoActiveSession means an answer or finalize call arrived with no
// session in progress.
var ErrNoActiveSession = errors.New("no active session")

// SessionService tracks the stats of the current learning session.
// One session is active at a time.
type SessionService struct {
	stats  *domain.SessionStats
	logger *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(logger *zap.Logger) *SessionService {
	return &SessionService{logger: logger}
}

// Start begins a new session, discarding any unfinalized one.
func (s *SessionService) Start(now time.Time) {
	s.stats = domain.NewSessionStats(now)
	s.logger.Info("Session started", zap.Time("started_at", now))
}

// RecordAnswer adds one answer event to the active session.
func (s *SessionService) RecordAnswer(outcome domain.Outcome) error {
	if s.stats == nil {
		return ErrNoActiveSession
	}
	s.stats.RecordAnswer(outcome)
	return nil
}

// RecordLearned notes that a word left the new state this session.
func (s *SessionService) RecordLearned() error {
	if s.stats == nil {
		return ErrNoActiveSession
	}
	s.stats.RecordLearned()
	return nil
}

// Finalize closes the active session and returns its summary.
func (s *SessionService) Finalize(now time.Time) (domain.SessionSummary, error) {
	if s.stats == nil {
		return domain.SessionSummary{}, ErrNoActiveSession
	}
	summary := s.stats.Finalize(now)
	s.stats = nil

	s.logger.Info("Session finalized",
		zap.Int("reviewed", summary.TotalReviewed),
		zap.Int("known", summary.KnownCount),
		zap.Int("unknown", summary.UnknownCount),
		zap.Float64("accuracy", summary.Accuracy),
		zap.Int("duration_seconds", summary.DurationSeconds),
	)
	return summary, nil
}
