package repository

import (
	"errors"
	"time"

	"wordrep/internal/domain"
)

// Sentinel errors surfaced by repositories. Check with errors.Is.
var (
	// ErrWordNotFound means the requested word id does not exist.
	ErrWordNotFound = errors.New("word not found")
	// ErrConflict means a concurrent writer updated the record first.
	// The operation is safe to retry after re-reading.
	ErrConflict = errors.New("concurrent update conflict")
)

// WordRepository defines word record data operations
type WordRepository interface {
	GetWord(id string) (*domain.WordRecord, error)
	InsertWord(w *domain.WordRecord) error
	UpdateWord(w *domain.WordRecord) error
	TermExists(term string) (bool, error)
	ListDue(now time.Time, limit int) ([]domain.WordRecord, error)
	ListScheduled() ([]domain.WordRecord, error)
	ListUnscheduled(limit int) ([]domain.WordRecord, error)
	ResetLearningState() error
}

// ProgressRepository defines daily-progress and user-stats operations
type ProgressRepository interface {
	GetDailyProgress(day time.Time) (*domain.DailyProgress, error)
	AddDailyProgress(delta *domain.DailyProgress) error
	GetUserStats() (*domain.UserStats, error)
	SaveUserStats(s *domain.UserStats) error
	ClearDailyHistory() error
	ResetUserStats() error
}
