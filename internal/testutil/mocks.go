package testutil

import (
	"time"

	"wordrep/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) GetWord(id string) (*domain.WordRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordRecord), args.Error(1)
}

func (m *MockWordRepository) InsertWord(w *domain.WordRecord) error {
	args := m.Called(w)
	return args.Error(0)
}

func (m *MockWordRepository) UpdateWord(w *domain.WordRecord) error {
	args := m.Called(w)
	return args.Error(0)
}

func (m *MockWordRepository) TermExists(term string) (bool, error) {
	args := m.Called(term)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) ListDue(now time.Time, limit int) ([]domain.WordRecord, error) {
	args := m.Called(now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordRecord), args.Error(1)
}

func (m *MockWordRepository) ListScheduled() ([]domain.WordRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordRecord), args.Error(1)
}

func (m *MockWordRepository) ListUnscheduled(limit int) ([]domain.WordRecord, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordRecord), args.Error(1)
}

func (m *MockWordRepository) ResetLearningState() error {
	args := m.Called()
	return args.Error(0)
}

// MockProgressRepository is a mock for ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetDailyProgress(day time.Time) (*domain.DailyProgress, error) {
	args := m.Called(day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyProgress), args.Error(1)
}

func (m *MockProgressRepository) AddDailyProgress(delta *domain.DailyProgress) error {
	args := m.Called(delta)
	return args.Error(0)
}

func (m *MockProgressRepository) GetUserStats() (*domain.UserStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockProgressRepository) SaveUserStats(s *domain.UserStats) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockProgressRepository) ClearDailyHistory() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockProgressRepository) ResetUserStats() error {
	args := m.Called()
	return args.Error(0)
}
