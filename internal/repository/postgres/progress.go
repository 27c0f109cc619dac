package postgres

import (
	"database/sql"
	"time"

	"wordrep/internal/domain"
	"wordrep/internal/repository"
)

// ProgressRepo implements repository.ProgressRepository
type ProgressRepo struct {
	db *sql.DB
}

// NewProgressRepo creates a new progress repository
func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// GetDailyProgress returns the record for the given calendar day,
// or nil when the day has no record yet
func (r *ProgressRepo) GetDailyProgress(day time.Time) (*domain.DailyProgress, error) {
	var p domain.DailyProgress
	query := `
		SELECT date, words_learned, words_reviewed, study_time_seconds
		FROM daily_progress
		WHERE date = $1
	`
	err := r.db.QueryRow(query, dateKey(day)).Scan(
		&p.Date, &p.WordsLearned, &p.WordsReviewed, &p.StudyTimeSeconds,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AddDailyProgress adds a delta to the day record, creating it on
// first write. The upsert is additive so concurrent folds into the
// same day commute instead of overwriting each other.
func (r *ProgressRepo) AddDailyProgress(delta *domain.DailyProgress) error {
	query := `
		INSERT INTO daily_progress (date, words_learned, words_reviewed, study_time_seconds)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date)
		DO UPDATE SET
			words_learned = daily_progress.words_learned + EXCLUDED.words_learned,
			words_reviewed = daily_progress.words_reviewed + EXCLUDED.words_reviewed,
			study_time_seconds = daily_progress.study_time_seconds + EXCLUDED.study_time_seconds
	`
	_, err := r.db.Exec(query, dateKey(delta.Date), delta.WordsLearned, delta.WordsReviewed, delta.StudyTimeSeconds)
	return err
}

// GetUserStats loads the singleton stats row, returning zero-value
// stats before the first save
func (r *ProgressRepo) GetUserStats() (*domain.UserStats, error) {
	var s domain.UserStats
	var lastStudy, lastFreeze sql.NullTime
	query := `
		SELECT current_streak, longest_streak, last_study_date,
			total_words_learned, streak_freezes, last_freeze_used, version
		FROM user_stats
		WHERE id = 1
	`
	err := r.db.QueryRow(query).Scan(
		&s.CurrentStreak, &s.LongestStreak, &lastStudy,
		&s.TotalWordsLearned, &s.StreakFreezes, &lastFreeze, &s.Version,
	)
	if err == sql.ErrNoRows {
		return &domain.UserStats{}, nil
	}
	if err != nil {
		return nil, err
	}

	if lastStudy.Valid {
		s.LastStudyDate = &lastStudy.Time
	}
	if lastFreeze.Valid {
		s.LastFreezeUsed = &lastFreeze.Time
	}
	return &s, nil
}

// SaveUserStats writes the singleton stats row with optimistic locking.
// A lost update surfaces as repository.ErrConflict.
func (r *ProgressRepo) SaveUserStats(s *domain.UserStats) error {
	query := `
		INSERT INTO user_stats (id, current_streak, longest_streak, last_study_date,
			total_words_learned, streak_freezes, last_freeze_used, version)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7 + 1)
		ON CONFLICT (id)
		DO UPDATE SET current_streak = $1, longest_streak = $2, last_study_date = $3,
			total_words_learned = $4, streak_freezes = $5, last_freeze_used = $6,
			version = user_stats.version + 1
		WHERE user_stats.version = $7
	`
	res, err := r.db.Exec(query,
		s.CurrentStreak, s.LongestStreak, nullDate(s.LastStudyDate),
		s.TotalWordsLearned, s.StreakFreezes, nullTime(s.LastFreezeUsed), s.Version,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrConflict
	}
	s.Version++
	return nil
}

// ClearDailyHistory removes all daily progress records
func (r *ProgressRepo) ClearDailyHistory() error {
	_, err := r.db.Exec(`DELETE FROM daily_progress`)
	return err
}

// ResetUserStats clears the singleton stats row
func (r *ProgressRepo) ResetUserStats() error {
	_, err := r.db.Exec(`DELETE FROM user_stats WHERE id = 1`)
	return err
}

// dateKey renders a day for DATE columns as a plain YYYY-MM-DD string.
// Binding a time.Time would let the server's TimeZone setting shift
// the day key.
func dateKey(t time.Time) string {
	return domain.DayOf(t).Format("2006-01-02")
}

func nullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: dateKey(*t), Valid: true}
}
