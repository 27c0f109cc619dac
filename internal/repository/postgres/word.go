package postgres

import (
	"database/sql"
	"time"

	"wordrep/internal/domain"
	"wordrep/internal/repository"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

const wordColumns = `id, term, translation, times_studied, times_correct,
		consecutive_correct, mastery, interval_days, next_review, last_studied,
		created_at, version`

// GetWord loads one word record by id
func (r *WordRepo) GetWord(id string) (*domain.WordRecord, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE id = $1
	`
	w, err := scanWord(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrWordNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// InsertWord stores a new word record
func (r *WordRepo) InsertWord(w *domain.WordRecord) error {
	query := `
		INSERT INTO words (id, term, translation, mastery, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query, w.ID, w.Term, w.Translation, w.Mastery.String(), w.CreatedAt)
	return err
}

// TermExists reports whether a word with the given term is already stored
func (r *WordRepo) TermExists(term string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM words WHERE term = $1)`
	err := r.db.QueryRow(query, term).Scan(&exists)
	return exists, err
}

// UpdateWord persists the learning state of a word record.
// Uses the version column for optimistic locking; a lost update
// surfaces as repository.ErrConflict.
func (r *WordRepo) UpdateWord(w *domain.WordRecord) error {
	query := `
		UPDATE words
		SET times_studied = $1, times_correct = $2, consecutive_correct = $3,
			mastery = $4, interval_days = $5, next_review = $6, last_studied = $7,
			version = version + 1
		WHERE id = $8 AND version = $9
	`
	res, err := r.db.Exec(query,
		w.TimesStudied, w.TimesCorrect, w.ConsecutiveCorrect,
		w.Mastery.String(), w.IntervalDays, nullTime(w.NextReview), nullTime(w.LastStudied),
		w.ID, w.Version,
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
	w.Version++
	return nil
}

// ListDue returns words whose next review time has arrived, ordered by
// next review time ascending with id as a deterministic tie-break.
// limit <= 0 disables the limit.
func (r *WordRepo) ListDue(now time.Time, limit int) ([]domain.WordRecord, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE next_review IS NOT NULL AND next_review <= $1
		ORDER BY next_review ASC, id ASC
	`
	args := []interface{}{now}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWords(rows)
}

// ListScheduled returns all words with a next review date set
func (r *WordRepo) ListScheduled() ([]domain.WordRecord, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE next_review IS NOT NULL
		ORDER BY next_review ASC, id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWords(rows)
}

// ListUnscheduled returns never-studied words in insertion order,
// used to introduce fresh vocabulary into a session.
// limit <= 0 disables the limit.
func (r *WordRepo) ListUnscheduled(limit int) ([]domain.WordRecord, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE next_review IS NULL
		ORDER BY created_at ASC, id ASC
	`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWords(rows)
}

// ResetLearningState clears counters, mastery and scheduling for all
// words while keeping the words themselves.
func (r *WordRepo) ResetLearningState() error {
	query := `
		UPDATE words
		SET times_studied = 0, times_correct = 0, consecutive_correct = 0,
			mastery = 'new', interval_days = 0, next_review = NULL,
			last_studied = NULL, version = version + 1
	`
	_, err := r.db.Exec(query)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWord(row rowScanner) (*domain.WordRecord, error) {
	var w domain.WordRecord
	var mastery string
	var nextReview, lastStudied sql.NullTime

	err := row.Scan(
		&w.ID, &w.Term, &w.Translation, &w.TimesStudied, &w.TimesCorrect,
		&w.ConsecutiveCorrect, &mastery, &w.IntervalDays, &nextReview, &lastStudied,
		&w.CreatedAt, &w.Version,
	)
	if err != nil {
		return nil, err
	}

	w.Mastery = domain.ParseMasteryLevel(mastery)
	if nextReview.Valid {
		w.NextReview = &nextReview.Time
	}
	if lastStudied.Valid {
		w.LastStudied = &lastStudied.Time
	}
	return &w, nil
}

func collectWords(rows *sql.Rows) ([]domain.WordRecord, error) {
	var words []domain.WordRecord
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, *w)
	}
	return words, rows.Err()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
