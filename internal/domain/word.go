package domain

import "time"

// WordRecord holds a vocabulary item together with its learning state.
// Content fields (Term, Translation) survive a progress reset; the
// learning state is mutated only through the review flow.
type WordRecord struct {
	ID                 string
	Term               string
	Translation        string
	TimesStudied       int
	TimesCorrect       int
	ConsecutiveCorrect int
	Mastery            MasteryLevel
	IntervalDays       int
	NextReview         *time.Time // nil until the word is first studied
	LastStudied        *time.Time
	CreatedAt          time.Time
	Version            int
}

// Scheduled reports whether the word has ever been scheduled for review.
func (w *WordRecord) Scheduled() bool {
	return w.NextReview != nil
}

// Due reports whether the word's review time has arrived.
// Unscheduled words are never due.
func (w *WordRecord) Due(now time.Time) bool {
	return w.NextReview != nil && !w.NextReview.After(now)
}

// Overdue reports whether a non-new word's review time has passed.
func (w *WordRecord) Overdue(now time.Time) bool {
	return w.Due(now) && w.Mastery != MasteryNew
}

// DueSoon reports whether the word comes due within the next 24 hours.
func (w *WordRecord) DueSoon(now time.Time) bool {
	if w.NextReview == nil {
		return false
	}
	return w.NextReview.After(now) && !w.NextReview.After(now.Add(24*time.Hour))
}

// Accuracy returns the lifetime correct ratio, 0 for never-studied words.
func (w *WordRecord) Accuracy() float64 {
	if w.TimesStudied == 0 {
		return 0
	}
	return float64(w.TimesCorrect) / float64(w.TimesStudied)
}
