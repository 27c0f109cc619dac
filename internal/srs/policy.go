package srs

import (
	"time"

	"wordrep/internal/domain"
)

// Policy holds the spacing and mastery-transition parameters.
// All transitions are deterministic given the same record and moment.
type Policy struct {
	// InitialIntervals are the review spacings, in days, for the first
	// consecutive correct answers. Later answers double the interval.
	InitialIntervals []int
	// MaxIntervalDays caps interval growth.
	MaxIntervalDays int
	// RetryDelay is how soon a failed word resurfaces.
	RetryDelay time.Duration
	// ReviewingStreak is the consecutive-correct run needed to move
	// from learning to reviewing.
	ReviewingStreak int
	// MasteryStreak and MasteryMinIntervalDays must both be met to
	// move from reviewing to mastered.
	MasteryStreak          int
	MasteryMinIntervalDays int
}

// DefaultPolicy returns the standard spacing parameters.
func DefaultPolicy() *Policy {
	return &Policy{
		InitialIntervals:       []int{1, 2, 4, 7, 15, 30},
		MaxIntervalDays:        365,
		RetryDelay:             4 * time.Hour,
		ReviewingStreak:        3,
		MasteryStreak:          7,
		MasteryMinIntervalDays: 21,
	}
}

// Result reports what an Apply call changed.
type Result struct {
	// LeftNew is true when this answer moved the word out of the new
	// state for the first time.
	LeftNew bool
	// Demoted is true when a failed answer lowered the mastery level.
	Demoted bool
}

// Apply processes one answer for a word record: updates counters,
// moves the mastery level at most one step, recomputes the interval
// and schedules the next review. The record is mutated in place.
func (p *Policy) Apply(w *domain.WordRecord, outcome domain.Outcome, now time.Time) Result {
	var res Result

	w.TimesStudied++
	w.LastStudied = &now

	if outcome.Correct() {
		w.TimesCorrect++
		w.ConsecutiveCorrect++

		before := w.Mastery
		w.Mastery = p.escalate(w)
		res.LeftNew = before == domain.MasteryNew && w.Mastery != domain.MasteryNew

		w.IntervalDays = p.nextInterval(w, outcome)
		next := now.Add(time.Duration(w.IntervalDays) * 24 * time.Hour)
		w.NextReview = &next
		return res
	}

	// Failed recall: the interval collapses to a short retry so the
	// word resurfaces within hours, and the spacing restarts near the
	// floor rather than at zero to avoid immediate re-queueing loops.
	w.ConsecutiveCorrect = 0
	switch w.Mastery {
	case domain.MasteryMastered, domain.MasteryReviewing:
		w.Mastery = w.Mastery.Prev()
		res.Demoted = true
	}
	w.IntervalDays = 1
	next := now.Add(p.RetryDelay)
	w.NextReview = &next
	return res
}

// escalate returns the mastery level after a correct answer,
// moving at most one step up the lattice.
func (p *Policy) escalate(w *domain.WordRecord) domain.MasteryLevel {
	switch w.Mastery {
	case domain.MasteryNew:
		return domain.MasteryLearning
	case domain.MasteryLearning:
		if w.ConsecutiveCorrect >= p.ReviewingStreak {
			return domain.MasteryReviewing
		}
	case domain.MasteryReviewing:
		if w.ConsecutiveCorrect >= p.MasteryStreak && w.IntervalDays >= p.MasteryMinIntervalDays {
			return domain.MasteryMastered
		}
	}
	return w.Mastery
}

// nextInterval grows the spacing after a correct answer: a fixed
// ladder for the early repetitions, then doubling, always capped.
func (p *Policy) nextInterval(w *domain.WordRecord, outcome domain.Outcome) int {
	var ivl int
	if n := w.ConsecutiveCorrect; n <= len(p.InitialIntervals) {
		ivl = p.InitialIntervals[n-1]
	} else {
		ivl = w.IntervalDays * 2
	}
	if outcome == domain.OutcomeEasy {
		ivl *= 2
	}
	if ivl > p.MaxIntervalDays {
		ivl = p.MaxIntervalDays
	}
	if ivl < 1 {
		ivl = 1
	}
	return ivl
}
