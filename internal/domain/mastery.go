package domain

// MasteryLevel classifies how well a word is retained.
// Levels form an ordered lattice; transitions move one step at a time.
type MasteryLevel int

const (
	MasteryNew MasteryLevel = iota
	MasteryLearning
	MasteryReviewing
	MasteryMastered
)

// Next returns the level one step up, clamped at Mastered.
func (m MasteryLevel) Next() MasteryLevel {
	if m >= MasteryMastered {
		return MasteryMastered
	}
	return m + 1
}

// Prev returns the level one step down, clamped at New.
func (m MasteryLevel) Prev() MasteryLevel {
	if m <= MasteryNew {
		return MasteryNew
	}
	return m - 1
}

func (m MasteryLevel) String() string {
	switch m {
	case MasteryNew:
		return "new"
	case MasteryLearning:
		return "learning"
	case MasteryReviewing:
		return "reviewing"
	case MasteryMastered:
		return "mastered"
	default:
		return "unknown"
	}
}

// ParseMasteryLevel converts a stored string back to a MasteryLevel.
// Unrecognized values map to MasteryNew.
func ParseMasteryLevel(s string) MasteryLevel {
	switch s {
	case "learning":
		return MasteryLearning
	case "reviewing":
		return MasteryReviewing
	case "mastered":
		return MasteryMastered
	default:
		return MasteryNew
	}
}

// Outcome is the result of a single review answer.
type Outcome int

const (
	// OutcomeUnknown means the user failed to recall the word.
	OutcomeUnknown Outcome = iota
	// OutcomeKnown means the user recalled the word.
	OutcomeKnown
	// OutcomeEasy means the user recalled the word effortlessly.
	// Treated as a stronger positive signal than OutcomeKnown.
	OutcomeEasy
)

// Correct reports whether the outcome counts as a successful recall.
func (o Outcome) Correct() bool {
	return o == OutcomeKnown || o == OutcomeEasy
}

func (o Outcome) String() string {
	switch o {
	case OutcomeKnown:
		return "known"
	case OutcomeEasy:
		return "easy"
	default:
		return "unknown"
	}
}
