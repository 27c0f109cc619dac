package content

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"wordrep/internal/domain"
	"wordrep/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// deckEntry is one vocabulary item in the seed file.
type deckEntry struct {
	Term        string `json:"term"`
	Translation string `json:"translation"`
}

// Loader seeds word records from a JSON deck file.
type Loader struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewLoader creates a new deck loader
func NewLoader(wordRepo repository.WordRepository, logger *zap.Logger) *Loader {
	return &Loader{
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// Seed reads the deck file and creates one word record per entry not
// yet present. Re-running against the same file is a no-op for words
// that already exist, so learning state is never clobbered.
func (l *Loader) Seed(path string, now time.Time) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read deck file: %w", err)
	}

	var entries []deckEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("parse deck file: %w", err)
	}

	added := 0
	for _, e := range entries {
		if e.Term == "" || e.Translation == "" {
			l.logger.Warn("Skipping deck entry with empty field", zap.String("term", e.Term))
			continue
		}

		exists, err := l.wordRepo.TermExists(e.Term)
		if err != nil {
			return added, fmt.Errorf("check term %q: %w", e.Term, err)
		}
		if exists {
			continue
		}

		word := &domain.WordRecord{
			ID:          uuid.NewString(),
			Term:        e.Term,
			Translation: e.Translation,
			Mastery:     domain.MasteryNew,
			CreatedAt:   now,
		}
		if err := l.wordRepo.InsertWord(word); err != nil {
			return added, fmt.Errorf("insert word %q: %w", e.Term, err)
		}
		added++
	}

	l.logger.Info("Deck seeded", zap.Int("entries", len(entries)), zap.Int("added", added))
	return added, nil
}
