package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"wordrep/internal/domain"
	"wordrep/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_Seed(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	path := writeDeck(t, `[
		{"term": "huis", "translation": "house"},
		{"term": "fiets", "translation": "bicycle"}
	]`)

	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("TermExists", "huis").Return(false, nil)
	mockRepo.On("TermExists", "fiets").Return(false, nil)
	mockRepo.On("InsertWord", mock.MatchedBy(func(w *domain.WordRecord) bool {
		return w.ID != "" && w.Mastery == domain.MasteryNew && w.NextReview == nil
	})).Return(nil).Twice()

	loader := NewLoader(mockRepo, testutil.NewTestLogger())
	added, err := loader.Seed(path, now)

	require.NoError(t, err)
	assert.Equal(t, 2, added)
	mockRepo.AssertExpectations(t)
}

func TestLoader_Seed_SkipsExistingWords(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	path := writeDeck(t, `[
		{"term": "huis", "translation": "house"},
		{"term": "fiets", "translation": "bicycle"}
	]`)

	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("TermExists", "huis").Return(true, nil)
	mockRepo.On("TermExists", "fiets").Return(false, nil)
	mockRepo.On("InsertWord", mock.AnythingOfType("*domain.WordRecord")).Return(nil).Once()

	loader := NewLoader(mockRepo, testutil.NewTestLogger())
	added, err := loader.Seed(path, now)

	require.NoError(t, err)
	assert.Equal(t, 1, added, "re-seeding must not clobber existing words")
	mockRepo.AssertExpectations(t)
}

func TestLoader_Seed_SkipsInvalidEntries(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	path := writeDeck(t, `[
		{"term": "", "translation": "house"},
		{"term": "fiets", "translation": ""}
	]`)

	mockRepo := new(testutil.MockWordRepository)

	loader := NewLoader(mockRepo, testutil.NewTestLogger())
	added, err := loader.Seed(path, now)

	require.NoError(t, err)
	assert.Equal(t, 0, added)
	mockRepo.AssertNotCalled(t, "InsertWord", mock.Anything)
}

func TestLoader_Seed_FileErrors(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	loader := NewLoader(new(testutil.MockWordRepository), testutil.NewTestLogger())

	_, err := loader.Seed(filepath.Join(t.TempDir(), "missing.json"), now)
	assert.Error(t, err)

	path := writeDeck(t, `{not json`)
	_, err = loader.Seed(path, now)
	assert.Error(t, err)
}
