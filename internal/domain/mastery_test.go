package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasteryLevel_Next(t *testing.T) {
	tests := []struct {
		name     string
		level    MasteryLevel
		expected MasteryLevel
	}{
		{
			name:     "new advances to learning",
			level:    MasteryNew,
			expected: MasteryLearning,
		},
		{
			name:     "learning advances to reviewing",
			level:    MasteryLearning,
			expected: MasteryReviewing,
		},
		{
			name:     "reviewing advances to mastered",
			level:    MasteryReviewing,
			expected: MasteryMastered,
		},
		{
			name:     "mastered is the ceiling",
			level:    MasteryMastered,
			expected: MasteryMastered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.Next())
		})
	}
}

func TestMasteryLevel_Prev(t *testing.T) {
	tests := []struct {
		name     string
		level    MasteryLevel
		expected MasteryLevel
	}{
		{
			name:     "mastered demotes to reviewing",
			level:    MasteryMastered,
			expected: MasteryReviewing,
		},
		{
			name:     "reviewing demotes to learning",
			level:    MasteryReviewing,
			expected: MasteryLearning,
		},
		{
			name:     "learning demotes to new",
			level:    MasteryLearning,
			expected: MasteryNew,
		},
		{
			name:     "new is the floor",
			level:    MasteryNew,
			expected: MasteryNew,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.Prev())
		})
	}
}

func TestParseMasteryLevel(t *testing.T) {
	levels := []MasteryLevel{MasteryNew, MasteryLearning, MasteryReviewing, MasteryMastered}
	for _, level := range levels {
		assert.Equal(t, level, ParseMasteryLevel(level.String()))
	}

	// Unrecognized values fall back to new
	assert.Equal(t, MasteryNew, ParseMasteryLevel("garbage"))
	assert.Equal(t, MasteryNew, ParseMasteryLevel(""))
}

func TestOutcome_Correct(t *testing.T) {
	assert.True(t, OutcomeKnown.Correct())
	assert.True(t, OutcomeEasy.Correct())
	assert.False(t, OutcomeUnknown.Correct())
}
