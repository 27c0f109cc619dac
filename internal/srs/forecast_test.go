package srs

import (
	"testing"
	"time"

	"wordrep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledAt(id string, due time.Time) domain.WordRecord {
	return domain.WordRecord{ID: id, Mastery: domain.MasteryLearning, NextReview: &due}
}

func TestForecast(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)

	words := []domain.WordRecord{
		scheduledAt("a", now.Add(-30*time.Hour)),                          // overdue → day 0
		scheduledAt("b", now.Add(2*time.Hour)),                            // later today → day 0
		scheduledAt("c", time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)),    // midnight → day 1 (inclusive lower bound)
		scheduledAt("d", time.Date(2024, 6, 16, 23, 59, 0, 0, time.UTC)),  // day 1
		scheduledAt("e", time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC)),    // beyond 3-day horizon
		{ID: "f", Mastery: domain.MasteryNew},                             // unscheduled, never counted
	}

	forecast := Forecast(words, now, 3)
	require.Len(t, forecast, 3)

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), forecast[0].Day)
	assert.Equal(t, 2, forecast[0].Due)
	assert.Equal(t, 2, forecast[1].Due)
	assert.Equal(t, 0, forecast[2].Due)
}

func TestForecast_EmptyHorizon(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)
	words := []domain.WordRecord{scheduledAt("a", now)}

	assert.Nil(t, Forecast(words, now, 0))
	assert.Nil(t, Forecast(words, now, -1))
}

func TestForecast_NoWords(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)

	forecast := Forecast(nil, now, 2)
	require.Len(t, forecast, 2)
	assert.Equal(t, 0, forecast[0].Due)
	assert.Equal(t, 0, forecast[1].Due)
}
