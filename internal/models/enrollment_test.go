package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestResolveCompletionRatioClamps(t *testing.T) {
	assert.Equal(t, 1.0, (&TaskStats{CompletionRatio: floatPtr(1.5)}).ResolveCompletionRatio())
	assert.Equal(t, 0.0, (&TaskStats{CompletionRatio: floatPtr(-0.2)}).ResolveCompletionRatio())
	assert.Equal(t, 0.6, (&TaskStats{CompletionRatio: floatPtr(0.6)}).ResolveCompletionRatio())
}

func TestResolveCompletionRatioFallsBackToSuccess(t *testing.T) {
	assert.Equal(t, 1.0, (&TaskStats{Success: boolPtr(true)}).ResolveCompletionRatio())
	assert.Equal(t, 0.0, (&TaskStats{Success: boolPtr(false)}).ResolveCompletionRatio())
	assert.Equal(t, 0.0, (&TaskStats{}).ResolveCompletionRatio())
}

func TestResolveScoreRatioFallsBackToCompletion(t *testing.T) {
	stats := &TaskStats{CompletionRatio: floatPtr(0.4)}
	assert.Equal(t, 0.4, stats.ResolveScoreRatio())

	stats = &TaskStats{ScoreRatio: floatPtr(0.9), CompletionRatio: floatPtr(0.4)}
	assert.Equal(t, 0.9, stats.ResolveScoreRatio())
}

func TestIsCompleted(t *testing.T) {
	assert.True(t, (&TaskStats{Success: boolPtr(true)}).IsCompleted())
	assert.True(t, (&TaskStats{CompletionRatio: floatPtr(1.0)}).IsCompleted())
	assert.True(t, (&TaskStats{CompletionRatio: floatPtr(0.5)}).IsCompleted())
	assert.False(t, (&TaskStats{CompletionRatio: floatPtr(0.5), ScoreRatio: floatPtr(0.0)}).IsCompleted())
	assert.True(t, (&TaskStats{ScoreRatio: floatPtr(0.3)}).IsCompleted())
	assert.False(t, (&TaskStats{}).IsCompleted())
}

func TestIsFullyCorrect(t *testing.T) {
	assert.True(t, (&TaskStats{ScoreRatio: floatPtr(1.0)}).IsFullyCorrect())
	assert.False(t, (&TaskStats{ScoreRatio: floatPtr(0.99)}).IsFullyCorrect())
}
