package textmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowly-app/budgeting_backend/internal/utils/textmatch"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "STARBUCKS", "starbucks"},
		{"collapses punctuation runs", "Trader Joe's #123", "trader joe s 123"},
		{"trims edges", "  whole foods  ", "whole foods"},
		{"empty", "", ""},
		{"only punctuation", "!!! ---", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, textmatch.Normalize(tc.input))
		})
	}
}

func TestSimilarityPercent(t *testing.T) {
	assert.Equal(t, float64(100), textmatch.SimilarityPercent("starbucks", "starbucks"))
	assert.Equal(t, float64(0), textmatch.SimilarityPercent("abc", "xyz"))
	assert.Equal(t, float64(0), textmatch.SimilarityPercent("", ""))

	// Partial overlap scores strictly between the extremes.
	partial := textmatch.SimilarityPercent("starbucks coffee", "starbucks")
	assert.Greater(t, partial, float64(55))
	assert.Less(t, partial, float64(100))
}

func TestSimilarityPercentIsOrderSensitive(t *testing.T) {
	// The recursive longest-common-substring match is not symmetric in
	// general, but both directions must stay within the 0..100 range.
	ab := textmatch.SimilarityPercent("world", "word")
	ba := textmatch.SimilarityPercent("word", "world")
	assert.InDelta(t, ab, ba, 0.0001)
	assert.Greater(t, ab, float64(80))
}
