package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCanonicalHasThreeFractionDigits(t *testing.T) {
	instant := time.Date(2024, 1, 5, 10, 15, 30, 7_000_000, AppZone)
	assert.Equal(t, "2024-01-05T10:15:30.007", FormatCanonical(instant))

	noFraction := time.Date(2024, 1, 5, 10, 15, 30, 0, AppZone)
	assert.Equal(t, "2024-01-05T10:15:30.000", FormatCanonical(noFraction))
}

func TestParseCanonicalRoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2024, 1, 5, 10, 15, 30, 123_000_000, AppZone),
		time.Date(2023, 12, 31, 23, 59, 59, 999_000_000, AppZone),
		time.Date(2024, 6, 1, 0, 0, 0, 0, AppZone),
	}
	for _, instant := range instants {
		parsed := ParseCanonical(FormatCanonical(instant))
		assert.True(t, parsed.Equal(instant), "round-trip de %v", instant)
	}
}

func TestParseCanonicalFallsBackToEpoch(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()

	assert.True(t, ParseCanonical("").Equal(epoch))
	assert.True(t, ParseCanonical("garbage").Equal(epoch))
	// L'offset n'est pas accepté par le format canonique strict
	assert.True(t, ParseCanonical("2024-01-05T10:15:30.123+02:00").Equal(epoch))
}

func TestParseAttemptWithoutFractionOrOffset(t *testing.T) {
	parsed, ok := ParseAttempt("2024-01-05T10:15:30")
	require.True(t, ok)

	expected := time.Date(2024, 1, 5, 10, 15, 30, 0, AppZone)
	assert.True(t, parsed.Equal(expected))
}

func TestParseAttemptWithFraction(t *testing.T) {
	parsed, ok := ParseAttempt("2024-01-05T10:15:30.123456789")
	require.True(t, ok)

	expected := time.Date(2024, 1, 5, 10, 15, 30, 123_456_789, AppZone)
	assert.True(t, parsed.Equal(expected))
}

func TestParseAttemptWithOffset(t *testing.T) {
	parsed, ok := ParseAttempt("2024-01-05T10:15:30+05:00")
	require.True(t, ok)
	// L'offset explicite prime sur la zone de l'application
	assert.True(t, parsed.Equal(time.Date(2024, 1, 5, 5, 15, 30, 0, time.UTC)))

	zulu, ok := ParseAttempt("2024-01-05T10:15:30.500Z")
	require.True(t, ok)
	assert.True(t, zulu.Equal(time.Date(2024, 1, 5, 10, 15, 30, 500_000_000, time.UTC)))
}

func TestParseAttemptRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "garbage", "05/01/2024", "2024-01-05"} {
		_, ok := ParseAttempt(raw)
		assert.False(t, ok, "raw=%q", raw)
	}
}
