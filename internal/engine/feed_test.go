package engine

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrollmentDoc(t *testing.T, userID string, snapshots ...map[string]interface{}) json.RawMessage {
	t.Helper()
	doc, err := json.Marshal(map[string]interface{}{
		"userId": userID,
		"progressSummary": map[string]interface{}{
			"activitySnapshots": snapshots,
		},
	})
	require.NoError(t, err)
	return doc
}

func activitySnapshot(activityID string, attempts ...string) map[string]interface{} {
	taskStats := map[string]interface{}{}
	for i, attempt := range attempts {
		taskStats[fmt.Sprintf("task-%d", i)] = map[string]interface{}{"attemptDateTime": attempt}
	}
	return map[string]interface{}{
		"activityId": activityID,
		"taskStats":  taskStats,
	}
}

func TestBuildActivityFeedExcludesViewer(t *testing.T) {
	dir := scoredDirectory(t)
	docs := []json.RawMessage{
		enrollmentDoc(t, "BOB@example.com", activitySnapshot("act-bob", "2024-01-05T10:15:30")),
		enrollmentDoc(t, "carol@example.com", activitySnapshot("act-carol", "2024-01-05T09:00:00")),
	}

	activities := BuildActivityFeed(docs, dir, "bob@example.com", 20, time.Now())

	require.Len(t, activities, 1)
	assert.Equal(t, "act-carol", activities[0].ActivityName)
}

func TestBuildActivityFeedSkipsUnknownOwner(t *testing.T) {
	dir := scoredDirectory(t)
	docs := []json.RawMessage{
		enrollmentDoc(t, "dave@example.com", activitySnapshot("act-dave", "2024-01-05T10:15:30")),
	}

	activities := BuildActivityFeed(docs, dir, "", 20, time.Now())
	assert.Empty(t, activities)
}

func TestBuildActivityFeedSkipsMalformedDocuments(t *testing.T) {
	dir := scoredDirectory(t)
	docs := []json.RawMessage{
		json.RawMessage(`{broken`),
		json.RawMessage(`{"progressSummary":{}}`),
		enrollmentDoc(t, "carol@example.com"),
		enrollmentDoc(t, "carol@example.com", activitySnapshot("act-sans-stats")),
		enrollmentDoc(t, "carol@example.com", activitySnapshot("act-ok", "2024-01-05T10:15:30")),
	}

	activities := BuildActivityFeed(docs, dir, "", 20, time.Now())

	require.Len(t, activities, 1)
	assert.Equal(t, "act-ok", activities[0].ActivityName)
}

func TestBuildActivityFeedKeepsLatestAttempt(t *testing.T) {
	dir := scoredDirectory(t)
	docs := []json.RawMessage{
		enrollmentDoc(t, "carol@example.com", activitySnapshot("act-multi",
			"2024-01-03T08:00:00", "2024-01-05T10:15:30.250", "garbage", "2024-01-04T23:59:59")),
	}

	activities := BuildActivityFeed(docs, dir, "", 20, time.Now())

	require.Len(t, activities, 1)
	assert.Equal(t, "2024-01-05T10:15:30.250", activities[0].Timestamp)
}

func TestBuildActivityFeedUnparsableAttemptsFallBackToNow(t *testing.T) {
	dir := scoredDirectory(t)
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, AppZone)
	docs := []json.RawMessage{
		enrollmentDoc(t, "carol@example.com", activitySnapshot("act-garbage", "garbage")),
	}

	activities := BuildActivityFeed(docs, dir, "", 20, now)

	// L'activité reste visible, datée du cycle courant
	require.Len(t, activities, 1)
	assert.Equal(t, FormatCanonical(now), activities[0].Timestamp)
}

func TestBuildActivityFeedSortsNewestFirstAndCaps(t *testing.T) {
	dir := scoredDirectory(t)

	snapshots := make([]map[string]interface{}, 0, 25)
	for i := 0; i < 25; i++ {
		attempt := fmt.Sprintf("2024-01-%02dT10:00:00", i%28+1)
		snapshots = append(snapshots, activitySnapshot(fmt.Sprintf("act-%02d", i), attempt))
	}
	docs := []json.RawMessage{enrollmentDoc(t, "carol@example.com", snapshots...)}

	activities := BuildActivityFeed(docs, dir, "", 20, time.Now())

	require.Len(t, activities, 20)
	for i := 1; i < len(activities); i++ {
		previous := ParseCanonical(activities[i-1].Timestamp)
		current := ParseCanonical(activities[i].Timestamp)
		assert.False(t, current.After(previous), "le fil doit être trié du plus récent au plus ancien")
	}

	// Les 20 plus récentes sont conservées : la plus ancienne (jour 01) est sortie
	for _, activity := range activities {
		assert.NotEqual(t, "2024-01-01T10:00:00.000", activity.Timestamp)
	}
}

func TestBuildActivityFeedEmitsOneEventPerSnapshot(t *testing.T) {
	dir := scoredDirectory(t)
	docs := []json.RawMessage{
		enrollmentDoc(t, "carol@example.com",
			activitySnapshot("act-1", "2024-01-05T10:00:00"),
			activitySnapshot("act-2", "2024-01-06T10:00:00"),
		),
	}

	activities := BuildActivityFeed(docs, dir, "", 20, time.Now())

	require.Len(t, activities, 2)
	assert.Equal(t, "act-2", activities[0].ActivityName)
	assert.Equal(t, "act-1", activities[1].ActivityName)
	assert.Equal(t, "Completed: act-2", activities[0].ActivityDescription)
}
