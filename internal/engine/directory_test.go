package engine

import (
	"encoding/json"
	"testing"

	model "github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userDoc(t *testing.T, email, name string, scores map[string]int64) json.RawMessage {
	t.Helper()
	doc, err := json.Marshal(map[string]interface{}{
		"email": email,
		"name":  name,
		"anonymousAvatar": map[string]string{
			"name":     "Anon " + name,
			"imageUrl": "https://cdn.example.com/" + name + ".png",
		},
		"scores": scores,
	})
	require.NoError(t, err)
	return doc
}

func TestRebuildDirectoryComputesScores(t *testing.T) {
	docs := []json.RawMessage{
		userDoc(t, "alice@example.com", "Alice", map[string]int64{"2024-01-01": 60, "2024-01-02": 40}),
		userDoc(t, "bob@example.com", "Bob", map[string]int64{"2024-01-01": 80}),
	}

	dir := RebuildDirectory(docs, nil)
	require.Equal(t, 2, dir.Len())

	alice, ok := dir.Lookup("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, 100, alice.TotalScore)

	bob, ok := dir.Lookup("bob@example.com")
	require.True(t, ok)
	assert.Equal(t, 80, bob.TotalScore)
}

func TestRebuildDirectorySkipsBadDocuments(t *testing.T) {
	docs := []json.RawMessage{
		json.RawMessage(`{broken`),
		userDoc(t, "alice@example.com", "Alice", nil),
		json.RawMessage(`{"name":"sans email"}`),
	}

	dir := RebuildDirectory(docs, nil)
	assert.Equal(t, 1, dir.Len())

	_, ok := dir.Lookup("alice@example.com")
	assert.True(t, ok)
}

func TestRebuildDirectoryDuplicateEmailLastWriteWins(t *testing.T) {
	docs := []json.RawMessage{
		userDoc(t, "alice@example.com", "Alice v1", map[string]int64{"2024-01-01": 10}),
		userDoc(t, "bob@example.com", "Bob", map[string]int64{"2024-01-01": 5}),
		userDoc(t, "ALICE@example.com", "Alice v2", map[string]int64{"2024-01-01": 99}),
	}

	dir := RebuildDirectory(docs, nil)
	require.Equal(t, 2, dir.Len())

	alice, ok := dir.Lookup("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, "Alice v2", alice.Name)
	assert.Equal(t, 99, alice.TotalScore)

	// La position d'arrivée initiale est conservée
	assert.Equal(t, "Alice v2", dir.Users()[0].Name)
	assert.Equal(t, "Bob", dir.Users()[1].Name)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	dir := RebuildDirectory([]json.RawMessage{
		userDoc(t, "Alice@Example.COM", "Alice", nil),
	}, nil)

	_, ok := dir.Lookup("alice@example.com")
	assert.True(t, ok)
	_, ok = dir.Lookup("ALICE@EXAMPLE.COM")
	assert.True(t, ok)
	_, ok = dir.Lookup("unknown@example.com")
	assert.False(t, ok)
}

func TestRebuildDirectoryUsesInjectedScoreFunc(t *testing.T) {
	docs := []json.RawMessage{userDoc(t, "alice@example.com", "Alice", nil)}

	dir := RebuildDirectory(docs, func(u *model.User) int { return 42 })

	alice, ok := dir.Lookup("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, 42, alice.TotalScore)
}

func TestRebuildDirectoryClampsNegativeScores(t *testing.T) {
	docs := []json.RawMessage{userDoc(t, "alice@example.com", "Alice", nil)}

	dir := RebuildDirectory(docs, func(u *model.User) int { return -5 })

	alice, ok := dir.Lookup("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, 0, alice.TotalScore)
}
