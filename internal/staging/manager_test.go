package staging

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbox/qadocgen/internal/render"
)

func testOutput() *render.Output {
	return &render.Output{
		TestPlan:  []byte("plan"),
		TestCases: []byte("cases"),
		Charters:  []byte("charters"),
	}
}

func TestManager_Stage(t *testing.T) {
	m, err := NewManager(t.TempDir(), time.Hour)
	require.NoError(t, err)

	at := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	set, err := m.Stage(context.Background(), "session-1", testOutput(), at)
	require.NoError(t, err)

	assert.Equal(t, "test_plan_20260829150405.md", set.TestPlan.Filename)
	assert.Equal(t, "test_cases_20260829150405.csv", set.TestCases.Filename)
	assert.Equal(t, "exploratory_20260829150405.md", set.Charters.Filename)

	content, err := os.ReadFile(set.TestCases.Path)
	require.NoError(t, err)
	assert.Equal(t, "cases", string(content))
}

func TestManager_StageSessionsDoNotCollide(t *testing.T) {
	m, err := NewManager(t.TempDir(), time.Hour)
	require.NoError(t, err)

	at := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	a, err := m.Stage(context.Background(), "session-a", testOutput(), at)
	require.NoError(t, err)
	b, err := m.Stage(context.Background(), "session-b", testOutput(), at)
	require.NoError(t, err)

	// Same timestamp, same filenames, different session dirs.
	assert.Equal(t, a.TestPlan.Filename, b.TestPlan.Filename)
	assert.NotEqual(t, a.TestPlan.Path, b.TestPlan.Path)
}

func TestManager_Resolve(t *testing.T) {
	m, err := NewManager(t.TempDir(), time.Hour)
	require.NoError(t, err)

	at := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	set, err := m.Stage(context.Background(), "s1", testOutput(), at)
	require.NoError(t, err)

	path, err := m.Resolve("s1", set.TestPlan.Filename)
	require.NoError(t, err)
	assert.Equal(t, set.TestPlan.Path, path)

	_, err = m.Resolve("s1", "../"+set.TestPlan.Filename)
	assert.Error(t, err, "traversal must be rejected")

	_, err = m.Resolve("s1", "passwd")
	assert.Error(t, err, "non-artifact names must be rejected")

	_, err = m.Resolve("other-session", set.TestPlan.Filename)
	assert.Error(t, err, "unknown session must not resolve")
}

func TestManager_CleanupExpired(t *testing.T) {
	base := t.TempDir()
	m, err := NewManager(base, time.Minute)
	require.NoError(t, err)

	at := time.Now()
	_, err = m.Stage(context.Background(), "old-session", testOutput(), at)
	require.NoError(t, err)
	_, err = m.Stage(context.Background(), "fresh-session", testOutput(), at)
	require.NoError(t, err)

	// Age one session dir past the TTL.
	oldDir := filepath.Join(base, "old-session")
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(oldDir, past, past))

	removed, err := m.CleanupExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(oldDir)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "fresh-session"))
	assert.NoError(t, err)
}

func TestSanitizeSessionID(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain id kept", "abc-123_X", "abc-123_X"},
		{"path separators replaced", "../etc/passwd", "---etc-passwd"},
		{"empty defaults", "", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeSessionID(tt.in))
		})
	}
}
