// Package staging writes serialized artifacts to the disposable intermediate
// directory they are downloaded from. Files are regeneratable; the directory
// is safe to wipe.
package staging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/qbox/qadocgen/internal/render"
	"github.com/qbox/qadocgen/internal/trace"
)

// timestampLayout produces the <YYYYMMDDHHMMSS> filename component.
const timestampLayout = "20060102150405"

var filenamePattern = regexp.MustCompile(`^(test_plan|test_cases|exploratory)_\d{14}\.(md|csv)$`)

// StagedFile 单个落盘产物
type StagedFile struct {
	Filename string
	Path     string
}

// StagedSet 一次请求落盘的全部产物
type StagedSet struct {
	SessionDir string
	TestPlan   StagedFile
	TestCases  StagedFile
	Charters   StagedFile
}

// Manager owns the staging directory. Each request writes under its own
// session subdirectory, so concurrent requests cannot collide without locks.
type Manager struct {
	baseDir      string
	cleanupAfter time.Duration
}

// NewManager creates the staging directory if needed.
func NewManager(baseDir string, cleanupAfter time.Duration) (*Manager, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging dir: %w", err)
	}
	return &Manager{baseDir: baseDir, cleanupAfter: cleanupAfter}, nil
}

// BaseDir returns the staging root.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// Stage writes the three artifacts under the session directory using the
// <doctype>_<YYYYMMDDHHMMSS>.<ext> pattern. Write failures are fatal for the
// request: no partial document sets are ever exposed.
func (m *Manager) Stage(ctx context.Context, sessionID string, out *render.Output, at time.Time) (*StagedSet, error) {
	session := SanitizeSessionID(sessionID)
	dir := filepath.Join(m.baseDir, session)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}

	ts := at.Format(timestampLayout)
	set := &StagedSet{SessionDir: dir}

	files := []struct {
		name    string
		content []byte
		target  *StagedFile
	}{
		{fmt.Sprintf("test_plan_%s.md", ts), out.TestPlan, &set.TestPlan},
		{fmt.Sprintf("test_cases_%s.csv", ts), out.TestCases, &set.TestCases},
		{fmt.Sprintf("exploratory_%s.md", ts), out.Charters, &set.Charters},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.content, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		*f.target = StagedFile{Filename: f.name, Path: path}
	}

	trace.Info(ctx, "Staged artifacts: session=%s, dir=%s", session, dir)
	return set, nil
}

// Resolve maps a session/filename pair back to a staged file path for
// download serving. Only names matching the artifact pattern resolve;
// anything else (including traversal attempts) is rejected.
func (m *Manager) Resolve(sessionID, filename string) (string, error) {
	session := SanitizeSessionID(sessionID)
	if !filenamePattern.MatchString(filename) {
		return "", fmt.Errorf("invalid artifact filename: %s", filename)
	}
	path := filepath.Join(m.baseDir, session, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("artifact not found: %w", err)
	}
	return path, nil
}

// CleanupExpired removes session directories older than the configured TTL
// and returns how many were removed. Orphaned files from disconnected
// callers go away here.
func (m *Manager) CleanupExpired(ctx context.Context) (int, error) {
	if m.cleanupAfter <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read staging dir: %w", err)
	}

	cutoff := time.Now().Add(-m.cleanupAfter)
	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		dir := filepath.Join(m.baseDir, entry.Name())
		if err := os.RemoveAll(dir); err != nil {
			trace.Warn(ctx, "Failed to remove expired session dir %s: %v", dir, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		trace.Info(ctx, "Removed %d expired session dirs", removed)
	}
	return removed, nil
}

// SanitizeSessionID restricts session directory names to a safe character
// set. Empty IDs map to "default".
func SanitizeSessionID(sessionID string) string {
	var b strings.Builder
	for _, r := range sessionID {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "default"
	}
	return b.String()
}
