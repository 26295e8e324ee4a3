// Package ident allocates human-readable identifiers for generated test
// artifacts, following the TC_<FEATURE>_<NNN> / ETC_<AREA>_<NNN> convention.
package ident

import (
	"fmt"
	"strings"
)

// Allocator maintains a per-prefix counter starting at 1. An allocator is
// scoped to a single document set and discarded afterwards; no cross-request
// numbering continuity is guaranteed.
type Allocator struct {
	counters map[string]int
}

// NewAllocator creates an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{counters: make(map[string]int)}
}

// Next returns the next identifier for the given prefix, zero-padded to
// three digits: PREFIX_001, PREFIX_002, ...
func (a *Allocator) Next(prefix string) string {
	a.counters[prefix]++
	return fmt.Sprintf("%s_%03d", prefix, a.counters[prefix])
}

// FeaturePrefix converts a feature name into an identifier prefix token:
// uppercased, non-alphanumeric runs collapsed to single underscores.
// "Login Authentication Feature" -> "LOGIN_AUTHENTICATION_FEATURE".
func FeaturePrefix(feature string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToUpper(feature) {
		switch {
		case r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
