package assemble

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbox/qadocgen/internal/coverage"
	"github.com/qbox/qadocgen/pkg/models"
)

const loginRequirement = "Login Authentication Feature\n1. Email and password fields"

func newTestAssembler() *Assembler {
	return New(coverage.Catalog(), coverage.CharterCatalog())
}

func TestFeatureName(t *testing.T) {
	tests := []struct {
		name        string
		requirement string
		expected    string
	}{
		{
			name:        "first line used",
			requirement: loginRequirement,
			expected:    "Login Authentication Feature",
		},
		{
			name:        "feature prefix stripped",
			requirement: "Feature: Shopping Cart\ndetails",
			expected:    "Shopping Cart",
		},
		{
			name:        "requirements prefix stripped",
			requirement: "Requirements: Checkout Flow",
			expected:    "Checkout Flow",
		},
		{
			name:        "leading blank lines skipped",
			requirement: "\n\n  \nPassword Reset\nmore",
			expected:    "Password Reset",
		},
		{
			name:        "empty input defaults",
			requirement: "",
			expected:    DefaultFeatureName,
		},
		{
			name:        "whitespace-only input defaults",
			requirement: "   \n\t\n  ",
			expected:    DefaultFeatureName,
		},
		{
			name:        "long first line truncated to 50 runes",
			requirement: strings.Repeat("a", 80),
			expected:    strings.Repeat("a", 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FeatureName(tt.requirement))
		})
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	a := newTestAssembler()
	ctx := context.Background()

	first := a.Assemble(ctx, loginRequirement, "session-1")
	second := a.Assemble(ctx, loginRequirement, "session-1")

	// Identical apart from the generation timestamp.
	second.GeneratedAt = first.GeneratedAt
	assert.Equal(t, first, second)
}

func TestAssemble_LoginExample(t *testing.T) {
	a := newTestAssembler()
	set := a.Assemble(context.Background(), loginRequirement, "s1")

	assert.Equal(t, "Login Authentication Feature", set.FeatureName)

	var positive, bva int
	var validCredentials bool
	for _, row := range set.TestCases {
		switch row.Technique {
		case models.TechniquePositive:
			positive++
			if strings.Contains(row.Description, "valid credentials") {
				validCredentials = true
			}
		case models.TechniqueBoundaryValueAnalysis:
			bva++
		}
	}
	assert.GreaterOrEqual(t, positive, 1)
	assert.GreaterOrEqual(t, bva, 6)
	assert.True(t, validCredentials, "expected a Positive row mentioning valid credentials")

	// "login" and "password" trigger the security group.
	var security int
	for _, row := range set.TestCases {
		if row.Technique == models.TechniqueSecurity {
			security++
		}
	}
	assert.GreaterOrEqual(t, security, 3)

	require.GreaterOrEqual(t, len(set.Charters), 6)
	for _, ch := range set.Charters {
		assert.True(t, strings.HasPrefix(ch.ID, "ETC_"), "charter ID %s missing ETC_ prefix", ch.ID)
		assert.Contains(t, ch.Mission, set.FeatureName)
	}
}

func TestAssemble_IdentifiersUniqueAndIncreasing(t *testing.T) {
	a := newTestAssembler()
	set := a.Assemble(context.Background(), loginRequirement, "s1")

	require.NotEmpty(t, set.TestCases)
	seen := make(map[string]bool)
	prev := ""
	for _, row := range set.TestCases {
		assert.False(t, seen[row.ID], "duplicate test case ID %s", row.ID)
		seen[row.ID] = true
		if prev != "" {
			assert.Greater(t, row.ID, prev, "IDs must be strictly increasing in emission order")
		}
		prev = row.ID
	}

	charterIDs := make(map[string]bool)
	for _, ch := range set.Charters {
		assert.False(t, charterIDs[ch.ID], "duplicate charter ID %s", ch.ID)
		charterIDs[ch.ID] = true
	}
}

func TestAssemble_EmptyRequirement(t *testing.T) {
	a := newTestAssembler()

	empty := a.Assemble(context.Background(), "", "s1")
	nonEmpty := a.Assemble(context.Background(), loginRequirement, "s1")

	assert.Equal(t, DefaultFeatureName, empty.FeatureName)

	// Complete three-document set even for empty input, with the same
	// section and charter floors as the non-empty case.
	assert.Equal(t, len(nonEmpty.Plan), len(empty.Plan))
	assert.GreaterOrEqual(t, len(empty.Charters), 6)
	assert.NotEmpty(t, empty.TestCases)

	var positive, negative, bva int
	for _, row := range empty.TestCases {
		switch row.Technique {
		case models.TechniquePositive:
			positive++
		case models.TechniqueNegative:
			negative++
		case models.TechniqueBoundaryValueAnalysis:
			bva++
		}
	}
	assert.GreaterOrEqual(t, positive, 1)
	assert.GreaterOrEqual(t, negative, 1)
	assert.GreaterOrEqual(t, bva, 6)
}

func TestAssemble_PlanSectionOrder(t *testing.T) {
	a := newTestAssembler()
	set := a.Assemble(context.Background(), loginRequirement, "s1")

	expected := []string{
		"Document Control",
		"Introduction & Scope",
		"Test Strategy",
		"Test Environment",
		"Risk Analysis",
		"Deliverables",
		"Schedule & Milestones",
		"Roles & Responsibilities",
	}
	require.Len(t, set.Plan, len(expected))
	for i, section := range set.Plan {
		assert.Equal(t, expected[i], section.Name)
		assert.NotEmpty(t, section.Body, "section %s must always carry content", section.Name)
	}
}

func TestAssemble_ExecutionFieldsStayEmpty(t *testing.T) {
	a := newTestAssembler()
	set := a.Assemble(context.Background(), loginRequirement, "s1")

	for _, row := range set.TestCases {
		assert.Empty(t, row.ActualResult)
		assert.Empty(t, row.PassFail)
		assert.Empty(t, row.BugID)
	}
}
