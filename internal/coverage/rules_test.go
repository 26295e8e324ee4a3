package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbox/qadocgen/pkg/models"
)

func TestCatalog_CoreRulesAlwaysFire(t *testing.T) {
	core := map[models.Technique]bool{
		models.TechniqueEquivalencePartitioning: false,
		models.TechniquePositive:                false,
		models.TechniqueNegative:                false,
		models.TechniqueBoundaryValueAnalysis:   false,
	}

	for _, rule := range Catalog() {
		if _, ok := core[rule.Technique]; ok {
			assert.Empty(t, rule.Keywords, "core rule %s must not be keyword-gated", rule.Technique)
			assert.True(t, rule.Triggered("anything at all"), "core rule %s must always fire", rule.Technique)
			core[rule.Technique] = true
		}
	}

	for tech, seen := range core {
		assert.True(t, seen, "catalog is missing core rule %s", tech)
	}
}

func TestCatalog_BoundaryGroupHasSixRows(t *testing.T) {
	for _, rule := range Catalog() {
		if rule.Technique != models.TechniqueBoundaryValueAnalysis {
			continue
		}
		rows := rule.Generate("Quantity Field")
		require.GreaterOrEqual(t, len(rows), 6)

		details := make([]string, 0, len(rows))
		for _, row := range rows {
			assert.Equal(t, models.TechniqueBoundaryValueAnalysis, row.Technique)
			details = append(details, row.TechniqueDetail)
		}
		assert.Contains(t, details, "Boundary Value Analysis (Below Minimum)")
		assert.Contains(t, details, "Boundary Value Analysis (Minimum)")
		assert.Contains(t, details, "Boundary Value Analysis (Above Minimum)")
		assert.Contains(t, details, "Boundary Value Analysis (Below Maximum)")
		assert.Contains(t, details, "Boundary Value Analysis (Maximum)")
		assert.Contains(t, details, "Boundary Value Analysis (Above Maximum)")
		return
	}
	t.Fatal("no BoundaryValueAnalysis rule in catalog")
}

func TestRule_Triggered(t *testing.T) {
	tests := []struct {
		name        string
		keywords    []string
		requirement string
		expected    bool
	}{
		{
			name:        "empty keyword list always fires",
			keywords:    nil,
			requirement: "",
			expected:    true,
		},
		{
			name:        "case-insensitive match",
			keywords:    []string{"security"},
			requirement: "SECURITY review of the payment flow",
			expected:    true,
		},
		{
			name:        "partial-word match",
			keywords:    []string{"compatib"},
			requirement: "must be compatible with older clients",
			expected:    true,
		},
		{
			name:        "no keyword present",
			keywords:    []string{"accessibility", "wcag"},
			requirement: "simple numeric input form",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := Rule{Keywords: tt.keywords}
			assert.Equal(t, tt.expected, rule.Triggered(tt.requirement))
		})
	}
}

func TestCatalog_TriggeredRulesEmitTheirTechnique(t *testing.T) {
	requirement := "Login Authentication Feature with password security, " +
		"browser and mobile support, accessibility via screen reader, " +
		"performance under load, workflow state rules and role conditions"

	for _, rule := range Catalog() {
		require.True(t, rule.Triggered(requirement), "rule %s should fire for the kitchen-sink requirement", rule.Technique)
		rows := rule.Generate("Login Authentication Feature")
		require.NotEmpty(t, rows, "rule %s emitted no rows", rule.Technique)
		found := false
		for _, row := range rows {
			if row.Technique == rule.Technique {
				found = true
			}
		}
		assert.True(t, found, "rule %s emitted no row tagged with its technique", rule.Technique)
	}
}

func TestCharterCatalog(t *testing.T) {
	catalog := CharterCatalog()
	require.GreaterOrEqual(t, len(catalog), 6)

	areas := make(map[string]bool)
	for _, tpl := range catalog {
		assert.NotEmpty(t, tpl.Area)
		assert.NotEmpty(t, tpl.Title)
		assert.Contains(t, tpl.Mission, "%s", "mission for %s must reference the feature", tpl.Title)
		assert.NotEmpty(t, tpl.FocusAreas)
		assert.NotEmpty(t, tpl.Risks)
		assert.Greater(t, tpl.DurationMinutes, 0)
		assert.False(t, areas[tpl.Area], "duplicate charter area %s", tpl.Area)
		areas[tpl.Area] = true
	}
}
