// Package assemble expands a free-text requirement into a structured
// document set: test plan sections, test case rows and exploratory charters.
package assemble

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/qbox/qadocgen/internal/coverage"
	"github.com/qbox/qadocgen/internal/ident"
	"github.com/qbox/qadocgen/internal/trace"
	"github.com/qbox/qadocgen/pkg/models"
)

// DefaultFeatureName is used when the requirement text carries no usable
// first line. Generation is total: malformed input never fails.
const DefaultFeatureName = "Untitled Feature"

// featureNameMaxLen mirrors the truncation the chat UI applies.
const featureNameMaxLen = 50

// Assembler applies the coverage catalogs to requirement text. Catalogs are
// injected once at construction; assembly itself is deterministic for fixed
// inputs apart from the generation timestamp.
type Assembler struct {
	rules    []coverage.Rule
	charters []coverage.CharterTemplate
	now      func() time.Time
}

// New creates an assembler over the given catalogs.
func New(rules []coverage.Rule, charters []coverage.CharterTemplate) *Assembler {
	return &Assembler{rules: rules, charters: charters, now: time.Now}
}

// Assemble 将需求文本展开为完整的文档集。对任意字符串输入都成功，
// 空白需求退化为占位特性名。
func (a *Assembler) Assemble(ctx context.Context, requirement, sessionID string) *models.DocumentSet {
	feature := FeatureName(requirement)
	generatedAt := a.now()

	trace.Info(ctx, "Assembling document set: feature=%q, session=%s, requirement_length=%d",
		feature, sessionID, len(requirement))

	set := &models.DocumentSet{
		SessionID:   sessionID,
		FeatureName: feature,
		Requirement: requirement,
		GeneratedAt: generatedAt,
		Plan:        buildPlan(feature, requirement, generatedAt),
	}

	tcAlloc := ident.NewAllocator()
	tcPrefix := "TC_" + ident.FeaturePrefix(feature)
	for _, rule := range a.rules {
		if !rule.Triggered(requirement) {
			trace.Debug(ctx, "Rule %s not triggered", rule.Technique)
			continue
		}
		for _, row := range rule.Generate(feature) {
			row.ID = tcAlloc.Next(tcPrefix)
			row.RequirementRef = feature
			set.TestCases = append(set.TestCases, row)
		}
	}

	chAlloc := ident.NewAllocator()
	for _, tpl := range a.charters {
		set.Charters = append(set.Charters, models.Charter{
			ID:              chAlloc.Next("ETC_" + tpl.Area),
			Title:           tpl.Title,
			Priority:        models.Priority(tpl.Priority),
			DurationMinutes: tpl.DurationMinutes,
			Mission:         fmt.Sprintf(tpl.Mission, feature),
			FocusAreas:      tpl.FocusAreas,
			Risks:           tpl.Risks,
			TestIdeas:       tpl.TestIdeas,
			DataVariations:  tpl.DataVariations,
		})
	}

	trace.Info(ctx, "Assembled document set: sections=%d, test_cases=%d, charters=%d",
		len(set.Plan), len(set.TestCases), len(set.Charters))

	return set
}

// FeatureName derives the short feature label from the first non-empty line
// of the requirement: "Feature:"/"Requirements:" prefixes stripped, trimmed,
// truncated to 50 runes.
func FeatureName(requirement string) string {
	for _, line := range strings.Split(requirement, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		name = strings.TrimSpace(strings.TrimPrefix(name, "Feature:"))
		name = strings.TrimSpace(strings.TrimPrefix(name, "Requirements:"))
		if name == "" {
			continue
		}
		if runes := []rune(name); len(runes) > featureNameMaxLen {
			name = string(runes[:featureNameMaxLen])
		}
		return name
	}
	return DefaultFeatureName
}
