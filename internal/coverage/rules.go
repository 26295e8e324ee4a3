// Package coverage holds the fixed catalogs driving document generation:
// the test-design rule set and the exploratory charter templates.
//
// Catalogs are immutable configuration data built once at process start and
// passed explicitly into the assembler.
package coverage

import (
	"fmt"
	"strings"

	"github.com/qbox/qadocgen/pkg/models"
)

// Rule is one entry in the coverage rule set: a technique tag, a keyword
// trigger over the requirement text, and a generator yielding test case
// skeletons for a feature. Identifiers and the requirement trace reference
// are filled in later by the assembler.
type Rule struct {
	Technique models.Technique

	// Keywords gate the rule: the rule fires when any keyword occurs in
	// the requirement text (case-insensitive substring match). An empty
	// list means the rule always fires.
	Keywords []string

	Generate func(feature string) []models.TestCaseRow
}

// Triggered reports whether the rule fires for the given requirement text.
func (r *Rule) Triggered(requirement string) bool {
	if len(r.Keywords) == 0 {
		return true
	}
	text := strings.ToLower(requirement)
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Catalog returns the rule set in firing order. Rules fire independently and
// contribute rows in catalog order; duplicate coverage across rules is
// acceptable (Negative and Security both exercise hostile input, from
// different angles).
func Catalog() []Rule {
	return []Rule{
		{
			Technique: models.TechniqueEquivalencePartitioning,
			Generate:  equivalenceCases,
		},
		{
			Technique: models.TechniquePositive,
			Generate:  positiveCases,
		},
		{
			Technique: models.TechniqueNegative,
			Generate:  negativeCases,
		},
		{
			Technique: models.TechniqueBoundaryValueAnalysis,
			Generate:  boundaryCases,
		},
		{
			Technique: models.TechniqueDecisionTable,
			Keywords:  []string{"condition", "decision", "combination", "rule", "permission", "role"},
			Generate:  decisionTableCases,
		},
		{
			Technique: models.TechniqueStateTransition,
			Keywords:  []string{"state", "status", "workflow", "transition", "step"},
			Generate:  stateTransitionCases,
		},
		{
			Technique: models.TechniqueSecurity,
			Keywords:  []string{"security", "auth", "login", "password", "credential", "inject", "xss", "csrf", "token"},
			Generate:  securityCases,
		},
		{
			Technique: models.TechniquePerformance,
			Keywords:  []string{"performance", "load", "concurrent", "response time", "latency", "throughput"},
			Generate:  performanceCases,
		},
		{
			Technique: models.TechniqueAccessibility,
			Keywords:  []string{"accessibility", "wcag", "screen reader", "keyboard", "a11y"},
			Generate:  accessibilityCases,
		},
		{
			Technique: models.TechniqueCompatibility,
			Keywords:  []string{"browser", "mobile", "responsive", "compatib", "device", "ios", "android"},
			Generate:  compatibilityCases,
		},
	}
}

func equivalenceCases(feature string) []models.TestCaseRow {
	return []models.TestCaseRow{
		{
			Description:     fmt.Sprintf("Verify %s with valid inputs", feature),
			Category:        "Positive - Functional",
			Priority:        models.PriorityHigh,
			Preconditions:   "System is accessible and user has required permissions",
			TestData:        "Valid input data as per specifications",
			Steps:           []string{"Navigate to the " + feature + " entry point", "Enter valid data in all required fields", "Submit the form/action", "Verify successful completion"},
			ExpectedResult:  "Operation completes successfully with appropriate confirmation message",
			Technique:       models.TechniqueEquivalencePartitioning,
			TechniqueDetail: "Valid Equivalence Class",
		},
		{
			Description:     fmt.Sprintf("Verify %s with invalid input", feature),
			Category:        "Negative - Validation",
			Priority:        models.PriorityHigh,
			Preconditions:   "System is accessible",
			TestData:        "Invalid input data",
			Steps:           []string{"Navigate to the " + feature + " entry point", "Enter invalid data", "Attempt to submit", "Observe error handling"},
			ExpectedResult:  "System displays appropriate error message and does not process invalid data",
			Technique:       models.TechniqueEquivalencePartitioning,
			TechniqueDetail: "Invalid Equivalence Class",
		},
	}
}

// isAuthFeature detects authentication-flavored features so the happy-path
// wording talks about credentials instead of generic data.
func isAuthFeature(feature string) bool {
	text := strings.ToLower(feature)
	for _, kw := range []string{"login", "auth", "sign-in", "sign in", "password", "credential"} {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func positiveCases(feature string) []models.TestCaseRow {
	happyDesc := fmt.Sprintf("Verify %s typical user workflow", feature)
	happyData := "Typical user data"
	happyPre := "User is logged in"
	if isAuthFeature(feature) {
		happyDesc = fmt.Sprintf("Verify %s end-to-end with valid credentials", feature)
		happyData = "Registered account with valid credentials"
		happyPre = "Account exists and is active"
	}

	return []models.TestCaseRow{
		{
			Description:     happyDesc,
			Category:        "Positive - Use Case",
			Priority:        models.PriorityHigh,
			Preconditions:   happyPre,
			TestData:        happyData,
			Steps:           []string{"Complete the end-to-end user journey", "Verify each step completes successfully", "Check data persistence", "Verify UI updates correctly"},
			ExpectedResult:  "User can complete entire workflow without errors",
			Technique:       models.TechniquePositive,
			TechniqueDetail: "Use Case Testing",
		},
		{
			Description:     fmt.Sprintf("Verify %s success message", feature),
			Category:        "Positive - UI",
			Priority:        models.PriorityMedium,
			Preconditions:   "System is accessible",
			TestData:        "Valid test data",
			Steps:           []string{"Complete the workflow successfully", "Observe the success message"},
			ExpectedResult:  "Success message displayed; user informed of result",
			Technique:       models.TechniquePositive,
			TechniqueDetail: "UI Testing",
		},
	}
}

func negativeCases(feature string) []models.TestCaseRow {
	return []models.TestCaseRow{
		{
			Description:     fmt.Sprintf("Verify %s with missing required fields", feature),
			Category:        "Negative - Required Field",
			Priority:        models.PriorityCritical,
			Preconditions:   "System is accessible",
			TestData:        "Empty required fields",
			Steps:           []string{"Navigate to the " + feature + " entry point", "Leave required fields empty", "Attempt to submit", "Verify validation messages"},
			ExpectedResult:  `System prevents submission and displays "Field is required" messages`,
			Technique:       models.TechniqueNegative,
			TechniqueDetail: "Missing Required Field Validation",
		},
		{
			Description:     fmt.Sprintf("Verify %s with wrong data types", feature),
			Category:        "Negative - Data Type",
			Priority:        models.PriorityMedium,
			Preconditions:   "System is accessible",
			TestData:        "Text in numeric field, numbers in text field, etc.",
			Steps:           []string{"Navigate to the " + feature + " entry point", "Enter wrong data types in fields", "Attempt to submit", "Verify error handling"},
			ExpectedResult:  "System validates data types and shows appropriate error messages",
			Technique:       models.TechniqueNegative,
			TechniqueDetail: "Invalid Data Type Testing",
		},
		{
			Description:     fmt.Sprintf("Verify %s with special characters", feature),
			Category:        "Negative - Special Characters",
			Priority:        models.PriorityMedium,
			Preconditions:   "System is accessible",
			TestData:        `Input with special characters: !@#$%^&*()[]{}|\;':"<>?,./` + "`~",
			Steps:           []string{"Navigate to the " + feature + " entry point", "Enter special characters in text fields", "Submit the form", "Verify handling of special characters"},
			ExpectedResult:  "System either accepts and properly escapes special characters, or shows validation error",
			Technique:       models.TechniqueNegative,
			TechniqueDetail: "Special Character Handling",
		},
	}
}

// boundaryCases emits the six-point BVA group for the numeric/length field
// placeholder: min-1, min, min+1, max-1, max, max+1.
func boundaryCases(feature string) []models.TestCaseRow {
	points := []struct {
		detail   string
		data     string
		steps    []string
		expected string
	}{
		{
			detail:   "Boundary Value Analysis (Below Minimum)",
			data:     "Value below minimum (min - 1)",
			steps:    []string{"Navigate to the " + feature + " entry point", "Enter value below the minimum boundary", "Attempt to submit", "Verify rejection"},
			expected: "System rejects value and displays validation error",
		},
		{
			detail:   "Boundary Value Analysis (Minimum)",
			data:     "Minimum valid value for input fields",
			steps:    []string{"Navigate to the " + feature + " entry point", "Enter minimum boundary values", "Submit the form", "Verify acceptance"},
			expected: "System accepts minimum valid values",
		},
		{
			detail:   "Boundary Value Analysis (Above Minimum)",
			data:     "Value just above minimum (min + 1)",
			steps:    []string{"Navigate to the " + feature + " entry point", "Enter value just above the minimum boundary", "Submit the form", "Verify acceptance"},
			expected: "System accepts values above the minimum",
		},
		{
			detail:   "Boundary Value Analysis (Below Maximum)",
			data:     "Value just below maximum (max - 1)",
			steps:    []string{"Navigate to the " + feature + " entry point", "Enter value just below the maximum boundary", "Submit the form", "Verify acceptance"},
			expected: "System accepts values below the maximum",
		},
		{
			detail:   "Boundary Value Analysis (Maximum)",
			data:     "Maximum valid value for input fields",
			steps:    []string{"Navigate to the " + feature + " entry point", "Enter maximum boundary values", "Submit the form", "Verify acceptance"},
			expected: "System accepts maximum valid values",
		},
		{
			detail:   "Boundary Value Analysis (Above Maximum)",
			data:     "Value above maximum (max + 1)",
			steps:    []string{"Navigate to the " + feature + " entry point", "Enter value above the maximum boundary", "Attempt to submit", "Verify rejection"},
			expected: "System rejects value and displays validation error",
		},
	}

	rows := make([]models.TestCaseRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, models.TestCaseRow{
			Description:     fmt.Sprintf("Verify %s %s", feature, strings.ToLower(strings.TrimPrefix(p.detail, "Boundary Value Analysis "))),
			Category:        "Boundary - Validation",
			Priority:        models.PriorityHigh,
			Preconditions:   "System is accessible",
			TestData:        p.data,
			Steps:           p.steps,
			ExpectedResult:  p.expected,
			Technique:       models.TechniqueBoundaryValueAnalysis,
			TechniqueDetail: p.detail,
		})
	}
	return rows
}

func decisionTableCases(feature string) []models.TestCaseRow {
	return []models.TestCaseRow{
		{
			Description:     fmt.Sprintf("Verify %s with all conditions satisfied", feature),
			Category:        "Functional - Decision Table",
			Priority:        models.PriorityHigh,
			Preconditions:   "System is accessible",
			TestData:        "Input satisfying every independent condition",
			Steps:           []string{"Prepare input where every condition is true", "Execute the " + feature + " operation", "Verify the expected outcome for the all-true combination"},
			ExpectedResult:  "Outcome matches the decision table row for all conditions satisfied",
			Technique:       models.TechniqueDecisionTable,
			TechniqueDetail: "Decision Table Testing",
		},
		{
			Description:     fmt.Sprintf("Verify %s with conflicting condition combinations", feature),
			Category:        "Functional - Decision Table",
			Priority:        models.PriorityHigh,
			Preconditions:   "System is accessible",
			TestData:        "Inputs toggling one condition at a time",
			Steps:           []string{"Prepare inputs covering each single-condition-false combination", "Execute the " + feature + " operation for each", "Compare outcomes against the decision table"},
			ExpectedResult:  "Each combination produces the outcome its decision table row specifies",
			Technique:       models.TechniqueDecisionTable,
			TechniqueDetail: "Decision Table Testing",
		},
	}
}

func stateTransitionCases(feature string) []models.TestCaseRow {
	return []models.TestCaseRow{
		{
			Description:     fmt.Sprintf("Verify %s valid state transition path", feature),
			Category:        "Functional - State Transition",
			Priority:        models.PriorityHigh,
			Preconditions:   "Entity is in its initial state",
			TestData:        "Sequence of valid transition triggers",
			Steps:           []string{"Drive the " + feature + " workflow through each valid transition", "Verify the state after each transition", "Verify the terminal state"},
			ExpectedResult:  "Every valid transition moves the entity to the documented next state",
			Technique:       models.TechniqueStateTransition,
			TechniqueDetail: "State Transition Testing",
		},
		{
			Description:     fmt.Sprintf("Verify %s rejects invalid state transitions", feature),
			Category:        "Negative - State Transition",
			Priority:        models.PriorityHigh,
			Preconditions:   "Entity is in a known state",
			TestData:        "Transition triggers invalid for the current state",
			Steps:           []string{"Attempt a transition not allowed from the current state", "Observe the result", "Verify the state is unchanged"},
			ExpectedResult:  "Invalid transition is rejected and the current state is preserved",
			Technique:       models.TechniqueStateTransition,
			TechniqueDetail: "State Transition Testing",
		},
	}
}

func securityCases(feature string) []models.TestCaseRow {
	return []models.TestCaseRow{
		{
			Description:     fmt.Sprintf("Verify %s prevents SQL injection", feature),
			Category:        "Negative - Security",
			Priority:        models.PriorityCritical,
			Preconditions:   "System is accessible",
			TestData:        `SQL injection strings: ' OR '1'='1, '; DROP TABLE users; --`,
			Steps:           []string{"Navigate to the " + feature + " entry point", "Enter SQL injection payload in input fields", "Submit the form", "Verify input is sanitized"},
			ExpectedResult:  "System sanitizes input, no SQL injection occurs, no database error exposed",
			Technique:       models.TechniqueSecurity,
			TechniqueDetail: "Security Testing - SQL Injection",
		},
		{
			Description:     fmt.Sprintf("Verify %s prevents XSS attacks", feature),
			Category:        "Negative - Security",
			Priority:        models.PriorityCritical,
			Preconditions:   "System is accessible",
			TestData:        `XSS payloads: <script>alert('XSS')</script>, <img src=x onerror=alert('XSS')>`,
			Steps:           []string{"Navigate to the " + feature + " entry point", "Enter XSS payload in input fields", "Submit and view the data", "Verify script does not execute"},
			ExpectedResult:  "System escapes/sanitizes input, no script execution occurs",
			Technique:       models.TechniqueSecurity,
			TechniqueDetail: "Security Testing - XSS",
		},
		{
			Description:     fmt.Sprintf("Verify %s enforces authorization", feature),
			Category:        "Negative - Security",
			Priority:        models.PriorityCritical,
			Preconditions:   "User logged in with standard permissions",
			TestData:        "Standard user credentials",
			Steps:           []string{"Login as standard user", "Attempt to access admin-only features", "Verify access is denied", "Check for proper error message"},
			ExpectedResult:  `System denies access and displays "Unauthorized" message`,
			Technique:       models.TechniqueSecurity,
			TechniqueDetail: "Security Testing - Authorization",
		},
	}
}

func performanceCases(feature string) []models.TestCaseRow {
	return []models.TestCaseRow{
		{
			Description:     fmt.Sprintf("Verify %s response time under typical load", feature),
			Category:        "Non-functional - Performance",
			Priority:        models.PriorityHigh,
			Preconditions:   "Test environment matches production sizing",
			TestData:        "Production-like dataset",
			Steps:           []string{"Execute the " + feature + " operation under typical load", "Measure response times", "Compare against the agreed target"},
			ExpectedResult:  "Response times stay within the agreed target",
			Technique:       models.TechniquePerformance,
			TechniqueDetail: "Performance Testing",
		},
		{
			Description:     fmt.Sprintf("Verify %s under rapid repeated submissions", feature),
			Category:        "Non-functional - Performance",
			Priority:        models.PriorityMedium,
			Preconditions:   "System is accessible",
			TestData:        "Burst of identical submissions",
			Steps:           []string{"Submit the " + feature + " operation repeatedly in quick succession", "Observe system behavior and resource usage"},
			ExpectedResult:  "No crashes, data corruption, or unbounded resource growth",
			Technique:       models.TechniquePerformance,
			TechniqueDetail: "Performance Testing",
		},
	}
}

func accessibilityCases(feature string) []models.TestCaseRow {
	return []models.TestCaseRow{
		{
			Description:     fmt.Sprintf("Verify %s keyboard-only navigation", feature),
			Category:        "Accessibility - Keyboard",
			Priority:        models.PriorityHigh,
			Preconditions:   "Keyboard only, no pointing device",
			TestData:        "N/A",
			Steps:           []string{"Navigate using the Tab key", "Complete the " + feature + " workflow with keyboard only"},
			ExpectedResult:  "All elements accessible; focus indicators visible",
			Technique:       models.TechniqueAccessibility,
			TechniqueDetail: "Accessibility Testing",
		},
		{
			Description:     fmt.Sprintf("Verify %s screen reader compatibility", feature),
			Category:        "Accessibility - Screen Reader",
			Priority:        models.PriorityHigh,
			Preconditions:   "Screen reader enabled",
			TestData:        "N/A",
			Steps:           []string{"Enable the screen reader", "Navigate through the " + feature + " workflow"},
			ExpectedResult:  "All labels announced; error messages read",
			Technique:       models.TechniqueAccessibility,
			TechniqueDetail: "Accessibility Testing",
		},
	}
}

func compatibilityCases(feature string) []models.TestCaseRow {
	targets := []struct {
		name     string
		category string
		detail   string
		precond  string
		priority models.Priority
	}{
		{"Chrome browser", "Compatibility - Browser", "Browser Compatibility", "Chrome installed", models.PriorityCritical},
		{"Firefox browser", "Compatibility - Browser", "Browser Compatibility", "Firefox installed", models.PriorityCritical},
		{"Safari browser", "Compatibility - Browser", "Browser Compatibility", "Safari installed", models.PriorityCritical},
		{"mobile (iOS)", "Compatibility - Mobile", "Mobile Compatibility", "iOS device", models.PriorityHigh},
		{"mobile (Android)", "Compatibility - Mobile", "Mobile Compatibility", "Android device", models.PriorityHigh},
	}

	rows := make([]models.TestCaseRow, 0, len(targets))
	for _, tgt := range targets {
		rows = append(rows, models.TestCaseRow{
			Description:     fmt.Sprintf("Verify %s on %s", feature, tgt.name),
			Category:        tgt.category,
			Priority:        tgt.priority,
			Preconditions:   tgt.precond,
			TestData:        "Valid test data",
			Steps:           []string{"Open the " + feature + " on " + tgt.name, "Complete the workflow"},
			ExpectedResult:  "All functionality works correctly",
			Technique:       models.TechniqueCompatibility,
			TechniqueDetail: tgt.detail,
		})
	}
	return rows
}
