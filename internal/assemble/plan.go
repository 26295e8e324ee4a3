package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/qbox/qadocgen/pkg/models"
)

// requirementExcerptLen bounds the requirement quote in the introduction.
const requirementExcerptLen = 500

// buildPlan emits every plan section in fixed catalog order. Sections with no
// requirement-specific signal carry the standard defaults; Risk Analysis and
// Test Strategy come from the static entry lists, not from the requirement.
func buildPlan(feature, requirement string, generatedAt time.Time) []models.PlanSection {
	date := generatedAt.Format("January 2, 2006")

	return []models.PlanSection{
		{
			Name: "Document Control",
			Body: fmt.Sprintf(`Document: %s - Test Plan
Version: v1.0
Date Created: %s
Last Updated: %s
Author: QA Team
Status: Ready for Review`, feature, date, date),
		},
		{
			Name: "Introduction & Scope",
			Body: fmt.Sprintf(`Feature Overview

%s

Objectives of Testing

• Verify all functional requirements are implemented correctly
• Validate security measures and data integrity
• Ensure performance targets are met
• Confirm cross-browser and mobile compatibility
• Validate accessibility compliance (WCAG 2.1 AA)

In-Scope Items

✓ Functional testing of all requirements
✓ Validation and error handling
✓ Security testing (SQL injection, XSS, CSRF)
✓ Performance testing
✓ Cross-browser compatibility
✓ Mobile device testing
✓ Accessibility testing
✓ Integration testing

Out-of-Scope Items

✗ Third-party service infrastructure
✗ Load testing beyond 1000 concurrent users
✗ Penetration testing (separate engagement)`, excerpt(requirement, feature)),
		},
		{
			Name: "Test Strategy",
			Body: `Testing Types

FUNCTIONAL TESTING
Verify all workflows and features work as specified in requirements

VALIDATION TESTING
Test input validation, error messages, and data integrity

SECURITY TESTING (Critical Priority)
• SQL injection prevention
• XSS prevention
• CSRF protection
• Authentication and authorization
• Data encryption

PERFORMANCE TESTING
• Response time validation
• Resource usage monitoring
• Concurrent user testing

COMPATIBILITY TESTING
• Browsers: Chrome, Firefox, Safari, Edge (latest 2 versions)
• Mobile: iOS Safari, Android Chrome
• Screen sizes: 320px to 1920px

ACCESSIBILITY TESTING
• WCAG 2.1 AA compliance
• Keyboard navigation
• Screen reader compatibility

Test Design Techniques

1. Equivalence Partitioning - Valid/invalid input classes
2. Boundary Value Analysis - Min, max, and edge values
3. Decision Table Testing - All condition combinations
4. State Transition Testing - Workflow validation
5. Use Case Testing - Real-world scenarios
6. Negative Testing - Error handling validation`,
		},
		{
			Name: "Test Environment",
			Body: `Hardware Requirements
• Application server: 4 CPU cores, 8GB RAM
• Database server: 4 CPU cores, 8GB RAM

Software Requirements
• Operating System: Ubuntu 22.04 LTS / Windows Server 2022
• Web server: Nginx 1.24 / Apache 2.4
• Database: PostgreSQL 15 / MySQL 8.0
• Application runtime: Latest LTS version

Browser and Device Matrix
• Chrome      - Latest 2 - Windows, macOS - P0
• Firefox     - Latest 2 - Windows, macOS - P0
• Safari      - Latest   - macOS          - P0
• Edge        - Latest 2 - Windows        - P1
• iOS Safari  - Latest 2 - iPhone, iPad   - P0
• Android     - Latest 2 - Android 12-14  - P0

Test Data
• Production-like dataset (anonymized)
• Edge case data (boundary values, special characters)
• Invalid data for negative testing
• Large datasets for performance testing`,
		},
		{
			Name: "Risk Analysis",
			Body: `High-Risk Areas

SECURITY RISKS (Critical)
1. Data validation vulnerabilities
2. Authentication/Authorization bypass
3. Session management issues
4. Data exposure

FUNCTIONAL RISKS (High)
5. Critical user workflows
6. Data integrity
7. Error handling gaps

PERFORMANCE RISKS (Medium)
8. Response time degradation
9. Concurrent user handling

Mitigation Strategies
• Increase test coverage for high-risk areas
• Conduct security-focused test sessions
• Automate the regression suite
• Load test before release`,
		},
		{
			Name: "Deliverables",
			Body: `• Test Plan document (this document)
• Test Cases document with traceability matrix
• Exploratory Testing Charters
• Test Data preparation scripts
• Test execution reports (daily/weekly)
• Defect reports with severity classification
• Test summary report
• Test sign-off document`,
		},
		{
			Name: "Schedule & Milestones",
			Body: `Total Duration: 14 business days

• Test Planning          - 1 day  - Test plan approved
• Test Case Design       - 2 days - Cases reviewed
• Functional Testing     - 3 days - All functional cases
• Security Testing       - 2 days - Security validated
• Compatibility Testing  - 2 days - All browsers tested
• Exploratory Testing    - 2 days - All charters complete
• Defect Retesting       - 1 day  - All fixes verified
• Test Reporting         - 1 day  - Sign-off obtained`,
		},
		{
			Name: "Roles & Responsibilities",
			Body: `• QA Lead                 - Test strategy, stakeholder communication
• Senior QA Engineers (2) - Test execution, defect reporting
• Automation Engineer     - Automated test scripts, CI/CD integration
• Business Analyst        - Requirements clarification, UAT
• Development Team        - Defect fixing, technical support`,
		},
	}
}

// excerpt quotes the requirement in the introduction, bounded to 500 runes.
// A blank requirement falls back to a generic line so the section is never
// empty.
func excerpt(requirement, feature string) string {
	text := strings.TrimSpace(requirement)
	if text == "" {
		return fmt.Sprintf("Testing scope for %s.", feature)
	}
	runes := []rune(text)
	if len(runes) > requirementExcerptLen {
		return string(runes[:requirementExcerptLen]) + "..."
	}
	return text
}
