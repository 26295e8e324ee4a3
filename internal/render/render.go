// Package render serializes an assembled document set into its flat-file
// encodings: plain structured text for the test plan and charters, CSV for
// the test case table.
package render

import (
	"fmt"
	"strings"

	"github.com/qbox/qadocgen/pkg/models"
)

// divider is the section rule used instead of heading markup. Rendered
// documents must carry no raw markdown heading characters.
const divider = "═══════════════════════════════════════════════════════════════════════════════"

// Output holds the three serialized artifacts. TestCaseRows carries the
// tabular values (header included) for publishers that speak cells rather
// than files.
type Output struct {
	TestPlan     []byte
	TestCases    []byte
	Charters     []byte
	TestCaseRows [][]string
}

// Serialize renders every artifact of the set.
func Serialize(set *models.DocumentSet) (*Output, error) {
	plan, err := renderPlan(set)
	if err != nil {
		return nil, fmt.Errorf("failed to render test plan: %w", err)
	}

	charters, err := renderCharters(set)
	if err != nil {
		return nil, fmt.Errorf("failed to render charters: %w", err)
	}

	rows := caseRows(set)
	cases, err := renderCSV(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to render test cases: %w", err)
	}

	return &Output{
		TestPlan:     plan,
		TestCases:    cases,
		Charters:     charters,
		TestCaseRows: rows,
	}, nil
}

// numberSteps joins ordered steps the way the CSV column expects them:
// "1. first; 2. second; 3. third".
func numberSteps(steps []string) string {
	parts := make([]string, 0, len(steps))
	for i, step := range steps {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, step))
	}
	return strings.Join(parts, "; ")
}
