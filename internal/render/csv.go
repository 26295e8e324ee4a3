package render

import (
	"bytes"
	"encoding/csv"

	"github.com/qbox/qadocgen/pkg/models"
)

// Header is the fixed 13-column test case table header. Column order is part
// of the external contract: downstream test-management tools import by
// position.
var Header = []string{
	"Test Case ID",
	"Description",
	"Category",
	"Priority",
	"Preconditions",
	"Test Data",
	"Steps to Reproduce",
	"Expected Result",
	"Actual Result",
	"Pass/Fail",
	"Bug ID",
	"Test Design Technique",
	"Requirement ID",
}

// caseRows flattens the test cases into tabular values, header first.
func caseRows(set *models.DocumentSet) [][]string {
	rows := make([][]string, 0, len(set.TestCases)+1)
	rows = append(rows, Header)
	for i := range set.TestCases {
		tc := &set.TestCases[i]
		rows = append(rows, []string{
			tc.ID,
			tc.Description,
			tc.Category,
			string(tc.Priority),
			tc.Preconditions,
			tc.TestData,
			numberSteps(tc.Steps),
			tc.ExpectedResult,
			tc.ActualResult,
			tc.PassFail,
			tc.BugID,
			tc.TechniqueLabel(),
			tc.RequirementRef,
		})
	}
	return rows
}

// renderCSV encodes the rows as UTF-8 CSV. encoding/csv applies RFC 4180
// quoting, so embedded delimiters and newlines survive a round trip through
// spreadsheet tools.
func renderCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
