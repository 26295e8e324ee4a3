package render

import (
	"bytes"
	"text/template"

	"github.com/qbox/qadocgen/pkg/models"
)

var chartersTemplate = template.Must(template.New("charters").Funcs(template.FuncMap{
	"divider": func() string { return divider },
	"date": func(set *models.DocumentSet) string {
		return set.GeneratedAt.Format("January 2, 2006")
	},
}).Parse(`{{ .FeatureName }} - Exploratory Testing

{{ divider }}

EXPLORATORY TESTING CHARTERS

Generated: {{ date . }}

{{ divider }}

CHARTER SUMMARY

{{ range .Charters }}• {{ .ID }} - {{ .Title }} ({{ .Priority }}, {{ .DurationMinutes }} min)
{{ end }}
{{ divider }}

{{ range .Charters }}CHARTER {{ .ID }}: {{ .Title }}

Priority: {{ .Priority }}
Duration: {{ .DurationMinutes }} minutes
Tester: [Assign]

Mission
{{ .Mission }}

Areas to Explore
{{ range .FocusAreas }}• {{ . }}
{{ end }}
What to Look For
{{ range .Risks }}• {{ . }}
{{ end }}{{ if .TestIdeas }}
Test Ideas
{{ range .TestIdeas }}• {{ . }}
{{ end }}{{ end }}{{ if .DataVariations }}
Data Variations
{{ range .DataVariations }}• {{ . }}
{{ end }}{{ end }}
{{ divider }}

{{ end }}SESSION NOTES TEMPLATE

Charter ID: ___
Tester: ___________
Date: ___________
Start Time: ___________
End Time: ___________

Bugs Found:
1.
2.

Questions Raised:
1.
2.

Areas Not Tested:
1.

Test Coverage: ___ %
Additional Notes:

{{ divider }}

End of Exploratory Testing Charters
`))

func renderCharters(set *models.DocumentSet) ([]byte, error) {
	var buf bytes.Buffer
	if err := chartersTemplate.Execute(&buf, set); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
