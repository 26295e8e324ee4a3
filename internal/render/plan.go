package render

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/qbox/qadocgen/pkg/models"
)

var planTemplate = template.Must(template.New("plan").Funcs(template.FuncMap{
	"upper":   strings.ToUpper,
	"divider": func() string { return divider },
}).Parse(`{{ .FeatureName }} - Test Plan

{{ divider }}

{{ range .Plan }}{{ upper .Name }}

{{ .Body }}

{{ divider }}

{{ end }}End of Test Plan
`))

func renderPlan(set *models.DocumentSet) ([]byte, error) {
	var buf bytes.Buffer
	if err := planTemplate.Execute(&buf, set); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
