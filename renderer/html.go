package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/cashcast"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Balance Forecast {{.AsOf}}</title>
<style>
body { font-family: sans-serif; max-width: 64rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
table { border-collapse: collapse; }
th, td { padding: 0.2rem 0.6rem; border-bottom: 1px solid #ddd; }
td:first-child { text-align: right; }
svg { width: 100%; height: auto; }
</style>
</head>
<body>
{{.Chart}}
{{.Body}}
</body>
</html>
`))

// HTMLPage renders the report as a standalone HTML page: the SVG band chart
// followed by the forecast, runs, and events sections converted from
// markdown.
func HTMLPage(r *cashcast.SimulationReport) (string, error) {
	var md strings.Builder
	md.WriteString(ForecastMarkdown(r))
	md.WriteString(RunsMarkdown(r))
	md.WriteString(EventsMarkdown(r.CashEvents, r.Meta.Currency))

	// GFM tables are the backbone of every report section.
	converter := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := converter.Convert([]byte(md.String()), &body); err != nil {
		return "", fmt.Errorf("cannot convert report markdown: %w", err)
	}

	var page bytes.Buffer
	err := pageTemplate.Execute(&page, struct {
		AsOf  string
		Chart string
		Body  string
	}{
		AsOf:  r.Meta.AsOf.String(),
		Chart: ChartSVG(r),
		Body:  body.String(),
	})
	if err != nil {
		return "", fmt.Errorf("cannot render report page: %w", err)
	}
	return page.String(), nil
}
