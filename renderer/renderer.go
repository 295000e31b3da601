// Package renderer turns analysis results into markdown reports.
//
// Each report has a view type holding pre-formatted values (Money, Percent)
// and a markdown template with partials; rendering never fails, template
// errors come back as the report text so they are visible where the report
// would be.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

// AnalysisMarkdown renders the full analysis report.
func AnalysisMarkdown(a *Analysis) string {
	partials := map[string]string{
		"analysis_summary":       "analysis_summary.md",
		"analysis_allocation":    "analysis_allocation.md",
		"analysis_benchmarks":    "analysis_benchmarks.md",
		"analysis_consolidation": "analysis_consolidation.md",
		"analysis_attention":     "analysis_attention.md",
		"analysis_health":        "analysis_health.md",
	}
	return renderTemplate("analysis", "analysis.md", partials, a)
}

// HoldingsMarkdown renders the canonical holdings table.
func HoldingsMarkdown(h *Holdings) string {
	return renderTemplate("holdings", "holdings.md", nil, h)
}

// HealthMarkdown renders the health score section alone.
func HealthMarkdown(a *Analysis) string {
	return renderTemplate("health", "analysis_health.md", nil, a)
}

// ConsolidationMarkdown renders the consolidation plan alone.
func ConsolidationMarkdown(a *Analysis) string {
	return renderTemplate("consolidation", "analysis_consolidation.md", nil, a)
}

// BenchmarkTableMarkdown renders the fixed benchmark reference table.
func BenchmarkTableMarkdown(b *BenchmarkTable) string {
	return renderTemplate("benchmark_table", "benchmark_table.md", nil, b)
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templatesFS, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templatesFS, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
