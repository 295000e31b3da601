package renderer

import (
	"strings"
	"testing"

	"github.com/fundlens/fundlens"
)

// sampleResult analyzes a small portfolio that exercises every report
// section: three Large Cap schemes (consolidation), one loss maker and one
// clutter holding.
func sampleResult() fundlens.AnalysisResult {
	holdings := []fundlens.Holding{
		{SchemeName: "Acme Bluechip", Category: "Equity", SubCategory: "Large Cap", AMC: "Acme", Units: 100, InvestedValue: 40000, CurrentValue: 48000, Returns: 8000, XIRR: 15.5},
		{SchemeName: "Zen Bluechip", Category: "Equity", SubCategory: "Large Cap", AMC: "Zen", Units: 50, InvestedValue: 20000, CurrentValue: 22000, Returns: 2000, XIRR: 12.0},
		{SchemeName: "Nova Bluechip", Category: "Equity", SubCategory: "Large Cap", AMC: "Nova", Units: 40, InvestedValue: 15000, CurrentValue: 14000, Returns: -1000, XIRR: -4.0},
		{SchemeName: "Tiny Debt", Category: "Debt", SubCategory: "Liquid", AMC: "Acme", Units: 10, InvestedValue: 3000, CurrentValue: 3100, Returns: 100, XIRR: 6.2},
	}
	return fundlens.Analyze(holdings, false)
}

func TestAnalysisMarkdown(t *testing.T) {
	md := AnalysisMarkdown(NewAnalysis(sampleResult(), false))

	for _, want := range []string{
		"# Portfolio Analysis",
		"## Allocation",
		"| Equity |",
		"## Benchmark comparison",
		"| Large Cap |",
		"## Consolidation plan",
		"Keep **Acme Bluechip**",
		"### Loss makers",
		"| Nova Bluechip |",
		"### Clutter",
		"| Tiny Debt |",
		"/100**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("analysis report is missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "cleanup simulation") {
		t.Errorf("report claims to be a simulation:\n%s", md)
	}
}

func TestAnalysisMarkdown_Simulated(t *testing.T) {
	md := AnalysisMarkdown(NewAnalysis(sampleResult(), true))
	if !strings.Contains(md, "(cleanup simulation)") {
		t.Errorf("simulated report is missing the simulation marker:\n%s", md)
	}
}

func TestAnalysisMarkdown_Empty(t *testing.T) {
	// A zero-value view must render, not panic or error.
	md := AnalysisMarkdown(&Analysis{})
	if strings.Contains(md, "error") {
		t.Errorf("empty report rendered an error:\n%s", md)
	}
	if !strings.Contains(md, "Nothing flagged.") {
		t.Errorf("empty report is missing the attention fallback:\n%s", md)
	}
	if !strings.Contains(md, "No holding carries an XIRR") {
		t.Errorf("empty report is missing the benchmark fallback:\n%s", md)
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	res := sampleResult()
	md := HoldingsMarkdown(NewHoldings(res.Holdings))

	if !strings.Contains(md, "# Holdings (4)") {
		t.Errorf("holdings report is missing the count:\n%s", md)
	}
	if !strings.Contains(md, "| Acme Bluechip | Equity | Large Cap | Acme | 100 |") {
		t.Errorf("holdings report is missing the first row:\n%s", md)
	}
}

func TestBenchmarkTableMarkdown(t *testing.T) {
	md := BenchmarkTableMarkdown(NewBenchmarkTable())

	for _, want := range []string{
		"| Large Cap | NIFTY 100 TRI |",
		"| Other | Inflation (CPI proxy) |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("benchmark table is missing %q:\n%s", want, md)
		}
	}
}

func TestHealthMarkdown(t *testing.T) {
	md := HealthMarkdown(NewAnalysis(sampleResult(), false))
	if !strings.Contains(md, "## Health") {
		t.Errorf("health report is missing its heading:\n%s", md)
	}
}

func TestNewAnalysis_RanksAllocationsByValue(t *testing.T) {
	a := NewAnalysis(sampleResult(), false)

	if got, want := len(a.Categories), 2; got != want {
		t.Fatalf("len(Categories) = %d, want %d", got, want)
	}
	if got, want := a.Categories[0].Label, "Equity"; got != want {
		t.Errorf("Categories[0] = %q, want %q", got, want)
	}
	if got, want := a.Categories[1].Label, "Debt"; got != want {
		t.Errorf("Categories[1] = %q, want %q", got, want)
	}
	// Equity holds 84000 of 87100, so its share rounds to 96.44%.
	if got, want := a.Categories[0].Share.String(), "96.44%"; got != want {
		t.Errorf("Categories[0].Share = %q, want %q", got, want)
	}
}
