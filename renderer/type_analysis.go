package renderer

import (
	"sort"
	"strconv"

	"github.com/fundlens/fundlens"
)

// Analysis is the view model for the full analysis report. Numbers are
// carried as Money/Percent so templates get consistent formatting for free.
type Analysis struct {
	Simulated bool `json:"simulated"`

	TotalInvested  fundlens.Money   `json:"totalInvested"`
	TotalCurrent   fundlens.Money   `json:"totalCurrent"`
	TotalReturns   fundlens.Money   `json:"totalReturns"`
	AbsoluteReturn fundlens.Percent `json:"absoluteReturn"`

	// Categories and AMCs are ranked by value, largest first.
	Categories []Allocation `json:"categories"`
	AMCs       []Allocation `json:"amcs"`

	Benchmarks     []BenchmarkRow     `json:"benchmarks"`
	Consolidations []ConsolidationRow `json:"consolidations"`
	LossMakers     []FundRow          `json:"lossMakers"`
	Clutter        []FundRow          `json:"clutter"`

	HealthScore int    `json:"healthScore"`
	HealthLabel string `json:"healthLabel"`

	Simulation SimulationRow `json:"simulation"`
}

// Allocation is one slice of the category or AMC breakdown.
type Allocation struct {
	Label string           `json:"label"`
	Value fundlens.Money   `json:"value"`
	Share fundlens.Percent `json:"share"`
}

// BenchmarkRow is one sub-category of the benchmark comparison.
type BenchmarkRow struct {
	SubCategory string           `json:"subCategory"`
	Benchmark   string           `json:"benchmark"`
	MyXIRR      fundlens.Percent `json:"myXIRR"`
	BenchXIRR   fundlens.Percent `json:"benchXIRR"`
	Alpha       fundlens.Percent `json:"alpha"`
}

// ConsolidationRow is one sub-category of the consolidation plan.
type ConsolidationRow struct {
	SubCategory string         `json:"subCategory"`
	Keep        string         `json:"keep"`
	Others      []string       `json:"others"`
	MoveValue   fundlens.Money `json:"moveValue"`
}

// FundRow is one holding in the loss-maker or clutter lists.
type FundRow struct {
	Scheme  string           `json:"scheme"`
	Current fundlens.Money   `json:"current"`
	Returns fundlens.Money   `json:"returns"`
	XIRR    fundlens.Percent `json:"xirr"`
}

// SimulationRow describes the effect of removing clutter.
type SimulationRow struct {
	TotalCount     int            `json:"totalCount"`
	ClutterCount   int            `json:"clutterCount"`
	ClutterValue   fundlens.Money `json:"clutterValue"`
	RemainingCount int            `json:"remainingCount"`
}

// NewAnalysis builds the report view from an analysis result.
func NewAnalysis(res fundlens.AnalysisResult, simulated bool) *Analysis {
	a := &Analysis{
		Simulated:      simulated,
		TotalInvested:  fundlens.INR(res.TotalInvested),
		TotalCurrent:   fundlens.INR(res.TotalCurrent),
		TotalReturns:   fundlens.INR(res.TotalReturns),
		AbsoluteReturn: fundlens.Percent(res.AbsoluteReturnPct),
		HealthScore:    res.HealthScore,
		HealthLabel:    res.HealthLabel,
		Simulation: SimulationRow{
			TotalCount:     res.SimulationStats.TotalCount,
			ClutterCount:   res.SimulationStats.ClutterCount,
			ClutterValue:   fundlens.INR(res.SimulationStats.ClutterValue),
			RemainingCount: res.SimulationStats.RemainingCount,
		},
	}

	a.Categories = allocations(res.CategoryTotals, res.TotalCurrent)
	a.AMCs = allocations(res.AMCTotals, res.TotalCurrent)

	for _, bc := range res.BenchmarkComparison {
		a.Benchmarks = append(a.Benchmarks, BenchmarkRow{
			SubCategory: bc.SubCategory,
			Benchmark:   bc.Benchmark,
			MyXIRR:      fundlens.Percent(bc.MyXIRR),
			BenchXIRR:   fundlens.Percent(bc.BenchXIRR),
			Alpha:       fundlens.Percent(bc.Alpha),
		})
	}

	for _, plan := range res.ConsolidationPlan {
		row := ConsolidationRow{
			SubCategory: plan.SubCategory,
			Keep:        plan.Keep.SchemeName,
			MoveValue:   fundlens.INR(plan.PotentialMoveValue),
		}
		for _, f := range plan.Others {
			row.Others = append(row.Others, f.SchemeName)
		}
		a.Consolidations = append(a.Consolidations, row)
	}

	for _, h := range res.LossMakers {
		a.LossMakers = append(a.LossMakers, fundRow(h))
	}
	for _, h := range res.ClutterItems {
		a.Clutter = append(a.Clutter, fundRow(h))
	}
	return a
}

func fundRow(h fundlens.Holding) FundRow {
	return FundRow{
		Scheme:  h.SchemeName,
		Current: fundlens.INR(h.CurrentValue),
		Returns: fundlens.INR(h.Returns),
		XIRR:    fundlens.Percent(h.XIRR),
	}
}

// allocations ranks group totals by value descending; equal values keep a
// deterministic label order.
func allocations(totals map[string]float64, grandTotal float64) []Allocation {
	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sort.SliceStable(labels, func(i, j int) bool {
		return totals[labels[i]] > totals[labels[j]]
	})

	out := make([]Allocation, 0, len(labels))
	for _, label := range labels {
		share := 0.0
		if grandTotal > 0 {
			share = totals[label] / grandTotal * 100
		}
		out = append(out, Allocation{
			Label: label,
			Value: fundlens.INR(totals[label]),
			Share: fundlens.Percent(share),
		})
	}
	return out
}

// Holdings is the view model for the canonical holdings table.
type Holdings struct {
	Count int          `json:"count"`
	Funds []HoldingRow `json:"funds"`
}

// HoldingRow is one canonical holding.
type HoldingRow struct {
	Scheme      string           `json:"scheme"`
	Category    string           `json:"category"`
	SubCategory string           `json:"subCategory"`
	AMC         string           `json:"amc"`
	Units       string           `json:"units"`
	Invested    fundlens.Money   `json:"invested"`
	Current     fundlens.Money   `json:"current"`
	AbsReturn   fundlens.Percent `json:"absReturn"`
	XIRR        fundlens.Percent `json:"xirr"`
}

// NewHoldings builds the holdings view from canonical holdings with derived
// fields already computed.
func NewHoldings(holdings []fundlens.Holding) *Holdings {
	v := &Holdings{Count: len(holdings)}
	for _, h := range holdings {
		v.Funds = append(v.Funds, HoldingRow{
			Scheme:      h.SchemeName,
			Category:    h.Category,
			SubCategory: h.SubCategory,
			AMC:         h.AMC,
			Units:       strconv.FormatFloat(h.Units, 'f', -1, 64),
			Invested:    fundlens.INR(h.InvestedValue),
			Current:     fundlens.INR(h.CurrentValue),
			AbsReturn:   fundlens.Percent(h.AbsReturnPct),
			XIRR:        fundlens.Percent(h.XIRR),
		})
	}
	return v
}

// BenchmarkTable is the view model for the fixed benchmark reference table.
type BenchmarkTable struct {
	Rows []BenchmarkTableRow `json:"rows"`
}

// BenchmarkTableRow is one entry of the fixed table.
type BenchmarkTableRow struct {
	SubCategory  string           `json:"subCategory"`
	Benchmark    string           `json:"benchmark"`
	AnnualReturn fundlens.Percent `json:"annualReturn"`
}

// NewBenchmarkTable builds the reference view from the fixed table.
func NewBenchmarkTable() *BenchmarkTable {
	t := &BenchmarkTable{}
	for _, key := range fundlens.Benchmarks() {
		b := fundlens.BenchmarkFor(key)
		t.Rows = append(t.Rows, BenchmarkTableRow{
			SubCategory:  key,
			Benchmark:    b.Name,
			AnnualReturn: fundlens.Percent(b.AnnualReturn),
		})
	}
	return t
}
