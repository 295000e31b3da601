package fundlens

import (
	"math"
	"sort"
	"strings"
)

// Benchmark is one entry of the fixed benchmark table: a display name and the
// fixed annual return percentage used as the benchmark return.
type Benchmark struct {
	Name         string
	AnnualReturn float64
}

// benchmarkTable is external configuration, not user-editable. The "Other"
// entry is an inflation proxy used as the fallback.
var benchmarkTable = map[string]Benchmark{
	"Large Cap": {Name: "NIFTY 100 TRI", AnnualReturn: 13.5},
	"Mid Cap":   {Name: "NIFTY Midcap 150 TRI", AnnualReturn: 16.0},
	"Small Cap": {Name: "NIFTY Smallcap 250 TRI", AnnualReturn: 17.5},
	"Flexi Cap": {Name: "NIFTY 500 TRI", AnnualReturn: 14.0},
	"ELSS":      {Name: "NIFTY 500 TRI", AnnualReturn: 14.0},
	"Debt":      {Name: "CRISIL Short Term Bond Index", AnnualReturn: 7.0},
	"Liquid":    {Name: "CRISIL Liquid Fund Index", AnnualReturn: 6.0},
	"Sectoral":  {Name: "NIFTY 500 TRI", AnnualReturn: 14.0},
	"Other":     {Name: "Inflation (CPI proxy)", AnnualReturn: 6.5},
}

// benchmarkSubstrings is the fixed fallback order for sub-categories without
// an exact table entry. Order matters: "Small" is tested before "Mid" so that
// e.g. "Small & Mid Cap" resolves to the small-cap benchmark.
var benchmarkSubstrings = []struct {
	fragment string
	key      string
}{
	{"Large", "Large Cap"},
	{"Small", "Small Cap"},
	{"Mid", "Mid Cap"},
	{"Flexi", "Flexi Cap"},
	{"Debt", "Debt"},
}

// Benchmarks returns the fixed benchmark table keys in a stable order,
// for display purposes.
func Benchmarks() []string {
	keys := make([]string, 0, len(benchmarkTable))
	for k := range benchmarkTable {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BenchmarkFor returns the table entry for a key. It is only meaningful for
// keys returned by [Benchmarks].
func BenchmarkFor(key string) Benchmark { return benchmarkTable[key] }

// ResolveBenchmark maps a sub-category to its benchmark: exact table match
// first, then the fixed substring order, then the inflation-proxy fallback.
func ResolveBenchmark(subCategory string) Benchmark {
	if b, ok := benchmarkTable[subCategory]; ok {
		return b
	}
	for _, s := range benchmarkSubstrings {
		if strings.Contains(subCategory, s.fragment) {
			return benchmarkTable[s.key]
		}
	}
	return benchmarkTable["Other"]
}

// BenchmarkComparison is the benchmark-relative performance of one
// sub-category.
type BenchmarkComparison struct {
	SubCategory string
	// MyXIRR is the value-weighted average XIRR across the sub-category's
	// holdings, rounded to 2 decimals.
	MyXIRR    float64
	Benchmark string
	BenchXIRR float64
	// Alpha is MyXIRR - BenchXIRR, both terms rounded independently before
	// subtracting.
	Alpha float64
	// Weight is the total current value backing the weighted average; the
	// comparison list is ranked by it, largest first.
	Weight float64
}

// round2 rounds to 2 decimal places, the display precision of every
// percentage in the analysis.
func round2(v float64) float64 { return math.Round(v*100) / 100 }
