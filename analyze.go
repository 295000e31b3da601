package fundlens

import (
	"math"
	"sort"
)

// ClutterThreshold is the fixed current-value floor (in rupees) under which a
// holding counts as clutter. A business constant of the contract, not runtime
// configuration.
const ClutterThreshold = 5000

// SimulationStats describes the effect of removing clutter. It is always
// computed against the original, unfiltered holding set, whether or not the
// cleanup simulation is active, so the toggle never changes it.
type SimulationStats struct {
	TotalCount     int
	ClutterCount   int
	ClutterValue   float64
	RemainingCount int
}

// MergedFund is a scheme-level aggregate: holdings sharing category,
// sub-category and scheme name merged into one fund. Values and units sum;
// AbsReturnPct is recomputed from the merged sums, never averaged from
// row-level percentages.
type MergedFund struct {
	SchemeName    string
	AMC           string
	InvestedValue float64
	CurrentValue  float64
	Returns       float64
	Units         float64
	XIRR          float64
	AbsReturnPct  float64
}

// SubCategoryGroup is one sub-category inside a category, carrying its merged
// funds and summed values.
type SubCategoryGroup struct {
	SubCategory   string
	InvestedValue float64
	CurrentValue  float64
	Funds         []MergedFund
}

// CategoryGroup is the top level of the category tree.
type CategoryGroup struct {
	Category      string
	InvestedValue float64
	CurrentValue  float64
	SubCategories []SubCategoryGroup
}

// AnalysisResult is the full derived analytical model, recomputed wholesale
// on every input change. It is a pure function of the holdings and the
// cleanup-simulation toggle.
type AnalysisResult struct {
	TotalInvested     float64
	TotalCurrent      float64
	TotalReturns      float64
	AbsoluteReturnPct float64

	// CategoryTotals and AMCTotals map group label to summed current value.
	// Iteration order is irrelevant; consumers sort by value descending.
	CategoryTotals map[string]float64
	AMCTotals      map[string]float64

	// LossMakers holds every working-set holding with negative returns;
	// ClutterItems every one below ClutterThreshold.
	LossMakers   []Holding
	ClutterItems []Holding

	// CategoryTree is the two-level grouping category → sub-category →
	// merged-by-scheme funds, in first-seen order.
	CategoryTree []CategoryGroup

	// BenchmarkComparison has one entry per sub-category with weighted XIRR
	// data, ranked by backing value, largest first.
	BenchmarkComparison []BenchmarkComparison

	// ConsolidationPlan has one entry per sub-category holding more than two
	// distinct schemes.
	ConsolidationPlan []ConsolidationPlan

	HealthScore int
	HealthLabel string

	SimulationStats SimulationStats

	// Holdings is the working set the analysis ran on, with derived fields
	// filled in. When the simulation is active the clutter rows are absent.
	Holdings []Holding
}

// xirrAccum accumulates the value-weighted XIRR of one sub-category.
// Holdings whose XIRR is exactly zero or non-finite are skipped so an absent
// rate never pollutes the average.
type xirrAccum struct {
	sumProduct float64
	sumWeight  float64
}

// Analyze derives the complete analytical model from canonical holdings.
//
// It is pure, deterministic and total: no input causes it to fail, and
// calling it twice with identical arguments yields identical output. When
// simulateCleanup is true, holdings below ClutterThreshold are dropped from
// the working set used by every metric except SimulationStats, which always
// reflects the true unfiltered portfolio.
func Analyze(holdings []Holding, simulateCleanup bool) AnalysisResult {
	// Derived per-holding fields, computed once.
	derived := make([]Holding, len(holdings))
	for i, h := range holdings {
		derived[i] = h.withDerived()
	}

	// Simulation stats come from the full set, before any filtering.
	stats := SimulationStats{TotalCount: len(derived)}
	for _, h := range derived {
		if h.CurrentValue < ClutterThreshold {
			stats.ClutterCount++
			stats.ClutterValue += h.CurrentValue
		}
	}
	stats.RemainingCount = stats.TotalCount - stats.ClutterCount

	working := derived
	if simulateCleanup {
		working = make([]Holding, 0, len(derived))
		for _, h := range derived {
			if h.CurrentValue >= ClutterThreshold {
				working = append(working, h)
			}
		}
	}

	res := AnalysisResult{
		CategoryTotals:  make(map[string]float64),
		AMCTotals:       make(map[string]float64),
		SimulationStats: stats,
		Holdings:        working,
	}

	// Single pass: totals, group sums, loss and clutter detection, weighted
	// XIRR accumulators, and the category tree.
	xirrBySub := make(map[string]*xirrAccum)
	var subOrder []string
	catIndex := make(map[string]int)

	for _, h := range working {
		res.TotalInvested += h.InvestedValue
		res.TotalCurrent += h.CurrentValue
		res.CategoryTotals[h.Category] += h.CurrentValue
		res.AMCTotals[h.AMC] += h.CurrentValue

		if h.Returns < 0 {
			res.LossMakers = append(res.LossMakers, h)
		}
		if h.CurrentValue < ClutterThreshold {
			res.ClutterItems = append(res.ClutterItems, h)
		}

		acc, ok := xirrBySub[h.SubCategory]
		if !ok {
			acc = &xirrAccum{}
			xirrBySub[h.SubCategory] = acc
			subOrder = append(subOrder, h.SubCategory)
		}
		if h.XIRR != 0 && !math.IsNaN(h.XIRR) && !math.IsInf(h.XIRR, 0) {
			acc.sumProduct += h.XIRR * h.CurrentValue
			acc.sumWeight += h.CurrentValue
		}

		mergeIntoTree(&res.CategoryTree, catIndex, h)
	}

	res.TotalReturns = res.TotalCurrent - res.TotalInvested
	res.AbsoluteReturnPct = absoluteReturnPct(res.TotalInvested, res.TotalCurrent)

	// Benchmark comparison: one entry per sub-category with weighted data,
	// ranked by backing value descending.
	for _, sub := range subOrder {
		acc := xirrBySub[sub]
		if acc.sumWeight <= 0 {
			continue
		}
		bench := ResolveBenchmark(sub)
		myXIRR := round2(acc.sumProduct / acc.sumWeight)
		benchXIRR := round2(bench.AnnualReturn)
		res.BenchmarkComparison = append(res.BenchmarkComparison, BenchmarkComparison{
			SubCategory: sub,
			MyXIRR:      myXIRR,
			Benchmark:   bench.Name,
			BenchXIRR:   benchXIRR,
			Alpha:       round2(myXIRR - benchXIRR),
			Weight:      acc.sumWeight,
		})
	}
	sort.SliceStable(res.BenchmarkComparison, func(i, j int) bool {
		return res.BenchmarkComparison[i].Weight > res.BenchmarkComparison[j].Weight
	})

	res.ConsolidationPlan = buildConsolidationPlan(res.CategoryTree)
	res.HealthScore, res.HealthLabel = healthScore(len(res.ClutterItems), len(res.LossMakers), len(working))

	return res
}

// mergeIntoTree folds one holding into the category → sub-category → scheme
// tree, creating groups in first-seen order and merging same-scheme rows.
func mergeIntoTree(tree *[]CategoryGroup, catIndex map[string]int, h Holding) {
	ci, ok := catIndex[h.Category]
	if !ok {
		ci = len(*tree)
		catIndex[h.Category] = ci
		*tree = append(*tree, CategoryGroup{Category: h.Category})
	}
	cat := &(*tree)[ci]
	cat.InvestedValue += h.InvestedValue
	cat.CurrentValue += h.CurrentValue

	si := -1
	for i := range cat.SubCategories {
		if cat.SubCategories[i].SubCategory == h.SubCategory {
			si = i
			break
		}
	}
	if si < 0 {
		si = len(cat.SubCategories)
		cat.SubCategories = append(cat.SubCategories, SubCategoryGroup{SubCategory: h.SubCategory})
	}
	sub := &cat.SubCategories[si]
	sub.InvestedValue += h.InvestedValue
	sub.CurrentValue += h.CurrentValue

	fi := -1
	for i := range sub.Funds {
		if sub.Funds[i].SchemeName == h.SchemeName {
			fi = i
			break
		}
	}
	if fi < 0 {
		sub.Funds = append(sub.Funds, MergedFund{
			SchemeName: h.SchemeName,
			AMC:        h.AMC,
		})
		fi = len(sub.Funds) - 1
	}
	f := &sub.Funds[fi]
	f.InvestedValue += h.InvestedValue
	f.CurrentValue += h.CurrentValue
	f.Returns += h.Returns
	f.Units += h.Units
	if f.XIRR == 0 {
		f.XIRR = h.XIRR
	}
	// Recomputed from the merged sums, not re-derived from any single row.
	f.AbsReturnPct = absoluteReturnPct(f.InvestedValue, f.CurrentValue)
}
