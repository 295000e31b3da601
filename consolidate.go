package fundlens

import "sort"

// maxSchemesPerSubCategory is the fixed overlap threshold: a sub-category
// only produces a consolidation entry when it holds strictly more distinct
// schemes than this.
const maxSchemesPerSubCategory = 2

// ConsolidationPlan recommends merging overlapping funds within one
// sub-category: keep the top-ranked fund, move the rest into it.
type ConsolidationPlan struct {
	SubCategory string
	// Keep is the top-ranked fund, the recommended survivor.
	Keep MergedFund
	// Others are the merge candidates, in ranked order.
	Others []MergedFund
	// PotentialMoveValue is the summed current value of all non-winning
	// funds.
	PotentialMoveValue float64
}

// rankKey orders funds for consolidation: by XIRR when present and non-zero,
// otherwise by the absolute return percentage.
func rankKey(f MergedFund) float64 {
	if f.XIRR != 0 {
		return f.XIRR
	}
	return f.AbsReturnPct
}

// buildConsolidationPlan walks the category tree and emits one plan entry per
// sub-category with more than maxSchemesPerSubCategory distinct schemes.
//
// Funds are ranked descending by rankKey with a stable sort, so funds with an
// equal key keep their original enumeration order and the plan is
// reproducible run to run.
func buildConsolidationPlan(tree []CategoryGroup) []ConsolidationPlan {
	// Sub-categories group across categories; funds keep first-seen order.
	subIndex := make(map[string]int)
	var subs []SubCategoryGroup
	for _, cat := range tree {
		for _, sub := range cat.SubCategories {
			i, ok := subIndex[sub.SubCategory]
			if !ok {
				i = len(subs)
				subIndex[sub.SubCategory] = i
				subs = append(subs, SubCategoryGroup{SubCategory: sub.SubCategory})
			}
			subs[i].InvestedValue += sub.InvestedValue
			subs[i].CurrentValue += sub.CurrentValue
			subs[i].Funds = append(subs[i].Funds, sub.Funds...)
		}
	}

	var plans []ConsolidationPlan
	for _, sub := range subs {
		if len(sub.Funds) <= maxSchemesPerSubCategory {
			continue
		}
		ranked := make([]MergedFund, len(sub.Funds))
		copy(ranked, sub.Funds)
		sort.SliceStable(ranked, func(i, j int) bool {
			return rankKey(ranked[i]) > rankKey(ranked[j])
		})

		plan := ConsolidationPlan{
			SubCategory: sub.SubCategory,
			Keep:        ranked[0],
			Others:      ranked[1:],
		}
		for _, f := range plan.Others {
			plan.PotentialMoveValue += f.CurrentValue
		}
		plans = append(plans, plan)
	}
	return plans
}
