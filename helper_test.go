package fundlens

// equityFund is a helper to build a canonical equity holding from consts.
// Returns are derived from the invested/current pair the way exports report
// them.
func equityFund(scheme, subCategory string, invested, current, xirr float64) Holding {
	return Holding{
		SchemeName:    scheme,
		Category:      "Equity",
		SubCategory:   subCategory,
		AMC:           "Acme AMC",
		Units:         100,
		InvestedValue: invested,
		CurrentValue:  current,
		Returns:       current - invested,
		XIRR:          xirr,
	}
}
