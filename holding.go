package fundlens

// Holding is one canonical mutual-fund position, produced by the normalizer
// and immutable afterwards.
//
// Every numeric field is a finite number: absent or unparseable source data
// maps to 0, never to a missing-value marker.
type Holding struct {
	SchemeName  string
	Category    string
	SubCategory string
	AMC         string

	Units         float64
	InvestedValue float64
	CurrentValue  float64
	Returns       float64
	// XIRR is the pre-computed annualized return rate in percent. The engine
	// consumes it as-is; it never computes a true XIRR itself.
	XIRR float64

	// Derived fields, computed once by the engine and never mutated.
	CurrentNAV   float64
	AvgBuyNAV    float64
	AbsReturnPct float64

	// Extra keeps unrecognized columns as trimmed text. The engine ignores
	// them; they exist so callers can surface pass-through attributes.
	Extra map[string]string
}

// withDerived returns a copy of h with the derived per-holding fields filled
// in. Ratios with a non-positive denominator are 0, not NaN.
func (h Holding) withDerived() Holding {
	if h.Units > 0 {
		h.CurrentNAV = h.CurrentValue / h.Units
		h.AvgBuyNAV = h.InvestedValue / h.Units
	} else {
		h.CurrentNAV = 0
		h.AvgBuyNAV = 0
	}
	h.AbsReturnPct = absoluteReturnPct(h.InvestedValue, h.CurrentValue)
	return h
}

// absoluteReturnPct is the simple (non-annualized) return in percent, 0 when
// nothing was invested.
func absoluteReturnPct(invested, current float64) float64 {
	if invested <= 0 {
		return 0
	}
	return (current - invested) / invested * 100
}
