package fundlens

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseLenientNumber converts loosely formatted numeric text from a broker
// export into a float64. It never fails: anything unparseable coerces to 0 so
// that a partially malformed export still yields a usable analysis.
//
// It strips thousands-separator commas, currency markers and a percent sign,
// and reads accounting-style parentheses as a negative value.
func ParseLenientNumber(text string) float64 {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	switch s {
	case "", "-", "--", "n/a", "N/A", "NA":
		return 0
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	v := d.InexactFloat64()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
