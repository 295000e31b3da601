package fundlens

import "strings"

// Canonical column names recognized verbatim in a header row. Anything else
// passes through as an untyped extra attribute.
const (
	ColSchemeName    = "Scheme Name"
	ColCategory      = "Category"
	ColSubCategory   = "Sub-category"
	ColAMC           = "AMC"
	ColUnits         = "Units"
	ColInvestedValue = "Invested Value"
	ColCurrentValue  = "Current Value"
	ColReturns       = "Returns"
	ColXIRR          = "XIRR"
)

// DefaultGroup is the label assigned when a grouping column is absent.
const DefaultGroup = "Other"

// numericColumns are coerced to numbers by name, not by inferred type.
var numericColumns = map[string]bool{
	ColInvestedValue: true,
	ColCurrentValue:  true,
	ColReturns:       true,
	ColUnits:         true,
}

// Normalize turns a raw decoded grid into the canonical holding list.
//
// It scans the grid top to bottom for the first row whose concatenated text
// contains, case-insensitively, both "scheme name" and "current value"; that
// row is the header and everything before it is ignored entirely. Rows after
// the header align positionally to the header columns, cells coerce by column
// name, and only rows with a non-empty scheme name survive.
//
// Normalize never fails: a grid without a usable header yields an empty list,
// which callers surface as "no data found".
func Normalize(grid Grid) []Holding {
	headerIdx, columns := findHeader(grid)
	if headerIdx < 0 {
		return nil
	}

	var holdings []Holding
	for _, row := range grid[headerIdx+1:] {
		if len(row) < 2 || rowEmpty(row) {
			continue
		}
		h, ok := normalizeRow(columns, row)
		if ok {
			holdings = append(holdings, h)
		}
	}
	return holdings
}

// findHeader returns the index of the header row and its cleaned column
// names, or -1 when no usable header exists.
func findHeader(grid Grid) (int, []string) {
	for i, row := range grid {
		var b strings.Builder
		for _, cell := range row {
			b.WriteString(cellText(cell))
			b.WriteByte(' ')
		}
		text := strings.ToLower(b.String())
		if strings.Contains(text, "scheme name") && strings.Contains(text, "current value") {
			columns := make([]string, len(row))
			for j, cell := range row {
				columns[j] = cleanCell(cellText(cell))
			}
			return i, columns
		}
	}
	return -1, nil
}

// cleanCell trims whitespace and strips a single layer of surrounding
// straight quotes, the residue of quoted CSV fields.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}

func rowEmpty(row []Cell) bool {
	for _, cell := range row {
		if strings.TrimSpace(cellText(cell)) != "" {
			return false
		}
	}
	return true
}

// normalizeRow builds one Holding from a data row aligned to the header
// columns. It reports false for rows without a scheme name.
func normalizeRow(columns []string, row []Cell) (Holding, bool) {
	var h Holding
	for i, name := range columns {
		if i >= len(row) {
			break
		}
		text := cleanCell(cellText(row[i]))
		switch {
		case name == ColSchemeName:
			h.SchemeName = text
		case name == ColCategory:
			h.Category = text
		case name == ColSubCategory:
			h.SubCategory = text
		case name == ColAMC:
			h.AMC = text
		case name == ColXIRR:
			h.XIRR = ParseLenientNumber(strings.TrimSuffix(text, "%"))
		case numericColumns[name]:
			switch name {
			case ColUnits:
				h.Units = ParseLenientNumber(text)
			case ColInvestedValue:
				h.InvestedValue = ParseLenientNumber(text)
			case ColCurrentValue:
				h.CurrentValue = ParseLenientNumber(text)
			case ColReturns:
				h.Returns = ParseLenientNumber(text)
			}
		default:
			if name == "" {
				continue
			}
			if h.Extra == nil {
				h.Extra = make(map[string]string)
			}
			h.Extra[name] = text
		}
	}

	if h.SchemeName == "" {
		return Holding{}, false
	}
	if h.Category == "" {
		h.Category = DefaultGroup
	}
	if h.SubCategory == "" {
		h.SubCategory = DefaultGroup
	}
	if h.AMC == "" {
		h.AMC = DefaultGroup
	}
	return h, true
}
