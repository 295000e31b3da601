package fundlens

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/PaesslerAG/jsonpath"
)

// paths tried, in order, to locate the holdings array inside a platform JSON
// export. The last one accepts a bare top-level array.
var jsonHoldingsPaths = []string{
	"$.holdings",
	"$.data.holdings",
	"$.data",
	"$",
}

// JSONGrid converts a platform JSON export into a grid. It locates the first
// array of objects under one of the usual keys, emits the union of the object
// keys as a header row, and one row per object after it.
//
// Key order inside a JSON object is not meaningful, so header columns are
// sorted for determinism; the normalizer maps columns by name anyway.
func JSONGrid(data []byte) (Grid, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse JSON export: %w", err)
	}

	rows := findJSONRows(jobj)
	if rows == nil {
		return nil, fmt.Errorf("no holdings array found in JSON export")
	}

	// Union of keys across all objects: exports omit absent fields per row.
	seen := make(map[string]bool)
	var columns []string
	for _, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			continue
		}
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)

	header := make([]Cell, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	grid := Grid{header}

	for _, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			continue
		}
		cells := make([]Cell, len(columns))
		for i, c := range columns {
			switch v := obj[c].(type) {
			case nil:
				cells[i] = nil
			case string:
				cells[i] = v
			case float64:
				cells[i] = v
			case bool:
				cells[i] = fmt.Sprint(v)
			default:
				cells[i] = fmt.Sprint(v)
			}
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func findJSONRows(jobj any) []any {
	for _, path := range jsonHoldingsPaths {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		// jsonpath is never clear about whether it returns a list or a single
		// answer; accept only a list of objects here.
		jlist, ok := jval.([]any)
		if !ok || len(jlist) == 0 {
			continue
		}
		if _, ok := jlist[0].(map[string]any); ok {
			return jlist
		}
	}
	return nil
}
