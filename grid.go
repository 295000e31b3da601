package fundlens

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Cell is a single raw value from a decoded tabular export. The decoders in
// this package only ever produce string, float64 or nil cells.
type Cell any

// Grid is a rectangular, row-major set of raw cells, as handed over by a
// tabular decoder. There is no guarantee about where (or whether) a header
// row appears inside it.
type Grid [][]Cell

// cellText collapses a raw cell to its textual form. Numeric cells are
// rendered with the shortest exact representation so that "105" stays "105"
// and not "105.000000".
func cellText(c Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

// zip local file header, the first bytes of any xlsx workbook.
var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// DecodeGrid decodes a raw holdings export into a grid. The hint is a mime
// type or a file name; when it is not conclusive the content itself decides:
// zip magic means a workbook, a leading brace or bracket means a JSON export,
// anything else is read as CSV.
func DecodeGrid(data []byte, hint string) (Grid, error) {
	hint = strings.ToLower(hint)
	switch {
	case strings.HasSuffix(hint, ".xlsx") || strings.Contains(hint, "spreadsheet") || bytes.HasPrefix(data, zipMagic):
		return WorkbookGrid(bytes.NewReader(data))
	case strings.HasSuffix(hint, ".json") || strings.Contains(hint, "json") || looksLikeJSON(data):
		return JSONGrid(data)
	default:
		return CSVGrid(bytes.NewReader(data)), nil
	}
}

func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}
