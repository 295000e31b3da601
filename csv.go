package fundlens

import (
	"bufio"
	"io"
	"strings"
)

// CSVGrid reads a CSV export into a grid, one line per row.
//
// The tokenizer is deliberately more tolerant than encoding/csv: broker
// exports routinely contain stray quotes, ragged row lengths and unescaped
// oddities that the standard reader rejects. Quote state toggles on every
// unescaped quote character, a doubled quote inside a quoted field produces a
// literal quote, and commas split fields only outside quote state. No input
// makes it fail.
func CSVGrid(r io.Reader) Grid {
	var grid Grid
	scanner := bufio.NewScanner(r)
	// Some registrar exports come as one very long line per scheme.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		grid = append(grid, splitCSVLine(line))
	}
	return grid
}

// splitCSVLine tokenizes a single CSV line.
func splitCSVLine(line string) []Cell {
	var row []Cell
	var field strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				// doubled quote inside a quoted field is an escaped quote
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			row = append(row, field.String())
			field.Reset()
		default:
			field.WriteByte(ch)
		}
	}
	row = append(row, field.String())
	return row
}
