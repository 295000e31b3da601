package fundlens

import (
	"strings"
	"testing"
)

func TestCSVGrid_SplitsOnCommasOutsideQuotes(t *testing.T) {
	grid := CSVGrid(strings.NewReader(`Scheme Name,Current Value
"HDFC Flexi Cap Fund, Direct Growth","1,25,000"`))

	if got, want := len(grid), 2; got != want {
		t.Fatalf("len(grid) = %d, want %d", got, want)
	}
	row := grid[1]
	if got, want := len(row), 2; got != want {
		t.Fatalf("len(row) = %d, want %d", got, want)
	}
	if got, want := cellText(row[0]), "HDFC Flexi Cap Fund, Direct Growth"; got != want {
		t.Errorf("row[0] = %q, want %q", got, want)
	}
	if got, want := cellText(row[1]), "1,25,000"; got != want {
		t.Errorf("row[1] = %q, want %q", got, want)
	}
}

func TestSplitCSVLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"empty fields", "a,,c", []string{"a", "", "c"}},
		{"trailing comma", "a,b,", []string{"a", "b", ""}},
		{"quoted comma", `"a,b",c`, []string{"a,b", "c"}},
		{"doubled quote", `"said ""hi""",x`, []string{`said "hi"`, "x"}},
		{"stray quote toggles state", `a"b,c`, []string{"ab,c"}},
		{"quote closed mid field", `"a",b`, []string{"a", "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			row := splitCSVLine(c.line)
			if got, want := len(row), len(c.want); got != want {
				t.Fatalf("len = %d, want %d (%v)", got, want, row)
			}
			for i := range row {
				if got, want := cellText(row[i]), c.want[i]; got != want {
					t.Errorf("field %d = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestCSVGrid_StripsCarriageReturns(t *testing.T) {
	grid := CSVGrid(strings.NewReader("a,b\r\nc,d\r\n"))
	if got, want := cellText(grid[0][1]), "b"; got != want {
		t.Errorf("cell = %q, want %q", got, want)
	}
	if got, want := cellText(grid[1][1]), "d"; got != want {
		t.Errorf("cell = %q, want %q", got, want)
	}
}
