package fundlens

import "testing"

func TestCellText(t *testing.T) {
	cases := []struct {
		in   Cell
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{float64(105), "105"},
		{float64(105.25), "105.25"},
		{42, "42"},
	}
	for _, c := range cases {
		if got := cellText(c.in); got != c.want {
			t.Errorf("cellText(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDecodeGrid_DispatchesByContent(t *testing.T) {
	csv := []byte("Scheme Name,Current Value\nA,1000\n")
	grid, err := DecodeGrid(csv, "holdings.csv")
	if err != nil {
		t.Fatalf("DecodeGrid(csv) error = %v", err)
	}
	if got, want := len(grid), 2; got != want {
		t.Errorf("csv rows = %d, want %d", got, want)
	}

	jsonExport := []byte(`[{"Scheme Name": "A", "Current Value": 1000}]`)
	grid, err = DecodeGrid(jsonExport, "")
	if err != nil {
		t.Fatalf("DecodeGrid(json) error = %v", err)
	}
	if got, want := len(grid), 2; got != want {
		t.Errorf("json rows = %d, want %d", got, want)
	}

	// Unknown text content with no hint falls back to CSV and never fails.
	if _, err := DecodeGrid([]byte("whatever"), ""); err != nil {
		t.Errorf("DecodeGrid(text) error = %v", err)
	}
}
