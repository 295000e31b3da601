package fundlens

import "testing"

func TestHealthScore(t *testing.T) {
	cases := []struct {
		name      string
		clutter   int
		loss      int
		size      int
		wantScore int
		wantLabel string
	}{
		{"clean small portfolio", 0, 0, 5, 100, "Excellent"},
		{"one clutter item", 1, 0, 5, 98, "Excellent"},
		{"clutter penalty caps at 20", 50, 0, 5, 80, "Excellent"},
		// 1.5 per loss maker, fractional before rounding: 100-1.5 rounds to 99.
		{"one loss maker", 0, 1, 5, 99, "Excellent"},
		{"loss penalty caps at 15", 0, 30, 5, 85, "Excellent"},
		{"over 20 holdings", 0, 0, 21, 90, "Excellent"},
		{"over 40 holdings pays both penalties", 0, 0, 41, 80, "Excellent"},
		{"exactly 20 holdings pays nothing", 0, 0, 20, 100, "Excellent"},
		{"exactly 40 pays only the first", 0, 0, 40, 90, "Excellent"},
		{"good", 10, 2, 5, 77, "Good"},
		{"poor", 10, 10, 21, 55, "Poor"},
		// All three penalties maxed out: 100-20-15-10-10. The caps mean the
		// score never reaches the Critical band from real inputs.
		{"everything wrong", 50, 50, 41, 45, "Poor"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			score, label := healthScore(c.clutter, c.loss, c.size)
			if score != c.wantScore {
				t.Errorf("score = %d, want %d", score, c.wantScore)
			}
			if label != c.wantLabel {
				t.Errorf("label = %q, want %q", label, c.wantLabel)
			}
		})
	}
}

func TestHealthScoreBounds(t *testing.T) {
	for clutter := 0; clutter <= 60; clutter += 10 {
		for loss := 0; loss <= 60; loss += 10 {
			for _, size := range []int{0, 10, 25, 45} {
				score, _ := healthScore(clutter, loss, size)
				if score < 0 || score > 100 {
					t.Fatalf("healthScore(%d, %d, %d) = %d, out of [0,100]", clutter, loss, size, score)
				}
			}
		}
	}
}

func TestHealthLabelBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, "Critical"},
		{39, "Critical"},
		{40, "Poor"},
		{59, "Poor"},
		{60, "Good"},
		{79, "Good"},
		{80, "Excellent"},
		{100, "Excellent"},
	}
	for _, c := range cases {
		if got := healthLabel(c.score); got != c.want {
			t.Errorf("healthLabel(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}
