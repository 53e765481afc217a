package metrics

import "testing"

// cleanReport is a report with nothing to deduct: organized tests and
// zero findings everywhere.
func cleanReport() *Report {
	r := NewReport("OrderTest.java")
	r.Test.AAAPercentage = 100
	return r
}

func TestScore_Perfect(t *testing.T) {
	if got := Score(cleanReport()); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

// The zero-value report carries 0% AAA organization, which draws the
// flat penalty and nothing else.
func TestScore_ZeroValueReport(t *testing.T) {
	if got := Score(NewReport("Empty.java")); got != 90 {
		t.Errorf("score = %d, want 90", got)
	}
}

func TestScore_ComplexityDeduction(t *testing.T) {
	r := cleanReport()
	r.Complexity.AvgCyclomatic = 13
	if got := Score(r); got != 94 {
		t.Errorf("score = %d, want 94 ((13-10)*2 deducted)", got)
	}

	r.Complexity.AvgCyclomatic = 9.9
	if got := Score(r); got != 100 {
		t.Errorf("score = %d, want 100 (at or below 10 is free)", got)
	}
}

// Each category's deduction is capped, so one extreme metric cannot
// zero the score alone.
func TestScore_CategoryCaps(t *testing.T) {
	cases := []struct {
		name  string
		apply func(*Report)
		want  int
	}{
		{"complexity", func(r *Report) { r.Complexity.AvgCyclomatic = 1000 }, 80},
		{"smells", func(r *Report) { r.CodeSmells.SmellCount = 1000 }, 85},
		{"duplication", func(r *Report) { r.Duplication.DuplicatePercentage = 90 }, 85},
		{"conventions", func(r *Report) { r.Conventions.ViolationCount = 50 }, 90},
		{"long tests", func(r *Report) { r.Test.LongTestCount = 40 }, 90},
		{"syntax", func(r *Report) { r.Syntax.SyntaxErrors = 9 }, 90},
		{"framework", func(r *Report) { r.Framework.KeywordViolations = 30 }, 90},
	}

	for _, tc := range cases {
		r := cleanReport()
		tc.apply(r)
		if got := Score(r); got != tc.want {
			t.Errorf("%s: score = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestScore_AAAThresholdBoundary(t *testing.T) {
	r := cleanReport()
	r.Test.AAAPercentage = 50
	if got := Score(r); got != 100 {
		t.Errorf("score at exactly 50%% = %d, want 100", got)
	}

	r.Test.AAAPercentage = 49.9
	if got := Score(r); got != 90 {
		t.Errorf("score below 50%% = %d, want 90", got)
	}
}

func TestScore_ClampsAtZero(t *testing.T) {
	r := NewReport("Awful.java")
	r.Complexity.AvgCyclomatic = 100
	r.CodeSmells.SmellCount = 100
	r.Duplication.DuplicatePercentage = 100
	r.Conventions.ViolationCount = 100
	r.Test.LongTestCount = 100
	r.Syntax.SyntaxErrors = 100
	r.Framework.KeywordViolations = 100

	if got := Score(r); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

// More findings never raise the score.
func TestScore_Monotonic(t *testing.T) {
	prev := 101
	for smells := 0; smells <= 10; smells++ {
		r := cleanReport()
		r.CodeSmells.SmellCount = smells
		if got := Score(r); got > prev {
			t.Errorf("score rose from %d to %d at %d smells", prev, got, smells)
		} else {
			prev = got
		}
	}
}

func TestRound1(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1.25, 1.3},
		{1.24, 1.2},
		{0, 0},
		{100.0 / 3, 33.3},
	}
	for _, tc := range cases {
		if got := Round1(tc.in); got != tc.want {
			t.Errorf("Round1(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClampPct(t *testing.T) {
	if got := ClampPct(-5); got != 0 {
		t.Errorf("ClampPct(-5) = %v, want 0", got)
	}
	if got := ClampPct(130); got != 100 {
		t.Errorf("ClampPct(130) = %v, want 100", got)
	}
	if got := ClampPct(42.5); got != 42.5 {
		t.Errorf("ClampPct(42.5) = %v, want 42.5", got)
	}
}
