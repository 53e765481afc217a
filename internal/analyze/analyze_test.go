package analyze

import (
	"reflect"
	"testing"

	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

// simpleFixture is one test method with a single assertion calling a
// helper that contains one if. The expected numbers below are pinned
// to this literal text.
const simpleFixture = `public class SampleTest {

    @Test
    public void shouldComputeTotal() {
        int total = compute(2);
        assertEquals(4, total);
    }

    private int compute(int x) {
        if (x > 0) {
            return x * 2;
        }
        return 0;
    }
}
`

func run(t *testing.T, text string) *metrics.Report {
	t.Helper()
	return Run(source.NewBuffer("SampleTest.java", text), Options{Sequential: true})
}

func TestRun_SimpleFixture(t *testing.T) {
	r := run(t, simpleFixture)

	if r.Test.TestMethodCount != 1 {
		t.Errorf("test_method_count = %d, want 1", r.Test.TestMethodCount)
	}
	if r.Test.AssertCount != 1 {
		t.Errorf("assert_count = %d, want 1", r.Test.AssertCount)
	}
	if got := r.Complexity.Cyclomatic["compute"]; got != 2 {
		t.Errorf("cyclomatic[compute] = %d, want 2 (one if)", got)
	}
	if got := r.Complexity.Cyclomatic["shouldComputeTotal"]; got != 1 {
		t.Errorf("cyclomatic[shouldComputeTotal] = %d, want 1", got)
	}
	// No arrange signal (no constructor call) in the test body, so
	// the fixture is not AAA-organized.
	if r.Test.AAAOrganizedCount != 0 {
		t.Errorf("aaa_organized_count = %d, want 0 for this fixture", r.Test.AAAOrganizedCount)
	}
	if r.Syntax.SyntaxErrors != 0 {
		t.Errorf("syntax_errors = %d, want 0: %v", r.Syntax.SyntaxErrors, r.Syntax.ErrorDetails)
	}
	if !r.Conventions.FollowsConventions {
		t.Errorf("expected clean conventions, got %v", r.Conventions.Violations)
	}
}

// TestRun_EmptyFile pins the degraded-input contract: a 0-byte file
// yields all-zero numerics and all-true adherence booleans.
func TestRun_EmptyFile(t *testing.T) {
	r := run(t, "")

	if r.Size.TotalLines != 0 || r.Size.LogicalLOC != 0 ||
		r.Size.BlankLines != 0 || r.Size.CommentLines != 0 {
		t.Errorf("size should be all zero, got %+v", r.Size)
	}
	if r.Size.CommentRatio != 0 {
		t.Errorf("comment_ratio = %v, want 0 (no division by zero)", r.Size.CommentRatio)
	}
	if r.Complexity.MaintainabilityIndex != 0 {
		t.Errorf("maintainability_index = %v, want 0 for empty input",
			r.Complexity.MaintainabilityIndex)
	}
	if r.Test.TestMethodCount != 0 || r.Test.AssertsPerTest != 0 {
		t.Errorf("test metrics should be zero, got %+v", r.Test)
	}
	if r.Duplication.DuplicatePercentage != 0 {
		t.Errorf("duplicate_percentage = %v, want 0", r.Duplication.DuplicatePercentage)
	}
	if !r.Conventions.FollowsConventions {
		t.Error("follows_conventions should hold for an empty file")
	}
	if !r.Framework.ValidAssertions {
		t.Error("valid_framework_assertions should hold for an empty file")
	}
	if !r.DesignPatterns.AdheresToPatterns {
		t.Error("adheres_to_patterns should hold for an empty file")
	}
	if r.Syntax.SyntaxErrors != 0 {
		t.Errorf("syntax_errors = %d, want 0", r.Syntax.SyntaxErrors)
	}
}

// TestRun_UnbalancedBrace verifies that a file with one extra
// opening brace produces exactly one Unbalanced braces finding and
// analysis still completes.
func TestRun_UnbalancedBrace(t *testing.T) {
	text := "public class Broken {\n    void run() {\n"
	r := run(t, text)

	if r.Syntax.SyntaxErrors != 1 {
		t.Fatalf("syntax_errors = %d, want 1: %v", r.Syntax.SyntaxErrors, r.Syntax.ErrorDetails)
	}
	e := r.Syntax.ErrorDetails[0]
	if e.Kind != metrics.SyntaxUnbalancedBraces {
		t.Errorf("kind = %q, want %q", e.Kind, metrics.SyntaxUnbalancedBraces)
	}
	if e.Open != 2 || e.Close != 0 {
		t.Errorf("open/close = %d/%d, want 2/0", e.Open, e.Close)
	}
}

// TestRun_ConcurrentMatchesSequential verifies that the parallel
// fan-out produces an identical report: the passes share no mutable
// state, so ordering must not matter.
func TestRun_ConcurrentMatchesSequential(t *testing.T) {
	buf := source.NewBuffer("SampleTest.java", simpleFixture)

	seq := Run(buf, Options{Sequential: true})
	par := Run(buf, Options{Sequential: false})

	if !reflect.DeepEqual(seq, par) {
		t.Errorf("concurrent run differs from sequential:\nseq: %+v\npar: %+v", seq, par)
	}
}

func TestRun_ScoreForSimpleFixture(t *testing.T) {
	r := run(t, simpleFixture)

	// Clean file except the 0% AAA flat penalty.
	if got := metrics.Score(r); got != 90 {
		t.Errorf("score = %d, want 90", got)
	}
}

func TestFile_MissingPath(t *testing.T) {
	if _, err := File("testdata/does-not-exist.java", Options{}); err == nil {
		t.Error("expected error for missing file")
	}
}
