package analyze

import (
	"strings"
	"testing"

	"github.com/jflowers/scrutiny/internal/config"
	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

func runConventions(text string) metrics.Conventions {
	buf := source.NewBuffer("T.java", text)
	return analyzeConventions(buf, config.DefaultConfig().Thresholds)
}

func TestAnalyzeConventions_Clean(t *testing.T) {
	m := runConventions(simpleFixture)

	if !m.FollowsConventions || m.ViolationCount != 0 {
		t.Errorf("expected clean, got %+v", m)
	}
}

func TestAnalyzeConventions_ClassNaming(t *testing.T) {
	m := runConventions("public class order_test {\n}\n")

	if m.ViolationCount != 1 {
		t.Fatalf("violations = %d, want 1: %v", m.ViolationCount, m.Violations)
	}
	v := m.Violations[0]
	if v.Rule != "Class naming" || v.Detail != "order_test should be PascalCase" {
		t.Errorf("violation = %+v", v)
	}
}

func TestAnalyzeConventions_MethodNaming(t *testing.T) {
	m := runConventions("class T {\n    public void Check_Totals() {\n    }\n}\n")

	if m.ViolationCount != 1 {
		t.Fatalf("violations = %d, want 1: %v", m.ViolationCount, m.Violations)
	}
	if v := m.Violations[0]; v.Rule != "Method naming" || v.Detail != "Check_Totals should be camelCase" {
		t.Errorf("violation = %+v", v)
	}
}

func TestAnalyzeConventions_ConstantNaming(t *testing.T) {
	m := runConventions("class T {\n    static final int maxSize = 3;\n}\n")

	if m.ViolationCount != 1 {
		t.Fatalf("violations = %d, want 1: %v", m.ViolationCount, m.Violations)
	}
	if v := m.Violations[0]; v.Rule != "Constant naming" || v.Detail != "maxSize should be UPPER_SNAKE_CASE" {
		t.Errorf("violation = %+v", v)
	}
}

func TestAnalyzeConventions_LineLength(t *testing.T) {
	long := "// " + strings.Repeat("x", 130)
	m := runConventions("class T {\n" + long + "\n}\n")

	if m.ViolationCount != 1 {
		t.Fatalf("violations = %d, want 1: %v", m.ViolationCount, m.Violations)
	}
	v := m.Violations[0]
	if v.Rule != "Line length" || v.Line != 2 || v.Length != len(long) {
		t.Errorf("violation = %+v", v)
	}
}

func TestAnalyzeConventions_CustomThreshold(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Thresholds.MaxLineLength = 10

	buf := source.NewBuffer("T.java", "class T { void f() {} }\n")
	m := analyzeConventions(buf, cfg.Thresholds)

	if m.ViolationCount != 1 {
		t.Errorf("lowered threshold should flag the line, got %+v", m)
	}
}
