package analyze

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jflowers/scrutiny/internal/config"
	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

func runPatterns(text string, test metrics.Test) metrics.DesignPatterns {
	buf := source.NewBuffer("T.java", text)
	return analyzeDesignPatterns(buf, source.NewIndex(buf), test, config.DefaultConfig().Thresholds)
}

func hasString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestAnalyzeDesignPatterns_Detection(t *testing.T) {
	text := `class T {
    Order order = Order.builder().quantity(2).build();
    Session s = SessionFactory.getInstance();
}
`
	m := runPatterns(text, metrics.Test{})

	for _, want := range []string{"Builder", "Factory", "Singleton"} {
		if !hasString(m.PatternsDetected, want) {
			t.Errorf("patterns = %v, missing %q", m.PatternsDetected, want)
		}
	}
	if !m.AdheresToPatterns {
		t.Errorf("no violations expected, got %v", m.PatternViolations)
	}
}

// AAA is reported as a detected pattern once the organized share of
// tests clears the threshold.
func TestAnalyzeDesignPatterns_AAAThreshold(t *testing.T) {
	if m := runPatterns("class T {}\n", metrics.Test{AAAPercentage: 80}); !hasString(m.PatternsDetected, "AAA (Arrange-Act-Assert)") {
		t.Errorf("patterns = %v, want AAA detected at 80%%", m.PatternsDetected)
	}
	if m := runPatterns("class T {}\n", metrics.Test{AAAPercentage: 40}); hasString(m.PatternsDetected, "AAA (Arrange-Act-Assert)") {
		t.Errorf("patterns = %v, AAA should not be detected at 40%%", m.PatternsDetected)
	}
}

func TestAnalyzeDesignPatterns_GodClass(t *testing.T) {
	var b strings.Builder
	b.WriteString("class T {\n")
	for i := 0; i < 21; i++ {
		fmt.Fprintf(&b, "    void method%d() {\n    }\n", i)
	}
	b.WriteString("}\n")

	m := runPatterns(b.String(), metrics.Test{})

	if !hasString(m.PatternViolations, "Possible God Class: 21 methods") {
		t.Errorf("violations = %v, want god class flag", m.PatternViolations)
	}
	if m.AdheresToPatterns {
		t.Error("adheres_to_patterns should be false")
	}
}

func TestAnalyzeDesignPatterns_UngroupedTests(t *testing.T) {
	m := runPatterns("class T {}\n", metrics.Test{TestMethodCount: 11, NestedGroups: 0})

	if !hasString(m.PatternViolations, "Consider organizing tests into @Nested classes") {
		t.Errorf("violations = %v, want grouping suggestion", m.PatternViolations)
	}

	grouped := runPatterns("class T {}\n", metrics.Test{TestMethodCount: 11, NestedGroups: 2})
	if len(grouped.PatternViolations) != 0 {
		t.Errorf("grouped tests should not be flagged: %v", grouped.PatternViolations)
	}
}

func TestAnalyzeDesignPatterns_ProductionAnnotations(t *testing.T) {
	m := runPatterns("@Service\nclass T {}\n", metrics.Test{})

	if !hasString(m.PatternViolations, "Production annotations in test class") {
		t.Errorf("violations = %v, want production annotation flag", m.PatternViolations)
	}
}
