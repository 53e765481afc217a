package analyze

import (
	"fmt"

	"github.com/jflowers/scrutiny/internal/config"
	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

// analyzeDesignPatterns runs presence checks for common idioms and
// flags organizational violations. These are regex existence tests,
// not structural verification. It consumes the test pass's aggregate
// AAA percentage, so the orchestrator runs it after that pass.
func analyzeDesignPatterns(buf *source.Buffer, idx *source.Index, test metrics.Test, t config.Thresholds) metrics.DesignPatterns {
	var patterns []string
	var violations []string

	if source.BuilderPattern.MatchString(buf.Text) {
		patterns = append(patterns, "Builder")
	}
	if source.FactoryPattern.MatchString(buf.Text) {
		patterns = append(patterns, "Factory")
	}
	if source.SingletonPattern.MatchString(buf.Text) {
		patterns = append(patterns, "Singleton")
	}
	if test.AAAPercentage > t.AAAPercent {
		patterns = append(patterns, "AAA (Arrange-Act-Assert)")
	}
	if source.PageObjectPattern.MatchString(buf.Text) {
		patterns = append(patterns, "Page Object")
	}
	if source.TestDataBuilderPattern.MatchString(buf.Text) {
		patterns = append(patterns, "Test Data Builder")
	}
	if test.NestedGroups > 0 {
		patterns = append(patterns, "Nested Test Classes")
	}

	if len(idx.Methods) > t.GodClassMethods {
		violations = append(violations,
			fmt.Sprintf("Possible God Class: %d methods", len(idx.Methods)))
	}
	if test.NestedGroups == 0 && test.TestMethodCount > t.GroupingTestCount {
		violations = append(violations, "Consider organizing tests into @Nested classes")
	}
	if source.ProductionAnnotation.MatchString(buf.Text) {
		violations = append(violations, "Production annotations in test class")
	}

	return metrics.DesignPatterns{
		AdheresToPatterns: len(violations) == 0,
		PatternsDetected:  patterns,
		PatternViolations: violations,
	}
}
