package analyze

import (
	"github.com/jflowers/scrutiny/internal/config"
	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

// analyzeConventions checks declarative naming rules and the line
// length ceiling.
func analyzeConventions(buf *source.Buffer, t config.Thresholds) metrics.Conventions {
	var violations []metrics.ConventionViolation

	for _, match := range source.ClassDecl.FindAllStringSubmatch(buf.Text, -1) {
		if !source.PascalCase.MatchString(match[1]) {
			violations = append(violations, metrics.ConventionViolation{
				Rule:   "Class naming",
				Detail: match[1] + " should be PascalCase",
			})
		}
	}

	for _, match := range source.MethodDecl.FindAllStringSubmatch(buf.Text, -1) {
		// main is the conventional entry point name, exempted.
		if !source.CamelCase.MatchString(match[1]) && match[1] != "main" {
			violations = append(violations, metrics.ConventionViolation{
				Rule:   "Method naming",
				Detail: match[1] + " should be camelCase",
			})
		}
	}

	for _, match := range source.ConstantDecl.FindAllStringSubmatch(buf.Text, -1) {
		if !source.UpperSnakeCase.MatchString(match[1]) {
			violations = append(violations, metrics.ConventionViolation{
				Rule:   "Constant naming",
				Detail: match[1] + " should be UPPER_SNAKE_CASE",
			})
		}
	}

	for i, line := range buf.Lines {
		if len(line) > t.MaxLineLength {
			violations = append(violations, metrics.ConventionViolation{
				Rule:   "Line length",
				Line:   i + 1,
				Length: len(line),
			})
		}
	}

	return metrics.Conventions{
		FollowsConventions: len(violations) == 0,
		Violations:         violations,
		ViolationCount:     len(violations),
	}
}
