package analyze

import (
	"strings"

	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

// analyzeSyntax reports structural anomalies (bracket imbalance,
// likely missing semicolons) and a lint pass (trailing whitespace,
// consecutive blank lines, missing space after control keywords).
// Anomalies are findings about the analyzed file; they never abort
// the run.
func analyzeSyntax(buf *source.Buffer) metrics.Syntax {
	var m metrics.Syntax
	var errors []metrics.SyntaxIssue
	var lint []metrics.LintIssue

	if opens, closes := strings.Count(buf.Text, "{"), strings.Count(buf.Text, "}"); opens != closes {
		errors = append(errors, metrics.SyntaxIssue{
			Kind: metrics.SyntaxUnbalancedBraces, Open: opens, Close: closes,
		})
	}
	if opens, closes := strings.Count(buf.Text, "("), strings.Count(buf.Text, ")"); opens != closes {
		errors = append(errors, metrics.SyntaxIssue{
			Kind: metrics.SyntaxUnbalancedParens, Open: opens, Close: closes,
		})
	}

	for i, line := range buf.Lines {
		if stripped := strings.TrimSpace(line); possibleMissingSemicolon(stripped) {
			errors = append(errors, metrics.SyntaxIssue{
				Kind: metrics.SyntaxMissingSemicolon, Line: i + 1,
			})
		}
	}

	prevEmpty := false
	for i, line := range buf.Lines {
		if strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
			lint = append(lint, metrics.LintIssue{Kind: metrics.LintTrailingWhitespace, Line: i + 1})
		}

		empty := strings.TrimSpace(line) == ""
		if empty && prevEmpty {
			lint = append(lint, metrics.LintIssue{Kind: metrics.LintConsecutiveBlanks, Line: i + 1})
		}
		prevEmpty = empty

		if source.KeywordNoSpace.MatchString(line) {
			lint = append(lint, metrics.LintIssue{Kind: metrics.LintKeywordSpacing, Line: i + 1})
		}
	}

	m.SyntaxErrors = len(errors)
	m.ErrorDetails = errors
	m.LintViolations = len(lint)
	if len(lint) > 20 {
		lint = lint[:20]
	}
	m.LintDetails = lint
	return m
}

// possibleMissingSemicolon applies the "ident ident = expr" shape
// check to lines that end with no recognized terminator or opener
// and start with no control or declaration keyword. Heuristic; a
// multi-line initializer is a known false positive.
func possibleMissingSemicolon(stripped string) bool {
	if stripped == "" {
		return false
	}
	for _, suffix := range []string{"{", "}", "(", ")", ",", ";", "*/", "//"} {
		if strings.HasSuffix(stripped, suffix) {
			return false
		}
	}
	for _, prefix := range []string{"@", "//", "/*", "*", "import", "package", "public class", "class"} {
		if strings.HasPrefix(stripped, prefix) {
			return false
		}
	}
	if source.ControlKeywordStart.MatchString(stripped) {
		return false
	}
	return source.StatementShape.MatchString(stripped)
}
