package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jflowers/scrutiny/internal/metrics"
)

// WriteText writes the report as human-readable styled text. Output
// uses lipgloss for color and degrades gracefully for pipes and CI.
func WriteText(w io.Writer, r *metrics.Report) error {
	s := DefaultStyles()

	fmt.Fprintln(w, s.Header.Render("=== Test Code Quality Report ==="))
	fmt.Fprintln(w, s.SubHeader.Render("    File: "+r.FileName))
	fmt.Fprintln(w)

	section(w, s, "Size")
	metric(w, s, "Total lines", "%d", r.Size.TotalLines)
	metric(w, s, "Logical LOC", "%d", r.Size.LogicalLOC)
	metric(w, s, "Blank lines", "%d", r.Size.BlankLines)
	metric(w, s, "Comment lines", "%d", r.Size.CommentLines)
	metric(w, s, "Comment ratio", "%.1f%%", r.Size.CommentRatio)

	section(w, s, "Complexity")
	metric(w, s, "Avg cyclomatic complexity", "%.1f", r.Complexity.AvgCyclomatic)
	metric(w, s, "Max cyclomatic complexity", "%d", r.Complexity.MaxCyclomatic)
	metric(w, s, "Avg cognitive complexity", "%.1f", r.Complexity.AvgCognitive)
	metric(w, s, "Max cognitive complexity", "%d", r.Complexity.MaxCognitive)
	metric(w, s, "Maintainability index", "%.1f/100", r.Complexity.MaintainabilityIndex)

	section(w, s, "Tests")
	metric(w, s, "Test methods", "%d", r.Test.TestMethodCount)
	metric(w, s, "Nested test groups", "%d", r.Test.NestedGroups)
	metric(w, s, "Assertions", "%d", r.Test.AssertCount)
	metric(w, s, "Asserts per test", "%.1f", r.Test.AssertsPerTest)
	metric(w, s, "Long tests", "%d", r.Test.LongTestCount)
	for _, lt := range firstN(r.Test.LongTests, 3) {
		fmt.Fprintf(w, "      %s\n", s.Muted.Render("- "+lt))
	}
	metric(w, s, "AAA organized", "%d (%.1f%%)", r.Test.AAAOrganizedCount, r.Test.AAAPercentage)
	metric(w, s, "Exception-handling tests", "%d (%.1f%%)",
		r.Test.TestsWithExceptionHandling, r.Test.ExceptionHandlingPercentage)
	metric(w, s, "Exception handling needed", "%s", yesNo(r.Test.ExceptionHandlingNeeded))

	section(w, s, "Duplication")
	metric(w, s, "Duplicate segments", "%d", r.Duplication.DuplicateSegments)
	metric(w, s, "Duplicate lines", "%d", r.Duplication.DuplicateLines)
	metric(w, s, "Duplication", "%.1f%%", r.Duplication.DuplicatePercentage)

	section(w, s, "Code Smells")
	metric(w, s, "Smell count", "%d", r.CodeSmells.SmellCount)
	metric(w, s, "TODO/FIXME markers", "%d", r.CodeSmells.TodoFixmeCount)
	metric(w, s, "Wildcard imports", "%d", r.CodeSmells.WildcardImports)
	metric(w, s, "Dead code", "%.1f%%", r.CodeSmells.DeadCodePercentage)
	if len(r.CodeSmells.Smells) > 0 {
		fmt.Fprintln(w, smellTable(r.CodeSmells.Smells, s))
	}

	section(w, s, "Conventions")
	metric(w, s, "Follows conventions", "%s", yesNo(r.Conventions.FollowsConventions))
	metric(w, s, "Violations", "%d", r.Conventions.ViolationCount)
	for _, v := range firstN(r.Conventions.Violations, 5) {
		detail := v.Detail
		if detail == "" {
			detail = fmt.Sprintf("line %d (%d chars)", v.Line, v.Length)
		}
		fmt.Fprintf(w, "      %s\n", s.Muted.Render(fmt.Sprintf("- %s: %s", v.Rule, detail)))
	}

	section(w, s, "Framework")
	metric(w, s, "Keyword violations", "%d", r.Framework.KeywordViolations)
	metric(w, s, "Invalid assertions", "%d", len(r.Framework.InvalidAssertions))
	metric(w, s, "Non-framework methods", "%d", len(r.Framework.NonFrameworkMethods))
	for _, name := range firstN(r.Framework.NonFrameworkMethods, 5) {
		fmt.Fprintf(w, "      %s\n", s.Muted.Render("- "+name))
	}

	section(w, s, "Types")
	metric(w, s, "Type errors", "%d", r.Types.TypeErrors)
	metric(w, s, "Annotation errors", "%d", r.Types.AnnotationErrors)
	metric(w, s, "Generic type misuses", "%d", len(r.Types.GenericTypeMisuses))

	section(w, s, "Syntax")
	metric(w, s, "Syntax errors", "%d", r.Syntax.SyntaxErrors)
	metric(w, s, "Lint violations", "%d", r.Syntax.LintViolations)
	for _, e := range r.Syntax.ErrorDetails {
		fmt.Fprintf(w, "      %s\n", s.Bad.Render("- "+string(e.Kind)))
	}

	section(w, s, "Design Patterns")
	metric(w, s, "Adheres to patterns", "%s", yesNo(r.DesignPatterns.AdheresToPatterns))
	detected := "None"
	if len(r.DesignPatterns.PatternsDetected) > 0 {
		detected = strings.Join(r.DesignPatterns.PatternsDetected, ", ")
	}
	metric(w, s, "Patterns detected", "%s", detected)
	for _, v := range r.DesignPatterns.PatternViolations {
		fmt.Fprintf(w, "      %s\n", s.Medium.Render("- "+v))
	}

	// Composite score with a 20-cell bar.
	score := metrics.Score(r)
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Header.Render("--- Summary ---"))
	fmt.Fprintf(w, "%s %s\n", s.Label.Render("Overall quality score:"),
		s.ScoreStyle(score).Render(fmt.Sprintf("%d/100", score)))
	fmt.Fprintf(w, "    %s\n", scoreBar(score, s))

	return nil
}

func section(w io.Writer, s Styles, title string) {
	fmt.Fprintf(w, "\n%s\n", s.Header.Render("--- "+title+" ---"))
}

func metric(w io.Writer, s Styles, label, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n",
		s.Label.Render(label+":"),
		s.Value.Render(fmt.Sprintf(format, args...)))
}

func smellTable(smells []metrics.Smell, s Styles) string {
	rows := make([][]string, 0, len(smells))
	for _, smell := range smells {
		detail := smell.Detail
		if detail == "" && smell.Count > 0 {
			detail = fmt.Sprintf("%d occurrence(s)", smell.Count)
		}
		rows = append(rows, []string{string(smell.Kind), smell.Location, detail})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			return lipgloss.NewStyle().PaddingRight(1)
		}).
		Headers("SMELL", "LOCATION", "DETAIL").
		Rows(rows...).
		String()
}

// scoreBar renders a 20-cell bar colored by the score band.
func scoreBar(score int, s Styles) string {
	filled := score / 5
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	return s.ScoreStyle(score).Render(fmt.Sprintf("[%s] %d%%", bar, score))
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
