package analyze

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jflowers/scrutiny/internal/config"
	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

// analyzeTests summarizes the test methods: counts, assertion
// density, long tests, AAA/GWT organization, and whether exception
// handling is present where the file's constructs suggest it should
// be.
func analyzeTests(buf *source.Buffer, idx *source.Index, t config.Thresholds) metrics.Test {
	var m metrics.Test
	m.TestMethodCount = len(idx.TestMethods)
	m.NestedGroups = len(source.NestedGroupMarker.FindAllString(buf.Text, -1))
	m.AssertCount = countAssertions(buf.Text)
	m.AssertsPerTest = metrics.Round1(float64(m.AssertCount) / float64(maxInt(m.TestMethodCount, 1)))

	// Deterministic order for the long-test sample list.
	names := make([]string, 0, len(idx.TestMethods))
	for name := range idx.TestMethods {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		body := idx.TestMethods[name]
		if n := nonBlankLines(body); n > t.LongTestLines {
			m.LongTests = append(m.LongTests, fmt.Sprintf("%s (%d lines)", name, n))
		}
		if isAAAOrganized(body) {
			m.AAAOrganizedCount++
		}
		if source.TestExceptionHandling.MatchString(body) {
			m.TestsWithExceptionHandling++
		}
	}
	m.LongTestCount = len(m.LongTests)

	denom := float64(maxInt(m.TestMethodCount, 1))
	m.AAAPercentage = metrics.Round1(float64(m.AAAOrganizedCount) / denom * 100)
	m.ExceptionHandlingPercentage = metrics.Round1(float64(m.TestsWithExceptionHandling) / denom * 100)

	m.ExceptionHandlingNeeded = source.ExceptionProneUsage.MatchString(buf.Text)

	return m
}

// countAssertions counts assertion-like call occurrences across the
// whole buffer, not just test bodies.
func countAssertions(text string) int {
	count := 0
	for _, p := range source.AssertionCalls {
		count += len(p.FindAllString(text, -1))
	}
	return count
}

// isAAAOrganized reports whether a test body shows Arrange-Act-Assert
// (or Given-When-Then) organization. Two independent signals, either
// sufficient: an explicit phase comment, or the structural triple of
// a setup expression, an action call, and a verification call. Order
// within the body is not checked.
func isAAAOrganized(body string) bool {
	if source.AAAComment.MatchString(body) {
		return true
	}
	return source.AAAArrange.MatchString(body) &&
		source.AAAAct.MatchString(body) &&
		source.AAAAssertion.MatchString(body)
}

func nonBlankLines(body string) int {
	n := 0
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
