package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

// analyzeFramework checks annotation usage against the JUnit/Spring
// allow-lists, assertion call names against the valid-assertion set,
// and flags methods with no recognizable framework role.
func analyzeFramework(buf *source.Buffer, idx *source.Index) metrics.Framework {
	var m metrics.Framework

	// Distinct annotations whose name claims a framework prefix but
	// is absent from the allow-lists.
	used := make(map[string]bool)
	for _, match := range source.AnnotationUse.FindAllStringSubmatch(buf.Text, -1) {
		used[match[1]] = true
	}
	for name := range used {
		if hasAnyPrefix(name, source.FrameworkPrefixes) &&
			!source.JUnitAnnotations[name] && !source.SpringTestAnnotations[name] {
			m.KeywordViolations++
		}
	}

	// Assertion calls outside the valid-assertion allow-list. The
	// assert prefix itself is trusted, so in practice this flags
	// bare verification calls.
	for _, match := range source.AssertionName.FindAllStringSubmatch(buf.Text, -1) {
		call := match[1]
		if !source.ValidAssertMethods[call] && !strings.HasPrefix(call, "assert") {
			m.InvalidAssertions = append(m.InvalidAssertions, call)
		}
	}

	// Methods that are neither tests nor lifecycle-annotated nor
	// named like conventional helpers.
	names := make([]string, 0, len(idx.Methods))
	for name := range idx.Methods {
		if _, isTest := idx.TestMethods[name]; !isTest {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		if source.LifecycleAnnotation.MatchString(methodContext(buf.Text, name)) {
			continue
		}
		if !hasAnyPrefix(name, source.NonTestNamePrefixes) {
			m.NonFrameworkMethods = append(m.NonFrameworkMethods, name)
		}
	}

	m.ValidAssertions = len(m.InvalidAssertions) == 0
	return m
}

// methodContext returns a short window of text ending at the named
// method's signature, enough to see its annotations.
func methodContext(text, name string) string {
	sig := regexp.MustCompile(`(\w+\s+)+` + regexp.QuoteMeta(name) + `\s*\(`)
	loc := sig.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	return text[maxInt(0, loc[0]-100):loc[1]]
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
