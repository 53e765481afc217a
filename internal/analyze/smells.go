package analyze

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jflowers/scrutiny/internal/config"
	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

// analyzeSmells runs the independent smell checks, each appending a
// typed record, plus the marker-keyword and dead-code side reports.
func analyzeSmells(buf *source.Buffer, idx *source.Index, t config.Thresholds) metrics.CodeSmells {
	var m metrics.CodeSmells
	var smells []metrics.Smell

	// Long methods, in name order for deterministic output.
	names := make([]string, 0, len(idx.Methods))
	for name := range idx.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if n := nonBlankLines(idx.Methods[name]); n > t.LongMethodLines {
			smells = append(smells, metrics.Smell{
				Kind:     metrics.SmellLongMethod,
				Location: name,
				Detail:   fmt.Sprintf("%d lines", n),
			})
		}
	}

	for _, match := range source.WideParameterList.FindAllStringSubmatch(buf.Text, -1) {
		smells = append(smells, metrics.Smell{
			Kind:     metrics.SmellTooManyParameters,
			Location: match[1],
		})
	}

	smells = append(smells, magicNumbers(buf.Text)...)

	// Deep nesting: running brace depth across the whole file, one
	// report carrying the maximum.
	maxDepth, depth := 0, 0
	for _, line := range buf.Lines {
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth > maxDepth {
			maxDepth = depth
		}
	}
	if maxDepth > t.DeepNesting {
		smells = append(smells, metrics.Smell{
			Kind:   metrics.SmellDeepNesting,
			Detail: fmt.Sprintf("Max depth: %d", maxDepth),
		})
	}

	m.TodoFixmeCount = len(source.TodoMarker.FindAllString(buf.Text, -1))

	m.WildcardImports = len(source.WildcardImport.FindAllString(buf.Text, -1))
	if m.WildcardImports > 0 {
		smells = append(smells, metrics.Smell{
			Kind:  metrics.SmellWildcardImport,
			Count: m.WildcardImports,
		})
	}

	m.DeadCodeItems = deadCode(buf.Text)
	m.DeadCodePercentage = metrics.Round1(
		float64(len(m.DeadCodeItems)) / float64(maxInt(len(idx.Methods), 1)) * 100)

	m.Smells = smells
	m.SmellCount = len(smells)
	return m
}

// magicNumbers flags bare numeric literals unless a context word
// (port/year/status/code) appears in a short lookback window before
// the match.
func magicNumbers(text string) []metrics.Smell {
	var smells []metrics.Smell
	for _, loc := range source.MagicNumber.FindAllStringSubmatchIndex(text, -1) {
		start := loc[0]
		window := text[maxInt(0, start-20):start]
		if source.MagicNumberContext.MatchString(window) {
			continue
		}
		smells = append(smells, metrics.Smell{
			Kind:   metrics.SmellMagicNumber,
			Detail: text[loc[2]:loc[3]],
		})
	}
	return smells
}

// deadCode flags privately-scoped members whose identifier occurs at
// most once in the whole buffer (only at the declaration). This is a
// textual occurrence count, not a use-def analysis: uses behind
// reflection or string references are missed, and names that happen
// to appear once are overcounted.
func deadCode(text string) []string {
	var dead []string

	for _, match := range source.PrivateMethodDecl.FindAllStringSubmatch(text, -1) {
		name := match[1]
		call := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*\(`)
		if len(call.FindAllString(text, -1)) <= 1 {
			dead = append(dead, "Unused method: "+name)
		}
	}

	for _, match := range source.PrivateFieldDecl.FindAllStringSubmatch(text, -1) {
		name := match[1]
		use := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
		if len(use.FindAllString(text, -1)) <= 1 {
			dead = append(dead, "Unused field: "+name)
		}
	}

	return dead
}
