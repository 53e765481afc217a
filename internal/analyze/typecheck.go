package analyze

import (
	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

// analyzeTypes runs the best-effort type hygiene checks: raw
// (non-parameterized) generic container declarations and
// empty-argument annotations.
//
// Undefined-variable detection is deliberately a no-op. The lexical
// heuristic can collect declared-identifier candidates but cannot
// judge usage-before-declaration without a symbol table, so the list
// stays empty rather than reporting guesses.
func analyzeTypes(buf *source.Buffer) metrics.Types {
	var m metrics.Types

	for _, match := range source.RawGenericDecl.FindAllStringSubmatch(buf.Text, -1) {
		m.GenericTypeMisuses = append(m.GenericTypeMisuses, "Raw type usage: "+match[1])
	}

	m.AnnotationErrors = len(source.EmptyAnnotation.FindAllString(buf.Text, -1))
	m.TypeErrors = len(m.GenericTypeMisuses) + m.AnnotationErrors
	return m
}
