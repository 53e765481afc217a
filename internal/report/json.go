// Package report provides output formatters for analysis reports in
// styled text, JSON, and self-contained HTML.
package report

import (
	"encoding/json"
	"io"

	"github.com/jflowers/scrutiny/internal/metrics"
)

// JSONReport is the top-level JSON output structure: a versioned
// envelope around the aggregate report plus the composite score.
type JSONReport struct {
	Version      string `json:"version"`
	QualityScore int    `json:"quality_score"`
	*metrics.Report
}

// WriteJSON writes the report as formatted JSON to the writer.
func WriteJSON(w io.Writer, r *metrics.Report) error {
	out := JSONReport{
		Version:      "0.1.0",
		QualityScore: metrics.Score(r),
		Report:       r,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
