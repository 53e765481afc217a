package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/jflowers/scrutiny/internal/metrics"
)

// htmlPage is the self-contained HTML report template. No external
// assets; safe to open from disk or attach to CI artifacts.
var htmlPage = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Code Quality Report - {{.Report.FileName}}</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 40px; background: #f5f5f5; }
    .container { max-width: 900px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
    h1 { color: #333; border-bottom: 2px solid #4CAF50; padding-bottom: 10px; }
    h2 { color: #555; margin-top: 30px; }
    .metric { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #eee; }
    .metric-name { color: #666; }
    .metric-value { font-weight: bold; color: #333; }
    .score { font-size: 48px; text-align: center; margin: 20px 0; }
    .score.good { color: #4CAF50; }
    .score.medium { color: #FF9800; }
    .score.bad { color: #f44336; }
    .section { margin: 20px 0; padding: 15px; background: #fafafa; border-radius: 5px; }
    .warning { color: #f44336; }
    .ok { color: #4CAF50; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Code Quality Report</h1>
    <p><strong>File:</strong> {{.Report.FileName}}</p>

    <div class="score {{.ScoreClass}}">{{.Score}}/100</div>

    <div class="section">
      <h2>Size Metrics</h2>
      <div class="metric"><span class="metric-name">Logical LOC</span><span class="metric-value">{{.Report.Size.LogicalLOC}}</span></div>
      <div class="metric"><span class="metric-name">Comment Ratio</span><span class="metric-value">{{.Report.Size.CommentRatio}}%</span></div>
    </div>

    <div class="section">
      <h2>Complexity</h2>
      <div class="metric"><span class="metric-name">Avg Cyclomatic</span><span class="metric-value">{{.Report.Complexity.AvgCyclomatic}}</span></div>
      <div class="metric"><span class="metric-name">Avg Cognitive</span><span class="metric-value">{{.Report.Complexity.AvgCognitive}}</span></div>
      <div class="metric"><span class="metric-name">Maintainability Index</span><span class="metric-value">{{.Report.Complexity.MaintainabilityIndex}}/100</span></div>
    </div>

    <div class="section">
      <h2>Test Metrics</h2>
      <div class="metric"><span class="metric-name">Test Methods</span><span class="metric-value">{{.Report.Test.TestMethodCount}}</span></div>
      <div class="metric"><span class="metric-name">Assert Statements</span><span class="metric-value">{{.Report.Test.AssertCount}}</span></div>
      <div class="metric"><span class="metric-name">AAA Organized</span><span class="metric-value">{{.Report.Test.AAAPercentage}}%</span></div>
      <div class="metric"><span class="metric-name">Long Tests</span><span class="metric-value {{if gt .Report.Test.LongTestCount 0}}warning{{else}}ok{{end}}">{{.Report.Test.LongTestCount}}</span></div>
    </div>

    <div class="section">
      <h2>Code Smells</h2>
      <div class="metric"><span class="metric-name">Code Smells</span><span class="metric-value">{{.Report.CodeSmells.SmellCount}}</span></div>
      <div class="metric"><span class="metric-name">Wildcard Imports</span><span class="metric-value">{{.Report.CodeSmells.WildcardImports}}</span></div>
      <div class="metric"><span class="metric-name">Duplication</span><span class="metric-value">{{.Report.Duplication.DuplicatePercentage}}%</span></div>
    </div>
  </div>
</body>
</html>
`))

// WriteHTML writes the report as a self-contained HTML document.
func WriteHTML(w io.Writer, r *metrics.Report) error {
	score := metrics.Score(r)

	class := "bad"
	switch {
	case score >= 80:
		class = "good"
	case score >= 60:
		class = "medium"
	}

	data := struct {
		Report     *metrics.Report
		Score      int
		ScoreClass string
	}{r, score, class}

	if err := htmlPage.Execute(w, data); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}
	return nil
}
