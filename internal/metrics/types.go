// Package metrics defines the metric record types produced by the
// analyzer passes, the aggregate report, and the composite quality
// score. Every record's zero value is a valid "nothing found"
// result, so a pass that matches nothing degrades to defaults
// instead of failing the run.
package metrics

import "math"

// Size counts the line classes of the file. The classes partition
// the file: TotalLines == BlankLines + CommentLines + LogicalLOC.
type Size struct {
	TotalLines   int     `json:"total_lines"`
	LogicalLOC   int     `json:"logical_loc"`
	BlankLines   int     `json:"blank_lines"`
	CommentLines int     `json:"comment_lines"`
	CommentRatio float64 `json:"comment_ratio"`
}

// Complexity holds per-method cyclomatic and cognitive complexity
// plus the derived maintainability index.
type Complexity struct {
	Cyclomatic           map[string]int `json:"cyclomatic_complexity"`
	AvgCyclomatic        float64        `json:"avg_cyclomatic"`
	MaxCyclomatic        int            `json:"max_cyclomatic"`
	Cognitive            map[string]int `json:"cognitive_complexity"`
	AvgCognitive         float64        `json:"avg_cognitive"`
	MaxCognitive         int            `json:"max_cognitive"`
	MaintainabilityIndex float64        `json:"maintainability_index"`
}

// Test summarizes the test methods of the file.
type Test struct {
	TestMethodCount int     `json:"test_method_count"`
	NestedGroups    int     `json:"nested_class_count"`
	AssertCount     int     `json:"assert_count"`
	AssertsPerTest  float64 `json:"asserts_per_test"`

	// LongTests lists tests whose bodies exceed the long-test line
	// threshold, as "name (N lines)".
	LongTests     []string `json:"long_tests"`
	LongTestCount int      `json:"long_test_count"`

	// AAAOrganizedCount is the number of tests showing either an
	// explicit arrange/act/assert comment or the structural triple
	// of setup, action and verification expressions.
	AAAOrganizedCount int     `json:"aaa_organized_count"`
	AAAPercentage     float64 `json:"aaa_percentage"`

	TestsWithExceptionHandling  int     `json:"tests_with_exception_handling"`
	ExceptionHandlingPercentage float64 `json:"exception_handling_percentage"`

	// ExceptionHandlingNeeded reports whether the file touches
	// constructs (HTTP calls, throws clauses) that make exception
	// coverage expected.
	ExceptionHandlingNeeded bool `json:"exception_handling_needed"`
}

// Duplication reports exact-text recurrence of meaningful lines.
// This is line-level duplication, intentionally coarse.
type Duplication struct {
	// DuplicateSegments is the number of distinct line texts that
	// recur at least twice.
	DuplicateSegments int `json:"duplicate_segments"`

	// DuplicateLines is the sum of (count - 1) over recurring texts.
	DuplicateLines      int     `json:"duplicate_lines"`
	DuplicatePercentage float64 `json:"duplicate_percentage"`

	// DuplicatedBlocks holds up to the first five duplicated texts
	// as samples.
	DuplicatedBlocks []string `json:"duplicated_blocks"`
}

// SmellKind enumerates the code smell categories.
type SmellKind string

// Smell kinds.
const (
	SmellLongMethod        SmellKind = "Long Method"
	SmellTooManyParameters SmellKind = "Too Many Parameters"
	SmellMagicNumber       SmellKind = "Magic Number"
	SmellDeepNesting       SmellKind = "Deep Nesting"
	SmellWildcardImport    SmellKind = "Wildcard Import"
)

// Smell is one detected code smell. Which fields are populated
// depends on the kind: Location for method-anchored smells, Detail
// for value-carrying ones, Count for aggregated ones.
type Smell struct {
	Kind     SmellKind `json:"type"`
	Location string    `json:"location,omitempty"`
	Detail   string    `json:"detail,omitempty"`
	Count    int       `json:"count,omitempty"`
}

// CodeSmells aggregates the smell checks plus the marker-keyword and
// dead-code side reports.
type CodeSmells struct {
	SmellCount int     `json:"code_smell_count"`
	Smells     []Smell `json:"code_smells"`

	// TodoFixmeCount counts TODO/FIXME/HACK/XXX markers. Reported
	// separately; markers are not smells themselves.
	TodoFixmeCount  int `json:"todo_fixme_count"`
	WildcardImports int `json:"wildcard_imports"`

	// DeadCodeItems is a best-effort textual occurrence count of
	// private members referenced only at their declaration. It is
	// not a use-def analysis: reflection hides uses from it and
	// regex limits overcount coincidental names.
	DeadCodeItems      []string `json:"dead_code_items"`
	DeadCodePercentage float64  `json:"dead_code_percentage"`
}

// ConventionViolation is one naming or layout rule violation.
type ConventionViolation struct {
	Rule   string `json:"rule"`
	Detail string `json:"detail,omitempty"`
	Line   int    `json:"line,omitempty"`
	Length int    `json:"length,omitempty"`
}

// Conventions reports naming and line-length rule adherence.
type Conventions struct {
	FollowsConventions bool                  `json:"follows_conventions"`
	Violations         []ConventionViolation `json:"convention_violations"`
	ViolationCount     int                   `json:"violation_count"`
}

// Framework reports adherence to the recognized test-framework
// surface: annotation allow-lists, assertion call names, and methods
// with no framework role.
type Framework struct {
	KeywordViolations int      `json:"framework_keyword_violations"`
	InvalidAssertions []string `json:"invalid_assertions"`

	// NonFrameworkMethods are methods that are neither tests nor
	// lifecycle-annotated nor conventional helpers. Candidates for
	// manual review, not hard errors.
	NonFrameworkMethods []string `json:"non_framework_methods"`
	ValidAssertions     bool     `json:"valid_framework_assertions"`
}

// Types reports best-effort type hygiene findings. The undefined
// variable detector is a documented no-op: without a symbol table
// the heuristic cannot judge use-before-declaration, so the list is
// always empty rather than wrong.
type Types struct {
	TypeErrors         int      `json:"type_errors"`
	UndefinedVariables []string `json:"undefined_variables"`
	AnnotationErrors   int      `json:"type_annotation_errors"`
	GenericTypeMisuses []string `json:"generic_type_misuses"`
}

// SyntaxIssueKind enumerates structural anomaly categories. These
// are findings about the analyzed file, not analyzer failures.
type SyntaxIssueKind string

// Syntax issue kinds.
const (
	SyntaxUnbalancedBraces SyntaxIssueKind = "Unbalanced braces"
	SyntaxUnbalancedParens SyntaxIssueKind = "Unbalanced parentheses"
	SyntaxMissingSemicolon SyntaxIssueKind = "Possible missing semicolon"
)

// SyntaxIssue is one structural anomaly. Open/Close carry the
// bracket counts for imbalance kinds; Line locates semicolon kinds.
type SyntaxIssue struct {
	Kind  SyntaxIssueKind `json:"type"`
	Line  int             `json:"line,omitempty"`
	Open  int             `json:"open,omitempty"`
	Close int             `json:"close,omitempty"`
}

// LintIssueKind enumerates the lint findings.
type LintIssueKind string

// Lint issue kinds.
const (
	LintTrailingWhitespace LintIssueKind = "Trailing whitespace"
	LintConsecutiveBlanks  LintIssueKind = "Multiple consecutive empty lines"
	LintKeywordSpacing     LintIssueKind = "Missing space after keyword"
)

// LintIssue is one lint finding.
type LintIssue struct {
	Kind LintIssueKind `json:"type"`
	Line int           `json:"line"`
}

// Syntax reports structural anomalies and lint findings.
type Syntax struct {
	SyntaxErrors int           `json:"syntax_errors"`
	ErrorDetails []SyntaxIssue `json:"syntax_error_details"`

	// LintViolations counts all findings; LintDetails is capped at
	// the first 20.
	LintViolations int         `json:"linting_violations"`
	LintDetails    []LintIssue `json:"linting_details"`
}

// DesignPatterns reports idiom presence and organizational
// violations.
type DesignPatterns struct {
	AdheresToPatterns bool     `json:"adheres_to_patterns"`
	PatternsDetected  []string `json:"patterns_detected"`
	PatternViolations []string `json:"pattern_violations"`
}

// Report is the aggregate of one analysis run: the ten metric
// records plus the file identity. It is never mutated after the
// passes complete; formatters and the scorer consume it read-only.
type Report struct {
	FileName       string         `json:"file_name"`
	Size           Size           `json:"size"`
	Complexity     Complexity     `json:"complexity"`
	Test           Test           `json:"test"`
	Duplication    Duplication    `json:"duplication"`
	CodeSmells     CodeSmells     `json:"code_smells"`
	Conventions    Conventions    `json:"conventions"`
	Framework      Framework      `json:"framework"`
	Types          Types          `json:"types"`
	Syntax         Syntax         `json:"syntax"`
	DesignPatterns DesignPatterns `json:"design_patterns"`
}

// NewReport returns a report whose boolean adherence fields hold for
// an empty scan, so a file with nothing to flag reads as clean.
func NewReport(fileName string) *Report {
	r := &Report{FileName: fileName}
	r.Conventions.FollowsConventions = true
	r.Framework.ValidAssertions = true
	r.DesignPatterns.AdheresToPatterns = true
	return r
}

// Round1 rounds to one decimal place. All ratio and percentage
// fields pass through this for reproducible output.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ClampPct clamps a value to the [0, 100] range.
func ClampPct(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
