package models

type RuleType string

const (
	RuleMethodCount  RuleType = "method_count"
	RuleDependencies RuleType = "dependency_count"
	RuleMixedActions RuleType = "mixed_actions"
)

// Violation is one SRP finding. Reason is a fully formatted sentence; the
// rule, class and method fields exist for tooling that wants structure.
type Violation struct {
	Rule   RuleType `json:"rule"`
	File   string   `json:"file,omitempty"`
	Class  string   `json:"class"`
	Method string   `json:"method,omitempty"`
	Reason string   `json:"reason"`
}

type AnalysisResult struct {
	Files            []string       `json:"files_analyzed"`
	TotalViolations  int            `json:"total_violations"`
	ViolationsByRule map[string]int `json:"violations_by_rule"`
	Violations       []Violation    `json:"violations"`
	ParseFailures    []string       `json:"parse_failures,omitempty"`
	AnalysisDuration string         `json:"analysis_duration"`
}

func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		Files:            make([]string, 0),
		Violations:       make([]Violation, 0),
		ViolationsByRule: make(map[string]int),
	}
}

// AddViolation appends in insertion order; findings are never deduplicated.
func (ar *AnalysisResult) AddViolation(v Violation) {
	ar.Violations = append(ar.Violations, v)
	ar.TotalViolations++
	ar.ViolationsByRule[string(v.Rule)]++
}

// AddParseFailure records a file that could not be parsed. The run continues;
// a parse failure contributes no violations.
func (ar *AnalysisResult) AddParseFailure(msg string) {
	ar.ParseFailures = append(ar.ParseFailures, msg)
}
