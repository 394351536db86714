package analyzer

import (
	"fmt"
	"os"
	"time"

	"srpcheck/internal/analyzer/rules"
	"srpcheck/internal/config"
	"srpcheck/internal/models"
	"srpcheck/internal/pyast"
)

type Analyzer struct {
	config *config.Config
	rules  []Rule
}

// Rule evaluates one SRP heuristic against the facts gathered for a class.
type Rule interface {
	Name() string
	Check(facts *rules.ClassFacts) []models.Violation
}

func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(config.DefaultConfig())
}

func NewAnalyzerWithConfig(cfg *config.Config) *Analyzer {
	a := &Analyzer{config: cfg}

	// Evaluation order is fixed: method count, then dependencies, then mixed
	// actions, per class.
	if cfg == nil || cfg.Rules.MethodCount.Enabled {
		a.rules = append(a.rules, rules.NewMethodCountRule(cfg))
	}
	if cfg == nil || cfg.Rules.Dependencies.Enabled {
		a.rules = append(a.rules, rules.NewDependenciesRule(cfg))
	}
	if cfg == nil || cfg.Rules.MixedActions.Enabled {
		a.rules = append(a.rules, rules.NewMixedActionsRule(cfg))
	}

	return a
}

// AnalyzeSource analyzes one buffer of Python source. A parse failure yields
// the error and no violations; it is not fatal to the caller's run.
func (a *Analyzer) AnalyzeSource(src []byte) ([]models.Violation, error) {
	module, err := pyast.Parse(src)
	if err != nil {
		return nil, err
	}
	return a.analyzeModule(module), nil
}

// analyzeModule visits top-level classes in document order. Facts are built
// fresh per class, so action state never carries over between classes.
func (a *Analyzer) analyzeModule(module *pyast.Node) []models.Violation {
	violations := make([]models.Violation, 0)
	for _, class := range module.Classes() {
		facts := rules.ScanClass(class)
		for _, rule := range a.rules {
			violations = append(violations, rule.Check(facts)...)
		}
	}
	return violations
}

// AnalyzeFiles runs the analyzer over many files, attributing violations to
// their file and recording parse failures without aborting the run.
func (a *Analyzer) AnalyzeFiles(filenames []string) (*models.AnalysisResult, error) {
	startTime := time.Now()
	result := models.NewAnalysisResult()

	for _, filename := range filenames {
		src, err := os.ReadFile(filename)
		if err != nil {
			result.AddParseFailure(fmt.Sprintf("%s: %v", filename, err))
			continue
		}
		if limit := a.maxFileSize(); limit > 0 && len(src) > limit {
			result.AddParseFailure(fmt.Sprintf("%s: file exceeds %d KB limit", filename, limit/1024))
			continue
		}

		violations, err := a.AnalyzeSource(src)
		if err != nil {
			result.AddParseFailure(fmt.Sprintf("%s: %v", filename, err))
			continue
		}

		result.Files = append(result.Files, filename)
		for _, v := range violations {
			v.File = filename
			result.AddViolation(v)
		}
	}

	result.AnalysisDuration = time.Since(startTime).String()
	return result, nil
}

func (a *Analyzer) maxFileSize() int {
	if a.config == nil {
		return 0
	}
	return a.config.Files.MaxFileSize * 1024
}

// GetRuleCount returns the number of active rules
func (a *Analyzer) GetRuleCount() int {
	return len(a.rules)
}

// GetRuleNames returns the names of all active rules
func (a *Analyzer) GetRuleNames() []string {
	names := make([]string, len(a.rules))
	for i, rule := range a.rules {
		names[i] = rule.Name()
	}
	return names
}
