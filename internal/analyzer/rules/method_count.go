package rules

import (
	"fmt"

	"srpcheck/internal/config"
	"srpcheck/internal/models"
)

// MethodCountRule flags classes declaring more methods than the threshold
// allows. Many methods usually means many reasons to change.
type MethodCountRule struct {
	config *config.Config
}

func NewMethodCountRule(cfg *config.Config) *MethodCountRule {
	return &MethodCountRule{config: cfg}
}

func (r *MethodCountRule) Name() string {
	return "Method Count Rule"
}

func (r *MethodCountRule) threshold() int {
	if r.config != nil {
		return r.config.Analysis.MethodThreshold
	}
	return config.DefaultMethodThreshold
}

func (r *MethodCountRule) Check(facts *ClassFacts) []models.Violation {
	threshold := r.threshold()
	count := len(facts.Methods)
	if count <= threshold {
		return nil
	}

	return []models.Violation{{
		Rule:   models.RuleMethodCount,
		Class:  facts.Name,
		Reason: fmt.Sprintf("Has %d methods (threshold %d).", count, threshold),
	}}
}
