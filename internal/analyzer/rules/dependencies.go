package rules

import (
	"fmt"
	"strings"

	"srpcheck/internal/config"
	"srpcheck/internal/models"
)

// DependenciesRule flags classes whose methods touch more distinct
// collaborators than the threshold allows. Attributes assigned to self in the
// constructor are treated as injected collaborators and exempted.
type DependenciesRule struct {
	config *config.Config
}

func NewDependenciesRule(cfg *config.Config) *DependenciesRule {
	return &DependenciesRule{config: cfg}
}

func (r *DependenciesRule) Name() string {
	return "Dependencies Rule"
}

func (r *DependenciesRule) threshold() int {
	if r.config != nil {
		return r.config.Analysis.DependencyThreshold
	}
	return config.DefaultDependencyThreshold
}

func (r *DependenciesRule) Check(facts *ClassFacts) []models.Violation {
	deps := make(map[string]struct{}, len(facts.Dependencies))
	for name := range facts.Dependencies {
		if _, injected := facts.ConstructorAttrs[name]; !injected {
			deps[name] = struct{}{}
		}
	}

	if len(deps) <= r.threshold() {
		return nil
	}

	return []models.Violation{{
		Rule:   models.RuleDependencies,
		Class:  facts.Name,
		Reason: fmt.Sprintf("Class uses multiple components: %s.", strings.Join(sortedNames(deps), ", ")),
	}}
}
