package rules

import (
	"fmt"
	"strings"

	"srpcheck/internal/config"
	"srpcheck/internal/models"
)

// MixedActionsRule flags methods whose call and literal tags span more than
// one substantial action. Harmless sub-steps like timestamps and prints are
// ignored before counting.
type MixedActionsRule struct {
	config *config.Config
}

func NewMixedActionsRule(cfg *config.Config) *MixedActionsRule {
	return &MixedActionsRule{config: cfg}
}

func (r *MixedActionsRule) Name() string {
	return "Mixed Actions Rule"
}

func (r *MixedActionsRule) harmless() map[string]struct{} {
	tags := []string{TagNow, TagPrintHelper}
	if r.config != nil && len(r.config.Rules.MixedActions.HarmlessTags) > 0 {
		tags = r.config.Rules.MixedActions.HarmlessTags
	}
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

// Check walks the class's own methods in declaration order and emits one
// violation per method mixing more than one main action.
func (r *MixedActionsRule) Check(facts *ClassFacts) []models.Violation {
	harmless := r.harmless()

	var violations []models.Violation
	for _, method := range facts.Methods {
		main := make(map[string]struct{})
		for tag := range facts.Actions[method] {
			if _, ok := harmless[tag]; !ok {
				main[tag] = struct{}{}
			}
		}
		if len(main) <= 1 {
			continue
		}

		violations = append(violations, models.Violation{
			Rule:   models.RuleMixedActions,
			Class:  facts.Name,
			Method: method,
			Reason: fmt.Sprintf("Method %s mixes multiple actions: %s.", method, strings.Join(sortedNames(main), ", ")),
		})
	}

	return violations
}
