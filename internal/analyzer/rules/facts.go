// Package rules holds the three SRP heuristics and the per-class fact scan
// that feeds them.
package rules

import (
	"sort"

	"srpcheck/internal/pyast"
)

const (
	selfName        = "self"
	constructorName = "__init__"
)

// ClassFacts is everything the rules need to know about one class. It is
// built fresh for every class, so no state leaks between classes or between
// runs.
type ClassFacts struct {
	Name string
	Line int

	// Methods holds directly-declared method names in declaration order.
	Methods []string

	// Dependencies is every attribute name accessed through self anywhere in
	// any method's subtree, including the constructor's.
	Dependencies map[string]struct{}

	// ConstructorAttrs is every attribute name assigned to self inside the
	// constructor. These count as injected collaborators, not dependencies.
	ConstructorAttrs map[string]struct{}

	// Actions maps each method name to the set of action tags derived from
	// its subtree.
	Actions map[string]map[string]struct{}
}

// ScanClass performs the single full-depth pass over a class's methods.
// Nested blocks, conditionals, and helper functions defined inside a method
// all belong to that method's subtree and are scanned with it.
func ScanClass(class *pyast.Node) *ClassFacts {
	facts := &ClassFacts{
		Name:             class.Name,
		Line:             class.Line,
		Methods:          make([]string, 0),
		Dependencies:     make(map[string]struct{}),
		ConstructorAttrs: make(map[string]struct{}),
		Actions:          make(map[string]map[string]struct{}),
	}

	for _, method := range class.Methods() {
		facts.Methods = append(facts.Methods, method.Name)
		facts.scanMethod(method)
	}

	return facts
}

func (f *ClassFacts) scanMethod(method *pyast.Node) {
	tags := make(map[string]struct{})
	inConstructor := method.Name == constructorName

	for node := range pyast.Descendants(method) {
		switch node.Kind {
		case pyast.KindAttribute:
			if isSelfAttr(node) {
				f.Dependencies[node.Name] = struct{}{}
			}
		case pyast.KindAssign:
			if inConstructor {
				for _, target := range node.Targets {
					if isSelfAttr(target) {
						f.ConstructorAttrs[target.Name] = struct{}{}
					}
				}
			}
		case pyast.KindCall:
			classifyCall(node, tags)
		}
	}

	f.Actions[method.Name] = tags
}

// isSelfAttr reports whether node is an attribute access whose base is the
// self reference. Deeper chains like self.a.b match only at the innermost
// access.
func isSelfAttr(node *pyast.Node) bool {
	return node.Kind == pyast.KindAttribute &&
		node.Base != nil &&
		node.Base.Kind == pyast.KindName &&
		node.Base.Name == selfName
}

// sortedNames returns the set's members in lexical order so that formatted
// reasons never depend on map iteration order.
func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
