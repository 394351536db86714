package rules

import (
	"strings"

	"srpcheck/internal/pyast"
)

const (
	TagDelegation  = "delegation"
	TagFileIO      = "file_io"
	TagPrintHelper = "print_helper"
	TagFormatting  = "formatting"
	TagNow         = "now"
	TagDatabase    = "database"
	TagEmail       = "email"
	TagLogging     = "logging"
)

// callTags maps lower-cased call target names to action tags. A name with no
// entry becomes its own tag.
var callTags = map[string]string{
	"open":  TagFileIO,
	"write": TagFileIO,
	"print": TagPrintHelper,
	"dumps": TagFormatting,
	"json":  TagFormatting,
	"now":   TagNow,
}

// literalTags maps keyword hits inside string-literal arguments to action
// tags. A single literal may match several rows.
var literalTags = []struct {
	keywords []string
	tag      string
}{
	{[]string{"save", "database", "insert"}, TagDatabase},
	{[]string{"send", "email", "notify"}, TagEmail},
	{[]string{"log", "success", "audit"}, TagLogging},
}

// classifyCall derives the action tags of one call expression and adds them
// to tags. A call whose target chain roots at self is pure delegation and
// gets no further classification.
func classifyCall(call *pyast.Node, tags map[string]struct{}) {
	if call.Fn != nil && call.Fn.Kind == pyast.KindAttribute {
		root := call.Fn
		for root != nil && root.Kind == pyast.KindAttribute {
			root = root.Base
		}
		if root != nil && root.Kind == pyast.KindName && root.Name == selfName {
			tags[TagDelegation] = struct{}{}
			return
		}
	}

	if name := callName(call.Fn); name != "" {
		if tag, ok := callTags[name]; ok {
			tags[tag] = struct{}{}
		} else {
			tags[name] = struct{}{}
		}
	}

	for _, arg := range call.Args {
		if arg.Kind != pyast.KindString {
			continue
		}
		text := strings.ToLower(arg.Text)
		for _, row := range literalTags {
			for _, keyword := range row.keywords {
				if strings.Contains(text, keyword) {
					tags[row.tag] = struct{}{}
					break
				}
			}
		}
	}
}

// callName resolves the lower-cased target name of a call: the identifier
// itself for bare calls, the final attribute name for attribute calls.
func callName(fn *pyast.Node) string {
	if fn == nil {
		return ""
	}
	switch fn.Kind {
	case pyast.KindName:
		return strings.ToLower(fn.Name)
	case pyast.KindAttribute:
		return strings.ToLower(fn.Name)
	default:
		return ""
	}
}
