// Package pyast maps tree-sitter's Python parse tree onto a small closed set
// of node kinds. Only the constructs the SRP rules care about get their own
// kind; everything else becomes a generic container that still exposes its
// children, so full-depth scans see through constructs we don't model.
package pyast

// Kind identifies the syntactic category of a Node.
type Kind int

const (
	// KindModule is the root of a parsed source file.
	KindModule Kind = iota
	// KindClassDef is a class definition.
	KindClassDef
	// KindFunctionDef is a function or method definition.
	KindFunctionDef
	// KindAssign is an assignment statement.
	KindAssign
	// KindCall is a call expression.
	KindCall
	// KindAttribute is an attribute access (obj.attr).
	KindAttribute
	// KindName is a bare identifier reference.
	KindName
	// KindString is a string literal.
	KindString
	// KindOther covers every construct the analyzer has no special handling
	// for. Its children remain reachable through Body.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindClassDef:
		return "class_def"
	case KindFunctionDef:
		return "function_def"
	case KindAssign:
		return "assign"
	case KindCall:
		return "call"
	case KindAttribute:
		return "attribute"
	case KindName:
		return "name"
	case KindString:
		return "string"
	default:
		return "other"
	}
}

// Node is one element of the parsed tree. Which fields are populated depends
// on Kind:
//
//   - KindClassDef, KindFunctionDef: Name and Body
//   - KindAssign: Targets and Value
//   - KindCall: Fn and Args
//   - KindAttribute: Base and Name (the attribute name)
//   - KindName: Name (the identifier text)
//   - KindString: Text (the literal content, quotes stripped)
//   - KindModule, KindOther: Body
type Node struct {
	Kind Kind

	Name string
	Text string

	Base    *Node
	Fn      *Node
	Args    []*Node
	Targets []*Node
	Value   *Node
	Body    []*Node

	// Line and Col are 1-based source coordinates of the node start.
	Line int
	Col  int
}

// children yields every direct child in a fixed field order.
func (n *Node) children(visit func(*Node) bool) bool {
	if n.Base != nil && !visit(n.Base) {
		return false
	}
	if n.Fn != nil && !visit(n.Fn) {
		return false
	}
	for _, c := range n.Args {
		if !visit(c) {
			return false
		}
	}
	for _, c := range n.Targets {
		if !visit(c) {
			return false
		}
	}
	if n.Value != nil && !visit(n.Value) {
		return false
	}
	for _, c := range n.Body {
		if !visit(c) {
			return false
		}
	}
	return true
}

// Classes returns the top-level class definitions of a module in document
// order.
func (n *Node) Classes() []*Node {
	classes := make([]*Node, 0)
	for _, stmt := range n.Body {
		if stmt.Kind == KindClassDef {
			classes = append(classes, stmt)
		}
	}
	return classes
}

// Methods returns the directly-declared method definitions of a class body in
// declaration order. Functions nested inside a method body are not methods;
// they are reached through the enclosing method's subtree instead.
func (n *Node) Methods() []*Node {
	methods := make([]*Node, 0)
	for _, stmt := range n.Body {
		if stmt.Kind == KindFunctionDef {
			methods = append(methods, stmt)
		}
	}
	return methods
}
