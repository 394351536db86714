package pyast

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrParse reports syntactically invalid source. Callers treat it as a
// per-file diagnostic, not a fatal condition.
var ErrParse = errors.New("syntax error")

// Parse parses Python source into a module node. Tree-sitter is error
// tolerant, so any ERROR or missing node in the resulting tree is reported as
// ErrParse rather than silently analyzed.
func Parse(src []byte) (*Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%w: parser returned no tree", ErrParse)
	}
	if root.HasError() {
		if bad := firstErrorNode(root); bad != nil {
			pt := bad.StartPoint()
			return nil, fmt.Errorf("%w at line %d, column %d", ErrParse, pt.Row+1, pt.Column+1)
		}
		return nil, ErrParse
	}

	return convert(root, src), nil
}

// firstErrorNode finds the first ERROR or missing node in document order.
func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstErrorNode(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

func convert(n *sitter.Node, src []byte) *Node {
	pt := n.StartPoint()
	out := &Node{Line: int(pt.Row) + 1, Col: int(pt.Column) + 1}

	switch n.Type() {
	case "module":
		out.Kind = KindModule
		out.Body = convertChildren(n, src)

	case "class_definition":
		out.Kind = KindClassDef
		out.Name = fieldContent(n, "name", src)
		out.Body = convertChildren(n.ChildByFieldName("body"), src)

	case "function_definition":
		out.Kind = KindFunctionDef
		out.Name = fieldContent(n, "name", src)
		out.Body = convertChildren(n.ChildByFieldName("body"), src)

	case "decorated_definition":
		// Unwrap to the definition so decorated methods still count as
		// direct class members. Decorator expressions stay scannable as part
		// of the definition's subtree.
		def := n.ChildByFieldName("definition")
		if def == nil {
			out.Kind = KindOther
			out.Body = convertChildren(n, src)
			break
		}
		inner := convert(def, src)
		var decorators []*Node
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() == "decorator" {
				decorators = append(decorators, convert(child, src))
			}
		}
		inner.Body = append(decorators, inner.Body...)
		return inner

	case "assignment":
		out.Kind = KindAssign
		if left := n.ChildByFieldName("left"); left != nil {
			out.Targets = []*Node{convert(left, src)}
		}
		if right := n.ChildByFieldName("right"); right != nil {
			out.Value = convert(right, src)
		}

	case "call":
		out.Kind = KindCall
		if fn := n.ChildByFieldName("function"); fn != nil {
			out.Fn = convert(fn, src)
		}
		out.Args = convertChildren(n.ChildByFieldName("arguments"), src)

	case "attribute":
		out.Kind = KindAttribute
		out.Name = fieldContent(n, "attribute", src)
		if obj := n.ChildByFieldName("object"); obj != nil {
			out.Base = convert(obj, src)
		}

	case "identifier":
		out.Kind = KindName
		out.Name = n.Content(src)

	case "string":
		out.Kind = KindString
		out.Text = stringContent(n, src)

	default:
		out.Kind = KindOther
		out.Body = convertChildren(n, src)
	}

	return out
}

func convertChildren(n *sitter.Node, src []byte) []*Node {
	if n == nil {
		return nil
	}
	count := int(n.NamedChildCount())
	children := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, convert(n.NamedChild(i), src))
	}
	return children
}

func fieldContent(n *sitter.Node, field string, src []byte) string {
	child := n.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return child.Content(src)
}

// stringContent extracts the literal text between the quotes. Interpolated
// pieces of f-strings are left out; only the constant fragments remain.
func stringContent(n *sitter.Node, src []byte) string {
	var text string
	seen := false
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "string_content" {
			text += child.Content(src)
			seen = true
		}
	}
	if seen {
		return text
	}
	// Grammar versions without string_content nodes: strip the quote pair.
	raw := n.Content(src)
	return strings.Trim(raw, `"'`)
}
