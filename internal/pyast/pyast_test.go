package pyast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ModuleShape(t *testing.T) {
	t.Parallel()

	src := `import os

class Greeter:
    def __init__(self, name):
        self.name = name

    def greet(self):
        print(self.name)

def standalone():
    pass
`
	module, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Equal(t, KindModule, module.Kind)

	classes := module.Classes()
	require.Len(t, classes, 1)
	assert.Equal(t, "Greeter", classes[0].Name)

	methods := classes[0].Methods()
	require.Len(t, methods, 2)
	assert.Equal(t, "__init__", methods[0].Name)
	assert.Equal(t, "greet", methods[1].Name)
	assert.Equal(t, 3, classes[0].Line)
}

func TestParse_SyntaxError(t *testing.T) {
	t.Parallel()

	module, err := Parse([]byte("class Broken(:\n"))
	require.ErrorIs(t, err, ErrParse)
	assert.Nil(t, module)
	assert.Contains(t, err.Error(), "line")
}

func TestParse_AssignmentAndCallShapes(t *testing.T) {
	t.Parallel()

	src := `class C:
    def m(self):
        self.db = connect("db url")
        self.db.save(1, "two")
`
	module, err := Parse([]byte(src))
	require.NoError(t, err)

	method := module.Classes()[0].Methods()[0]

	var assign, call *Node
	for node := range Descendants(method) {
		switch node.Kind {
		case KindAssign:
			assign = node
		case KindCall:
			if node.Fn != nil && node.Fn.Kind == KindAttribute {
				call = node
			}
		}
	}

	require.NotNil(t, assign)
	require.Len(t, assign.Targets, 1)
	assert.Equal(t, KindAttribute, assign.Targets[0].Kind)
	assert.Equal(t, "db", assign.Targets[0].Name)
	require.NotNil(t, assign.Targets[0].Base)
	assert.Equal(t, "self", assign.Targets[0].Base.Name)
	require.NotNil(t, assign.Value)
	assert.Equal(t, KindCall, assign.Value.Kind)

	require.NotNil(t, call)
	assert.Equal(t, "save", call.Fn.Name)
	require.Len(t, call.Args, 2)
	assert.Equal(t, KindString, call.Args[1].Kind)
	assert.Equal(t, "two", call.Args[1].Text)
}

func TestParse_StringLiteralContent(t *testing.T) {
	t.Parallel()

	src := "x = \"double\"\ny = 'single'\n"
	module, err := Parse([]byte(src))
	require.NoError(t, err)

	var texts []string
	for node := range Descendants(module) {
		if node.Kind == KindString {
			texts = append(texts, node.Text)
		}
	}
	assert.Equal(t, []string{"double", "single"}, texts)
}

func TestDescendants_ReachesArbitraryDepth(t *testing.T) {
	t.Parallel()

	src := `class C:
    def m(self):
        if True:
            for i in range(3):
                def inner():
                    self.deep.call()
`
	module, err := Parse([]byte(src))
	require.NoError(t, err)

	method := module.Classes()[0].Methods()[0]
	found := false
	for node := range Descendants(method) {
		if node.Kind == KindAttribute && node.Name == "deep" {
			found = true
		}
	}
	assert.True(t, found, "self.deep access nested four levels down should be visited")
}

func TestDescendants_StopsEarly(t *testing.T) {
	t.Parallel()

	src := "a = 1\nb = 2\nc = 3\n"
	module, err := Parse([]byte(src))
	require.NoError(t, err)

	visited := 0
	for range Descendants(module) {
		visited++
		if visited == 2 {
			break
		}
	}
	assert.Equal(t, 2, visited)
}

func TestParse_UnrecognizedKindsStayTraversable(t *testing.T) {
	t.Parallel()

	// Lambdas, comprehensions and try blocks have no dedicated kind; the
	// names inside them must still be reachable.
	src := `class C:
    def m(self):
        try:
            values = [self.loader.load(k) for k in keys]
        except Exception:
            pass
`
	module, err := Parse([]byte(src))
	require.NoError(t, err)

	found := false
	for node := range Descendants(module) {
		if node.Kind == KindAttribute && node.Name == "loader" {
			found = true
		}
	}
	assert.True(t, found)
}
