package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srpcheck/internal/pyast"
)

// tagsFor runs the classifier over a one-statement method body.
func tagsFor(t *testing.T, stmt string) map[string]struct{} {
	t.Helper()

	src := "class C:\n    def m(self):\n        " + stmt + "\n"
	module, err := pyast.Parse([]byte(src))
	require.NoError(t, err)
	facts := ScanClass(module.Classes()[0])
	return facts.Actions["m"]
}

func TestClassifyCall_NameTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		stmt string
		want map[string]struct{}
	}{
		{"open is file io", `open(path)`, map[string]struct{}{TagFileIO: {}}},
		{"write attr is file io", `handle.write(data)`, map[string]struct{}{TagFileIO: {}}},
		{"print is harmless helper", `print(x)`, map[string]struct{}{TagPrintHelper: {}}},
		{"dumps is formatting", `json.dumps(x)`, map[string]struct{}{TagFormatting: {}}},
		{"now is harmless", `datetime.now()`, map[string]struct{}{TagNow: {}}},
		{"unknown name becomes its own tag", `frobnicate(x)`, map[string]struct{}{"frobnicate": {}}},
		{"name matching is case insensitive", `OPEN(path)`, map[string]struct{}{TagFileIO: {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tagsFor(t, tt.stmt))
		})
	}
}

func TestClassifyCall_Delegation(t *testing.T) {
	t.Parallel()

	// The chain roots at self, however deep; no name or literal tags apply.
	assert.Equal(t, map[string]struct{}{TagDelegation: {}},
		tagsFor(t, `self.repo.store.save("insert into orders")`))

	// A chain rooted elsewhere falls through to name classification.
	assert.Equal(t, map[string]struct{}{"save": {}, TagDatabase: {}},
		tagsFor(t, `repo.store.save("insert into orders")`))
}

func TestClassifyCall_LiteralSniffing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		stmt string
		want map[string]struct{}
	}{
		{"database keyword", `record("Save to DATABASE")`, map[string]struct{}{"record": {}, TagDatabase: {}}},
		{"email keyword", `run("notify customer")`, map[string]struct{}{"run": {}, TagEmail: {}}},
		{"logging keyword", `run("operation success")`, map[string]struct{}{"run": {}, TagLogging: {}}},
		{
			"one literal can add several tags",
			`run("log and send email")`,
			map[string]struct{}{"run": {}, TagLogging: {}, TagEmail: {}},
		},
		{
			"print keeps its helper tag alongside literal tags",
			`print("insert record")`,
			map[string]struct{}{TagPrintHelper: {}, TagDatabase: {}},
		},
		{"no keyword no tag", `run("plain text")`, map[string]struct{}{"run": {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tagsFor(t, tt.stmt))
		})
	}
}

func TestClassifyCall_DuplicateTagsCollapse(t *testing.T) {
	t.Parallel()

	tags := tagsFor(t, `open(a); open(b); handle.write(c)`)
	assert.Equal(t, map[string]struct{}{TagFileIO: {}}, tags)
}
