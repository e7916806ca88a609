package yamlpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairStripsTrailingWhitespace(t *testing.T) {
	doc := docFromLines(
		"outputs:   ",
		"  - fast:\t",
		"      enabled: yes",
	)

	r := NewRepairer()
	assert.True(t, r.Repair(doc))
	assert.Equal(t, "outputs:", doc.Line(0))
	assert.Equal(t, "  - fast:", doc.Line(1))
	assert.Equal(t, "      enabled: yes", doc.Line(2))
}

func TestRepairCollapsesSeparators(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"      enabled:: yes", "      enabled: yes"},
		{"      enabled: : yes", "      enabled: yes"},
		{"      enabled:::: yes", "      enabled: yes"},
		{"  - fast:: ", "  - fast:"},
		{"      enabled: yes", "      enabled: yes"},
	}

	r := NewRepairer()
	for _, tt := range tests {
		doc := docFromLines(tt.in)
		r.Repair(doc)
		assert.Equal(t, tt.want, doc.Line(0), "input %q", tt.in)
	}
}

func TestRepairKeepsColonValues(t *testing.T) {
	// Values that themselves start with colons are not separator damage.
	tests := []string{
		"  host: ::1",
		"  listen: :::8080",
		"  pattern: \"a::b\"",
	}

	r := NewRepairer()
	for _, line := range tests {
		doc := docFromLines(line)
		r.Repair(doc)
		assert.Equal(t, line, doc.Line(0))
	}
}

func TestRepairReindentsOverIndentedKeys(t *testing.T) {
	doc := docFromLines(
		"outputs:",
		"  - fast:",
		"          enabled: yes",
		"      filename: fast.log",
	)

	r := NewRepairer()
	assert.True(t, r.Repair(doc))
	assert.Equal(t, "      enabled: yes", doc.Line(2))
	// Already at the canonical width: untouched.
	assert.Equal(t, "      filename: fast.log", doc.Line(3))
}

func TestRepairLeavesShallowKeysAlone(t *testing.T) {
	// Keys at or below the canonical indentation are never re-indented;
	// they may legitimately belong to a different nesting level.
	doc := docFromLines(
		"  enabled: yes",
		"enabled: no",
	)

	r := NewRepairer()
	assert.False(t, r.Repair(doc))
}

func TestRepairIgnoresUnlistedKeys(t *testing.T) {
	doc := docFromLines(
		"            cluster-id: 99",
	)

	r := NewRepairer()
	assert.False(t, r.Repair(doc))
	assert.Equal(t, "            cluster-id: 99", doc.Line(0))
}

func TestRepairFixesCommentedItemIndent(t *testing.T) {
	doc := docFromLines(
		"outputs:",
		"  # alert output",
		"      - fast:",
		"      enabled: yes",
	)

	r := NewRepairer()
	assert.True(t, r.Repair(doc))
	assert.Equal(t, "  - fast:", doc.Line(2))
}

func TestRepairAcceptsItemIndentWithinTolerance(t *testing.T) {
	for _, line := range []string{"  - fast:", "   - fast:", "    - fast:"} {
		doc := docFromLines(
			"  # alert output",
			line,
		)
		r := NewRepairer()
		r.Repair(doc)
		assert.Equal(t, line, doc.Line(1), "indent of %q is within tolerance", line)
	}
}

func TestRepairItemIndentNeedsCommentAbove(t *testing.T) {
	// Without an adjacent comment the list item is left alone, whatever
	// its indentation.
	doc := docFromLines(
		"outputs:",
		"      - fast:",
	)

	r := NewRepairer()
	assert.False(t, r.Repair(doc))
	assert.Equal(t, "      - fast:", doc.Line(1))
}

func TestRepairIdempotent(t *testing.T) {
	doc := docFromLines(
		"outputs:   ",
		"  # alert output",
		"      - fast:",
		"          enabled:: yes",
	)

	r := NewRepairer()
	assert.True(t, r.Repair(doc))
	after := doc.String()

	assert.False(t, r.Repair(doc))
	assert.Equal(t, after, doc.String())
}
