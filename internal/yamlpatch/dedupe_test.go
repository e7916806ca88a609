package yamlpatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func docFromLines(lines ...string) *Document {
	return NewDocument([]byte(strings.Join(lines, "\n") + "\n"))
}

func TestDeduplicateKeysFirstWins(t *testing.T) {
	doc := docFromLines(
		"outputs:",
		"  - fast:",
		"      enabled: no",
		"      enabled: yes",
		"      filename: fast.log",
	)

	dropped := DeduplicateKeys(doc, []string{"fast"}, []string{"enabled"})

	assert.Equal(t, 1, dropped)
	assert.Equal(t, strings.Join([]string{
		"outputs:",
		"  - fast:",
		"      enabled: no",
		"      filename: fast.log",
	}, "\n")+"\n", doc.String())
}

func TestDeduplicateKeysPerInstance(t *testing.T) {
	// Two instances of the same tag each keep their own first occurrence.
	doc := docFromLines(
		"outputs:",
		"  - eve-log:",
		"      enabled: yes",
		"  - eve-log:",
		"      enabled: no",
	)

	dropped := DeduplicateKeys(doc, []string{"eve-log"}, []string{"enabled"})

	assert.Equal(t, 0, dropped)
	assert.Contains(t, doc.String(), "enabled: yes")
	assert.Contains(t, doc.String(), "enabled: no")
}

func TestDeduplicateKeysOutsideSectionUntouched(t *testing.T) {
	doc := docFromLines(
		"logging:",
		"  enabled: yes",
		"  enabled: no",
		"outputs:",
		"  - fast:",
		"      enabled: yes",
	)

	dropped := DeduplicateKeys(doc, []string{"fast"}, []string{"enabled"})

	// The duplicates live under an untracked key and must survive.
	assert.Equal(t, 0, dropped)
	assert.Equal(t, 6, doc.Len())
}

func TestDeduplicateKeysMultipleKeys(t *testing.T) {
	doc := docFromLines(
		"outputs:",
		"  - eve-log:",
		"      enabled: yes",
		"      filetype: regular",
		"      enabled: no",
		"      filetype: unix_stream",
		"      filename: eve.json",
	)

	dropped := DeduplicateKeys(doc, []string{"eve-log"}, []string{"enabled", "filetype"})

	assert.Equal(t, 2, dropped)
	s := doc.String()
	assert.Contains(t, s, "enabled: yes")
	assert.NotContains(t, s, "enabled: no")
	assert.Contains(t, s, "filetype: regular")
	assert.NotContains(t, s, "filetype: unix_stream")
}

func TestDeduplicateKeysSectionBoundary(t *testing.T) {
	// A duplicate appearing after the section closed is out of scope.
	doc := docFromLines(
		"outputs:",
		"  - fast:",
		"      enabled: yes",
		"logging:",
		"  enabled: yes",
	)

	dropped := DeduplicateKeys(doc, []string{"fast"}, []string{"enabled"})
	assert.Equal(t, 0, dropped)
	assert.Equal(t, 5, doc.Len())
}

func TestDeduplicateKeysNoChange(t *testing.T) {
	original := strings.Join([]string{
		"outputs:",
		"  - fast:",
		"      enabled: yes",
	}, "\n") + "\n"
	doc := NewDocument([]byte(original))

	dropped := DeduplicateKeys(doc, []string{"fast"}, []string{"enabled"})
	assert.Equal(t, 0, dropped)
	assert.Equal(t, original, doc.String())
}
