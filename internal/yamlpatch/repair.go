package yamlpatch

import (
	"regexp"
	"strings"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/logging"
)

// Default geometry of the Suricata configuration dialect: output section
// openers sit at two spaces ("  - fast:"), their keys at six.
const (
	defaultKeyIndent  = 6
	defaultItemIndent = 2
)

// defaultRepairKeys are the keys that earlier sed-style edits are known to
// leave over-indented inside output sections.
var defaultRepairKeys = []string{"file", "enabled", "append", "filetype"}

// commentedItemTags are list items whose indentation drifts when the comment
// line above them is edited; see fixCommentedItemIndent.
var defaultItemTags = []string{"fast"}

// Repairer normalizes indentation drift and malformed key/colon sequences
// produced by earlier edits or pre-existing damage. Fixes are independent
// but order-sensitive; Repair applies them all and reports whether anything
// changed.
type Repairer struct {
	// KeyIndent is the canonical indentation for keys inside output sections.
	KeyIndent int

	// ItemIndent is the canonical indentation for output list items.
	ItemIndent int

	// Keys is the allow-list of key names subject to re-indentation.
	Keys []string

	// ItemTags are the list-item tags subject to the comment-adjacency fix.
	ItemTags []string

	log *logging.Logger
}

// NewRepairer returns a repairer configured for the Suricata dialect.
func NewRepairer() *Repairer {
	return &Repairer{
		KeyIndent:  defaultKeyIndent,
		ItemIndent: defaultItemIndent,
		Keys:       defaultRepairKeys,
		ItemTags:   defaultItemTags,
		log:        logging.WithComponent("repair"),
	}
}

// Repair runs all fixes in order and reports whether any line changed.
func (r *Repairer) Repair(doc *Document) bool {
	fixed := false
	if r.stripTrailingWhitespace(doc) {
		r.log.Debug("stripped trailing whitespace")
		fixed = true
	}
	if r.collapseSeparators(doc) {
		r.log.Debug("collapsed malformed separators")
		fixed = true
	}
	if r.reindentKeys(doc) {
		r.log.Debug("re-indented over-indented keys")
		fixed = true
	}
	if r.fixCommentedItemIndent(doc) {
		r.log.Debug("clamped comment-adjacent list item indentation")
		fixed = true
	}
	return fixed
}

// stripTrailingWhitespace removes trailing spaces and tabs from all lines.
func (r *Repairer) stripTrailingWhitespace(doc *Document) bool {
	changed := false
	for i := 0; i < doc.Len(); i++ {
		line := doc.Line(i)
		trimmed := strings.TrimRight(line, " \t")
		if trimmed != line {
			doc.SetLine(i, trimmed)
			changed = true
		}
	}
	return changed
}

// doubledSepRe matches a key token followed by a run of two or more colons
// in separator position: "enabled:: yes", "enabled: : yes". The run must be
// followed by whitespace or end of line so a value that itself starts with
// colons, like an IPv6 literal "host: ::1", is never touched.
var doubledSepRe = regexp.MustCompile(`^([ \t]*(?:-[ \t]+)?[A-Za-z0-9_.-]+)[ \t]*:(?:[ \t]*:)+(?:[ \t]+|$)`)

// collapseSeparators rewrites doubled or malformed key/colon sequences to a
// single canonical "key: " separator.
func (r *Repairer) collapseSeparators(doc *Document) bool {
	changed := false
	for i := 0; i < doc.Len(); i++ {
		line := doc.Line(i)
		fixed := doubledSepRe.ReplaceAllString(line, "$1: ")
		if fixed != line {
			// A line that was pure separator damage ("key:: ") ends up with a
			// trailing space; drop it.
			fixed = strings.TrimRight(fixed, " ")
			doc.SetLine(i, fixed)
			changed = true
		}
	}
	return changed
}

// reindentKeys clamps allow-listed keys back to the canonical indentation
// when they are over-indented. This is a heuristic threshold, not a parse:
// keys at or below the canonical width are never touched.
func (r *Repairer) reindentKeys(doc *Document) bool {
	keySet := make(map[string]bool, len(r.Keys))
	for _, k := range r.Keys {
		keySet[k] = true
	}

	changed := false
	for i := 0; i < doc.Len(); i++ {
		line := doc.Line(i)
		m := keyLineRe.FindStringSubmatch(line)
		if m == nil || !keySet[m[1]] {
			continue
		}
		indent := countIndent(line)
		if indent <= r.KeyIndent {
			continue
		}
		doc.SetLine(i, strings.Repeat(" ", r.KeyIndent)+strings.TrimLeft(line, " \t"))
		changed = true
	}
	return changed
}

// fixCommentedItemIndent handles a known historical artifact: when the
// comment line above an output list item was edited, the item's indentation
// drifted. A comment immediately preceding one of the configured list items
// forces the item back to the canonical width if it falls outside the
// acceptable [ItemIndent, ItemIndent+2] range.
func (r *Repairer) fixCommentedItemIndent(doc *Document) bool {
	tagSet := make(map[string]bool, len(r.ItemTags))
	for _, t := range r.ItemTags {
		tagSet[t] = true
	}

	changed := false
	for i := 1; i < doc.Len(); i++ {
		prev := strings.TrimSpace(doc.Line(i - 1))
		if !strings.HasPrefix(prev, "#") {
			continue
		}
		line := doc.Line(i)
		m := sectionOpenRe.FindStringSubmatch(line)
		if m == nil || !tagSet[m[1]] {
			continue
		}
		indent := countIndent(line)
		if indent >= r.ItemIndent && indent <= r.ItemIndent+2 {
			continue
		}
		doc.SetLine(i, strings.Repeat(" ", r.ItemIndent)+strings.TrimLeft(line, " \t"))
		changed = true
	}
	return changed
}

// countIndent returns the number of leading spaces; a tab counts as one
// column, which is good enough for a dialect that never uses tabs.
func countIndent(line string) int {
	n := 0
	for _, c := range line {
		if c != ' ' && c != '\t' {
			break
		}
		n++
	}
	return n
}
