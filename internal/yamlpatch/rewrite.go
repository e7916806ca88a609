package yamlpatch

import (
	"regexp"
	"strings"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/logging"
)

// Rewriter rewrites the value of an existing key inside tracked sections
// without altering document structure. By default it never synthesizes new
// structure: a key that does not exist is reported as a no-op rather than
// inserted, so a rewrite can never introduce fresh damage and repeated runs
// converge. Set AllowInsert to relax that policy.
type Rewriter struct {
	// AllowInsert permits inserting the key into the first matching section
	// when no instance contains it.
	AllowInsert bool

	log *logging.Logger
}

// NewRewriter returns a rewriter with the conservative default policy.
func NewRewriter() *Rewriter {
	return &Rewriter{log: logging.WithComponent("rewrite")}
}

// Rewrite replaces the value of key inside every instance of the section
// with the given tag, in a single left-to-right pass. Indentation and the
// key token are preserved; only the value portion changes. It returns the
// number of lines rewritten; zero with AllowInsert unset means the document
// is unchanged.
func (w *Rewriter) Rewrite(doc *Document, tag, key, value string) int {
	keyRe := regexp.MustCompile(`^(\s*(?:-\s+)?)(` + regexp.QuoteMeta(key) + `)\s*:`)

	tracker := NewTracker(tag)
	rewritten := 0
	firstOpener := -1

	for i := 0; i < doc.Len(); i++ {
		line := doc.Line(i)
		ev := tracker.Advance(line)
		if ev.Ambiguous {
			w.log.Warn("ambiguous line kept as-is", "line", i+1, "text", line)
		}
		if ev.State != InSection {
			continue
		}
		if ev.Entered && firstOpener < 0 {
			firstOpener = i
		}

		m := keyRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		doc.SetLine(i, m[1]+m[2]+": "+value)
		rewritten++
	}

	if rewritten == 0 {
		if w.AllowInsert && firstOpener >= 0 {
			indent := strings.Repeat(" ", countIndent(doc.Line(firstOpener))+4)
			lines := doc.Lines()
			inserted := append(lines[:firstOpener+1:firstOpener+1], indent+key+": "+value)
			inserted = append(inserted, lines[firstOpener+1:]...)
			doc.SetLines(inserted)
			w.log.Info("inserted missing key", "section", tag, "key", key)
			return 1
		}
		w.log.Info("key not present, no-op", "section", tag, "key", key)
	}
	return rewritten
}

// RewriteAnywhere replaces the value of every line whose key token equals
// key, regardless of section. It is used for keys that are unique by
// construction in the dialect, such as HOME_NET under address-groups.
func (w *Rewriter) RewriteAnywhere(doc *Document, key, value string) int {
	keyRe := regexp.MustCompile(`^(\s*)(` + regexp.QuoteMeta(key) + `)\s*:`)

	rewritten := 0
	for i := 0; i < doc.Len(); i++ {
		m := keyRe.FindStringSubmatch(doc.Line(i))
		if m == nil {
			continue
		}
		doc.SetLine(i, m[1]+m[2]+": "+value)
		rewritten++
	}

	if rewritten == 0 {
		w.log.Info("key not present, no-op", "key", key)
	}
	return rewritten
}
