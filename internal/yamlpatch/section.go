package yamlpatch

import "regexp"

// State classifies the tracker position relative to a tracked section.
type State int

const (
	// Outside means the current line is not inside any tracked section.
	Outside State = iota

	// InSection means the current line belongs to an open tracked section.
	InSection
)

var (
	// A section opener is a list-item marker immediately followed by the
	// tag and a colon, with any leading whitespace: "  - eve-log:"
	sectionOpenRe = regexp.MustCompile(`^\s*-\s*([A-Za-z0-9_-]+)\s*:`)

	// A sibling list item inside a section: indented dash followed by an
	// identifier and a colon.
	siblingItemRe = regexp.MustCompile(`^\s+-\s*([A-Za-z0-9_-]+)\s*:`)

	// A bare list-item line that carries no identifiable key, e.g. "- :"
	// or a dash followed by junk. These defeat the heuristic.
	bareDashRe = regexp.MustCompile(`^\s*-\s*$|^\s*-\s*:`)
)

// Event describes what happened when the tracker consumed a line.
type Event struct {
	State State

	// Tag is the open section's tag when State is InSection.
	Tag string

	// Entered is true when this line opened a new section instance.
	Entered bool

	// Ambiguous is true when the line could not be classified cleanly and
	// the tracker fell back to keeping its previous state. Callers log a
	// warning; this is never fatal.
	Ambiguous bool
}

// Tracker is a line-at-a-time state machine that decides whether the scan
// position is inside one of the tracked sections. Section bodies are assumed
// non-empty and top-level keys unindented; both hold for the Suricata
// configuration dialect, not for general YAML.
type Tracker struct {
	tags    map[string]bool
	state   State
	current string
}

// NewTracker creates a tracker for the given section tags.
func NewTracker(tags ...string) *Tracker {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return &Tracker{tags: set, state: Outside}
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// Tag returns the tag of the currently open section, or "" when outside.
func (t *Tracker) Tag() string {
	if t.state != InSection {
		return ""
	}
	return t.current
}

// Advance consumes one line and returns the resulting event. Transition
// rules are evaluated in order:
//
//  1. an opener for a tracked tag enters that section (a new instance, even
//     when one with the same tag is already open),
//  2. a column-0 alphabetic character starts a new top-level key and closes
//     the section,
//  3. a sibling list item whose tag is not tracked closes the section,
//  4. otherwise the state is unchanged.
func (t *Tracker) Advance(line string) Event {
	// Rule 1: section opener for a tracked tag.
	if m := sectionOpenRe.FindStringSubmatch(line); m != nil {
		if t.tags[m[1]] {
			t.state = InSection
			t.current = m[1]
			return Event{State: InSection, Tag: m[1], Entered: true}
		}
	}

	if t.state == InSection {
		// Rule 2: unindented alphabetic character means a new top-level key.
		if len(line) > 0 && isAlpha(line[0]) {
			t.state = Outside
			t.current = ""
			return Event{State: Outside}
		}

		// Rule 3: sibling list item with an untracked tag.
		if m := siblingItemRe.FindStringSubmatch(line); m != nil {
			if !t.tags[m[1]] {
				t.state = Outside
				t.current = ""
				return Event{State: Outside}
			}
		}

		// Malformed list-item lines defeat the heuristic; keep the prior
		// state and let the caller log it.
		if bareDashRe.MatchString(line) {
			return Event{State: t.state, Tag: t.current, Ambiguous: true}
		}
	}

	// Rule 4: unchanged.
	return Event{State: t.state, Tag: t.current}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
