package yamlpatch

import (
	"regexp"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/logging"
)

// keyLineRe extracts the key token of an indented "key: value" line.
var keyLineRe = regexp.MustCompile(`^\s*([A-Za-z0-9_.-]+)\s*:`)

// DeduplicateKeys removes repeated occurrences of the tracked keys within
// each instance of the tracked sections, keeping the first occurrence found
// scanning top to bottom. Seen-state resets whenever a new section instance
// opens, so two sections with the same tag are deduplicated independently.
// It reports the number of lines dropped.
func DeduplicateKeys(doc *Document, tags []string, keys []string) int {
	log := logging.WithComponent("dedupe")

	keySet := make(map[string]bool, len(keys))
	for _, k := range keys {
		keySet[k] = true
	}

	tracker := NewTracker(tags...)
	seen := make(map[string]bool)

	var out []string
	dropped := 0

	for i, line := range doc.Lines() {
		ev := tracker.Advance(line)
		if ev.Entered {
			// New section instance: forget what the previous one had.
			seen = make(map[string]bool)
			out = append(out, line)
			continue
		}
		if ev.Ambiguous {
			log.Warn("ambiguous line kept as-is", "line", i+1, "text", line)
		}

		if ev.State == InSection {
			if m := keyLineRe.FindStringSubmatch(line); m != nil && keySet[m[1]] {
				if seen[m[1]] {
					log.Info("dropping duplicate key", "key", m[1], "section", ev.Tag, "line", i+1)
					dropped++
					continue
				}
				seen[m[1]] = true
			}
		}

		out = append(out, line)
	}

	if dropped > 0 {
		doc.SetLines(out)
	}
	return dropped
}
