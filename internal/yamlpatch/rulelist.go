package yamlpatch

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/logging"
)

// RuleFileSuffix is the fixed suffix of rule files.
const RuleFileSuffix = ".rules"

// DefaultRuleFilesKey is the managed top-level key.
const DefaultRuleFilesKey = "rule-files"

// SyncResult reports what SyncRuleFiles did to the document.
type SyncResult struct {
	// Entries are the rule-file basenames written, in order.
	Entries []string

	// Uncommented is true when the managed key was found only in
	// commented-out form and restored in place.
	Uncommented bool

	// CreatedKey is true when the key was absent entirely and appended at
	// the end of the document (the fallback path).
	CreatedKey bool

	// Removed is the number of pre-existing list lines dropped.
	Removed int
}

// ruleListEntryRe matches a list entry (or a commented-out one) inside the
// managed block.
var ruleListEntryRe = regexp.MustCompile(`^\s*#?\s*-\s+\S`)

// ListRuleFiles enumerates the regular files with the rule suffix directly
// inside dir, sorted lexicographically by basename.
func ListRuleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), RuleFileSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyRuleSet, dir)
	}
	return names, nil
}

// SyncRuleFiles regenerates the managed rule-files list from the contents
// of dir. Every pre-existing entry under any occurrence of the managed key
// is removed and the occurrences are merged into the first, which then gets
// one entry per rule file. When the key exists only commented out it is
// uncommented in place; when it is missing entirely the key and its list
// are appended at the end of the document instead of aborting. Running the
// sync twice with an unchanged directory is byte-identical to running it
// once.
func SyncRuleFiles(doc *Document, dir, key string) (*SyncResult, error) {
	log := logging.WithComponent("rules")
	if key == "" {
		key = DefaultRuleFilesKey
	}

	names, err := ListRuleFiles(dir)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{Entries: names}

	keyRe := regexp.MustCompile(`^` + regexp.QuoteMeta(key) + `\s*:\s*$`)
	commentedKeyRe := regexp.MustCompile(`^#+\s*` + regexp.QuoteMeta(key) + `\s*:\s*$`)

	lines := doc.Lines()

	// The key may be present only in commented-out form; restore it first so
	// the removal pass below sees it as a live block.
	hasLive := false
	for _, line := range lines {
		if keyRe.MatchString(line) {
			hasLive = true
			break
		}
	}
	if !hasLive {
		for i, line := range lines {
			if commentedKeyRe.MatchString(line) {
				lines[i] = key + ":"
				result.Uncommented = true
				log.Warn("managed key was commented out, restoring", "key", key, "line", i+1)
				break
			}
		}
	}

	// Drop every list line belonging to the key's block, wherever the block
	// occurs, and every occurrence of the key line except the first. The key
	// may legitimately recur; all occurrences are merged into the first.
	var kept []string
	firstKeyIdx := -1
	inBlock := false
	for _, line := range lines {
		if keyRe.MatchString(line) {
			inBlock = true
			if firstKeyIdx < 0 {
				firstKeyIdx = len(kept)
				kept = append(kept, line)
			} else {
				result.Removed++
			}
			continue
		}
		if inBlock {
			if ruleListEntryRe.MatchString(line) {
				result.Removed++
				continue
			}
			// A plain comment does not terminate a YAML sequence; keep it
			// and stay in the block so entries after it are still dropped.
			if trimmed := strings.TrimSpace(line); trimmed != "" && strings.HasPrefix(trimmed, "#") {
				kept = append(kept, line)
				continue
			}
			// Anything else ends the block: a new top-level key or a
			// blank line.
			inBlock = false
		}
		kept = append(kept, line)
	}

	entryLines := make([]string, 0, len(names))
	for _, name := range names {
		entryLines = append(entryLines, "  - "+name)
	}

	if firstKeyIdx < 0 {
		// Fallback: append the key and its list at the end of the document.
		log.Warn("managed key missing, appending at end of document", "key", key)
		result.CreatedKey = true
		kept = append(kept, key+":")
		kept = append(kept, entryLines...)
		doc.SetLines(kept)
		return result, nil
	}

	out := make([]string, 0, len(kept)+len(entryLines))
	out = append(out, kept[:firstKeyIdx+1]...)
	out = append(out, entryLines...)
	out = append(out, kept[firstKeyIdx+1:]...)
	doc.SetLines(out)

	log.Info("rule list synchronized", "key", key, "entries", len(names), "removed", result.Removed)
	return result, nil
}

// liveEntryRe matches an uncommented list entry and captures its value.
var liveEntryRe = regexp.MustCompile(`^\s*-\s+(\S+)`)

// ManagedEntries returns the live entries currently under the managed key,
// in document order. The key match is exact: a key that merely shares the
// prefix (e.g. "rule-files-extra") does not open the block. Commented-out
// entries are not reported; plain comments inside the block are skipped
// without ending it.
func ManagedEntries(doc *Document, key string) []string {
	if key == "" {
		key = DefaultRuleFilesKey
	}
	keyRe := regexp.MustCompile(`^` + regexp.QuoteMeta(key) + `\s*:\s*$`)

	var entries []string
	inBlock := false
	for i := 0; i < doc.Len(); i++ {
		line := doc.Line(i)
		if keyRe.MatchString(line) {
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}
		if m := liveEntryRe.FindStringSubmatch(line); m != nil {
			entries = append(entries, m[1])
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" && strings.HasPrefix(trimmed, "#") {
			continue
		}
		inBlock = false
	}
	return entries
}
