package watch

import (
	"sort"
	"strings"
)

// mergeContext concatenates left and right context entries and
// deduplicates them by structural equality (same keys, same values).
func mergeContext(left, right []map[string]string) []map[string]string {
	var merged []map[string]string
	seen := make(map[string]bool)
	for _, entry := range append(append([]map[string]string{}, left...), right...) {
		if len(entry) == 0 {
			continue
		}
		key := contextKey(entry)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, entry)
	}
	return merged
}

// contextKey produces a stable identity for a context entry so
// structurally-equal maps compare equal regardless of iteration order.
func contextKey(entry map[string]string) string {
	keys := make([]string, 0, len(entry))
	for k := range entry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(entry[k])
		b.WriteByte(';')
	}
	return b.String()
}
