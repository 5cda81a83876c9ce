package timeline

import "strings"

// Highlight marks rows whose title contains the query, case-insensitively.
// An empty query marks nothing. The match runs against the precomputed
// title key, so layout is never re-run; the call is idempotent and O(rows).
func Highlight(rows []Row, query string) {
	needle := strings.ToLower(query)
	for i := range rows {
		rows[i].Matched = needle != "" && strings.Contains(rows[i].TitleKey, needle)
	}
}
