package app

import "strings"

// ParseSkills splits a comma-separated skills field. Segments are trimmed and
// empty ones dropped; order and duplicates are kept.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// targetJobID maps an empty selection to nil so it is sent as JSON null.
func targetJobID(selected string) *string {
	if selected == "" {
		return nil
	}
	return &selected
}
