package summary

import "strings"

// ExtractOnePoint pulls the one-line takeaway from a generated body by
// locating the section titled with marker. It accepts both an inline
// form ("一言でいうと: ...") and a heading followed by the content on
// subsequent lines. Returns "" when the marker is absent.
func ExtractOnePoint(body, marker string) string {
	if marker == "" {
		return ""
	}

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		idx := strings.Index(line, marker)
		if idx < 0 {
			continue
		}

		// Inline form: text after the marker on the same line.
		rest := strings.Trim(line[idx+len(marker):], " \t:：】)」")
		if rest != "" {
			return rest
		}

		// Heading form: the following non-empty lines up to the next
		// heading or blank gap, collapsed to one line.
		var parts []string
		for _, next := range lines[i+1:] {
			trimmed := strings.TrimSpace(next)
			if trimmed == "" {
				if len(parts) > 0 {
					break
				}
				continue
			}
			if strings.HasPrefix(trimmed, "#") {
				break
			}
			parts = append(parts, trimmed)
		}
		return strings.Join(parts, " ")
	}
	return ""
}
