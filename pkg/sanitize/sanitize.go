// Package sanitize strips incidental markdown formatting from model output
// so it can be treated as an executable command string.
package sanitize

import "strings"

// languagePrefixes are shell language tags some models prepend to a command
// even when asked for the bare command.
var languagePrefixes = []string{"sh ", "bash ", "shell "}

// Command strips surrounding whitespace, markdown code fences or inline code
// marks, and a leading shell language tag from raw model output. Fence and
// backtick stripping happens before prefix stripping, since the language tag
// may only be exposed once the fence is removed. Command is idempotent.
func Command(raw string) string {
	cleaned := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```"):
		// Keep only the interior of the fenced block; the opening fence line
		// carries the language tag and is discarded with the fences.
		start := strings.Index(cleaned, "\n")
		end := strings.LastIndex(cleaned, "\n")
		if start >= 0 && end > start {
			cleaned = strings.TrimSpace(cleaned[start+1 : end])
		}
	case strings.HasPrefix(cleaned, "`") && strings.HasSuffix(cleaned, "`") && len(cleaned) >= 2:
		cleaned = strings.TrimSpace(cleaned[1 : len(cleaned)-1])
	}

	for _, prefix := range languagePrefixes {
		if strings.HasPrefix(cleaned, prefix) {
			cleaned = cleaned[len(prefix):]
			break
		}
	}

	return strings.TrimSpace(cleaned)
}
