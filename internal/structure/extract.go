package structure

import "strings"

const (
	jsonFence  = "```json"
	closeFence = "```"
)

// Extract locates the JSON candidate inside a model response.
//
// A ```json fenced block wins; its interior is returned trimmed. Without a
// fence, everything from the first '{' to the last '}' is returned. That match
// is greedy and does not balance braces, so prose between two separate objects
// ends up inside the candidate.
func Extract(text string) (string, error) {
	if start := strings.Index(text, jsonFence); start != -1 {
		rest := text[start+len(jsonFence):]
		if end := strings.Index(rest, closeFence); end != -1 {
			rest = rest[:end]
		}
		candidate := strings.TrimSpace(rest)
		if candidate == "" {
			return "", ErrNoStructureFound
		}
		return candidate, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return "", ErrNoStructureFound
	}
	return text[start : end+1], nil
}
