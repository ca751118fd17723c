package structure

import (
	"encoding/json"
	"strings"
)

// repairState is threaded through the line fold. inString approximates
// whether a multi-line string literal is still open after the previous line.
type repairState struct {
	inString bool
	lines    []string
}

// Repair returns candidate unchanged when it is already valid JSON. Otherwise
// it makes one line-oriented pass that drops blank and // comment lines and
// double-quotes bare object keys, then validates the result.
//
// This is a cleanup heuristic for common model mistakes, not a tolerant parser.
func Repair(candidate string) (string, error) {
	if err := checkJSON(candidate); err == nil {
		return candidate, nil
	}

	state := repairState{}
	for _, line := range strings.Split(strings.TrimSpace(candidate), "\n") {
		state = state.step(line)
	}
	repaired := strings.Join(state.lines, "\n")

	if err := checkJSON(repaired); err != nil {
		return "", &MalformedError{Err: err}
	}
	return repaired, nil
}

func (s repairState) step(raw string) repairState {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "//") {
		return s
	}

	out := line
	if !s.inString {
		if idx := strings.Index(line, ":"); idx != -1 {
			if key, ok := quoteKey(line[:idx]); ok {
				out = key + ":" + line[idx+1:]
			}
		}
	}
	s.lines = append(s.lines, out)

	quotes := strings.Count(line, `"`) - strings.Count(line, `\"`)
	if quotes%2 == 1 {
		s.inString = !s.inString
	}
	return s
}

// quoteKey double-quotes the key portion of a "key: value" line. Structural
// characters in front of the key ("{", "[", ",") are kept outside the quotes.
// It reports false when the portion is already quoted or is not a bare key.
func quoteKey(portion string) (string, bool) {
	key := strings.TrimSpace(portion)
	if len(key) >= 2 && strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) {
		return "", false
	}

	name := strings.TrimLeft(key, "{[, \t")
	prefix := key[:len(key)-len(name)]
	name = strings.TrimSpace(name)
	if len(name) >= 2 && strings.HasPrefix(name, "'") && strings.HasSuffix(name, "'") {
		name = name[1 : len(name)-1]
	}
	if name == "" || strings.Contains(name, `"`) {
		return "", false
	}
	return prefix + `"` + name + `"`, true
}

func checkJSON(s string) error {
	var v json.RawMessage
	return json.Unmarshal([]byte(s), &v)
}
