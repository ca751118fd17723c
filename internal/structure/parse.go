package structure

import (
	"encoding/json"

	"codegen/internal/types"
)

// Parse decodes a candidate into a CodeStructure. Candidates that are not
// syntactically valid JSON go through Repair first; valid JSON of the wrong
// shape is reported as malformed without repair.
func Parse(candidate string) (*types.CodeStructure, error) {
	if err := checkJSON(candidate); err != nil {
		repaired, rerr := Repair(candidate)
		if rerr != nil {
			return nil, rerr
		}
		candidate = repaired
	}

	var s types.CodeStructure
	if err := json.Unmarshal([]byte(candidate), &s); err != nil {
		return nil, &MalformedError{Err: err}
	}
	return &s, nil
}

// ParseResponse runs extraction and parsing on a raw model response.
func ParseResponse(raw string) (*types.CodeStructure, error) {
	candidate, err := Extract(raw)
	if err != nil {
		return nil, err
	}
	return Parse(candidate)
}
