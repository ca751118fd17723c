package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CodeStructure is the schema a code-generation response is expected to carry.
// All members are optional; an empty structure is a no-op.
type CodeStructure struct {
	Folders  []string `json:"folders,omitempty"`
	Files    Files    `json:"files,omitempty"`
	Commands []string `json:"commands,omitempty"`
}

// IsEmpty reports whether applying the structure would do nothing.
func (s *CodeStructure) IsEmpty() bool {
	return s == nil || (len(s.Folders) == 0 && len(s.Files) == 0 && len(s.Commands) == 0)
}

// FileEntry is a single path -> content pair.
type FileEntry struct {
	Path    string
	Content string
}

// Files is the "files" object of a CodeStructure, kept in document order.
// A path that appears twice keeps its first position and takes the last content.
type Files []FileEntry

// Get returns the content stored for path.
func (f Files) Get(path string) (string, bool) {
	for _, e := range f {
		if e.Path == path {
			return e.Content, true
		}
	}
	return "", false
}

func (f *Files) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil { // null
		*f = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("files: expected an object of path to content, got %v", tok)
	}

	var out Files
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		path, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("files: unexpected key %v", keyTok)
		}
		var content string
		if err := dec.Decode(&content); err != nil {
			return fmt.Errorf("files[%q]: %w", path, err)
		}
		if i, seen := index[path]; seen {
			out[i].Content = content
			continue
		}
		index[path] = len(out)
		out = append(out, FileEntry{Path: path, Content: content})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return err
	}
	*f = out
	return nil
}

func (f Files) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Path)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Content)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
