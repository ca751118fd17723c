package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_PreservesDocumentOrder(t *testing.T) {
	var s CodeStructure
	require.NoError(t, json.Unmarshal([]byte(`{"files":{"z.txt":"1","a.txt":"2","m.txt":"3"}}`), &s))
	require.Len(t, s.Files, 3)
	assert.Equal(t, []string{"z.txt", "a.txt", "m.txt"}, []string{s.Files[0].Path, s.Files[1].Path, s.Files[2].Path})
}

func TestFiles_DuplicateKeyLastWriteWins(t *testing.T) {
	var f Files
	require.NoError(t, json.Unmarshal([]byte(`{"a.txt":"first","b.txt":"b","a.txt":"second"}`), &f))
	assert.Equal(t, Files{{Path: "a.txt", Content: "second"}, {Path: "b.txt", Content: "b"}}, f)
}

func TestFiles_NullAndEmpty(t *testing.T) {
	var s CodeStructure
	require.NoError(t, json.Unmarshal([]byte(`{"files":null}`), &s))
	assert.Nil(t, s.Files)
	assert.True(t, s.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte(`{"files":{}}`), &s))
	assert.Empty(t, s.Files)
}

func TestFiles_RejectsNonObject(t *testing.T) {
	var f Files
	assert.Error(t, json.Unmarshal([]byte(`["a.txt"]`), &f))
	assert.Error(t, json.Unmarshal([]byte(`{"a.txt": 1}`), &f))
}

func TestFiles_MarshalKeepsOrder(t *testing.T) {
	out, err := json.Marshal(Files{{Path: "b", Content: "1"}, {Path: "a", Content: "2\n"}})
	require.NoError(t, err)
	assert.Equal(t, `{"b":"1","a":"2\n"}`, string(out))
}

func TestFiles_Get(t *testing.T) {
	f := Files{{Path: "a", Content: "x"}}
	got, ok := f.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "x", got)
	_, ok = f.Get("b")
	assert.False(t, ok)
}
