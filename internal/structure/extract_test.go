package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_FencedBlockIgnoresSurroundingProse(t *testing.T) {
	text := "Sure! Here is the structure:\n```json\n  {\"folders\": [\"src\"]}  \n```\nLet me know {if} you need more."
	got, err := Extract(text)
	require.NoError(t, err)
	assert.Equal(t, `{"folders": ["src"]}`, got)
}

func TestExtract_FenceWinsOverEarlierBraces(t *testing.T) {
	text := "config {draft}\n```json\n{\"commands\": []}\n```"
	got, err := Extract(text)
	require.NoError(t, err)
	assert.Equal(t, `{"commands": []}`, got)
}

func TestExtract_UnclosedFenceTakesRemainder(t *testing.T) {
	got, err := Extract("```json\n{\"folders\": []}\n")
	require.NoError(t, err)
	assert.Equal(t, `{"folders": []}`, got)
}

func TestExtract_EmptyFenceIsNotFound(t *testing.T) {
	_, err := Extract("```json\n   \n``` and {\"folders\": []}")
	assert.ErrorIs(t, err, ErrNoStructureFound)
}

func TestExtract_SingleObjectWithoutFence(t *testing.T) {
	text := `The answer is {"files": {"a.txt": "x"}} as requested.`
	got, err := Extract(text)
	require.NoError(t, err)
	assert.Equal(t, `{"files": {"a.txt": "x"}}`, got)
}

// Two independent objects are captured as one candidate together with the
// prose between them. Parsing such a candidate is expected to fail.
func TestExtract_GreedyBraceMatchSpansSeparateObjects(t *testing.T) {
	text := `first {"folders": ["a"]} and then {"folders": ["b"]} done`
	got, err := Extract(text)
	require.NoError(t, err)
	assert.Equal(t, `{"folders": ["a"]} and then {"folders": ["b"]}`, got)

	_, err = Parse(got)
	var malformed *MalformedError
	assert.ErrorAs(t, err, &malformed)
}

func TestExtract_NoBraces(t *testing.T) {
	_, err := Extract("I could not generate this.")
	assert.ErrorIs(t, err, ErrNoStructureFound)
}

func TestExtract_ClosingBraceBeforeOpening(t *testing.T) {
	_, err := Extract("} nothing here {")
	assert.ErrorIs(t, err, ErrNoStructureFound)
}

func TestExtract_EmptyInput(t *testing.T) {
	_, err := Extract("")
	assert.ErrorIs(t, err, ErrNoStructureFound)
}
