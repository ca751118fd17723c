package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionalRequirements_EmbedsInput(t *testing.T) {
	p := FunctionalRequirements("an inventory tracker for 100% of our stock")
	assert.Contains(t, p, "User Input: an inventory tracker for 100% of our stock")
	assert.NotContains(t, p, "%!")
}

func TestTechnicalRequirements_EmbedsFunctional(t *testing.T) {
	p := TechnicalRequirements("FUNC DOC")
	assert.Contains(t, p, "Functional Requirements Input:\nFUNC DOC")
}

func TestCodeGeneration_AsksForFencedJSON(t *testing.T) {
	p := CodeGeneration("F", "T", Phases[1])
	assert.Contains(t, p, "Current Phase: Phase 2")
	assert.Equal(t, 1, strings.Count(p, "```json"))
	assert.Contains(t, p, `"folders"`)
	assert.NotContains(t, p, "%!")
}
