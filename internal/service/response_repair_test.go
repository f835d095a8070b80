package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFencedJSONRepairer(t *testing.T) {
	repairer := NewFencedJSONRepairer()

	t.Run("PlainJSONPassesThrough", func(t *testing.T) {
		out, err := repairer.Repair(`{"title": "Go Quiz"}`)
		require.NoError(t, err)
		assert.Equal(t, `{"title": "Go Quiz"}`, out)
	})

	t.Run("StripsMarkdownFence", func(t *testing.T) {
		raw := "```json\n{\"title\": \"Go Quiz\"}\n```"
		out, err := repairer.Repair(raw)
		require.NoError(t, err)
		assert.Equal(t, `{"title": "Go Quiz"}`, out)
	})

	t.Run("StripsFenceWithSurroundingWhitespace", func(t *testing.T) {
		raw := "  \n```json\n{\"title\": \"Go Quiz\"}\n```\n  "
		out, err := repairer.Repair(raw)
		require.NoError(t, err)
		assert.Equal(t, `{"title": "Go Quiz"}`, out)
	})

	t.Run("TruncatesToLastClosingBrace", func(t *testing.T) {
		raw := `{"title": "Go Quiz", "questions": [{"text": "Q1"},`
		out, err := repairer.Repair(raw)
		require.NoError(t, err)
		assert.Equal(t, `{"title": "Go Quiz", "questions": [{"text": "Q1"}`, out)
		assert.True(t, strings.HasSuffix(out, "}"))
	})

	t.Run("TruncatedTailAfterBraceIsDropped", func(t *testing.T) {
		raw := `{"title": "Go Quiz"} trailing garbage`
		out, err := repairer.Repair(raw)
		require.NoError(t, err)
		assert.Equal(t, `{"title": "Go Quiz"}`, out)
	})

	t.Run("NoClosingBraceFails", func(t *testing.T) {
		_, err := repairer.Repair(`{"title": "Go Quiz", "questions": [`)
		require.Error(t, err)

		var gerr *GenerationError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, 500, gerr.Status)
		assert.Equal(t, "Incomplete JSON response from AI", gerr.Message)
		assert.Contains(t, gerr.Details, "truncated")
	})

	t.Run("LongUnrepairableResponseIsSnipped", func(t *testing.T) {
		raw := "[" + strings.Repeat("a", 600)
		_, err := repairer.Repair(raw)
		require.Error(t, err)

		var gerr *GenerationError
		require.ErrorAs(t, err, &gerr)
		assert.Contains(t, gerr.Details, "...")
		assert.NotContains(t, gerr.Details, strings.Repeat("a", 600))
	})
}
