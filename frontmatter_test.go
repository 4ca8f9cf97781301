package proposalint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ExtractPreamble(t *testing.T) {
	t.Run("should extract the block between the fences", func(t *testing.T) {
		doc := "---\nproposal: 1\ntitle: Test\n---\n\n# Body\n"
		node, err := ExtractPreamble(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, KindPreamble, node.Kind)
		assert.Equal(t, "proposal: 1\ntitle: Test\n", node.Raw)
		assert.Equal(t, 2, node.Pos.Line)
	})

	t.Run("should handle CRLF line endings", func(t *testing.T) {
		doc := "---\r\nproposal: 1\r\n---\r\nbody\r\n"
		node, err := ExtractPreamble(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, "proposal: 1\n", node.Raw)
	})

	t.Run("should return ErrNoPreamble when the document does not open with a fence", func(t *testing.T) {
		_, err := ExtractPreamble(strings.NewReader("# Title\n\n---\nnot front matter\n---\n"))
		assert.ErrorIs(t, err, ErrNoPreamble)
	})

	t.Run("should return ErrNoPreamble for an empty document", func(t *testing.T) {
		_, err := ExtractPreamble(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrNoPreamble)
	})

	t.Run("should return ErrUnterminatedPreamble when the fence never closes", func(t *testing.T) {
		_, err := ExtractPreamble(strings.NewReader("---\nproposal: 1\ntitle: Test\n"))
		assert.ErrorIs(t, err, ErrUnterminatedPreamble)
	})

	t.Run("should accept an empty preamble block", func(t *testing.T) {
		node, err := ExtractPreamble(strings.NewReader("---\n---\nbody\n"))
		require.NoError(t, err)
		assert.Equal(t, "", node.Raw)
	})

	t.Run("should feed the linter end to end", func(t *testing.T) {
		doc := `---
proposal: 1
title: Test proposal
author: Jane Doe <jane@example.com> (@janedoe)
status: Draft
category: Core
created: 2024-01-15
---

# Test proposal
`
		node, err := ExtractPreamble(strings.NewReader(doc))
		require.NoError(t, err)

		collector := &Collector{}
		NewLinter(WithClock(testClock)).Lint(node, collector)
		assert.Empty(t, collector.Diagnostics)
	})
}
