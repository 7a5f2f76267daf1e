package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mic006/termui/input/event"
	"github.com/mic006/termui/input/keydef"
)

func TestBuildFullCatalog(t *testing.T) {
	root, err := Build(keydef.Catalog)
	require.NoError(t, err)
	require.NotNil(t, root)

	// only the two lead-in bytes of the catalog exist at the root
	assert.Len(t, root.children, 2)
	assert.Contains(t, root.children, byte('O'))
	assert.Contains(t, root.children, byte('['))
}

func TestBuildErrors(t *testing.T) {
	tcs := []struct {
		name     string
		defs     []keydef.KeyDefinition
		expected error
	}{
		{
			name:     "empty catalog",
			defs:     nil,
			expected: keydef.ErrEmptyCatalog,
		},
		{
			name: "empty sequence",
			defs: []keydef.KeyDefinition{
				{Sequence: "", Event: event.ArrowUp},
			},
			expected: keydef.ErrEmptySequence,
		},
		{
			name: "duplicate sequence, different events",
			defs: []keydef.KeyDefinition{
				{Sequence: "OA", Event: event.ArrowUp},
				{Sequence: "OA", Event: event.ArrowDown},
			},
			expected: keydef.ErrDuplicateSequence,
		},
		{
			name: "duplicate sequence, same event",
			defs: []keydef.KeyDefinition{
				{Sequence: "[5~", Event: event.PageUp},
				{Sequence: "[2~", Event: event.Insert},
				{Sequence: "[5~", Event: event.PageUp},
			},
			expected: keydef.ErrDuplicateSequence,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			root, err := Build(tc.defs)
			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, root, "no trie should be produced on error")
		})
	}
}

func TestBuildSharedPrefixes(t *testing.T) {
	// "[5~" and "[5;1~" share "[5"; both must be reachable
	root, err := Build([]keydef.KeyDefinition{
		{Sequence: "[5~", Event: event.PageUp},
		{Sequence: "[5;1~", Event: event.AltPageUp},
	})
	require.NoError(t, err)

	res := root.Match([]byte("[5~"), 3)
	assert.Equal(t, Matched, res.Type)
	assert.Equal(t, event.PageUp, res.Event)

	res = root.Match([]byte("[5;1~"), 5)
	assert.Equal(t, Matched, res.Type)
	assert.Equal(t, event.AltPageUp, res.Event)
}
