package trie

import (
	"fmt"

	"github.com/mic006/termui/input/keydef"
)

// Node is one byte position in the set of defined escape sequences.
// The root node is the position just after the ESC byte.
//
// A node may be both terminal and have children when one defined
// sequence is a strict prefix of another; the default catalog has no
// such pair but the matcher handles it either way.
type Node struct {
	children map[byte]*Node

	// terminal marker: set when some definition's sequence ends
	// exactly at this node.
	def      keydef.KeyDefinition
	terminal bool
}

func newNode() *Node {
	return &Node{children: make(map[byte]*Node)}
}

// Build compiles a key catalog into a prefix trie. The trie is immutable
// once returned: matching never mutates it, so a single instance may be
// shared by any number of concurrent Match calls.
//
// Build fails with keydef.ErrDuplicateSequence when two definitions walk
// to the same terminal node, and with keydef.ErrEmptyCatalog or
// keydef.ErrEmptySequence on degenerate input. No trie is produced on
// error.
func Build(defs []keydef.KeyDefinition) (*Node, error) {
	if len(defs) == 0 {
		return nil, keydef.ErrEmptyCatalog
	}

	root := newNode()
	for _, def := range defs {
		if def.Sequence == "" {
			return nil, fmt.Errorf("%w: event %s", keydef.ErrEmptySequence, def.Event)
		}
		node := root
		for i := 0; i < len(def.Sequence); i++ {
			c := def.Sequence[i]
			child, ok := node.children[c]
			if !ok {
				child = newNode()
				node.children[c] = child
			}
			node = child
		}
		if node.terminal {
			return nil, fmt.Errorf("%w: %q maps to both %s and %s",
				keydef.ErrDuplicateSequence, def.Sequence, node.def.Event, def.Event)
		}
		node.def = def
		node.terminal = true
	}
	return root, nil
}
