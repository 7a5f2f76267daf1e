package trie

import (
	"fmt"

	"github.com/mic006/termui/input/event"
	"github.com/mic006/termui/input/utils"
)

type ResultType int

const (
	// NoMatch: the buffered bytes do not correspond to, and cannot be
	// extended into, any defined sequence.
	NoMatch ResultType = iota

	// Incomplete: some longer defined sequence could still match; the
	// caller must keep the buffered bytes and retry with more input.
	Incomplete

	// Matched: a defined sequence was recognized.
	Matched
)

func (t ResultType) String() string {
	switch t {
	case NoMatch:
		return "NoMatch"
	case Incomplete:
		return "Incomplete"
	case Matched:
		return "Matched"
	default:
		return "Unknown"
	}
}

// Result of a Match call. Event and Consumed are only meaningful when
// Type is Matched; Consumed is the number of bytes belonging to the
// recognized sequence, which callers must advance their cursor by
// (not the full buffer length).
type Result struct {
	Type     ResultType
	Event    event.Event
	Consumed int
}

func (r Result) String() string {
	if r.Type != Matched {
		return r.Type.String()
	}
	return fmt.Sprintf("Matched(%s, %d)", r.Event, r.Consumed)
}

// Match walks the trie along buf[:length] and reports the longest
// defined sequence matching a prefix of the buffer.
//
// Match is pure: it keeps no state across calls and never mutates the
// trie, so every invocation re-walks from the root and concurrent calls
// need no coordination. It does not allocate.
//
// When the walk stops on a byte that has no child, a terminal current
// node resolves to Matched at that depth (the longest-prefix rule) and
// anything else is an immediate NoMatch; there is no backtracking since
// each byte determines at most one next node. When the buffer runs out
// while children remain, the result is Incomplete regardless of a
// terminal marker, so a longer sequence still pending in the terminal's
// transmit buffer wins once it arrives.
func (n *Node) Match(buf []byte, length int) Result {
	utils.Assert(length <= len(buf), "match length exceeds buffer")

	node := n
	for depth := 0; ; depth++ {
		if depth == length {
			// exhaustion: decide from the trie structure alone
			switch {
			case len(node.children) > 0:
				return Result{Type: Incomplete}
			case node.terminal:
				return Result{Type: Matched, Event: node.def.Event, Consumed: depth}
			default:
				return Result{Type: NoMatch}
			}
		}

		child, ok := node.children[buf[depth]]
		if !ok {
			if node.terminal {
				return Result{Type: Matched, Event: node.def.Event, Consumed: depth}
			}
			return Result{Type: NoMatch}
		}
		node = child
	}
}
