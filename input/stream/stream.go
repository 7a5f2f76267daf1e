package stream

import (
	"github.com/mic006/termui/input/ansi"
	"github.com/mic006/termui/input/event"
	"github.com/mic006/termui/input/trie"
	"github.com/mic006/termui/logger"
)

// Handler receives the events recognized by a Stream. Implementations
// are called synchronously from Next/NextSlice/Flush, in input order.
type Handler interface {
	Key(ev event.Event)
}

// Stream turns a raw byte stream read from a terminal into key events.
//
// It owns the buffering the matcher itself refuses to do: bytes are
// appended to a pending buffer and classified from the front. An ESC
// byte hands the remainder of the buffer to the trie matcher; on
// Incomplete the bytes stay buffered until more input (or a Flush)
// arrives, so a sequence split across reads is recognized as one event.
//
// Multi-byte text is not decoded: any byte that is neither ESC, a
// control byte, nor DEL is emitted as a literal byte event.
type Stream struct {
	root    *trie.Node
	handler Handler
	pending []byte

	logger logger.Logger
}

func NewStream(root *trie.Node, handler Handler, log logger.Logger) *Stream {
	return &Stream{
		root:    root,
		handler: handler,
		pending: make([]byte, 0, 64),
		logger:  logger.OrDefault(log),
	}
}

// Next processes a single byte. Consider NextSlice when more than one
// byte is available.
func (s *Stream) Next(c byte) {
	s.pending = append(s.pending, c)
	s.drain(false)
}

// NextSlice processes a chunk of input bytes.
func (s *Stream) NextSlice(input []byte) {
	s.pending = append(s.pending, input...)
	s.drain(false)
}

// Pending returns the number of buffered bytes waiting for more input.
// Non-zero only while an escape sequence is still incomplete.
func (s *Stream) Pending() int {
	return len(s.pending)
}

// Flush resolves a pending partial escape sequence as a literal Escape
// followed by the remaining bytes reprocessed individually. Callers
// invoke this when no further input is coming soon (e.g. a read
// timeout after a lone Esc keypress).
func (s *Stream) Flush() {
	s.drain(true)
}

func (s *Stream) drain(flush bool) {
	for len(s.pending) > 0 {
		c := s.pending[0]
		if c != ansi.C0.ESC {
			s.logger.Debug("literal input", "code", ansi.String(c))
			s.classify(c)
			s.consume(1)
			continue
		}

		rest := s.pending[1:]
		res := s.root.Match(rest, len(rest))
		s.logger.Debug("escape lookup", "pending", len(rest), "result", res.String())
		switch res.Type {
		case trie.Matched:
			s.emit(res.Event)
			s.consume(1 + res.Consumed)
		case trie.Incomplete:
			if !flush {
				// wait for the rest of the sequence
				return
			}
			s.emit(event.Escape)
			s.consume(1)
		case trie.NoMatch:
			// not a known sequence: the user pressed plain Esc and the
			// following bytes are ordinary input
			s.emit(event.Escape)
			s.consume(1)
		}
	}
}

// classify emits the event for a byte outside an escape sequence.
func (s *Stream) classify(c byte) {
	switch {
	case c == ansi.C0.NUL:
		s.logger.Warn("ignoring NUL input byte")
	case c <= ansi.C0.SUB:
		// Ctrl+letter is encoded as 0x01 to 0x1A; this also covers
		// Tab (^I), Enter (^M) and linefeed (^J)
		s.emit(event.FromCtrl(rune(c - 1)))
	case c == ansi.C0.DEL:
		s.emit(event.Backspace)
	default:
		s.emit(event.FromRune(rune(c)))
	}
}

func (s *Stream) emit(ev event.Event) {
	if s.handler == nil {
		s.logger.Warn("handler is nil, dropping event", "event", ev)
		return
	}
	s.handler.Key(ev)
}

func (s *Stream) consume(n int) {
	s.pending = s.pending[:copy(s.pending, s.pending[n:])]
}
