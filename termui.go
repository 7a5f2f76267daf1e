package termui

import (
	"fmt"
	"runtime/debug"

	"github.com/mic006/termui/input/event"
	"github.com/mic006/termui/input/keydef"
	"github.com/mic006/termui/input/stream"
	"github.com/mic006/termui/input/trie"
	"github.com/mic006/termui/logger"
)

// TermUI recognizes keyboard input events in a raw terminal byte
// stream. It compiles a key catalog into an escape-sequence trie once,
// then feeds every input chunk through the stream layer.
type TermUI struct {
	// The compiled escape-sequence automaton. Built once, immutable
	// afterwards.
	root *trie.Node

	// The stream layer. This buffers raw bytes, strips the ESC
	// lead-in and calls back with recognized events.
	inputStream *stream.Stream

	// Recognized events waiting to be collected, used when the caller
	// did not install its own handler.
	queue []event.Event

	handler stream.Handler
	logger  logger.Logger
}

type Options struct {
	// Catalog of key definitions to compile. Defaults to
	// keydef.Catalog when nil.
	Catalog []keydef.KeyDefinition

	// Handler receives events as they are recognized. When nil,
	// events are queued and returned by the Process* calls.
	Handler stream.Handler

	Logger logger.Logger
}

// NewTermUI compiles the key catalog and wires up the input pipeline.
//
// Catalog configuration errors (duplicate or empty sequences) are
// reported here and produce no TermUI.
func NewTermUI(opts Options) (*TermUI, error) {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = keydef.Catalog
	}
	if err := keydef.Validate(catalog); err != nil {
		return nil, fmt.Errorf("invalid key catalog: %w", err)
	}

	root, err := trie.Build(catalog)
	if err != nil {
		return nil, fmt.Errorf("building escape sequence trie: %w", err)
	}

	t := &TermUI{
		root:    root,
		handler: opts.Handler,
		logger:  logger.OrDefault(opts.Logger),
	}

	// When the caller installs no handler, the TermUI itself collects
	// the events into its queue.
	var handler stream.Handler = t
	if opts.Handler != nil {
		handler = opts.Handler
	}
	t.inputStream = stream.NewStream(root, handler, t.logger)
	return t, nil
}

// Key implements stream.Handler, queueing events for collection.
func (t *TermUI) Key(ev event.Event) {
	t.queue = append(t.queue, ev)
}

// ProcessInput feeds a chunk of raw terminal bytes through the
// recognizer and returns the events recognized so far. Bytes belonging
// to a still-incomplete escape sequence stay buffered for the next
// call.
func (t *TermUI) ProcessInput(buf []byte) (events []event.Event, err error) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("panic in ProcessInput", "panic", r)
			fmt.Println(string(debug.Stack()))
			err = fmt.Errorf("panic in ProcessInput: %v", r)
		}
	}()
	t.inputStream.NextSlice(buf)
	return t.collect(), nil
}

// Process feeds a single byte. This is helpful for debugging as you can
// see the effect of each byte; consider ProcessInput otherwise.
func (t *TermUI) Process(c byte) ([]event.Event, error) {
	return t.ProcessInput([]byte{c})
}

// Flush resolves any pending partial escape sequence as literal input
// and returns the resulting events. Call it when a read timeout makes
// it clear no continuation bytes are coming.
func (t *TermUI) Flush() []event.Event {
	t.inputStream.Flush()
	return t.collect()
}

// PendingBytes reports how many bytes are buffered waiting for the rest
// of an escape sequence.
func (t *TermUI) PendingBytes() int {
	return t.inputStream.Pending()
}

func (t *TermUI) collect() []event.Event {
	if t.handler != nil {
		return nil
	}
	events := t.queue
	t.queue = nil
	return events
}

// Write implements io.Writer over the input pipeline. Only useful with
// an installed handler, since recognized events are not returned.
func (t *TermUI) Write(p []byte) (n int, err error) {
	if _, err := t.ProcessInput(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
