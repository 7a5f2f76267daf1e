package termui

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mic006/termui/input/event"
	"github.com/mic006/termui/input/keydef"
	"github.com/mic006/termui/logger"
)

func newTestTermUI(t *testing.T, opts Options) *TermUI {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = logger.Discard
	}
	ui, err := NewTermUI(opts)
	require.NoError(t, err)
	return ui
}

func TestProcessInput(t *testing.T) {
	ui := newTestTermUI(t, Options{})

	events, err := ui.ProcessInput([]byte("a\x1bOA\x1b[3;5~"))
	require.NoError(t, err)
	assert.Equal(t, []event.Event{
		event.FromRune('a'),
		event.ArrowUp,
		event.CtrlDelete,
	}, events)
}

func TestProcessInputKeepsPartialSequence(t *testing.T) {
	ui := newTestTermUI(t, Options{})

	events, err := ui.ProcessInput([]byte("\x1b[1;"))
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, 4, ui.PendingBytes())

	events, err = ui.ProcessInput([]byte("2H"))
	require.NoError(t, err)
	assert.Equal(t, []event.Event{event.ShiftHome}, events)
	assert.Zero(t, ui.PendingBytes())
}

func TestProcessSingleBytes(t *testing.T) {
	ui := newTestTermUI(t, Options{})

	var collected []event.Event
	for _, c := range []byte("\x1b[21~") {
		events, err := ui.Process(c)
		require.NoError(t, err)
		collected = append(collected, events...)
	}
	assert.Equal(t, []event.Event{event.F10}, collected)
}

func TestFlush(t *testing.T) {
	ui := newTestTermUI(t, Options{})

	events, err := ui.ProcessInput([]byte("\x1b"))
	require.NoError(t, err)
	assert.Empty(t, events)

	assert.Equal(t, []event.Event{event.Escape}, ui.Flush())
	assert.Zero(t, ui.PendingBytes())
}

func TestCustomCatalog(t *testing.T) {
	ui := newTestTermUI(t, Options{
		Catalog: []keydef.KeyDefinition{
			{Sequence: "OA", Event: event.ArrowUp},
		},
	})

	events, err := ui.ProcessInput([]byte("\x1bOA\x1bOB"))
	require.NoError(t, err)
	// OB is not defined in this catalog: plain Esc plus literals
	assert.Equal(t, []event.Event{
		event.ArrowUp,
		event.Escape,
		event.FromRune('O'),
		event.FromRune('B'),
	}, events)
}

func TestInvalidCatalog(t *testing.T) {
	ui, err := NewTermUI(Options{
		Logger: logger.Discard,
		Catalog: []keydef.KeyDefinition{
			{Sequence: "OA", Event: event.ArrowUp},
			{Sequence: "OA", Event: event.ArrowDown},
		},
	})
	assert.ErrorIs(t, err, keydef.ErrDuplicateSequence)
	assert.Nil(t, ui)
}

type countingHandler struct {
	count int
	last  event.Event
}

func (h *countingHandler) Key(ev event.Event) {
	h.count++
	h.last = ev
}

func TestInstalledHandler(t *testing.T) {
	handler := &countingHandler{}
	ui := newTestTermUI(t, Options{Handler: handler})

	events, err := ui.ProcessInput([]byte("\x1bOP"))
	require.NoError(t, err)
	assert.Empty(t, events, "events go to the handler, not the queue")
	assert.Equal(t, 1, handler.count)
	assert.Equal(t, event.F1, handler.last)
}

func TestWrite(t *testing.T) {
	handler := &countingHandler{}
	ui := newTestTermUI(t, Options{Handler: handler})

	var w io.Writer = ui
	n, err := w.Write([]byte("\x1b[E"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, event.KeypadCenter, handler.last)
}
