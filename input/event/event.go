package event

import (
	"fmt"
	"syscall"
)

// Event is a single input event retrieved from the terminal: a printable
// character, a control character, a special key (possibly qualified by a
// modifier) or a caught signal.
//
// The encoding packs everything into 32 bits: the low 21 bits hold a
// unicode codepoint (or a small ordinal for special keys), the high bits
// are flags. At most one of the modifier flags is set for the keys the
// default catalog defines.
type Event uint32

const (
	invalidMask Event = 0x80000000
	signalMask  Event = 0x40000000
	ctrlMask    Event = 0x20000000
	altMask     Event = 0x10000000 // non-printable keys only
	shiftMask   Event = 0x08000000 // non-printable keys only
	specialMask Event = 0x04000000
	valueMask   Event = 0x001FFFFF // unicode on 21 bits
)

const (
	Invalid Event = invalidMask

	SigInt     = signalMask | Event(syscall.SIGINT)
	SigTerm    = signalMask | Event(syscall.SIGTERM)
	TermResize = signalMask | Event(syscall.SIGWINCH)

	CtrlC           = ctrlMask | 'C'
	Backspace Event = 0x7f
	Tab             = ctrlMask | 'I'
	Enter           = ctrlMask | 'M'
	Escape    Event = 0x1b

	ArrowUp      = specialMask | 0x1
	ArrowDown    = specialMask | 0x2
	ArrowRight   = specialMask | 0x3
	ArrowLeft    = specialMask | 0x4
	Insert       = specialMask | 0x5
	Delete       = specialMask | 0x6
	End          = specialMask | 0x7
	Home         = specialMask | 0x8
	PageUp       = specialMask | 0x9
	PageDown     = specialMask | 0xa
	KeypadCenter = specialMask | 0xb

	F1  = specialMask | 0x101
	F2  = specialMask | 0x102
	F3  = specialMask | 0x103
	F4  = specialMask | 0x104
	F5  = specialMask | 0x105
	F6  = specialMask | 0x106
	F7  = specialMask | 0x107
	F8  = specialMask | 0x108
	F9  = specialMask | 0x109
	F10 = specialMask | 0x10a
	F11 = specialMask | 0x10b
	F12 = specialMask | 0x10c

	ShiftArrowUp    = shiftMask | ArrowUp
	ShiftArrowDown  = shiftMask | ArrowDown
	ShiftArrowRight = shiftMask | ArrowRight
	ShiftArrowLeft  = shiftMask | ArrowLeft
	ShiftDelete     = shiftMask | Delete
	ShiftEnd        = shiftMask | End
	ShiftHome       = shiftMask | Home
	ShiftEnter      = shiftMask | 0xfe
	ShiftTab        = shiftMask | 0xff

	AltArrowUp    = altMask | ArrowUp
	AltArrowDown  = altMask | ArrowDown
	AltArrowRight = altMask | ArrowRight
	AltArrowLeft  = altMask | ArrowLeft
	AltInsert     = altMask | Insert
	AltDelete     = altMask | Delete
	AltEnd        = altMask | End
	AltHome       = altMask | Home
	AltPageUp     = altMask | PageUp
	AltPageDown   = altMask | PageDown

	CtrlArrowUp    = ctrlMask | ArrowUp
	CtrlArrowDown  = ctrlMask | ArrowDown
	CtrlArrowRight = ctrlMask | ArrowRight
	CtrlArrowLeft  = ctrlMask | ArrowLeft
	CtrlInsert     = ctrlMask | Insert
	CtrlDelete     = ctrlMask | Delete
	CtrlEnd        = ctrlMask | End
	CtrlHome       = ctrlMask | Home
	CtrlPageUp     = ctrlMask | PageUp
	CtrlPageDown   = ctrlMask | PageDown
)

// FromRune builds an event for a printable character.
func FromRune(r rune) Event {
	return Event(r) & valueMask
}

// FromCtrl builds a Ctrl+letter event from the letter offset, i.e.
// offset 0 is Ctrl+A. Terminals encode these as bytes 1 to 26.
func FromCtrl(letterOffset rune) Event {
	return ctrlMask | Event('A'+letterOffset)
}

// FromSignal builds an event for a signal caught by the owning loop.
func FromSignal(sig syscall.Signal) Event {
	return signalMask | Event(sig)
}

func (e Event) Valid() bool {
	return e&invalidMask == 0
}

// Special reports whether the event is a special key (arrows, function
// keys, navigation keys), possibly modifier-qualified.
func (e Event) Special() bool {
	return e&specialMask != 0
}

func (e Event) Signal() bool {
	return e&signalMask != 0
}

// Rune returns the codepoint part of the event. Only meaningful for
// printable events.
func (e Event) Rune() rune {
	return rune(e & valueMask)
}

// names of the special keys, without modifier qualification.
var names = map[Event]string{
	ArrowUp:      "ArrowUp",
	ArrowDown:    "ArrowDown",
	ArrowRight:   "ArrowRight",
	ArrowLeft:    "ArrowLeft",
	Insert:       "Insert",
	Delete:       "Delete",
	End:          "End",
	Home:         "Home",
	PageUp:       "PageUp",
	PageDown:     "PageDown",
	KeypadCenter: "KeypadCenter",
	F1:           "F1",
	F2:           "F2",
	F3:           "F3",
	F4:           "F4",
	F5:           "F5",
	F6:           "F6",
	F7:           "F7",
	F8:           "F8",
	F9:           "F9",
	F10:          "F10",
	F11:          "F11",
	F12:          "F12",
}

func (e Event) String() string {
	if !e.Valid() {
		return "Invalid"
	}

	// irregular encodings first
	switch e {
	case Backspace:
		return "Backspace"
	case Escape:
		return "Escape"
	case Tab:
		return "Tab"
	case Enter:
		return "Enter"
	case ShiftEnter:
		return "Shift+Enter"
	case ShiftTab:
		return "Shift+Tab"
	case SigInt:
		return "SigInt"
	case SigTerm:
		return "SigTerm"
	case TermResize:
		return "TermResize"
	}

	if e.Signal() {
		return fmt.Sprintf("Signal(%d)", uint32(e&valueMask))
	}

	prefix := ""
	switch {
	case e&shiftMask != 0:
		prefix = "Shift+"
	case e&altMask != 0:
		prefix = "Alt+"
	case e&ctrlMask != 0:
		prefix = "Ctrl+"
	}

	base := e &^ (shiftMask | altMask | ctrlMask)
	if name, ok := names[base]; ok {
		return prefix + name
	}
	if e&ctrlMask != 0 {
		return fmt.Sprintf("Ctrl+%c", rune(base&valueMask))
	}
	return fmt.Sprintf("%q", e.Rune())
}
