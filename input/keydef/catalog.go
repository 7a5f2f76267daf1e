package keydef

import "github.com/mic006/termui/input/event"

// Catalog is the default table of escape sequences sent by the keyboard
// in application cursor key mode. Sequences omit the leading ESC byte.
//
// Sequences may share prefixes ("[5~" and "[5;1~" share "[5"); the
// matcher resolves those by preferring the longest defined sequence
// present in the buffer.
var Catalog = []KeyDefinition{
	{"OA", event.ArrowUp},
	{"OB", event.ArrowDown},
	{"OC", event.ArrowRight},
	{"OD", event.ArrowLeft},
	{"[2~", event.Insert},
	{"[3~", event.Delete},
	{"OF", event.End},
	{"OH", event.Home},
	{"[5~", event.PageUp},
	{"[6~", event.PageDown},
	{"[E", event.KeypadCenter},

	{"OP", event.F1},
	{"OQ", event.F2},
	{"OR", event.F3},
	{"OS", event.F4},
	{"[15~", event.F5},
	{"[17~", event.F6},
	{"[18~", event.F7},
	{"[19~", event.F8},
	{"[20~", event.F9},
	{"[21~", event.F10},
	{"[23~", event.F11},
	{"[24~", event.F12},

	{"[1;2A", event.ShiftArrowUp},
	{"[1;2B", event.ShiftArrowDown},
	{"[1;2C", event.ShiftArrowRight},
	{"[1;2D", event.ShiftArrowLeft},
	{"[3;2~", event.ShiftDelete},
	{"[1;2F", event.ShiftEnd},
	{"[1;2H", event.ShiftHome},
	{"OM", event.ShiftEnter},
	{"[Z", event.ShiftTab},

	{"[1;1A", event.AltArrowUp},
	{"[1;1B", event.AltArrowDown},
	{"[1;1C", event.AltArrowRight},
	{"[1;1D", event.AltArrowLeft},
	{"[2;1~", event.AltInsert},
	{"[3;1~", event.AltDelete},
	{"[1;1F", event.AltEnd},
	{"[1;1H", event.AltHome},
	{"[5;1~", event.AltPageUp},
	{"[6;1~", event.AltPageDown},

	{"[1;5A", event.CtrlArrowUp},
	{"[1;5B", event.CtrlArrowDown},
	{"[1;5C", event.CtrlArrowRight},
	{"[1;5D", event.CtrlArrowLeft},
	{"[2;5~", event.CtrlInsert},
	{"[3;5~", event.CtrlDelete},
	{"[1;5F", event.CtrlEnd},
	{"[1;5H", event.CtrlHome},
	{"[5;5~", event.CtrlPageUp},
	{"[6;5~", event.CtrlPageDown},
}
