package ansi

// Control bytes the input path cares about. Terminals encode Ctrl+letter
// as bytes 0x01 to 0x1A, so anything at or below SUB that is not one of
// the named bytes below is still a control key.
type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	SUB uint8 // SUB is the last of the Ctrl+letter range (Caret: ^Z).
	ESC uint8 // ESC is the Escape character (Caret: ^[).
	DEL uint8 // DEL is the delete character, sent by the Backspace key.
}

// C0 (7-bit) control characters from ANSI, restricted to the ones the
// keyboard input path classifies. Everything else in the C0 range is
// passed through as a literal byte.
var C0 = c0{
	NUL: 0x00,
	HT:  0x09,
	LF:  0x0A,
	CR:  0x0D,
	SUB: 0x1A,
	ESC: 0x1B,
	DEL: 0x7F,
}
