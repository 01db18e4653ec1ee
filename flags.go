/*
Copyright 2024 Tim St. Pierre
Command flags and the display control register for the HD44780
*/
package lcd1602

// Controller opcodes. These are fixed by the HD44780 instruction set.
const (
	cmdClearDisplay   byte = 0x01
	cmdReturnHome     byte = 0x02
	cmdEntryModeSet   byte = 0x04
	cmdDisplayControl byte = 0x08
	cmdCursorShift    byte = 0x10
	cmdFunctionSet    byte = 0x20
	cmdSetCGRAMAddr   byte = 0x40
	cmdSetDDRAMAddr   byte = 0x80
)

// Expander pins. The low nibble of every byte on the wire carries these,
// the high nibble carries D4-D7.
const (
	pinRS        byte = 0x01
	pinRW        byte = 0x02
	pinEN        byte = 0x04
	pinBacklight byte = 0x08
)

// Cursor controls the underline cursor shown after the cursor position.
type Cursor byte

const (
	CursorOff Cursor = 0x00
	CursorOn  Cursor = 0x02
)

func (c Cursor) Byte() byte { return byte(c) }

func (c Cursor) String() string {
	if c == CursorOn {
		return "CursorOn"
	}
	return "CursorOff"
}

// Blink controls the blinking block cursor.
type Blink byte

const (
	BlinkOff Blink = 0x00
	BlinkOn  Blink = 0x01
)

func (b Blink) Byte() byte { return byte(b) }

func (b Blink) String() string {
	if b == BlinkOn {
		return "BlinkOn"
	}
	return "BlinkOff"
}

// Display turns the whole display on or off. Display RAM is kept while off.
type Display byte

const (
	DisplayOff Display = 0x00
	DisplayOn  Display = 0x04
)

func (d Display) Byte() byte { return byte(d) }

func (d Display) String() string {
	if d == DisplayOn {
		return "DisplayOn"
	}
	return "DisplayOff"
}

// Backlight is wired to P3 of the expander and rides along on every write.
type Backlight byte

const (
	BacklightOff Backlight = 0x00
	BacklightOn  Backlight = Backlight(pinBacklight)
)

func (b Backlight) Byte() byte { return byte(b) }

func (b Backlight) String() string {
	if b == BacklightOn {
		return "BacklightOn"
	}
	return "BacklightOff"
}

// Direction selects which way a cursor or display shift moves.
type Direction byte

const (
	DirectionLeft  Direction = 0x00
	DirectionRight Direction = 0x04
)

func (d Direction) Byte() byte { return byte(d) }

func (d Direction) String() string {
	if d == DirectionRight {
		return "DirectionRight"
	}
	return "DirectionLeft"
}

// Entry is the text direction used by the entry mode command.
type Entry byte

const (
	EntryRight Entry = 0x00
	EntryLeft  Entry = 0x02
)

func (e Entry) Byte() byte { return byte(e) }

func (e Entry) String() string {
	if e == EntryLeft {
		return "EntryLeft"
	}
	return "EntryRight"
}

// Shift selects whether the display shifts on each written character.
type Shift byte

const (
	ShiftDecrement Shift = 0x00
	ShiftIncrement Shift = 0x01
)

func (s Shift) Byte() byte { return byte(s) }

func (s Shift) String() string {
	if s == ShiftIncrement {
		return "ShiftIncrement"
	}
	return "ShiftDecrement"
}

// MoveSelect picks the target of the cursor/display shift command.
type MoveSelect byte

const (
	MoveCursor  MoveSelect = 0x00
	MoveDisplay MoveSelect = 0x08
)

func (m MoveSelect) Byte() byte { return byte(m) }

func (m MoveSelect) String() string {
	if m == MoveDisplay {
		return "MoveDisplay"
	}
	return "MoveCursor"
}

// BitMode is the data interface width of the function set command.
type BitMode byte

const (
	Mode4Bit BitMode = 0x00
	Mode8Bit BitMode = 0x10
)

func (m BitMode) Byte() byte { return byte(m) }

func (m BitMode) String() string {
	if m == Mode8Bit {
		return "Mode8Bit"
	}
	return "Mode4Bit"
}

// Lines is the number of display lines of the function set command.
type Lines byte

const (
	OneLine Lines = 0x00
	TwoLine Lines = 0x08
)

func (l Lines) Byte() byte { return byte(l) }

func (l Lines) String() string {
	if l == TwoLine {
		return "TwoLine"
	}
	return "OneLine"
}

// Dots is the character font of the function set command.
type Dots byte

const (
	Dots5x8  Dots = 0x00
	Dots5x10 Dots = 0x04
)

func (d Dots) Byte() byte { return byte(d) }

func (d Dots) String() string {
	if d == Dots5x10 {
		return "Dots5x10"
	}
	return "Dots5x8"
}

// Role tells the controller whether a byte is an instruction or data. It is
// the register select line.
type Role byte

const (
	RoleCommand Role = 0x00
	RoleData    Role = Role(pinRS)
)

func (r Role) Byte() byte { return byte(r) }

func (r Role) String() string {
	if r == RoleData {
		return "data"
	}
	return "command"
}

// Control holds the user toggleable flags of the display.
type Control struct {
	Cursor    Cursor
	Display   Display
	Blink     Blink
	Backlight Backlight
	Direction Direction
}

// NewControl returns the power-on control state: everything off except the
// backlight.
func NewControl() Control {
	return Control{
		Cursor:    CursorOff,
		Display:   DisplayOff,
		Blink:     BlinkOff,
		Backlight: BacklightOn,
		Direction: DirectionLeft,
	}
}

// Value folds the flags into the operand of the display control command.
// Direction is not part of it.
func (c Control) Value() byte {
	return c.Blink.Byte() | c.Cursor.Byte() | c.Display.Byte() | c.Backlight.Byte()
}
