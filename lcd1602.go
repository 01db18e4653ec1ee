/*
Copyright 2024 Tim St. Pierre
Controls a 1602 character LCD display using I2C backpack
Thanks to Dave Cheney for figuring out the registers!
*/
package lcd1602

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// Dev is an HD44780 display behind a PCF8574 backpack.
//
// A Dev is not safe for concurrent use. Callers sharing one across goroutines
// must serialize access themselves.
type Dev struct {
	c          i2c.Dev
	delay      Delay
	log        *log.Entry
	control    Control
	entry      Entry
	shift      Shift
	rows       uint8
	cols       uint8
	rowOffsets [4]byte
}

func (d *Dev) String() string {
	return fmt.Sprintf("lcd1602{%s}", &d.c)
}

// NewI2C returns a new initialized device that communicates over I²C and
// sleeps with time.Sleep.
//
// Use default options if nil is used.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	return New(b, Sleeper{}, opts)
}

// New returns a new initialized device using delay for the controller timing.
//
// If any write of the initialization sequence fails, no device is returned
// and the bus error is returned as is.
func New(b i2c.Bus, delay Delay, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	addr, err := opts.validate()
	if err != nil {
		return nil, fmt.Errorf("lcd1602 %x: %w", opts.I2CAddr, err)
	}
	d := &Dev{
		c:          i2c.Dev{Bus: b, Addr: addr},
		delay:      delay,
		log:        opts.logger(addr),
		control:    NewControl(),
		entry:      EntryLeft,
		shift:      ShiftDecrement,
		rows:       opts.Rows,
		cols:       opts.Cols,
		rowOffsets: [4]byte{0x00, 0x40, opts.Cols, 0x40 + opts.Cols},
	}
	if err := d.init(); err != nil {
		d.log.WithError(err).Error("initialization failed")
		return nil, err
	}
	return d, nil
}

// init runs the "initializing by instruction" sequence of the datasheet
// (figure 24). Until the 4-bit function set is latched the controller may be
// in 8-bit mode, so the first four transfers are single nibbles.
func (d *Dev) init() error {
	d.log.Info("initializing display")
	// More than 40ms after Vcc rises to 2.7V.
	d.delay.DelayMs(50)

	if err := d.expanderWrite(d.control.Backlight.Byte()); err != nil {
		return err
	}
	d.delay.DelayMs(1)

	mode8Bit := cmdFunctionSet | Mode8Bit.Byte()
	for i := 0; i < 3; i++ {
		if err := d.write4Bits(mode8Bit); err != nil {
			return err
		}
		d.delay.DelayMs(5)
	}

	if err := d.write4Bits(cmdFunctionSet | Mode4Bit.Byte()); err != nil {
		return err
	}
	d.delay.DelayMs(5)

	if err := d.command(cmdFunctionSet | Mode4Bit.Byte() | Dots5x8.Byte() | TwoLine.Byte()); err != nil {
		return err
	}
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.writeEntryMode(); err != nil {
		return err
	}
	d.log.Info("display ready")
	return nil
}

// Halt clears the screen, turns the display off and the backlight off.
func (d *Dev) Halt() error {
	d.log.Info("halting display")
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.SetDisplay(DisplayOff); err != nil {
		return err
	}
	return d.SetBacklight(BacklightOff)
}

// Clear blanks the display and returns the cursor home.
func (d *Dev) Clear() error {
	if err := d.command(cmdClearDisplay); err != nil {
		return err
	}
	d.delay.DelayMs(2)
	return nil
}

// Home returns the cursor and any display shift to the start.
func (d *Dev) Home() error {
	if err := d.command(cmdReturnHome); err != nil {
		return err
	}
	d.delay.DelayMs(2)
	return nil
}

// SetCursorPosition moves the cursor. Rows and columns start at 0; a row past
// the last one is clamped to the last row.
func (d *Dev) SetCursorPosition(col, row byte) error {
	if row >= byte(len(d.rowOffsets)) {
		row = byte(len(d.rowOffsets)) - 1
	}
	if row >= d.rows {
		row = d.rows - 1
	}
	return d.command(cmdSetDDRAMAddr | (col + d.rowOffsets[row]))
}

// CreateChar stores a 5x8 glyph in CGRAM slot location (0-7). Print the glyph
// by writing the slot number as a character.
func (d *Dev) CreateChar(location byte, charmap [8]byte) error {
	location &= 0x07
	if err := d.command(cmdSetCGRAMAddr | location<<3); err != nil {
		return err
	}
	for _, row := range charmap {
		if err := d.WriteByte(row); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) SetDisplay(display Display) error {
	d.control.Display = display
	return d.writeDisplayControl()
}

func (d *Dev) SetCursor(cursor Cursor) error {
	d.control.Cursor = cursor
	return d.writeDisplayControl()
}

func (d *Dev) SetBlink(blink Blink) error {
	d.control.Blink = blink
	return d.writeDisplayControl()
}

// SetBacklight switches the backlight. No command is sent, the expander
// output is simply rewritten with the new backlight bit.
func (d *Dev) SetBacklight(backlight Backlight) error {
	d.control.Backlight = backlight
	return d.expanderWrite(0)
}

// SetEntryMode sets the text direction and whether the display shifts as
// characters are written.
func (d *Dev) SetEntryMode(entry Entry, shift Shift) error {
	d.entry = entry
	d.shift = shift
	return d.writeEntryMode()
}

// ScrollDisplay shifts the whole display one position without touching
// display RAM.
func (d *Dev) ScrollDisplay(dir Direction) error {
	d.control.Direction = dir
	return d.command(cmdCursorShift | MoveDisplay.Byte() | dir.Byte())
}

// MoveCursor moves the cursor one position.
func (d *Dev) MoveCursor(dir Direction) error {
	d.control.Direction = dir
	return d.command(cmdCursorShift | MoveCursor.Byte() | dir.Byte())
}

// Print writes s at the cursor. A '\n' moves to the start of the next row;
// past the last row it stays on the last row. Every other rune is sent as
// its low byte, so only the controller's character ROM is reachable.
func (d *Dev) Print(s string) error {
	var row byte
	for _, r := range s {
		if r == '\n' {
			row = clamp(row+1, 1, d.rows)
			if err := d.SetCursorPosition(0, row); err != nil {
				return err
			}
			continue
		}
		if err := d.WriteByte(byte(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteByte writes one character (or CGRAM row) at the current address.
func (d *Dev) WriteByte(c byte) error {
	return d.send(c, RoleData)
}

// Write writes buf as data bytes. It implements io.Writer.
func (d *Dev) Write(buf []byte) (int, error) {
	for i, c := range buf {
		if err := d.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(buf), nil
}

// Control returns the current display control flags.
func (d *Dev) Control() Control {
	return d.control
}

func (d *Dev) Rows() int {
	return int(d.rows)
}

func (d *Dev) Cols() int {
	return int(d.cols)
}

func (d *Dev) writeDisplayControl() error {
	d.log.WithFields(log.Fields{
		"display": d.control.Display,
		"cursor":  d.control.Cursor,
		"blink":   d.control.Blink,
	}).Debug("writing display control")
	return d.command(cmdDisplayControl | d.control.Value())
}

func (d *Dev) writeEntryMode() error {
	return d.command(cmdEntryModeSet | d.entry.Byte() | d.shift.Byte())
}

func clamp(v, lo, hi byte) byte {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var _ conn.Resource = &Dev{}
