/*
Copyright 2024 Tim St. Pierre
Options for lcd1602 character display
*/
package lcd1602

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ErrInvalidOpts is wrapped by every option validation error.
var ErrInvalidOpts = errors.New("invalid options")

type Opts struct {
	// The I²C slave address of the backpack. 0 selects 0x27.
	I2CAddr uint16
	// How many lines does the display have, at most 4
	Rows uint8
	// Characters per line, at most 40
	Cols uint8
	// Logger receives the driver's log output. When nil the standard logrus
	// logger is used.
	Logger *log.Entry
}

var DefaultOpts = Opts{
	I2CAddr: 0x27,
	Rows:    2,
	Cols:    16,
}

func (o *Opts) i2cAddr() (uint16, error) {
	switch o.I2CAddr {
	case 0:
		// Default address.
		return 0x27, nil
	case 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27:
		// PCF8574
		return o.I2CAddr, nil
	case 0x38, 0x39, 0x3A, 0x3B, 0x3C, 0x3D, 0x3E, 0x3F:
		// PCF8574A
		return o.I2CAddr, nil
	default:
		return 0, fmt.Errorf("%w: address %#x not supported by device", ErrInvalidOpts, o.I2CAddr)
	}
}

func (o *Opts) validate() (uint16, error) {
	addr, err := o.i2cAddr()
	if err != nil {
		return 0, err
	}
	if o.Rows == 0 || o.Rows > 4 {
		return 0, fmt.Errorf("%w: device does not support %d rows", ErrInvalidOpts, o.Rows)
	}
	if o.Cols == 0 || o.Cols > 40 {
		return 0, fmt.Errorf("%w: device does not support %d cols", ErrInvalidOpts, o.Cols)
	}
	return addr, nil
}

func (o *Opts) logger(addr uint16) *log.Entry {
	l := o.Logger
	if l == nil {
		l = log.NewEntry(log.StandardLogger())
	}
	return l.WithField("addr", fmt.Sprintf("%#x", addr))
}
