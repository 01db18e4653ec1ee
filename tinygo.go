/*
Copyright 2024 Tim St. Pierre
Lets the driver run on a TinyGo I2C peripheral
*/
package lcd1602

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

type tinyGoBus struct {
	bus drivers.I2C
}

// FromTinyGo wraps a tinygo.org/x/drivers I2C bus so it can be passed to New.
//
// The bus speed is set when the TinyGo peripheral is configured, so SetSpeed
// is a noop.
func FromTinyGo(bus drivers.I2C) i2c.Bus {
	return &tinyGoBus{bus: bus}
}

func (t *tinyGoBus) String() string {
	return fmt.Sprintf("tinygo(%T)", t.bus)
}

func (t *tinyGoBus) Tx(addr uint16, w, r []byte) error {
	return t.bus.Tx(addr, w, r)
}

func (t *tinyGoBus) SetSpeed(f physic.Frequency) error {
	return nil
}

var _ i2c.Bus = &tinyGoBus{}
