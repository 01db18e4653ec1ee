/*
Copyright 2024 Tim St. Pierre
4-bit transfer over the PCF8574 backpack
*/
package lcd1602

import log "github.com/sirupsen/logrus"

// The controller only sees D4-D7, so every byte goes out as two nibbles, each
// latched by a pulse on EN. Errors abort at once: retrying a single nibble
// would leave the controller out of step with the byte boundaries.

// expanderWrite puts one byte on the expander outputs. The backlight bit is
// always added so the backlight keeps its state.
func (d *Dev) expanderWrite(data byte) error {
	data |= d.control.Backlight.Byte()
	d.log.WithField("byte", data).Trace("expander write")
	return d.c.Tx([]byte{data}, nil)
}

// pulseEnable makes the controller latch the nibble in data.
func (d *Dev) pulseEnable(data byte) error {
	if err := d.expanderWrite(data | pinEN); err != nil {
		return err
	}
	// Enable pulse width must be > 450ns.
	d.delay.DelayUs(1)
	if err := d.expanderWrite(data &^ pinEN); err != nil {
		return err
	}
	d.delay.DelayUs(1)
	return nil
}

func (d *Dev) write4Bits(value byte) error {
	if err := d.expanderWrite(value); err != nil {
		return err
	}
	return d.pulseEnable(value)
}

// send writes data as two nibbles, high nibble first.
func (d *Dev) send(data byte, role Role) error {
	d.log.WithFields(log.Fields{"role": role, "byte": data}).Debug("send")
	high := data & 0xF0
	low := (data << 4) & 0xF0
	if err := d.write4Bits(high | role.Byte()); err != nil {
		return err
	}
	return d.write4Bits(low | role.Byte())
}

func (d *Dev) command(value byte) error {
	return d.send(value, RoleCommand)
}
