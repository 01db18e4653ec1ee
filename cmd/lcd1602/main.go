/*
Copyright 2024 Tim St. Pierre
lcd1602 writes text to a character LCD on an I2C backpack.

Usage:

	lcd1602 [options] [text...]

Each argument is printed on its own row.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tstpierre-tc/lcd1602/v2"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

var (
	busName   = flag.String("bus", "", "I2C bus name, empty for the first bus")
	addr      = flag.Uint("addr", 0x27, "I2C address of the backpack")
	rows      = flag.Uint("rows", 2, "number of display rows")
	cols      = flag.Uint("cols", 16, "number of display columns")
	backlight = flag.Bool("backlight", true, "turn the backlight on")
	cursor    = flag.Bool("cursor", false, "show the cursor")
	blink     = flag.Bool("blink", false, "blink the cursor")
	halt      = flag.Bool("halt", false, "clear and switch the display off, then exit")
	verbose   = flag.Bool("v", false, "verbose output")
	speed     physic.Frequency
)

func main() {
	flag.Var(&speed, "speed", "I2C bus speed (e.g. 100kHz), empty to keep the bus default")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [text...]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Each argument is printed on its own row.")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := run(flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if _, err := host.Init(); err != nil {
		return err
	}
	bus, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer bus.Close()
	if speed != 0 {
		if err := bus.SetSpeed(speed); err != nil {
			return err
		}
	}

	dev, err := lcd1602.NewI2C(bus, &lcd1602.Opts{
		I2CAddr: uint16(*addr),
		Rows:    uint8(*rows),
		Cols:    uint8(*cols),
	})
	if err != nil {
		return err
	}
	log.Infof("opened %s", dev)
	if *halt {
		return dev.Halt()
	}

	if err := dev.SetDisplay(lcd1602.DisplayOn); err != nil {
		return err
	}
	if !*backlight {
		if err := dev.SetBacklight(lcd1602.BacklightOff); err != nil {
			return err
		}
	}
	if *cursor {
		if err := dev.SetCursor(lcd1602.CursorOn); err != nil {
			return err
		}
	}
	if *blink {
		if err := dev.SetBlink(lcd1602.BlinkOn); err != nil {
			return err
		}
	}
	return dev.Print(strings.Join(args, "\n"))
}
