/*
Copyright 2024 Tim St. Pierre
*/
package lcd1602

import (
	"errors"
	"fmt"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/physic"
)

var errBus = errors.New("i2c: remote I/O error")

// harness is a bus and a clock in one, so the test can see writes and
// delays in the order the driver issued them.
type harness struct {
	addrs   []uint16
	writes  []byte
	events  []string
	now     time.Duration
	stamps  []time.Duration
	failAt  int // 1-based write that fails, 0 never
	failErr error
}

func (h *harness) String() string { return "harness" }

func (h *harness) Tx(addr uint16, w, r []byte) error {
	if len(w) != 1 || len(r) != 0 {
		return fmt.Errorf("harness: unexpected Tx(%d bytes, %d read)", len(w), len(r))
	}
	h.addrs = append(h.addrs, addr)
	h.writes = append(h.writes, w[0])
	h.stamps = append(h.stamps, h.now)
	h.events = append(h.events, wr(w[0]))
	if h.failAt != 0 && len(h.writes) == h.failAt {
		return h.failErr
	}
	return nil
}

func (h *harness) SetSpeed(f physic.Frequency) error { return nil }

func (h *harness) DelayMs(n uint32) {
	h.now += time.Duration(n) * time.Millisecond
	h.events = append(h.events, ms(n))
}

func (h *harness) DelayUs(n uint32) {
	h.now += time.Duration(n) * time.Microsecond
	h.events = append(h.events, us(n))
}

func wr(b byte) string { return fmt.Sprintf("w:%#02x", b) }
func ms(n uint32) string { return fmt.Sprintf("ms:%d", n) }
func us(n uint32) string { return fmt.Sprintf("us:%d", n) }

func (h *harness) reset() {
	h.addrs = nil
	h.writes = nil
	h.events = nil
	h.stamps = nil
}

// sent is one logical byte rebuilt from the nibble transfers.
type sent struct {
	role Role
	b    byte
}

func (s sent) String() string {
	return fmt.Sprintf("%s(%#02x)", s.role, s.b)
}

// decode rebuilds logical bytes from writes made through send. Each byte
// must be exactly six writes: nibble, EN high, EN low, twice.
func decode(t *testing.T, writes []byte) []sent {
	t.Helper()
	if len(writes)%6 != 0 {
		t.Fatalf("%d writes is not a whole number of bytes: % x", len(writes), writes)
	}
	var out []sent
	for i := 0; i < len(writes); i += 6 {
		w := writes[i : i+6]
		for j := 0; j < 6; j += 3 {
			if w[j]&pinEN != 0 || w[j+1] != w[j]|pinEN || w[j+2] != w[j] {
				t.Fatalf("bad strobe at write %d: % x", i+j, w[j:j+3])
			}
		}
		if w[0]&0x0F != w[3]&0x0F {
			t.Fatalf("control bits differ between nibbles at write %d: % x", i, w)
		}
		out = append(out, sent{role: Role(w[0] & pinRS), b: w[0]&0xF0 | w[3]>>4})
	}
	return out
}

func cmd(b byte) sent  { return sent{RoleCommand, b} }
func data(b byte) sent { return sent{RoleData, b} }

func quietLogger() *log.Entry {
	l := log.New()
	l.SetLevel(log.WarnLevel)
	return log.NewEntry(l)
}

// newTestDev returns an initialized device with the harness cleared.
func newTestDev(t *testing.T, rows, cols uint8) (*Dev, *harness) {
	t.Helper()
	h := &harness{}
	d, err := New(h, h, &Opts{I2CAddr: 0x27, Rows: rows, Cols: cols, Logger: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}
	h.reset()
	return d, h
}

func equalSent(t *testing.T, got, want []sent) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}

func equalStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("event %d: got %s, want %s\ngot:  %v\nwant: %v", i, got[i], want[i], got, want)
		}
	}
}
