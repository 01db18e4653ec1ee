/*
Copyright 2024 Tim St. Pierre
Blocking delays used to meet the controller timing
*/
package lcd1602

import "time"

// Delay blocks the caller for at least the requested time.
type Delay interface {
	DelayMs(ms uint32)
	DelayUs(us uint32)
}

// Sleeper is a Delay backed by time.Sleep.
type Sleeper struct{}

func (Sleeper) DelayMs(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func (Sleeper) DelayUs(us uint32) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}
