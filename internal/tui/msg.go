package tui

import "time"

// MsgTick drives automatic stepping while the knight is running. Gen ties
// the tick to the start that scheduled it so ticks left over from an earlier
// start, stop or reset are dropped.
type MsgTick struct {
	Gen  int
	Time time.Time
}
