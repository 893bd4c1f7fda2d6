package sntp

import (
	"time"

	"golang.org/x/sys/unix"
)

// Clock provides the monotonic millisecond counter and the cooperative sleep
// the exchange depends on. The transport sleeps between receive polls and
// the client sleeps out the remainder of the current second; neither may
// busy-wait.
type Clock interface {
	Millis() int64
	Sleep(d time.Duration)
}

// SystemClock reads CLOCK_MONOTONIC.
type SystemClock struct{}

func (SystemClock) Millis() int64 {
	var ts unix.Timespec
	unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	return ts.Sec*1000 + ts.Nsec/1e6
}

func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
