package pacing

import (
	"log/slog"
	"time"
)

// DefaultScanRate is the polling frequency for analog sensor reads: one scan
// per millisecond, so several samples land inside each 7 ms peak window.
const DefaultScanRate = 1000 // Hz

// ScanInterval returns the target duration of a single scan at rate Hz.
func ScanInterval(rateHz int) time.Duration {
	return time.Second / time.Duration(rateHz)
}

// AdaptiveLimiter paces scans with drift compensation: it sleeps for the
// bulk of the wait and busy-waits the last stretch for accuracy, then nudges
// its schedule if it has drifted noticeably from wall-clock time.
type AdaptiveLimiter struct {
	targetInterval time.Duration
	nextScanTime   time.Time
	scanCounter    int64
}

// NewAdaptiveLimiter creates a limiter targeting rateHz scans per second.
func NewAdaptiveLimiter(rateHz int) *AdaptiveLimiter {
	return &AdaptiveLimiter{
		targetInterval: ScanInterval(rateHz),
		nextScanTime:   time.Now(),
	}
}

func (a *AdaptiveLimiter) WaitForNextScan() {
	now := time.Now()
	sleepTime := a.nextScanTime.Sub(now)

	if sleepTime > 0 {
		if sleepTime < 2*time.Millisecond {
			for time.Now().Before(a.nextScanTime) {
				// busy-wait for sub-2ms waits, higher accuracy than Sleep.
			}
		} else {
			time.Sleep(sleepTime - time.Millisecond)
			for time.Now().Before(a.nextScanTime) {
			}
		}
	} else if sleepTime < -5*time.Millisecond {
		// fell far behind (e.g. blocked on I/O); resync instead of
		// free-running to catch up.
		a.nextScanTime = now
	}

	a.nextScanTime = a.nextScanTime.Add(a.targetInterval)
	a.scanCounter++

	if a.scanCounter%DefaultScanRate == 0 {
		drift := time.Now().Sub(a.nextScanTime)
		if drift.Abs() > 10*time.Millisecond {
			a.nextScanTime = a.nextScanTime.Add(drift / 10)
			slog.Debug("pacing drift correction", "drift_ms", drift.Milliseconds(), "scans", a.scanCounter)
		}
	}
}

func (a *AdaptiveLimiter) Reset() {
	a.nextScanTime = time.Now()
	a.scanCounter = 0
}
