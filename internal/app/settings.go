package app

import (
	"log/slog"
	"time"
)

// Settings are the four integer values taken from the command line.
type Settings struct {
	IntervalSec      int
	IntervalMsec     int
	LogThresholdMsec int
	Priority         int
}

// DefaultSettings returns the values used for any argument not supplied.
func DefaultSettings() Settings {
	return Settings{
		IntervalSec:      0,
		IntervalMsec:     500,
		LogThresholdMsec: 1000,
		Priority:         90,
	}
}

// Interval is the combined seconds and milliseconds interval.
func (s Settings) Interval() time.Duration {
	return time.Duration(s.IntervalSec)*time.Second + time.Duration(s.IntervalMsec)*time.Millisecond
}

// LogThreshold is the logging threshold as a duration.
func (s Settings) LogThreshold() time.Duration {
	return time.Duration(s.LogThresholdMsec) * time.Millisecond
}

// LogValue implements slog.LogValuer.
func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("interval_sec", s.IntervalSec),
		slog.Int("interval_msec", s.IntervalMsec),
		slog.Int("log_threshold_msec", s.LogThresholdMsec),
		slog.Int("priority", s.Priority),
	)
}
