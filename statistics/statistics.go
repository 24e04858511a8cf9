// Package statistics tracks the outcomes of a demonstration run: how many
// scenarios produced a value, came back empty, or raised an error, plus
// timing information for the run as a whole.
package statistics

import (
	"fmt"
	"math"
	"time"
)

// Result is the outcome of a single scenario execution.
type Result struct {
	Scenario string
	Doc      string

	// Value holds the rendered value when the scenario produced one.
	Value string

	// Absent is true when the scenario ended on the empty path
	// without raising an error.
	Absent bool

	// Err is set when the scenario raised an absence error.
	Err error

	Elapsed float32 // milliseconds
	Time    time.Time
}

// ElapsedResult holds min, avg and max scenario execution times.
type ElapsedResult struct {
	HasResults bool
	Min        float32
	Average    float32
	Max        float32
}

// Statistics carries every counter and timestamp gathered over a run.
type Statistics struct {
	// Planned is the number of scenario executions the run will perform.
	Planned uint

	// Time tracking
	StartTime time.Time
	EndTime   time.Time

	// Outcome counters
	TotalScenarios uint
	PresentValues  uint
	AbsentValues   uint
	RaisedErrors   uint

	// Elapsed tracking
	Elapsed        []float32
	LatestElapsed  float32
	ElapsedResults ElapsedResult

	// Display options
	WithTimestamp  bool
	ShowAbsentOnly bool
}

// Record folds a scenario result into the counters.
func (s *Statistics) Record(r Result) {
	s.TotalScenarios++

	switch {
	case r.Err != nil:
		s.RaisedErrors++
	case r.Absent:
		s.AbsentValues++
	default:
		s.PresentValues++
	}

	s.Elapsed = append(s.Elapsed, r.Elapsed)
	s.LatestElapsed = r.Elapsed
}

// StartTimeFormatted renders the start time in the shared time format.
func (s *Statistics) StartTimeFormatted() string {
	return s.StartTime.Format(time.DateTime)
}

// EndTimeFormatted renders the end time in the shared time format.
func (s *Statistics) EndTimeFormatted() string {
	return s.EndTime.Format(time.DateTime)
}

// ElapsedStr returns the latest scenario execution time with
// 3 decimal places.
func (s *Statistics) ElapsedStr() string {
	return fmt.Sprintf("%.3f", s.LatestElapsed)
}

// CalcMinAvgMaxElapsed calculates min, avg and max scenario execution times.
func CalcMinAvgMaxElapsed(elapsed []float32) ElapsedResult {
	var sum float32
	var result ElapsedResult

	arrLen := len(elapsed)
	if arrLen > 0 {
		result.Min = elapsed[0]
	}

	for i := 0; i < arrLen; i++ {
		sum += elapsed[i]

		if elapsed[i] > result.Max {
			result.Max = elapsed[i]
		}

		if elapsed[i] < result.Min {
			result.Min = elapsed[i]
		}
	}

	if arrLen > 0 {
		result.HasResults = true
		result.Average = sum / float32(arrLen)
	}

	return result
}

// DurationToString creates a human-readable string for a given duration
func DurationToString(duration time.Duration) string {
	hours := math.Floor(duration.Hours())
	if hours > 0 {
		duration -= time.Duration(hours * float64(time.Hour))
	}

	minutes := math.Floor(duration.Minutes())
	if minutes > 0 {
		duration -= time.Duration(minutes * float64(time.Minute))
	}

	seconds := duration.Seconds()

	switch {
	// Hours
	case hours >= 2:
		return fmt.Sprintf("%.0f hours %.0f minutes %.0f seconds", hours, minutes, seconds)
	case hours == 1 && minutes == 0 && seconds == 0:
		return fmt.Sprintf("%.0f hour", hours)
	case hours == 1:
		return fmt.Sprintf("%.0f hour %.0f minutes %.0f seconds", hours, minutes, seconds)

	// Minutes
	case minutes >= 2:
		return fmt.Sprintf("%.0f minutes %.0f seconds", minutes, seconds)
	case minutes == 1 && seconds == 0:
		return fmt.Sprintf("%.0f minute", minutes)
	case minutes == 1:
		return fmt.Sprintf("%.0f minute %.0f seconds", minutes, seconds)

	// Seconds
	case seconds == 0 || seconds == 1 || seconds >= 1 && seconds < 1.1:
		return fmt.Sprintf("%.0f second", seconds)
	case seconds < 1:
		return fmt.Sprintf("%.1f seconds", seconds)

	default:
		return fmt.Sprintf("%.0f seconds", seconds)
	}
}
