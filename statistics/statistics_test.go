package statistics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/optchain/optchain/statistics"
	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	var s statistics.Statistics

	s.Record(statistics.Result{Scenario: "of", Value: "My Soundcard", Elapsed: 0.12})
	s.Record(statistics.Result{Scenario: "empty", Absent: true, Elapsed: 0.05})
	s.Record(statistics.Result{Scenario: "of-nil", Err: errors.New("nil value"), Elapsed: 0.07})

	assert.Equal(t, uint(3), s.TotalScenarios)
	assert.Equal(t, uint(1), s.PresentValues)
	assert.Equal(t, uint(1), s.AbsentValues)
	assert.Equal(t, uint(1), s.RaisedErrors)
	assert.Equal(t, float32(0.07), s.LatestElapsed)
	assert.Len(t, s.Elapsed, 3)
}

func TestCalcMinAvgMaxElapsed(t *testing.T) {
	tests := []struct {
		name    string
		elapsed []float32
		want    statistics.ElapsedResult
	}{
		{
			name:    "no results",
			elapsed: nil,
			want:    statistics.ElapsedResult{},
		},
		{
			name:    "single result",
			elapsed: []float32{1.5},
			want: statistics.ElapsedResult{
				HasResults: true,
				Min:        1.5,
				Average:    1.5,
				Max:        1.5,
			},
		},
		{
			name:    "multiple results",
			elapsed: []float32{2, 1, 3},
			want: statistics.ElapsedResult{
				HasResults: true,
				Min:        1,
				Average:    2,
				Max:        3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statistics.CalcMinAvgMaxElapsed(tt.elapsed))
		})
	}
}

func TestDurationToString(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "sub-second",
			duration: 300 * time.Millisecond,
			want:     "0.3 seconds",
		},
		{
			name:     "one second",
			duration: time.Second,
			want:     "1 second",
		},
		{
			name:     "seconds",
			duration: 42 * time.Second,
			want:     "42 seconds",
		},
		{
			name:     "one minute",
			duration: time.Minute,
			want:     "1 minute",
		},
		{
			name:     "minutes and seconds",
			duration: 2*time.Minute + 5*time.Second,
			want:     "2 minutes 5 seconds",
		},
		{
			name:     "one hour",
			duration: time.Hour,
			want:     "1 hour",
		},
		{
			name:     "hours minutes seconds",
			duration: 3*time.Hour + 4*time.Minute + 5*time.Second,
			want:     "3 hours 4 minutes 5 seconds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statistics.DurationToString(tt.duration))
		})
	}
}
