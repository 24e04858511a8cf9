package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecondsToDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    time.Duration
	}{
		{seconds: 1, want: time.Second},
		{seconds: 0.5, want: 500 * time.Millisecond},
		{seconds: 2.5, want: 2500 * time.Millisecond},
		{seconds: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SecondsToDuration(tt.seconds))
	}
}

func TestNanoToMillisecond(t *testing.T) {
	tests := []struct {
		nano int64
		want float32
	}{
		{nano: int64(time.Millisecond), want: 1},
		{nano: int64(1500 * time.Microsecond), want: 1.5},
		{nano: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NanoToMillisecond(tt.nano))
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1   string
		v2   string
		want int
	}{
		{v1: "1.0.0", v2: "1.0.0", want: 0},
		{v1: "1.0.0", v2: "1.0.1", want: -1},
		{v1: "1.2.0", v2: "1.0.9", want: 1},
		{v1: "1.0", v2: "1.0.1", want: -1},
		{v1: "2.0.0.1", v2: "2.0.0", want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, compareVersions(tt.v1, tt.v2))
	}
}
