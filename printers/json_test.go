package printers_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/optchain/optchain/printers"
	"github.com/optchain/optchain/statistics"
	"github.com/stretchr/testify/assert"
)

func decodeJSONEvents(t *testing.T, output string) []printers.JSONData {
	t.Helper()

	var events []printers.JSONData
	decoder := json.NewDecoder(strings.NewReader(output))
	for decoder.More() {
		var data printers.JSONData
		if err := decoder.Decode(&data); err != nil {
			t.Fatalf("decode JSON event: %v", err)
		}
		events = append(events, data)
	}

	return events
}

func TestJSONPrinter_PrintStart(t *testing.T) {
	p := printers.NewJSONPrinter(false)

	output := captureOutput(func() {
		p.PrintStart(&statistics.Statistics{Planned: 12})
	})

	events := decodeJSONEvents(t, output)
	assert.Len(t, events, 1)
	assert.Equal(t, "start", string(events[0].Type))
	assert.Contains(t, events[0].Message, "12 scenarios")
}

func TestJSONPrinter_PrintPresent(t *testing.T) {
	p := printers.NewJSONPrinter(false)

	output := captureOutput(func() {
		p.PrintPresent(&statistics.Result{
			Scenario: "filter",
			Doc:      "keep the USB only when its version is 3.0",
			Value:    "USB 3.0 found",
			Elapsed:  0.05,
		})
	})

	events := decodeJSONEvents(t, output)
	assert.Len(t, events, 1)
	assert.Equal(t, "scenario", string(events[0].Type))
	assert.NotNil(t, events[0].Present)
	assert.True(t, *events[0].Present)
	assert.Equal(t, "filter", events[0].Scenario)
	assert.Equal(t, "USB 3.0 found", events[0].Value)
}

func TestJSONPrinter_PrintPresent_AbsentOnly(t *testing.T) {
	p := printers.NewJSONPrinter(false,
		printers.WithAbsentOnly[*printers.JSONPrinter](),
	)

	output := captureOutput(func() {
		p.PrintPresent(&statistics.Result{Scenario: "of", Value: "My Soundcard"})
	})

	assert.Empty(t, output)
}

func TestJSONPrinter_PrintAbsent(t *testing.T) {
	p := printers.NewJSONPrinter(false)

	output := captureOutput(func() {
		p.PrintAbsent(&statistics.Result{
			Scenario: "empty",
			Absent:   true,
		})
	})

	events := decodeJSONEvents(t, output)
	assert.Len(t, events, 1)
	assert.NotNil(t, events[0].Present)
	assert.False(t, *events[0].Present)
	assert.Contains(t, events[0].Message, "no value present in empty")
}

func TestJSONPrinter_PrintRaised(t *testing.T) {
	p := printers.NewJSONPrinter(false)

	output := captureOutput(func() {
		p.PrintRaised(&statistics.Result{
			Scenario: "of-nil",
			Err:      errors.New("optional: value must not be nil"),
		})
	})

	events := decodeJSONEvents(t, output)
	assert.Len(t, events, 1)
	assert.Equal(t, "optional: value must not be nil", events[0].Error)
	assert.NotNil(t, events[0].Present)
	assert.False(t, *events[0].Present)
}

func TestJSONPrinter_PrintPresent_WithTimestamp(t *testing.T) {
	p := printers.NewJSONPrinter(false,
		printers.WithTimestamp[*printers.JSONPrinter](),
	)

	output := captureOutput(func() {
		p.PrintPresent(&statistics.Result{
			Scenario: "of",
			Value:    "My Soundcard",
			Time:     time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
		})
	})

	events := decodeJSONEvents(t, output)
	assert.Len(t, events, 1)
	assert.Equal(t, "2024-01-15 10:30:45", events[0].Timestamp)
}

func TestJSONPrinter_PrintError(t *testing.T) {
	p := printers.NewJSONPrinter(false)

	output := captureOutput(func() {
		p.PrintError("unknown scenario(s): %s", "bogus")
	})

	events := decodeJSONEvents(t, output)
	assert.Len(t, events, 1)
	assert.Equal(t, "error", string(events[0].Type))
	assert.Contains(t, events[0].Message, "bogus")
}

func TestJSONPrinter_PrintStatistics(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	p := printers.NewJSONPrinter(false)
	stats := &statistics.Statistics{
		TotalScenarios: 12,
		PresentValues:  7,
		AbsentValues:   3,
		RaisedErrors:   2,
		StartTime:      now,
		EndTime:        now.Add(2 * time.Second),
		ElapsedResults: statistics.ElapsedResult{
			HasResults: true,
			Min:        0.001,
			Average:    0.004,
			Max:        0.010,
		},
	}

	output := captureOutput(func() {
		p.PrintStatistics(stats)
	})

	events := decodeJSONEvents(t, output)
	assert.Len(t, events, 1)

	data := events[0]
	assert.Equal(t, "statistics", string(data.Type))
	assert.Equal(t, uint(12), data.TotalScenarios)
	assert.Equal(t, uint(7), data.PresentValues)
	assert.Equal(t, uint(3), data.AbsentValues)
	assert.Equal(t, uint(2), data.RaisedErrors)
	assert.Equal(t, "41.67", data.EmptyPathPct)
	assert.Equal(t, "0.001", data.ElapsedMin)
	assert.Equal(t, "0.010", data.ElapsedMax)
	assert.Equal(t, "2.000", data.TotalDuration)
}

func TestJSONPrinter_Pretty(t *testing.T) {
	p := printers.NewJSONPrinter(true)

	output := captureOutput(func() {
		p.PrintStart(&statistics.Statistics{Planned: 1})
	})

	assert.Contains(t, output, "\n\t")
}
