package printers

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/optchain/optchain/consts"
	"github.com/optchain/optchain/option"
	"github.com/optchain/optchain/statistics"
)

// JSONEventType is a special type for each method
// in the printer interface so that automatic tools
// can understand what kind of an event they've received.
// For instance, start vs scenario vs statistics...
type JSONEventType string

const (
	startEvent      JSONEventType = "start"      // Event type for `PrintStart` method.
	scenarioEvent   JSONEventType = "scenario"   // Event type for `PrintPresent`, `PrintAbsent` and `PrintRaised`.
	statisticsEvent JSONEventType = "statistics" // Event type for `PrintStatistics` method.
	errorEvent      JSONEventType = "error"      // Event type for `PrintError` method.
)

// JSONData contains all possible fields for JSON output.
// Because one event usually contains only a subset of fields,
// other fields will be omitted in the output.
type JSONData struct {
	Type JSONEventType `json:"type"` // Specifies type of a message/event.
	// Present is a special field for scenario messages, reporting whether
	// the scenario produced a value.
	// It's a pointer on purpose, otherwise present=false will be omitted,
	// but we still need to omit it for non-scenario messages.
	Present         *bool   `json:"present,omitempty"`
	Timestamp       string  `json:"timestamp,omitempty"`
	Message         string  `json:"message"` // Message contains a message similar to the plain and colored printers.
	Scenario        string  `json:"scenario,omitempty"`
	Doc             string  `json:"doc,omitempty"`
	Value           string  `json:"value,omitempty"`
	Error           string  `json:"error,omitempty"`
	Elapsed         float32 `json:"time,omitempty"` // Elapsed in ms for a scenario message.
	StartTimestamp  string  `json:"startTimestamp,omitempty"`
	EndTimestamp    string  `json:"endTimestamp,omitempty"`
	TotalScenarios  uint    `json:"totalScenarios,omitempty"`
	PlannedCount    uint    `json:"plannedScenarios,omitempty"`
	PresentValues   uint    `json:"presentValues,omitempty"`
	AbsentValues    uint    `json:"absentValues,omitempty"`
	RaisedErrors    uint    `json:"raisedErrors,omitempty"`
	EmptyPathPct    string  `json:"emptyPathPercentage,omitempty"`
	ElapsedMin      string  `json:"timeMin,omitempty"` // ElapsedMin is a stringified 3 decimal places min scenario time.
	ElapsedAvg      string  `json:"timeAvg,omitempty"` // ElapsedAvg is a stringified 3 decimal places avg scenario time.
	ElapsedMax      string  `json:"timeMax,omitempty"` // ElapsedMax is a stringified 3 decimal places max scenario time.
	TotalDuration   string  `json:"totalDuration,omitempty"` // TotalDuration is the total runtime in seconds.
}

// JSONPrinter holds a JSON encoder to print structured JSON output.
type JSONPrinter struct {
	encoder *json.Encoder
	opt     options
}

// JSONPrinterOption configures a JSONPrinter.
type JSONPrinterOption = option.Option[JSONPrinter]

func (p *JSONPrinter) options() *options {
	return &p.opt
}

// NewJSONPrinter creates a new JSONPrinter instance.
// If prettify is true, the JSON output will be formatted with indentation.
func NewJSONPrinter(prettify bool, opts ...JSONPrinterOption) *JSONPrinter {
	encoder := json.NewEncoder(os.Stdout)

	if prettify {
		encoder.SetIndent("", "\t")
	}

	p := &JSONPrinter{encoder: encoder}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Shutdown prints the final statistics.
func (p *JSONPrinter) Shutdown(s *statistics.Statistics) {
	if s.EndTime.IsZero() {
		s.EndTime = time.Now()
	}

	PrintStats(p, s)
}

// PrintStart prints the initial message before running scenarios.
func (p *JSONPrinter) PrintStart(s *statistics.Statistics) {
	p.encoder.Encode(JSONData{
		Type:         startEvent,
		Message:      fmt.Sprintf("Demonstrating null-safety with %d scenarios", s.Planned),
		PlannedCount: s.Planned,
	})
}

// PrintPresent prints a scenario that produced a value in JSON format.
func (p *JSONPrinter) PrintPresent(r *statistics.Result) {
	if p.opt.ShowAbsentOnly {
		return
	}

	// so that the *bool field does not get omitted
	t := true

	data := JSONData{
		Type:     scenarioEvent,
		Present:  &t,
		Scenario: r.Scenario,
		Doc:      r.Doc,
		Value:    r.Value,
		Elapsed:  r.Elapsed,
		Message: fmt.Sprintf("value present in %s: %s time=%.3f ms",
			r.Scenario,
			r.Value,
			r.Elapsed),
	}

	if p.opt.ShowTimestamp {
		data.Timestamp = r.Time.Format(consts.TimeFormat)
	}

	p.encoder.Encode(data)
}

// PrintAbsent prints a scenario that ended on the empty path in JSON format.
func (p *JSONPrinter) PrintAbsent(r *statistics.Result) {
	f := false

	data := JSONData{
		Type:     scenarioEvent,
		Present:  &f,
		Scenario: r.Scenario,
		Doc:      r.Doc,
		Elapsed:  r.Elapsed,
		Message:  fmt.Sprintf("no value present in %s", r.Scenario),
	}

	if p.opt.ShowTimestamp {
		data.Timestamp = r.Time.Format(consts.TimeFormat)
	}

	p.encoder.Encode(data)
}

// PrintRaised prints a scenario that raised an absence error in JSON format.
func (p *JSONPrinter) PrintRaised(r *statistics.Result) {
	f := false

	data := JSONData{
		Type:     scenarioEvent,
		Present:  &f,
		Scenario: r.Scenario,
		Doc:      r.Doc,
		Error:    r.Err.Error(),
		Elapsed:  r.Elapsed,
		Message:  fmt.Sprintf("error raised in %s: %v", r.Scenario, r.Err),
	}

	if p.opt.ShowTimestamp {
		data.Timestamp = r.Time.Format(consts.TimeFormat)
	}

	p.encoder.Encode(data)
}

// PrintError formats and prints an error message in JSON format.
func (p *JSONPrinter) PrintError(format string, args ...any) {
	p.encoder.Encode(JSONData{
		Type:    errorEvent,
		Message: fmt.Sprintf(format, args...),
	})
}

// PrintStatistics prints all gathered stats when the program exits.
func (p *JSONPrinter) PrintStatistics(s *statistics.Statistics) {
	data := JSONData{
		Type:           statisticsEvent,
		Timestamp:      time.Now().Format(consts.TimeFormat),
		StartTimestamp: s.StartTime.Format(consts.TimeFormat),
		TotalScenarios: s.TotalScenarios,
		PresentValues:  s.PresentValues,
		AbsentValues:   s.AbsentValues,
		RaisedErrors:   s.RaisedErrors,
	}

	data.Message = fmt.Sprintf("null-safety demonstration statistics - %d scenarios executed | %d produced a value",
		s.TotalScenarios,
		s.PresentValues)

	emptyPath := (float32(s.AbsentValues+s.RaisedErrors) / float32(s.TotalScenarios)) * 100
	if math.IsNaN(float64(emptyPath)) {
		emptyPath = 0
	}

	data.EmptyPathPct = fmt.Sprintf("%.2f", emptyPath)

	if s.ElapsedResults.HasResults {
		data.ElapsedMin = fmt.Sprintf("%.3f", s.ElapsedResults.Min)
		data.ElapsedAvg = fmt.Sprintf("%.3f", s.ElapsedResults.Average)
		data.ElapsedMax = fmt.Sprintf("%.3f", s.ElapsedResults.Max)
	}

	if !s.EndTime.IsZero() {
		data.EndTimestamp = s.EndTime.Format(consts.TimeFormat)
		data.TotalDuration = fmt.Sprintf("%.3f", s.EndTime.Sub(s.StartTime).Seconds())
	}

	p.encoder.Encode(data)
}
