package printers

import (
	"fmt"
	"math"
	"time"

	"github.com/optchain/optchain/consts"
	"github.com/optchain/optchain/option"
	"github.com/optchain/optchain/statistics"
)

// PlainPrinter prints scenario outcomes in a simple, plain text format.
type PlainPrinter struct {
	opt options
}

// PlainPrinterOption configures a PlainPrinter.
type PlainPrinterOption = option.Option[PlainPrinter]

func (p *PlainPrinter) options() *options {
	return &p.opt
}

// NewPlainPrinter creates a new PlainPrinter instance.
func NewPlainPrinter(opts ...PlainPrinterOption) *PlainPrinter {
	p := &PlainPrinter{}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Shutdown prints the final statistics.
func (p *PlainPrinter) Shutdown(s *statistics.Statistics) {
	if s.EndTime.IsZero() {
		s.EndTime = time.Now()
	}

	PrintStats(p, s)
}

// PrintStart prints the start message indicating how many scenarios will run.
func (p *PlainPrinter) PrintStart(s *statistics.Statistics) {
	fmt.Printf("Demonstrating null-safety with %d scenarios\n", s.Planned)
}

// PrintPresent prints a message for a scenario that produced a value.
func (p *PlainPrinter) PrintPresent(r *statistics.Result) {
	if p.opt.ShowAbsentOnly {
		return
	}

	if p.opt.ShowTimestamp {
		fmt.Printf("%s value present in %s: %s time=%.3f ms\n",
			r.Time.Format(consts.TimeFormat),
			r.Scenario,
			r.Value,
			r.Elapsed)
	} else {
		fmt.Printf("value present in %s: %s time=%.3f ms\n",
			r.Scenario,
			r.Value,
			r.Elapsed)
	}
}

// PrintAbsent prints a message for a scenario that ended on the empty path.
func (p *PlainPrinter) PrintAbsent(r *statistics.Result) {
	if p.opt.ShowTimestamp {
		fmt.Printf("%s no value present in %s\n",
			r.Time.Format(consts.TimeFormat),
			r.Scenario)
	} else {
		fmt.Printf("no value present in %s\n", r.Scenario)
	}
}

// PrintRaised prints a message for a scenario that raised an absence error.
func (p *PlainPrinter) PrintRaised(r *statistics.Result) {
	if p.opt.ShowTimestamp {
		fmt.Printf("%s error raised in %s: %v\n",
			r.Time.Format(consts.TimeFormat),
			r.Scenario,
			r.Err)
	} else {
		fmt.Printf("error raised in %s: %v\n", r.Scenario, r.Err)
	}
}

// PrintError prints error messages.
func (p *PlainPrinter) PrintError(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// PrintStatistics prints detailed statistics about the demonstration run.
func (p *PlainPrinter) PrintStatistics(s *statistics.Statistics) {
	fmt.Printf("\n--- null-safety demonstration statistics ---\n")

	fmt.Printf("%d scenarios executed | %d produced a value, ",
		s.TotalScenarios,
		s.PresentValues)

	emptyPath := (float32(s.AbsentValues+s.RaisedErrors) / float32(s.TotalScenarios)) * 100

	if math.IsNaN(float64(emptyPath)) {
		emptyPath = 0
	}

	fmt.Printf("%.2f%% took the empty path\n", emptyPath)
	fmt.Printf("present values: %d\n", s.PresentValues)
	fmt.Printf("absent values:  %d\n", s.AbsentValues)
	fmt.Printf("raised errors:  %d\n", s.RaisedErrors)

	if s.ElapsedResults.HasResults {
		fmt.Printf("scenario time min/avg/max: ")
		fmt.Printf("%.3f/%.3f/%.3f ms\n",
			s.ElapsedResults.Min,
			s.ElapsedResults.Average,
			s.ElapsedResults.Max)
	}

	fmt.Printf("--------------------------------------\n")
	fmt.Printf("demonstration started at: %v\n", s.StartTimeFormatted())

	/* If the program was not terminated, no need to show the end time */
	if !s.EndTime.IsZero() {
		fmt.Printf("demonstration ended at:   %v\n", s.EndTimeFormatted())
		fmt.Printf("duration: %s\n\n", statistics.DurationToString(s.EndTime.Sub(s.StartTime)))
	}
}
