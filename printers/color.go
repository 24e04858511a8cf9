package printers

import (
	"math"
	"time"

	"github.com/gookit/color"

	"github.com/optchain/optchain/consts"
	"github.com/optchain/optchain/option"
	"github.com/optchain/optchain/statistics"
)

// Color functions used when printing information
var (
	colorCyan        = color.Cyan.Printf
	colorLightCyan   = color.LightCyan.Printf
	colorGreen       = color.Green.Printf
	colorLightGreen  = color.LightGreen.Printf
	colorYellow      = color.Yellow.Printf
	colorLightYellow = color.LightYellow.Printf
	colorRed         = color.Red.Printf
	colorLightBlue   = color.FgLightBlue.Printf
)

// ColorPrinter prints scenario outcomes with color support: green for
// present values, yellow for the empty path, red for raised errors.
type ColorPrinter struct {
	opt options
}

// ColorPrinterOption configures a ColorPrinter.
type ColorPrinterOption = option.Option[ColorPrinter]

func (p *ColorPrinter) options() *options {
	return &p.opt
}

// NewColorPrinter creates a new ColorPrinter instance.
func NewColorPrinter(opts ...ColorPrinterOption) *ColorPrinter {
	p := &ColorPrinter{}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Shutdown prints the final statistics.
func (p *ColorPrinter) Shutdown(s *statistics.Statistics) {
	if s.EndTime.IsZero() {
		s.EndTime = time.Now()
	}

	PrintStats(p, s)
}

// PrintStart prints the start message indicating how many scenarios will run.
func (p *ColorPrinter) PrintStart(s *statistics.Statistics) {
	colorLightCyan("Demonstrating null-safety with %d scenarios\n", s.Planned)
}

// PrintPresent prints a message for a scenario that produced a value.
func (p *ColorPrinter) PrintPresent(r *statistics.Result) {
	if p.opt.ShowAbsentOnly {
		return
	}

	if p.opt.ShowTimestamp {
		colorLightGreen("%s value present in %s: %s time=%.3f ms\n",
			r.Time.Format(consts.TimeFormat),
			r.Scenario,
			r.Value,
			r.Elapsed)
	} else {
		colorLightGreen("value present in %s: %s time=%.3f ms\n",
			r.Scenario,
			r.Value,
			r.Elapsed)
	}
}

// PrintAbsent prints a message for a scenario that ended on the empty path.
func (p *ColorPrinter) PrintAbsent(r *statistics.Result) {
	if p.opt.ShowTimestamp {
		colorYellow("%s no value present in %s\n",
			r.Time.Format(consts.TimeFormat),
			r.Scenario)
	} else {
		colorYellow("no value present in %s\n", r.Scenario)
	}
}

// PrintRaised prints a message for a scenario that raised an absence error.
func (p *ColorPrinter) PrintRaised(r *statistics.Result) {
	if p.opt.ShowTimestamp {
		colorRed("%s error raised in %s: %v\n",
			r.Time.Format(consts.TimeFormat),
			r.Scenario,
			r.Err)
	} else {
		colorRed("error raised in %s: %v\n", r.Scenario, r.Err)
	}
}

// PrintError prints an error message in red.
func (p *ColorPrinter) PrintError(format string, args ...any) {
	colorRed(format+"\n", args...)
}

// PrintStatistics prints a summary of the demonstration run: executed
// scenario counts, empty-path percentage and scenario timing.
func (p *ColorPrinter) PrintStatistics(s *statistics.Statistics) {
	colorYellow("\n--- null-safety demonstration statistics ---\n")

	colorYellow("%d scenarios executed | ", s.TotalScenarios)
	colorYellow("%d produced a value, ", s.PresentValues)

	emptyPath := (float32(s.AbsentValues+s.RaisedErrors) / float32(s.TotalScenarios)) * 100

	if math.IsNaN(float64(emptyPath)) {
		emptyPath = 0
	}

	switch {
	case emptyPath == 0:
		colorGreen("%.2f%%", emptyPath)
	case emptyPath > 0 && emptyPath <= 30:
		colorLightYellow("%.2f%%", emptyPath)
	default:
		colorRed("%.2f%%", emptyPath)
	}

	colorYellow(" took the empty path\n")

	colorYellow("present values: ")
	colorGreen("%d\n", s.PresentValues)

	colorYellow("absent values:  ")
	colorLightYellow("%d\n", s.AbsentValues)

	colorYellow("raised errors:  ")
	colorRed("%d\n", s.RaisedErrors)

	if s.ElapsedResults.HasResults {
		colorYellow("scenario time ")
		colorGreen("min")
		colorYellow("/")
		colorCyan("avg")
		colorYellow("/")
		colorRed("max: ")
		colorGreen("%.3f", s.ElapsedResults.Min)
		colorYellow("/")
		colorCyan("%.3f", s.ElapsedResults.Average)
		colorYellow("/")
		colorRed("%.3f", s.ElapsedResults.Max)
		colorYellow(" ms\n")
	}

	colorYellow("--------------------------------------\n")
	colorYellow("demonstration started at: %v\n", s.StartTimeFormatted())

	/* If the program was not terminated, no need to show the end time */
	if !s.EndTime.IsZero() {
		colorYellow("demonstration ended at:   %v\n", s.EndTimeFormatted())
		colorLightBlue("duration: %s\n\n", statistics.DurationToString(s.EndTime.Sub(s.StartTime)))
	}
}
