package printers

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/optchain/optchain/consts"
	"github.com/optchain/optchain/option"
	"github.com/optchain/optchain/statistics"
)

const (
	colTimestamp = "Timestamp"
	colOutcome   = "Outcome"
	colScenario  = "Scenario"
	colDetail    = "Detail"
	colElapsed   = "Time(ms)"
)

const (
	outcomePresent = "Present"
	outcomeAbsent  = "Absent"
	outcomeRaised  = "Raised"
)

const (
	filePermission os.FileMode = 0644
	fileFlag       int         = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
)

// CSVPrinter writes scenario outcomes and statistics to CSV files.
type CSVPrinter struct {
	ResultWriter *csv.Writer
	StatsWriter  *csv.Writer
	ResultFile   *os.File
	StatsFile    *os.File
	opt          options
}

// CSVPrinterOption configures a CSVPrinter.
type CSVPrinterOption = option.Option[CSVPrinter]

func (p *CSVPrinter) options() *options {
	return &p.opt
}

// NewCSVPrinter initializes a CSVPrinter instance with the given filename and settings.
func NewCSVPrinter(filePath string, opts ...CSVPrinterOption) (*CSVPrinter, error) {
	resultFilename := addCSVExtension(filePath, false)

	resultFile, err := os.OpenFile(resultFilename, fileFlag, filePermission)
	if err != nil {
		return nil, fmt.Errorf("create result CSV file %s: %w", resultFilename, err)
	}

	statsFilename := addCSVExtension(filePath, true)

	statsFile, err := os.OpenFile(statsFilename, fileFlag, filePermission)
	if err != nil {
		resultFile.Close()
		return nil, fmt.Errorf("create stats CSV file %s: %w", statsFilename, err)
	}

	p := &CSVPrinter{
		ResultWriter: csv.NewWriter(resultFile),
		StatsWriter:  csv.NewWriter(statsFile),
		ResultFile:   resultFile,
		StatsFile:    statsFile,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

func addCSVExtension(filename string, withStatsExt bool) string {
	if withStatsExt {
		// Remove .csv extension if present, then add _stats.csv
		base := strings.TrimSuffix(filename, ".csv")
		return base + "_stats.csv"
	}

	if strings.HasSuffix(filename, ".csv") {
		return filename
	}

	return filename + ".csv"
}

// Done flushes the buffer of writers and closes the result and stats file
func (p *CSVPrinter) Done() {
	if p.ResultWriter != nil {
		p.ResultWriter.Flush()
	}

	if p.ResultFile != nil {
		p.ResultFile.Close()
	}

	if p.StatsWriter != nil {
		p.StatsWriter.Flush()
	}

	if p.StatsFile != nil {
		p.StatsFile.Close()
	}
}

// Shutdown prints the final statistics and performs cleanup for the printer.
func (p *CSVPrinter) Shutdown(s *statistics.Statistics) {
	if s.EndTime.IsZero() {
		s.EndTime = time.Now()
	}

	PrintStats(p, s)
	p.Done()
}

func (p *CSVPrinter) writeResultHeader() error {
	headers := []string{}

	if p.opt.ShowTimestamp {
		headers = append(headers, colTimestamp)
	}

	headers = append(headers, colOutcome, colScenario, colDetail, colElapsed)

	if err := p.ResultWriter.Write(headers); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}

	p.ResultWriter.Flush()

	return p.ResultWriter.Error()
}

func (p *CSVPrinter) writeStatsHeader() error {
	headers := []string{
		"Metric",
		"Value",
	}

	if err := p.StatsWriter.Write(headers); err != nil {
		return fmt.Errorf("write statistics headers: %w", err)
	}

	p.StatsWriter.Flush()

	return p.StatsWriter.Error()
}

func (p *CSVPrinter) writeResult(outcome string, r *statistics.Result, detail string) {
	record := []string{}

	if p.opt.ShowTimestamp {
		record = append(record, r.Time.Format(consts.TimeFormat))
	}

	record = append(
		record,
		outcome,
		r.Scenario,
		detail,
		fmt.Sprintf("%.3f", r.Elapsed),
	)

	if err := p.ResultWriter.Write(record); err != nil {
		p.PrintError("Failed to write %s record: %v", outcome, err)
	}

	p.ResultWriter.Flush()
}

// PrintStart writes the CSV headers and logs where results are saved.
func (p *CSVPrinter) PrintStart(s *statistics.Statistics) {
	if err := p.writeResultHeader(); err != nil {
		p.PrintError("%v", err)
	}

	if err := p.writeStatsHeader(); err != nil {
		p.PrintError("%v", err)
	}

	fmt.Printf("Demonstrating null-safety with %d scenarios - saving the results to: %s\n",
		s.Planned, p.ResultFile.Name())
}

// PrintPresent logs a scenario that produced a value to the CSV file.
func (p *CSVPrinter) PrintPresent(r *statistics.Result) {
	if p.opt.ShowAbsentOnly {
		return
	}

	p.writeResult(outcomePresent, r, r.Value)
}

// PrintAbsent logs a scenario that ended on the empty path to the CSV file.
func (p *CSVPrinter) PrintAbsent(r *statistics.Result) {
	p.writeResult(outcomeAbsent, r, "no value present")
}

// PrintRaised logs a scenario that raised an absence error to the CSV file.
func (p *CSVPrinter) PrintRaised(r *statistics.Result) {
	p.writeResult(outcomeRaised, r, r.Err.Error())
}

// PrintError logs an error message to stderr.
func (p *CSVPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "CSV Error: "+format+"\n", args...)
}

// PrintStatistics logs run statistics to the stats CSV file.
func (p *CSVPrinter) PrintStatistics(s *statistics.Statistics) {
	timestamp := time.Now().Format(time.DateTime)

	emptyPath := (float32(s.AbsentValues+s.RaisedErrors) / float32(s.TotalScenarios)) * 100
	if math.IsNaN(float64(emptyPath)) {
		emptyPath = 0
	}

	stats := [][]string{
		{"Timestamp", timestamp},
		{"Total Scenarios", fmt.Sprintf("%d", s.TotalScenarios)},
		{"Present Values", fmt.Sprintf("%d", s.PresentValues)},
		{"Absent Values", fmt.Sprintf("%d", s.AbsentValues)},
		{"Raised Errors", fmt.Sprintf("%d", s.RaisedErrors)},
		{"Empty Path Percentage", fmt.Sprintf("%.2f", emptyPath)},
	}

	if s.ElapsedResults.HasResults {
		stats = append(stats, []string{"Scenario Time Min", fmt.Sprintf("%.3f", s.ElapsedResults.Min)})
		stats = append(stats, []string{"Scenario Time Avg", fmt.Sprintf("%.3f", s.ElapsedResults.Average)})
		stats = append(stats, []string{"Scenario Time Max", fmt.Sprintf("%.3f", s.ElapsedResults.Max)})
	} else {
		stats = append(stats, []string{"Scenario Time Min", "N/A"})
		stats = append(stats, []string{"Scenario Time Avg", "N/A"})
		stats = append(stats, []string{"Scenario Time Max", "N/A"})
	}

	stats = append(stats, []string{"Start Timestamp", s.StartTime.Format(time.DateTime)})

	if !s.EndTime.IsZero() {
		stats = append(stats, []string{"End Timestamp", s.EndTime.Format(time.DateTime)})
		stats = append(stats, []string{"Total Duration", statistics.DurationToString(s.EndTime.Sub(s.StartTime))})
	} else {
		stats = append(stats, []string{"End Timestamp", "In progress"})
	}

	for _, record := range stats {
		if err := p.StatsWriter.Write(record); err != nil {
			p.PrintError("Failed to write statistics record: %v", err)
			return
		}
	}

	p.StatsWriter.Flush()

	fmt.Printf("\nStatistics have been saved to: %s\n", p.StatsFile.Name())
}
