package printers

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
	"unicode"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/optchain/optchain/consts"
	"github.com/optchain/optchain/option"
	"github.com/optchain/optchain/statistics"
)

const (
	eventTypeScenario   = "scenario"
	eventTypeStatistics = "statistics"
)

const (
	dataTableSchema = `CREATE TABLE %s (
    id INTEGER PRIMARY KEY,
    event_type TEXT NOT NULL, -- for the row type eg. scenario, statistics
    timestamp DATETIME,

    scenario TEXT,
    doc TEXT,
    outcome TEXT, -- present, absent or raised
    value TEXT,
    error TEXT,
    elapsed_ms REAL,

    total_scenarios INTEGER,
    present_values INTEGER,
    absent_values INTEGER,
    raised_errors INTEGER,
    empty_path_percentage REAL,

    elapsed_min REAL,
    elapsed_avg REAL,
    elapsed_max REAL,

    start_time DATETIME,
    end_time DATETIME,
    total_duration TEXT
	);`

	// SQL statement for inserting a scenario outcome into the table
	resultSaveSchema = `INSERT INTO %s (
	event_type,
	timestamp,
	scenario,
	doc,
	outcome,
	value,
	error,
	elapsed_ms) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	// SQL statement for inserting statistics into the table
	statSaveSchema = `INSERT INTO %s (
	event_type,
	timestamp,
	total_scenarios,
	present_values,
	absent_values,
	raised_errors,
	empty_path_percentage,
	elapsed_min,
	elapsed_avg,
	elapsed_max,
	start_time,
	end_time,
	total_duration) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
)

// DatabasePrinter stores scenario outcomes in a SQLite database.
type DatabasePrinter struct {
	Conn      *sqlite.Conn
	DbPath    string
	TableName string
	opt       options
}

// DatabasePrinterOption configures a DatabasePrinter.
type DatabasePrinterOption = option.Option[DatabasePrinter]

func (p *DatabasePrinter) options() *options {
	return &p.opt
}

// NewDatabasePrinter initializes a new sqlite3 database instance, creates the
// data table, and returns a pointer to it.
func NewDatabasePrinter(dbPath string, opts ...DatabasePrinterOption) (*DatabasePrinter, error) {
	filename := addDbExtension(dbPath)

	conn, err := sqlite.OpenConn(filename, sqlite.OpenCreate, sqlite.OpenReadWrite)
	if err != nil {
		return nil, fmt.Errorf("create the database %q: %w", filename, err)
	}

	tableName := sanitizeTableName()
	tableSchema := fmt.Sprintf(dataTableSchema, tableName)

	if err := sqlitex.Execute(conn, tableSchema, &sqlitex.ExecOptions{}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create the data table: %w", err)
	}

	p := &DatabasePrinter{
		Conn:      conn,
		DbPath:    filename,
		TableName: tableName,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

func addDbExtension(filename string) string {
	if strings.HasSuffix(filename, ".db") {
		return filename
	}

	return filename + ".db"
}

// sanitizeTableName returns the correctly formatted table name,
// "optchain__year_month_day_hour_minute_sec".
// Table names can't have '-', ':' or ' ' and can't start with numbers.
func sanitizeTableName() string {
	sanitizedTime := strings.ReplaceAll(time.Now().Format(consts.TimeFormat), "-", "_")
	sanitizedTime = strings.ReplaceAll(sanitizedTime, ":", "_")
	sanitizedTime = strings.ReplaceAll(sanitizedTime, " ", "_")

	tableName := fmt.Sprintf("optchain__%s", sanitizedTime)

	if unicode.IsNumber(rune(tableName[0])) {
		tableName = "_" + tableName
	}

	return tableName
}

// Shutdown prints the final statistics and closes the database connection.
func (p *DatabasePrinter) Shutdown(s *statistics.Statistics) {
	if s.EndTime.IsZero() {
		s.EndTime = time.Now()
	}

	PrintStats(p, s)
	p.Conn.Close()
}

// PrintStart logs where the results are saved.
func (p *DatabasePrinter) PrintStart(s *statistics.Statistics) {
	fmt.Printf("Demonstrating null-safety with %d scenarios - saving results to: %s\n",
		s.Planned, p.DbPath)
}

func (p *DatabasePrinter) saveResult(outcome string, r *statistics.Result) error {
	errText := ""
	if r.Err != nil {
		errText = r.Err.Error()
	}

	args := []any{
		eventTypeScenario,
		r.Time.Format(consts.TimeFormat),
		r.Scenario,
		r.Doc,
		outcome,
		r.Value,
		errText,
		r.Elapsed,
	}

	return sqlitex.Execute(
		p.Conn,
		fmt.Sprintf(resultSaveSchema, p.TableName),
		&sqlitex.ExecOptions{Args: args},
	)
}

// PrintPresent saves a scenario that produced a value to the database.
func (p *DatabasePrinter) PrintPresent(r *statistics.Result) {
	if p.opt.ShowAbsentOnly {
		return
	}

	if err := p.saveResult(outcomePresent, r); err != nil {
		p.PrintError("\nError while writing scenario result to the database %q\nerr: %s", p.DbPath, err)
	}
}

// PrintAbsent saves a scenario that ended on the empty path to the database.
func (p *DatabasePrinter) PrintAbsent(r *statistics.Result) {
	if err := p.saveResult(outcomeAbsent, r); err != nil {
		p.PrintError("\nError while writing scenario result to the database %q\nerr: %s", p.DbPath, err)
	}
}

// PrintRaised saves a scenario that raised an absence error to the database.
func (p *DatabasePrinter) PrintRaised(r *statistics.Result) {
	if err := p.saveResult(outcomeRaised, r); err != nil {
		p.PrintError("\nError while writing scenario result to the database %q\nerr: %s", p.DbPath, err)
	}
}

// saveStats saves stats to the database with proper formatting
func (p *DatabasePrinter) saveStats(s *statistics.Statistics) error {
	emptyPath := (float32(s.AbsentValues+s.RaisedErrors) / float32(s.TotalScenarios)) * 100
	if math.IsNaN(float64(emptyPath)) {
		emptyPath = 0
	}

	var totalDuration string
	if s.EndTime.IsZero() {
		totalDuration = time.Since(s.StartTime).String()
	} else {
		totalDuration = s.EndTime.Sub(s.StartTime).String()
	}

	args := []any{
		eventTypeStatistics,
		time.Now().Format(consts.TimeFormat),
		s.TotalScenarios,
		s.PresentValues,
		s.AbsentValues,
		s.RaisedErrors,
		emptyPath,
		fmt.Sprintf("%.3f", s.ElapsedResults.Min),
		fmt.Sprintf("%.3f", s.ElapsedResults.Average),
		fmt.Sprintf("%.3f", s.ElapsedResults.Max),
		s.StartTime.Format(consts.TimeFormat),
		s.EndTime.Format(consts.TimeFormat),
		totalDuration,
	}

	return sqlitex.Execute(
		p.Conn,
		fmt.Sprintf(statSaveSchema, p.TableName),
		&sqlitex.ExecOptions{Args: args},
	)
}

// PrintStatistics saves run statistics to the database.
// If an error occurs while saving, it logs the error.
func (p *DatabasePrinter) PrintStatistics(s *statistics.Statistics) {
	if err := p.saveStats(s); err != nil {
		p.PrintError("\nError while writing stats to the database %q\nerr: %s", p.DbPath, err)
		return
	}

	consts.ColorYellow("\nStatistics have been saved to %q in the table %q\n", p.DbPath, p.TableName)
}

// PrintError prints an error message to stderr.
func (p *DatabasePrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
