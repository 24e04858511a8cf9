package printers_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/optchain/optchain/printers"
	"github.com/optchain/optchain/statistics"
)

func setupTempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.db")
}

func countRows(t *testing.T, p *printers.DatabasePrinter, eventType string) int {
	t.Helper()

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE event_type = ?", p.TableName)
	err := sqlitex.Execute(p.Conn, query, &sqlitex.ExecOptions{
		Args: []any{eventType},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			count = stmt.ColumnInt(0)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}

	return count
}

func TestNewDatabasePrinter(t *testing.T) {
	dbPath := setupTempDB(t)

	p, err := printers.NewDatabasePrinter(dbPath)
	if err != nil {
		t.Fatalf("NewDatabasePrinter: %v", err)
	}
	if p == nil {
		t.Fatal("NewDatabasePrinter returned nil")
	}
	if p.DbPath != dbPath {
		t.Errorf("expected db path %q, got %q", dbPath, p.DbPath)
	}

	p.Conn.Close()
}

func TestNewDatabasePrinter_AddsExtension(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results")

	p, err := printers.NewDatabasePrinter(dbPath)
	if err != nil {
		t.Fatalf("NewDatabasePrinter: %v", err)
	}
	if p.DbPath != dbPath+".db" {
		t.Errorf("expected .db extension, got %q", p.DbPath)
	}

	p.Conn.Close()
}

func TestDatabasePrinter_SavesResults(t *testing.T) {
	p, err := printers.NewDatabasePrinter(setupTempDB(t))
	if err != nil {
		t.Fatalf("NewDatabasePrinter: %v", err)
	}
	defer p.Conn.Close()

	p.PrintPresent(&statistics.Result{
		Scenario: "of",
		Value:    "My Soundcard",
		Elapsed:  0.012,
		Time:     time.Now(),
	})
	p.PrintAbsent(&statistics.Result{
		Scenario: "empty",
		Absent:   true,
		Time:     time.Now(),
	})
	p.PrintRaised(&statistics.Result{
		Scenario: "of-nil",
		Err:      errors.New("optional: value must not be nil"),
		Time:     time.Now(),
	})

	if got := countRows(t, p, "scenario"); got != 3 {
		t.Errorf("expected 3 scenario rows, got %d", got)
	}
}

func TestDatabasePrinter_AbsentOnly(t *testing.T) {
	p, err := printers.NewDatabasePrinter(setupTempDB(t),
		printers.WithAbsentOnly[*printers.DatabasePrinter](),
	)
	if err != nil {
		t.Fatalf("NewDatabasePrinter: %v", err)
	}
	defer p.Conn.Close()

	p.PrintPresent(&statistics.Result{Scenario: "of", Value: "My Soundcard", Time: time.Now()})
	p.PrintAbsent(&statistics.Result{Scenario: "empty", Absent: true, Time: time.Now()})

	if got := countRows(t, p, "scenario"); got != 1 {
		t.Errorf("expected only the absent row, got %d rows", got)
	}
}

func TestDatabasePrinter_SavesStatistics(t *testing.T) {
	p, err := printers.NewDatabasePrinter(setupTempDB(t))
	if err != nil {
		t.Fatalf("NewDatabasePrinter: %v", err)
	}
	defer p.Conn.Close()

	now := time.Now()
	stats := &statistics.Statistics{
		TotalScenarios: 2,
		PresentValues:  1,
		AbsentValues:   1,
		StartTime:      now.Add(-time.Second),
		EndTime:        now,
		ElapsedResults: statistics.ElapsedResult{
			HasResults: true,
			Min:        0.001,
			Average:    0.002,
			Max:        0.003,
		},
	}

	captureOutput(func() {
		p.PrintStatistics(stats)
	})

	if got := countRows(t, p, "statistics"); got != 1 {
		t.Errorf("expected 1 statistics row, got %d", got)
	}
}
