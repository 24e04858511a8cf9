package optchain

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/optchain/optchain/printers"
	"github.com/optchain/optchain/statistics"
)

var (
	_ Printer = (*printers.ColorPrinter)(nil)
	_ Printer = (*printers.JSONPrinter)(nil)
	_ Printer = (*printers.CSVPrinter)(nil)
	_ Printer = (*printers.DatabasePrinter)(nil)
	_ Printer = (*printers.PlainPrinter)(nil)
)

// Printer defines a set of methods that any printer implementation must provide.
// Printers are responsible for outputting information, but should not modify data or perform calculations.
type Printer interface {
	// PrintStart prints the first message to indicate how many
	// scenarios the run covers. It is printed only once.
	PrintStart(s *statistics.Statistics)

	// PrintPresent should print a message after each scenario that
	// produced a value.
	PrintPresent(r *statistics.Result)

	// PrintAbsent should print a message after each scenario that
	// ended on the empty path.
	PrintAbsent(r *statistics.Result)

	// PrintRaised should print a message after each scenario that
	// raised an absence error.
	PrintRaised(r *statistics.Result)

	// PrintStatistics should print a message with
	// helpful statistics information.
	//
	// This is being called on exit and when the user hits "Enter".
	PrintStatistics(s *statistics.Statistics)

	// PrintError should print an error message.
	// Printer should also apply \n to the given string, if needed.
	PrintError(format string, args ...any)

	// Shutdown prints the final statistics and releases whatever the
	// printer holds open (files, database connections).
	Shutdown(s *statistics.Statistics)
}

// NewPrinter creates and returns an appropriate printer based on configuration.
// Without an explicit format it picks colored output on a terminal and plain
// output everywhere else.
func NewPrinter(cfg PrinterConfig) (Printer, error) {
	if cfg.PrettyJSON && !cfg.OutputJSON {
		return nil, fmt.Errorf("--pretty has no effect without the -j flag")
	}

	switch {
	case cfg.OutputJSON:
		var opts []printers.JSONPrinterOption
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.JSONPrinter]())
		}
		if cfg.ShowAbsentOnly {
			opts = append(opts, printers.WithAbsentOnly[*printers.JSONPrinter]())
		}
		return printers.NewJSONPrinter(cfg.PrettyJSON, opts...), nil

	case cfg.OutputDBPath != "":
		var opts []printers.DatabasePrinterOption
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.DatabasePrinter]())
		}
		if cfg.ShowAbsentOnly {
			opts = append(opts, printers.WithAbsentOnly[*printers.DatabasePrinter]())
		}
		return printers.NewDatabasePrinter(cfg.OutputDBPath, opts...)

	case cfg.OutputCSVPath != "":
		var opts []printers.CSVPrinterOption
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.CSVPrinter]())
		}
		if cfg.ShowAbsentOnly {
			opts = append(opts, printers.WithAbsentOnly[*printers.CSVPrinter]())
		}
		return printers.NewCSVPrinter(cfg.OutputCSVPath, opts...)

	case cfg.NoColor || !term.IsTerminal(int(os.Stdout.Fd())):
		var opts []printers.PlainPrinterOption
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.PlainPrinter]())
		}
		if cfg.ShowAbsentOnly {
			opts = append(opts, printers.WithAbsentOnly[*printers.PlainPrinter]())
		}
		return printers.NewPlainPrinter(opts...), nil

	default:
		var opts []printers.ColorPrinterOption
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.ColorPrinter]())
		}
		if cfg.ShowAbsentOnly {
			opts = append(opts, printers.WithAbsentOnly[*printers.ColorPrinter]())
		}
		return printers.NewColorPrinter(opts...), nil
	}
}

// PrinterConfig holds all configuration options for Printer creation
type PrinterConfig struct {
	OutputJSON     bool
	PrettyJSON     bool
	NoColor        bool
	WithTimestamp  bool
	ShowAbsentOnly bool
	OutputDBPath   string
	OutputCSVPath  string
}
