// Package options handles the user input
package options

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/optchain/optchain"
	"github.com/optchain/optchain/internal/utils"
)

// Config carries everything the demonstration run needs from the
// command line: the printer to render with, which scenarios to walk,
// and the repeat cadence.
type Config struct {
	Printer        optchain.Printer
	PrinterConfig  optchain.PrinterConfig
	ScenarioNames  []string
	Repeat         uint
	Interval       time.Duration
	NonInteractive bool
}

// permuteArgs permute args for flag parsing stops just before the first non-flag argument.
// see: https://pkg.go.dev/flag
func permuteArgs(args []string) {
	var flagArgs []string
	var nonFlagArgs []string

	for i := 0; i < len(args); i++ {
		v := args[i]
		if v[0] == '-' {
			var optionName string
			if v[1] == '-' {
				optionName = v[2:]
			} else {
				optionName = v[1:]
			}
			switch optionName {
			case "c":
				fallthrough
			case "i":
				fallthrough
			case "csv":
				fallthrough
			case "db":
				/* out of index */
				if len(args) <= i+1 {
					utils.Usage()
				}
				/* the next flag has come */
				optionVal := args[i+1]
				if optionVal[0] == '-' {
					utils.Usage()
				}
				flagArgs = append(flagArgs, args[i:i+2]...)
				i++
			default:
				flagArgs = append(flagArgs, args[i])
			}
		} else {
			nonFlagArgs = append(nonFlagArgs, args[i])
		}
	}
	permutedArgs := append(flagArgs, nonFlagArgs...)

	/* replace args */
	for i := 0; i < len(args); i++ {
		args[i] = permutedArgs[i]
	}
}

// ProcessUserInput gets and validates user input
func ProcessUserInput() Config {
	repeatCount := flag.Uint("c",
		1,
		"walk the scenario set <n> times. The default is a single pass.")
	showTimestamp := flag.Bool("D", false, "show timestamp for each scenario in the output.")
	outputJSON := flag.Bool("j", false, "output in JSON format.")
	prettyJSON := flag.Bool("pretty",
		false,
		"use indentation when using json output format. No effect without the '-j' flag.")
	nonInteractive := flag.Bool("non-interactive",
		false,
		"let optchain run in the background, for instance using nohup or disown")
	noColor := flag.Bool("no-color", false, "do not colorize output.")
	saveToCSV := flag.String("csv",
		"",
		"path and file name to store output to a CSV file. The stats will be saved with the same name and `_stats` suffix.")
	saveToDB := flag.String("db", "", "path and file name to store output to a sqlite3 database.")
	intervalBetweenPasses := flag.Float64("i",
		1,
		"interval between passes over the scenario set. Real number allowed with dot as a decimal separator. The default is one second")
	showAbsentOnly := flag.Bool("show-absent-only", false, "Show only the scenarios that ended on the empty path or raised an error.")
	showVer := flag.Bool("v", false, "show version and exit.")
	checkUpdates := flag.Bool("u", false, "check for updates and exit.")

	flag.CommandLine.Usage = utils.Usage

	permuteArgs(os.Args[1:])

	flag.Parse()

	if *showVer {
		utils.ShowVersion()
	}

	if *checkUpdates {
		utils.CheckForUpdates()
	}

	if *repeatCount == 0 {
		fmt.Println("Repeat count should be at least 1")
		utils.Usage()
	}

	interval := utils.SecondsToDuration(*intervalBetweenPasses)
	if interval < 2*time.Millisecond {
		fmt.Println("Wait interval should be more than 2 ms")
		utils.Usage()
	}

	printerConfig := optchain.PrinterConfig{
		OutputJSON:     *outputJSON,
		PrettyJSON:     *prettyJSON,
		NoColor:        *noColor,
		WithTimestamp:  *showTimestamp,
		ShowAbsentOnly: *showAbsentOnly,
		OutputDBPath:   *saveToDB,
		OutputCSVPath:  *saveToCSV,
	}

	printer, err := optchain.NewPrinter(printerConfig)
	if err != nil {
		fmt.Printf("Failed to create printer: %s\n", err)
		os.Exit(1)
	}

	return Config{
		Printer:        printer,
		PrinterConfig:  printerConfig,
		ScenarioNames:  flag.Args(),
		Repeat:         *repeatCount,
		Interval:       interval,
		NonInteractive: *nonInteractive,
	}
}
