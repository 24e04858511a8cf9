// Package app wires user input, the scenario set, and the chosen printer
// into the demonstration run loop.
package app

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/optchain/optchain"
	"github.com/optchain/optchain/internal/options"
	"github.com/optchain/optchain/internal/utils"
	"github.com/optchain/optchain/printers"
	"github.com/optchain/optchain/statistics"
)

// Run executes the demonstration and returns an exit code
func Run() int {
	config := options.ProcessUserInput()
	printer := config.Printer

	scenarios, err := optchain.FindScenarios(config.ScenarioNames)
	if err != nil {
		printer.PrintError("%v", err)
		return 1
	}

	stats := &statistics.Statistics{
		StartTime:      time.Now(),
		Planned:        uint(len(scenarios)) * config.Repeat,
		WithTimestamp:  config.PrinterConfig.WithTimestamp,
		ShowAbsentOnly: config.PrinterConfig.ShowAbsentOnly,
	}

	setupSignalHandler(printer, stats)

	stdinChan := make(chan bool)
	if !config.NonInteractive {
		go utils.MonitorSTDIN(stdinChan)
	}

	printer.PrintStart(stats)

	for pass := uint(0); pass < config.Repeat; pass++ {
		if pass > 0 {
			time.Sleep(config.Interval)
		}

		for _, scenario := range scenarios {
			select {
			case <-stdinChan:
				printers.PrintStats(printer, stats)
			default:
			}

			runScenario(scenario, printer, stats)
		}
	}

	stats.EndTime = time.Now()
	printer.Shutdown(stats)

	return 0
}

// runScenario executes a single scenario, records its outcome, and hands
// the result to the printer.
func runScenario(scenario optchain.Scenario, printer optchain.Printer, stats *statistics.Statistics) {
	start := time.Now()
	outcome := scenario.Run()
	elapsed := utils.NanoToMillisecond(time.Since(start).Nanoseconds())

	result := statistics.Result{
		Scenario: scenario.Name,
		Doc:      scenario.Doc,
		Value:    outcome.Value,
		Absent:   outcome.Absent,
		Err:      outcome.Err,
		Elapsed:  elapsed,
		Time:     time.Now(),
	}

	stats.Record(result)

	switch {
	case outcome.Err != nil:
		printer.PrintRaised(&result)
	case outcome.Absent:
		printer.PrintAbsent(&result)
	default:
		printer.PrintPresent(&result)
	}
}

// setupSignalHandler catches SIGINT and SIGTERM to print the final
// statistics before exiting.
func setupSignalHandler(printer optchain.Printer, stats *statistics.Statistics) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		stats.EndTime = time.Now()
		printer.Shutdown(stats)
		os.Exit(0)
	}()
}
