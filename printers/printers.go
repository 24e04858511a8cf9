// Package printers contains the logic for printing information
package printers

import "github.com/optchain/optchain/statistics"

// statisticsPrinter is the slice of the printer contract PrintStats needs.
type statisticsPrinter interface {
	PrintStatistics(s *statistics.Statistics)
}

// PrintStats is a helper method for PrintStatistics
// for the current printer.
// This should be used instead, as it makes
// all the necessary calculations beforehand.
func PrintStats(p statisticsPrinter, s *statistics.Statistics) {
	s.ElapsedResults = statistics.CalcMinAvgMaxElapsed(s.Elapsed)
	p.PrintStatistics(s)
}
