// Package main enables optchain to execute as a CLI tool
package main

import (
	"os"

	"github.com/optchain/optchain/internal/app"
)

func main() {
	os.Exit(app.Run())
}
