package main

import (
	"os"

	"github.com/govalues/fixed/cmd/fixcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
