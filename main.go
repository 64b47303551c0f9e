package main

import (
	"os"

	"github.com/evtools/evtchart/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
