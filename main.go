package main

import (
	"os"

	"github.com/bjpl/subjunctive-practice-sub006/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
