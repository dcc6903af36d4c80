package main

import (
	"os"

	"github.com/rivergale/cheatdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
