package main

import (
	"os"

	"github.com/yuhsin-liao/bopomo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
