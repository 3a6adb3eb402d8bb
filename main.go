package main

import (
	"os"

	"github.com/elermun/daybook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
