package main

import (
	"os"

	"github.com/brainit/fastpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
