package main

import (
	"os"

	"github.com/AbateG/deutsche-ubungen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
