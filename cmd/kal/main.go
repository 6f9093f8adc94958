package main

import (
	"os"

	"github.com/msto63/kal/cmd/kal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
