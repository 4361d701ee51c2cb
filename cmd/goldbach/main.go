package main

import (
	"os"

	"github.com/686f6c6/goldbach/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
