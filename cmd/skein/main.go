package main

import (
	"os"

	"github.com/skein-lang/skein/cmd/skein/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
