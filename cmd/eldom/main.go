package main

import (
	"os"

	"github.com/go-drift/eldom/cmd/eldom/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
