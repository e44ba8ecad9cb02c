package main

import (
	"os"

	"github.com/renproject/upp/cmd/upp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
