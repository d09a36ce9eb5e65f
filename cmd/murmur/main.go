package main

import (
	"os"

	"murmur/cmd/murmur/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
