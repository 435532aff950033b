package main

import (
	"os"

	"diffimp/cmd/diffimp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
