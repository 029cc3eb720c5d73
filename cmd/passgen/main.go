package main

import (
	"os"

	"github.com/vaultpass/passgen-go/cmd/passgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
