package main

import (
	"os"

	"github.com/your-org/retail-store/cmd/store/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
