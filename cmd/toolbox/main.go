package main

import (
	"context"
	"os"

	"toolbox/cmd/toolbox/commands"
)

func main() {
	if err := commands.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
