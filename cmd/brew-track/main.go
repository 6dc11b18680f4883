// cmd/brew-track/main.go
package main

import (
	"os"

	"github.com/arc-language/brew-track/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.HandleError(err, os.Stderr))
	}
}
