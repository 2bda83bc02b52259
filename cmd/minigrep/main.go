package main

import (
	"os"

	"github.com/dl/minigrep/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
