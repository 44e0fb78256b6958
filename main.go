package main

import (
	"os"

	"zeta/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
