package main

import (
	"os"

	"animal-shelter/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
