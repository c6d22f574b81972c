package main

import (
	"os"

	"github.com/askiada/go-lazy/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
