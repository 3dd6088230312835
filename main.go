package main

import (
	"os"

	"github.com/docsrv/docsrv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
