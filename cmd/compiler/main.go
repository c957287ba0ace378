package main

import (
	"os"

	"github.com/spf13/afero"
)

func main() {
	cmd := New(afero.NewOsFs())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
