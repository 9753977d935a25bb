package main

import (
	"os"

	"github.com/Velesio/velesio-aiserver/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
