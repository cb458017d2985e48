package main

import (
	"errors"
	"fmt"
	"os"

	"secretstore/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
