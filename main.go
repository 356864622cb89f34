package main

import (
	"fmt"
	"os"

	"github.com/aumai/edumentor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
