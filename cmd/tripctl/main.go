package main

import (
	"fmt"
	"os"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
