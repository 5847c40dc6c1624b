package main

import (
	"fmt"
	"os"

	"github.com/ITSky-Solutions/call-center-dasboard/cmd/minutes/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
