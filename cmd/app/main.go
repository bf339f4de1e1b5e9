package main

import (
	"os"

	"github.com/DevFrancisLab/saferoute/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
