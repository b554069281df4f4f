package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/iafilius/GrainEye/cmd/grainchart/commands"
)

func main() {
	cmd := commands.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
