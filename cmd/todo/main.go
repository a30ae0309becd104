package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/tiwariParth/todo/internal/cli"
	"github.com/tiwariParth/todo/internal/config"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.InfoLevel,
		Prefix: "todo",
	})

	cfg, err := config.Default()
	if err != nil {
		fatal(err)
	}

	if err := cli.NewCLI(cfg, logger).Run(os.Args[1:]); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
