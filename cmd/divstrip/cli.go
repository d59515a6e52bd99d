package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagefix/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Stripper *batch.Stripper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool   `short:"d" help:"Log every file operation to stderr"`
	Class string `arg:"" required:"" help:"Class name of the <div> elements to remove"`
	Dir   string `arg:"" optional:"" default:"." help:"Directory to scan recursively (default: current directory)"`
}

// StripCmd handles the strip operation.
type StripCmd struct {
	Class string
	Dir   string
}
