package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagefix/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Wrapper *batch.Wrapper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug        bool     `short:"d" help:"Log every file operation to stderr"`
	DefaultTitle string   `short:"t" default:"${default_title}" help:"Title for pages without a <title> element"`
	Files        []string `arg:"" name:"file" help:"HTML files to rewrite in place"`
}

// WrapCmd handles the wrap operation.
type WrapCmd struct {
	Files []string
}
