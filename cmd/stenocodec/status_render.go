package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"stenocodec/internal/runstore"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

// renderRunStatus colors a run status for terminal output.
func renderRunStatus(status runstore.Status, colorize bool) string {
	if !colorize {
		return string(status)
	}
	var color string
	switch status {
	case runstore.StatusCompleted:
		color = ansiGreen
	case runstore.StatusFailed:
		color = ansiRed
	case runstore.StatusRunning:
		color = ansiBlue
	}
	if color == "" {
		return string(status)
	}
	return color + string(status) + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
