// Package main implements kmdp-terms, a command line front end to the term
// catalogue, the representation codec, the URI version composer and the
// resolver.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "kmdp-terms"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		slog.Error("Command failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run(args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}
