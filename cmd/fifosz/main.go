// Copyright 2026 The Pipeworks Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/pipeworks/fifosz/lib/fifo"
	"github.com/pipeworks/fifosz/lib/version"
)

// Exit codes are a stable interface for scripts; see doc.go.
const (
	exitOK      = 0
	exitUsage   = 1
	exitOpen    = 2
	exitBadSize = 3
	exitControl = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run holds the whole program so tests can drive it with their own
// argument lists and output streams.
func run(args []string, stdout, stderr io.Writer) int {
	flagSet := pflag.NewFlagSet("fifosz", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	create := flagSet.Bool("create", false, "create the FIFO (mode 0600) if it does not exist")
	showVersion := flagSet.Bool("version", false, "print version and exit")
	help := flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stdout, flagSet)
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		printUsage(stderr, flagSet)
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintf(stdout, "fifosz %s\n", version.Info())
		return exitOK
	}
	if *help {
		printUsage(stdout, flagSet)
		return exitOK
	}

	positional := flagSet.Args()
	if len(positional) < 1 || len(positional) > 2 {
		printUsage(stderr, flagSet)
		return exitUsage
	}
	path := positional[0]

	var pipe *fifo.Pipe
	var err error
	if *create {
		pipe, err = fifo.OpenOrCreate(path, 0o600)
	} else {
		pipe, err = fifo.Open(path)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitOpen
	}
	defer pipe.Close()

	var size int
	if len(positional) == 2 {
		requested, err := parseSize(positional[1])
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitBadSize
		}
		size, err = pipe.SetSize(requested)
		if err != nil {
			if limit, ok := fifo.MaxSize(); ok && requested > limit {
				fmt.Fprintf(stderr, "error: %v (fs.pipe-max-size is %d)\n", err, limit)
			} else {
				fmt.Fprintf(stderr, "error: %v\n", err)
			}
			return exitControl
		}
	} else {
		size, err = pipe.Size()
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitControl
		}
	}

	fmt.Fprintf(stdout, "%d\n", size)
	return exitOK
}

// parseSize parses the size argument as an unsigned base-10 integer
// and bounds it to the signed 32-bit range the kernel accepts for
// F_SETPIPE_SZ. The whole string must parse; trailing characters are
// an error.
func parseSize(arg string) (int, error) {
	value, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: must be a non-negative decimal integer", arg)
	}
	if value > math.MaxInt32 {
		return 0, fmt.Errorf("size %s is too large (maximum %d)", arg, math.MaxInt32)
	}
	return int(value), nil
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `Usage: fifosz [flags] <fifo_path> [new_fifo_size]

Print or set the kernel buffer capacity of a named pipe. With one
argument, prints the current buffer size in bytes. With two, sets the
buffer size (the kernel may round up) and prints the applied size.

Flags:
`)
	fmt.Fprint(w, flagSet.FlagUsages())
}
