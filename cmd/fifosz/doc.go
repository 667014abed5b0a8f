// Copyright 2026 The Pipeworks Authors
// SPDX-License-Identifier: Apache-2.0

// Fifosz prints or sets the kernel buffer capacity of a named pipe.
//
// With one argument it prints the pipe's current buffer size in
// bytes. With a second argument it sets the buffer size (the kernel
// may round the request up) and prints the size actually applied.
// The path is opened read-write and handed to the kernel as-is; a
// path that is not a FIFO is rejected by the buffer-size call itself,
// not by an upfront check.
//
// Usage:
//
//	fifosz [flags] <fifo_path> [new_fifo_size]
//
// Exit codes:
//
//	0  success, size printed to stdout
//	1  usage error (argument count, unknown flag)
//	2  path could not be opened (or created with --create)
//	3  size argument invalid or above 2^31-1
//	4  the get/set buffer-size call failed
//
// Sizes above the fs.pipe-max-size sysctl require privilege; when a
// set fails for that reason the diagnostic names the current limit.
package main
