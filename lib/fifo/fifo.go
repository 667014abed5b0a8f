// Copyright 2026 The Pipeworks Authors
// SPDX-License-Identifier: Apache-2.0

package fifo

import (
	"errors"
	"fmt"
	"os"
)

// ErrUnsupported is returned by operations that have no equivalent on
// the current platform. The pipe buffer control calls exist only on
// Linux; a caller that needs to distinguish "this system cannot do
// it" from an ordinary failure checks for this error with errors.Is.
var ErrUnsupported = errors.New("pipe buffer size control is not supported on this platform")

// Pipe is an open named pipe. It owns the underlying file descriptor;
// callers must Close it on every path after a successful open.
type Pipe struct {
	fd   int
	path string
}

// Open opens the named pipe at path for read-write access. Opening
// read-write never blocks waiting for a peer, unlike a read-only or
// write-only open of a FIFO.
//
// The path is not validated to be a FIFO: any openable file succeeds
// here, and a non-pipe descriptor makes the subsequent control call
// fail instead.
func Open(path string) (*Pipe, error) {
	fd, err := openPipe(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Pipe{fd: fd, path: path}, nil
}

// OpenOrCreate creates the FIFO at path with the given permission
// bits if it does not already exist, then opens it. An existing path
// is left untouched, whatever its type.
func OpenOrCreate(path string, perm os.FileMode) (*Pipe, error) {
	if err := mkfifo(path, perm); err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return Open(path)
}

// Size returns the pipe's current kernel buffer capacity in bytes.
func (p *Pipe) Size() (int, error) {
	size, err := getPipeSize(p.fd)
	if err != nil {
		return 0, fmt.Errorf("querying pipe buffer size of %s: %w", p.path, err)
	}
	return size, nil
}

// SetSize asks the kernel to resize the pipe's buffer to size bytes
// and returns the capacity actually applied. The kernel rounds the
// request up to a power-of-two multiple of the page size, so the
// result can exceed the request. Requests above fs.pipe-max-size fail
// with EPERM for unprivileged processes; a failed call leaves the
// buffer unchanged.
func (p *Pipe) SetSize(size int) (int, error) {
	applied, err := setPipeSize(p.fd, size)
	if err != nil {
		return 0, fmt.Errorf("setting pipe buffer size of %s to %d: %w", p.path, size, err)
	}
	return applied, nil
}

// Close releases the descriptor. Safe to call more than once.
func (p *Pipe) Close() error {
	if p.fd < 0 {
		return nil
	}
	fd := p.fd
	p.fd = -1
	return closePipe(fd)
}

// MaxSize reports the largest buffer size an unprivileged process may
// request, as exposed by the fs.pipe-max-size sysctl. The second
// return is false when the limit cannot be read (non-Linux systems,
// or /proc not mounted).
func MaxSize() (int, bool) {
	return readMaxPipeSize()
}
