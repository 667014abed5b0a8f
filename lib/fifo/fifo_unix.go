// Copyright 2026 The Pipeworks Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix && !linux

package fifo

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// FIFOs exist on every unix, but the buffer-size fcntl commands are
// Linux-only. Open and create work here; the control calls report
// ErrUnsupported.

func openPipe(path string) (int, error) {
	return unix.Open(path, unix.O_RDWR, 0)
}

func closePipe(fd int) error {
	return unix.Close(fd)
}

func mkfifo(path string, perm os.FileMode) error {
	err := unix.Mkfifo(path, uint32(perm.Perm()))
	if errors.Is(err, unix.EEXIST) {
		return nil
	}
	return err
}

func getPipeSize(fd int) (int, error) {
	return 0, ErrUnsupported
}

func setPipeSize(fd, size int) (int, error) {
	return 0, ErrUnsupported
}

func readMaxPipeSize() (int, bool) {
	return 0, false
}
