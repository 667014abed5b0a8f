// Copyright 2026 The Pipeworks Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package fifo

import "os"

func openPipe(path string) (int, error) {
	return -1, ErrUnsupported
}

func closePipe(fd int) error {
	return nil
}

func mkfifo(path string, perm os.FileMode) error {
	return ErrUnsupported
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
