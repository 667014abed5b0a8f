// Copyright 2026 The Pipeworks Authors
// SPDX-License-Identifier: Apache-2.0

package fifo

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// pipeMaxSizeFile is the sysctl file holding the largest pipe buffer
// size an unprivileged process may request with F_SETPIPE_SZ.
const pipeMaxSizeFile = "/proc/sys/fs/pipe-max-size"

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
	return unix.FcntlInt(uintptr(fd), unix.F_GETPIPE_SZ, 0)
}

func setPipeSize(fd, size int) (int, error) {
	return unix.FcntlInt(uintptr(fd), unix.F_SETPIPE_SZ, size)
}

func readMaxPipeSize() (int, bool) {
	data, err := os.ReadFile(pipeMaxSizeFile)
	if err != nil {
		return 0, false
	}
	size, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false
	}
	return size, true
}
