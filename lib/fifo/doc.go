// Copyright 2026 The Pipeworks Authors
// SPDX-License-Identifier: Apache-2.0

// Package fifo opens named pipes and controls their kernel buffer
// capacity.
//
// A FIFO (named pipe) is backed by a fixed-capacity kernel buffer.
// On Linux that capacity is queryable and adjustable per open
// descriptor through the F_GETPIPE_SZ and F_SETPIPE_SZ fcntl
// commands. [Open] (or [OpenOrCreate]) yields a [Pipe] owning the
// descriptor; [Pipe.Size] and [Pipe.SetSize] issue the fcntl calls.
//
// The kernel is the authority on what a valid target is: the path is
// not checked to be a FIFO before the control call, and a descriptor
// that does not refer to a pipe makes the fcntl fail with EBADF.
// SetSize may apply a larger size than requested (the kernel rounds
// up to a power-of-two page multiple), and unprivileged processes are
// capped by the fs.pipe-max-size sysctl, exposed here as [MaxSize].
//
// On unix platforms other than Linux, FIFOs can be opened and created
// but the buffer control calls return [ErrUnsupported]. On non-unix
// platforms every operation returns [ErrUnsupported].
//
// Depends on golang.org/x/sys/unix. No other dependencies.
package fifo
