// Copyright 2026 The Pipeworks Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "0", want: 0},
		{input: "1", want: 1},
		{input: "65536", want: 65536},
		{input: "2147483647", want: math.MaxInt32},
		{input: "2147483648", wantErr: true},
		{input: "99999999999", wantErr: true},
		{input: "100x", wantErr: true},
		{input: "x100", wantErr: true},
		{input: "0x10", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "1.5", wantErr: true},
		{input: "", wantErr: true},
		{input: " 64", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := parseSize(test.input)
			if test.wantErr {
				if err == nil {
					t.Fatalf("parseSize(%q) = %d, want error", test.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSize(%q): %v", test.input, err)
			}
			if got != test.want {
				t.Errorf("parseSize(%q) = %d, want %d", test.input, got, test.want)
			}
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "three positionals", args: []string{"/tmp/a", "65536", "extra"}},
		{name: "unknown flag", args: []string{"--bogus", "/tmp/a"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(test.args, &stdout, &stderr); code != exitUsage {
				t.Fatalf("run(%v) = %d, want %d", test.args, code, exitUsage)
			}
			if !strings.Contains(stderr.String(), "Usage:") {
				t.Errorf("stderr %q does not contain the usage message", stderr.String())
			}
			if stdout.Len() != 0 {
				t.Errorf("usage error wrote to stdout: %q", stdout.String())
			}
		})
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--version"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("run(--version) = %d, stderr: %s", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "fifosz ") {
		t.Errorf("--version output %q does not start with the binary name", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--help"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("run(--help) = %d", code)
	}
	if !strings.Contains(stdout.String(), "Usage:") {
		t.Errorf("--help output %q does not contain the usage message", stdout.String())
	}
}
