// Copyright 2026 The Vela Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func TestStandardHeader(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Writer(&buf))
	logger.Infof("hello, %s", "world")

	// I260115 06:33:04.606396 log_test.go:NN] hello, world
	pattern := `^I\d{6} \d{2}:\d{2}:\d{2}\.\d{6} log_test\.go:\d+\] hello, world\n$`
	if !regexp.MustCompile(pattern).Match(buf.Bytes()) {
		t.Fatalf("log output %q does not match %q", buf.String(), pattern)
	}
}

func TestModeLetters(t *testing.T) {
	defer SetGlobalLogMode(DefaultMode)
	SetGlobalLogMode(DefaultMode | DebugMode)

	var buf bytes.Buffer
	logger := New(Writer(&buf), Flags(Lmode))
	logger.Info("a")
	logger.Warn("b")
	logger.Error("c")
	logger.Debug("d")

	want := "I a\nW b\nE c\nD d\n"
	if buf.String() != want {
		t.Fatalf("output = %q; want %q", buf.String(), want)
	}
}

func TestGlobalModeFilters(t *testing.T) {
	defer SetGlobalLogMode(DefaultMode)
	SetGlobalLogMode(ErrorMode)

	var buf bytes.Buffer
	logger := New(Writer(&buf), Flags(Lmode))
	logger.Info("suppressed")
	logger.Debug("suppressed")
	logger.Error("emitted")

	want := "E emitted\n"
	if buf.String() != want {
		t.Fatalf("output = %q; want %q", buf.String(), want)
	}
}

func TestDiscarder(t *testing.T) {
	// Exercised for crashes only; a discarder has no observable output.
	Discarder().Info("into the void")
}

func TestMultiWriter(t *testing.T) {
	var a, b bytes.Buffer
	logger := New(Writer(MultiWriter(&a, &b)), Flags(Lmode))
	logger.Info("fan out")
	if a.String() != b.String() || a.String() != "I fan out\n" {
		t.Fatalf("outputs = %q, %q", a.String(), b.String())
	}
}

func TestLogRotationWriter(t *testing.T) {
	dir := t.TempDir()
	w := LogRotationWriter(dir, 16)

	// The second write would push the current file past the threshold, so it
	// rotates to a fresh one.
	if _, err := w.Write([]byte("0123456789")); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("abcdefghij")); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var files, links int
	for _, entry := range entries {
		if entry.Type()&os.ModeSymlink != 0 {
			links++
			continue
		}
		files++
	}
	if files != 2 || links != 1 {
		t.Fatalf("rotated files = %d, symlinks = %d; want 2 and 1", files, links)
	}

	// The symlink tracks the most recent file.
	latest, err := os.ReadFile(filepath.Join(dir, program+".log"))
	if err != nil {
		t.Fatal(err)
	}
	if string(latest) != "abcdefghij" {
		t.Fatalf("latest log = %q", latest)
	}
}
