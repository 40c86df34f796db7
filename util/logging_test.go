/*
 * vex
 *
 * Copyright 2026 The Vex Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestBufferLoggerLogInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewBufferLogger(&buf)
	l.LogInfo("hello")

	if got := buf.String(); strings.TrimSpace(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestLogLevelLoggerFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	inner := NewBufferLogger(&buf)
	l, err := NewLogLevelLogger(inner, "info")
	if err != nil {
		t.Fatal(err)
	}

	l.LogDebug("should not appear")
	l.LogInfo("should appear")

	got := buf.String()
	if strings.Contains(got, "should not appear") {
		t.Error("debug message leaked through an info-level logger")
	}
	if !strings.Contains(got, "should appear") {
		t.Error("info message was filtered out")
	}
}

func TestNewLogLevelLoggerRejectsInvalidLevel(t *testing.T) {
	if _, err := NewLogLevelLogger(NewNullLogger(), "verbose"); err == nil {
		t.Fatal("expected an error for an invalid log level")
	}
}

func TestMemoryLoggerCollectsEntries(t *testing.T) {
	l := NewMemoryLogger(10)
	l.LogInfo("a")
	l.LogInfo("b")

	if got := l.Slice(); len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
}

func TestNullLoggerDiscardsSilently(t *testing.T) {
	NewNullLogger().LogError("should not panic")
}
