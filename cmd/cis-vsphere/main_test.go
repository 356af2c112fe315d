package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestExitCodeForError_ExitError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	code := exitCodeForError(&exitError{code: exitCodeFailures, err: errors.New("benchmark failures detected")}, &out)
	if code != exitCodeFailures {
		t.Fatalf("code = %d, want %d", code, exitCodeFailures)
	}
	if got := out.String(); got != "benchmark failures detected\n" {
		t.Fatalf("output = %q, want %q", got, "benchmark failures detected\n")
	}
}

func TestExitCodeForError_SilentExitError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	code := exitCodeForError(&exitError{code: exitCodeUnknown, err: errors.New("unknowns"), silent: true}, &out)
	if code != exitCodeUnknown {
		t.Fatalf("code = %d, want %d", code, exitCodeUnknown)
	}
	if out.Len() != 0 {
		t.Fatalf("output = %q, want empty", out.String())
	}
}

func TestExitCodeForError_WrappedExitError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	wrapped := errors.Join(errors.New("context"), &exitError{code: 7, err: errors.New("inner"), silent: true})
	if code := exitCodeForError(wrapped, &out); code != 7 {
		t.Fatalf("code = %d, want 7", code)
	}
}

func TestExitCodeForError_Canceled(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	code := exitCodeForError(context.Canceled, &out)
	if code != 130 {
		t.Fatalf("code = %d, want 130", code)
	}
	if got := out.String(); got != "canceled\n" {
		t.Fatalf("output = %q, want %q", got, "canceled\n")
	}
}

func TestExitCodeForError_PlainError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	code := exitCodeForError(errors.New("boom"), &out)
	if code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
	if got := out.String(); got != "boom\n" {
		t.Fatalf("output = %q, want %q", got, "boom\n")
	}
}

func TestRunMain_Success(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if code := runMain(func() error { return nil }, &out); code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}
	if out.Len() != 0 {
		t.Fatalf("output = %q, want empty", out.String())
	}
}
