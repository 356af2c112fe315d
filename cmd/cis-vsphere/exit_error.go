package main

import "fmt"

// Exit codes: 0 every control passed, 2 at least one control failed,
// 3 no failures but at least one control needs manual verification,
// 1 operational error, 130 canceled.
const (
	exitCodeFailures = 2
	exitCodeUnknown  = 3
)

type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	if e == nil {
		return ""
	}
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit %d", e.code)
}

func (e *exitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}
