package entities

import "time"

// CommandResult is the captured outcome of a shell command that ran to completion.
// A non-zero ExitCode is a normal result, not an error.
type CommandResult struct {
	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	ExitCode int           `json:"code"`
	Duration time.Duration `json:"-"`
}
