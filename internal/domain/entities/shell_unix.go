//go:build !windows

package entities

func defaultShell() string { return "sh" }
