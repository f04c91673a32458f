package commands

// Redact exports redact for testing.
var Redact = redact //nolint:gochecknoglobals // test export

// JoinOutput exports joinOutput for testing.
var JoinOutput = joinOutput //nolint:gochecknoglobals // test export
