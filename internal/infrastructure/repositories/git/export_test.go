package git

// AuthFromURL exports authFromURL for testing.
var AuthFromURL = authFromURL //nolint:gochecknoglobals // test export
