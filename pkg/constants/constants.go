// Package constants provides shared constants used throughout the libris codebase.
// This includes file permissions, storage locations, and other configuration
// values that should be consistent across the application.
package constants

import "time"

// Storage constants define where catalog data lives on disk
const (
	// DataDirName is the directory under the user's home that holds libris data
	DataDirName = ".libris"

	// DataFileName is the catalog file written inside the data directory
	DataFileName = "books.yaml"

	// LockFileName is the advisory lock file guarding the catalog file
	LockFileName = "books.lock"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 1 * time.Minute
)
