package datanode

import "errors"

// Sentinel errors for the failure modes of a run. Every one of these is
// fatal: blockgen is an offline setup tool and never retries or recovers.
var (
	// ErrHadoopHomeNotSet indicates the target cluster installation could
	// not be located (no HADOOP_HOME, no config override).
	ErrHadoopHomeNotSet = errors.New("hadoop home is not set")

	// ErrNoStorageDirs indicates the configuration lookup returned no
	// storage directories.
	ErrNoStorageDirs = errors.New("no storage directories configured")

	// ErrNonLocalStorage indicates a configured storage URI uses a scheme
	// other than file://.
	ErrNonLocalStorage = errors.New("storage directory is not on a local filesystem")

	// ErrMissingLayoutVersion indicates a VERSION descriptor without a
	// layoutVersion entry.
	ErrMissingLayoutVersion = errors.New("version descriptor has no layoutVersion")

	// ErrLayoutMismatch indicates the storage directories disagree on the
	// layout version.
	ErrLayoutMismatch = errors.New("storage directories report different layout versions")

	// ErrUnsupportedLayout indicates a layout version this tool does not
	// know the subdirectory mask for.
	ErrUnsupportedLayout = errors.New("unsupported layout version")
)
