package datanode

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/magiconair/properties"

	"github.com/marmos91/blockgen/internal/logger"
)

// Layout versions this tool knows the subdirectory mask for. The cluster
// uses decreasing negative numbers for newer layouts.
const (
	LayoutVersion56 = -56
	LayoutVersion57 = -57
)

const layoutVersionKey = "layoutVersion"

// VersionFile returns the path of the version descriptor for a block pool
// inside a storage directory.
func VersionFile(storageDir, bpid string) string {
	return filepath.Join(storageDir, "current", bpid, "current", "VERSION")
}

// FinalizedDir returns the root of the finalized block tree for a block pool
// inside a storage directory.
func FinalizedDir(storageDir, bpid string) string {
	return filepath.Join(storageDir, "current", bpid, "current", "finalized")
}

// ValidateLayout reads the version descriptor of every storage directory and
// returns the single layout version they agree on.
//
// Every directory must have a descriptor with a layoutVersion entry, all
// directories must report the same value, and the value must be one of the
// supported layouts. Any violation fails the run before a single block is
// written.
func ValidateLayout(storageDirs []string, bpid string) (int, error) {
	if len(storageDirs) == 0 {
		return 0, ErrNoStorageDirs
	}

	var layout int
	for i, dir := range storageDirs {
		path := VersionFile(dir, bpid)

		props, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			return 0, fmt.Errorf("failed to read version descriptor %s: %w", path, err)
		}

		v, ok := props.Get(layoutVersionKey)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingLayoutVersion, path)
		}
		lv, err := parseLayoutVersion(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrMissingLayoutVersion, path, err)
		}

		logger.Info("Read version descriptor", "path", path, "layout_version", lv)

		if i == 0 {
			layout = lv
			continue
		}
		if lv != layout {
			return 0, fmt.Errorf("%w: %s has %d, %s has %d",
				ErrLayoutMismatch, storageDirs[0], layout, dir, lv)
		}
	}

	if layout != LayoutVersion56 && layout != LayoutVersion57 {
		return 0, fmt.Errorf("%w: %d (supported: %d, %d)",
			ErrUnsupportedLayout, layout, LayoutVersion56, LayoutVersion57)
	}

	return layout, nil
}

func parseLayoutVersion(s string) (int, error) {
	lv, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("malformed layoutVersion %q", s)
	}
	return lv, nil
}
