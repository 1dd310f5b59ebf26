// Package datanode implements the pieces blockgen needs to populate an
// HDFS-style datanode storage tree with synthetic blocks: storage directory
// discovery, layout validation, block placement, and block materialization.
package datanode

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultConfKey is the cluster configuration key holding the datanode
// storage directory list.
const DefaultConfKey = "dfs.datanode.data.dir"

// ConfGetter looks up a single value from the cluster configuration.
// It exists so tests can substitute a fake instead of shelling out to the
// cluster tooling.
type ConfGetter interface {
	Get(ctx context.Context, key string) (string, error)
}

// GetconfTool resolves configuration keys by invoking the cluster's own
// getconf utility under the installation root.
type GetconfTool struct {
	// HadoopHome is the root of the target cluster installation.
	HadoopHome string
}

// Get runs `<home>/bin/hdfs getconf -confKey <key>` and returns the trimmed
// output.
func (t *GetconfTool) Get(ctx context.Context, key string) (string, error) {
	if t.HadoopHome == "" {
		return "", ErrHadoopHomeNotSet
	}

	bin := filepath.Join(t.HadoopHome, "bin", "hdfs")
	out, err := exec.CommandContext(ctx, bin, "getconf", "-confKey", key).Output()
	if err != nil {
		return "", fmt.Errorf("getconf %s failed: %w", key, err)
	}

	return strings.TrimSpace(string(out)), nil
}

// DiscoverStorageDirs queries the cluster configuration for the storage
// directory list and resolves it into local paths.
func DiscoverStorageDirs(ctx context.Context, conf ConfGetter, key string) ([]string, error) {
	raw, err := conf.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return ResolveStorageDirs(raw)
}

// ResolveStorageDirs parses a comma-separated list of storage location URIs
// into ordered local filesystem paths.
//
// Each entry may carry a leading bracketed storage-type tag (e.g.
// "[DISK]file:///data/dn1") which is stripped before parsing. A URI scheme,
// if present, must be "file"; any other scheme is a configuration error
// because this tool only writes to local storage.
func ResolveStorageDirs(raw string) ([]string, error) {
	var dirs []string

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		// Strip the [TAG] storage-type annotation.
		if strings.HasPrefix(entry, "[") {
			end := strings.Index(entry, "]")
			if end < 0 {
				return nil, fmt.Errorf("malformed storage entry %q: unterminated storage type tag", entry)
			}
			entry = entry[end+1:]
		}

		u, err := url.Parse(entry)
		if err != nil {
			return nil, fmt.Errorf("malformed storage URI %q: %w", entry, err)
		}
		if u.Scheme != "" && u.Scheme != "file" {
			return nil, fmt.Errorf("%w: %q has scheme %q", ErrNonLocalStorage, entry, u.Scheme)
		}

		path := u.Path
		if path == "" {
			// A bare path without scheme parses into Opaque/Path depending
			// on shape; fall back to the raw entry.
			path = entry
		}

		dirs = append(dirs, filepath.Clean(path))
	}

	if len(dirs) == 0 {
		return nil, ErrNoStorageDirs
	}

	return dirs, nil
}
