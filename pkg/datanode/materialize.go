package datanode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/marmos91/blockgen/internal/logger"
)

// Materializer replicates a template block/metadata file pair across a range
// of synthetic block IDs inside one finalized block tree.
//
// The templates are opaque byte blobs; they are copied verbatim and never
// parsed. Any failure aborts immediately and leaves already-written blocks
// in place: blockgen is a test-setup tool and deliberately does not roll
// back partial state.
type Materializer struct {
	Mask     int64
	GenStamp int64

	// BlockTemplate and MetaTemplate are the source files duplicated for
	// every synthetic block.
	BlockTemplate string
	MetaTemplate  string
}

// CheckTemplates verifies both template files exist and are regular files.
func (m *Materializer) CheckTemplates() error {
	for _, path := range []string{m.BlockTemplate, m.MetaTemplate} {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("template file %s: %w", path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("template file %s is a directory", path)
		}
	}
	return nil
}

// Materialize creates the block and metadata files for every ID in
// [a.StartID, a.StartID+a.Count) under the finalized tree of the given
// block pool.
func (m *Materializer) Materialize(a Assignment, bpid string) error {
	root := FinalizedDir(a.StorageDir, bpid)

	logger.Info("Injecting blocks",
		"storage_dir", a.StorageDir,
		"start_id", a.StartID,
		"count", a.Count)

	for id := a.StartID; id < a.StartID+a.Count; id++ {
		dir := BlockDir(root, id, m.Mask)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create block directory %s: %w", dir, err)
		}

		if err := copyFile(m.BlockTemplate, filepath.Join(dir, BlockFileName(id))); err != nil {
			return fmt.Errorf("failed to write block %d: %w", id, err)
		}
		if err := copyFile(m.MetaTemplate, filepath.Join(dir, MetaFileName(id, m.GenStamp))); err != nil {
			return fmt.Errorf("failed to write metadata for block %d: %w", id, err)
		}
	}

	return nil
}

// copyFile duplicates src to dst, truncating dst if it already exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
