package datanode

import (
	"fmt"
	"path/filepath"
)

// Subdirectory masks per layout version. The mask selects how many bits of
// the block ID feed each of the two hash-bucket directory levels.
const (
	maskLayout56 = 0xFF // 8 bits, up to 256x256 buckets
	maskLayout57 = 0x1F // 5 bits
)

// DirMask returns the bit-mask used to fold a block ID into the two nested
// subdirectory names for the given layout version.
//
// ValidateLayout already restricts the domain, but the check is repeated
// here so the function is safe to use standalone.
func DirMask(layoutVersion int) (int64, error) {
	switch layoutVersion {
	case LayoutVersion56:
		return maskLayout56, nil
	case LayoutVersion57:
		return maskLayout57, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedLayout, layoutVersion)
	}
}

// BlockDir returns the hashed two-level subdirectory, relative to the
// finalized root, that holds the given block ID.
//
// The derivation is bit-exact with the storage engine's own sharding:
// level one folds bits 16.. of the ID, level two folds bits 8.. .
func BlockDir(finalizedRoot string, blockID, mask int64) string {
	d1 := fmt.Sprintf("subdir%d", (blockID>>16)&mask)
	d2 := fmt.Sprintf("subdir%d", (blockID>>8)&mask)
	return filepath.Join(finalizedRoot, d1, d2)
}

// BlockFileName returns the on-disk name of a block data file.
func BlockFileName(blockID int64) string {
	return fmt.Sprintf("blk_%d", blockID)
}

// MetaFileName returns the on-disk name of a block metadata file.
func MetaFileName(blockID, genStamp int64) string {
	return fmt.Sprintf("blk_%d_%d.meta", blockID, genStamp)
}
