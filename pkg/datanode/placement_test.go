package datanode

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirMask(t *testing.T) {
	mask, err := DirMask(LayoutVersion56)
	require.NoError(t, err)
	assert.Equal(t, int64(0xFF), mask)

	mask, err = DirMask(LayoutVersion57)
	require.NoError(t, err)
	assert.Equal(t, int64(0x1F), mask)
}

func TestDirMask_Unsupported(t *testing.T) {
	for _, lv := range []int{-55, -58, 0, 56} {
		_, err := DirMask(lv)
		assert.ErrorIs(t, err, ErrUnsupportedLayout, "layout %d", lv)
	}
}

func TestBlockDir(t *testing.T) {
	// 0x10203: bits 16.. give 1, bits 8.. give 2 under the 8-bit mask.
	dir := BlockDir("/data/dn1/finalized", 0x10203, 0xFF)
	assert.Equal(t, filepath.Join("/data/dn1/finalized", "subdir1", "subdir2"), dir)
}

func TestBlockDir_MaskFolds(t *testing.T) {
	// With the 5-bit mask the same ID folds into smaller buckets.
	dir := BlockDir("/root", 0xFF_FF_FF, 0x1F)
	assert.Equal(t, filepath.Join("/root", "subdir31", "subdir31"), dir)

	// IDs below 256 always land in subdir0/subdir0.
	dir = BlockDir("/root", 255, 0xFF)
	assert.Equal(t, filepath.Join("/root", "subdir0", "subdir0"), dir)
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "blk_1000000", BlockFileName(1000000))
	assert.Equal(t, "blk_1000000_1000.meta", MetaFileName(1000000, 1000))
}
