package datanode

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStorageDirs_PlainPaths(t *testing.T) {
	dirs, err := ResolveStorageDirs("/data/dn1,/data/dn2")
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/dn1", "/data/dn2"}, dirs)
}

func TestResolveStorageDirs_FileURIs(t *testing.T) {
	dirs, err := ResolveStorageDirs("file:///data/dn1,file:///data/dn2")
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/dn1", "/data/dn2"}, dirs)
}

func TestResolveStorageDirs_StorageTypeTag(t *testing.T) {
	dirs, err := ResolveStorageDirs("[DISK]file:///data/dn1,[SSD]/data/dn2")
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/dn1", "/data/dn2"}, dirs)
}

func TestResolveStorageDirs_NonLocalScheme(t *testing.T) {
	_, err := ResolveStorageDirs("http://remote/data")
	assert.ErrorIs(t, err, ErrNonLocalStorage)

	_, err = ResolveStorageDirs("/data/dn1,hdfs://nn:8020/data")
	assert.ErrorIs(t, err, ErrNonLocalStorage)
}

func TestResolveStorageDirs_Empty(t *testing.T) {
	_, err := ResolveStorageDirs("")
	assert.ErrorIs(t, err, ErrNoStorageDirs)

	_, err = ResolveStorageDirs(" , ,")
	assert.ErrorIs(t, err, ErrNoStorageDirs)
}

func TestResolveStorageDirs_UnterminatedTag(t *testing.T) {
	_, err := ResolveStorageDirs("[DISKfile:///data/dn1")
	assert.Error(t, err)
}

func TestResolveStorageDirs_Whitespace(t *testing.T) {
	dirs, err := ResolveStorageDirs(" /data/dn1 , file:///data/dn2 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/dn1", "/data/dn2"}, dirs)
}

// fakeConf substitutes the getconf shell-out in tests.
type fakeConf struct {
	values map[string]string
	err    error
}

func (f *fakeConf) Get(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.values[key], nil
}

func TestDiscoverStorageDirs(t *testing.T) {
	conf := &fakeConf{values: map[string]string{
		DefaultConfKey: "[DISK]file:///data/dn1,[DISK]file:///data/dn2",
	}}

	dirs, err := DiscoverStorageDirs(context.Background(), conf, DefaultConfKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/dn1", "/data/dn2"}, dirs)
}

func TestDiscoverStorageDirs_LookupFails(t *testing.T) {
	conf := &fakeConf{err: errors.New("getconf unavailable")}

	_, err := DiscoverStorageDirs(context.Background(), conf, DefaultConfKey)
	assert.Error(t, err)
}

func TestGetconfTool_NoHome(t *testing.T) {
	tool := &GetconfTool{}
	_, err := tool.Get(context.Background(), DefaultConfKey)
	assert.ErrorIs(t, err, ErrHadoopHomeNotSet)
}
