package filestore_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arrows94/3d-order-manager/internal/adapters/out/filestore"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, maxBytes int64) *filestore.DiskUploadStore {
	t.Helper()
	store, err := filestore.NewDiskUploadStore(t.TempDir(), maxBytes)
	require.NoError(t, err)
	return store
}

func TestNewDiskUploadStore_Validation(t *testing.T) {
	_, err := filestore.NewDiskUploadStore("", 1024)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = filestore.NewDiskUploadStore(t.TempDir(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDiskUploadStore_StoreAndOpen(t *testing.T) {
	store := newStore(t, 1024)
	content := "fake png bytes"

	ref, err := store.Store(t.Context(), "order-1", "photo.png", "image/png", strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "order-1/photo.png", ref)

	reader, err := store.Open(ref)
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestDiskUploadStore_Store_RejectsDisallowedContentType(t *testing.T) {
	store := newStore(t, 1024)

	_, err := store.Store(t.Context(), "order-1", "evil.sh", "application/x-sh", strings.NewReader("#!/bin/sh"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDiskUploadStore_Store_RejectsOversizedContent(t *testing.T) {
	store := newStore(t, 8)

	_, err := store.Store(t.Context(), "order-1", "big.png", "image/png", strings.NewReader("123456789"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	// Exactly at the limit is fine.
	ref, err := store.Store(t.Context(), "order-1", "ok.png", "image/png", strings.NewReader("12345678"))
	require.NoError(t, err)
	assert.Equal(t, "order-1/ok.png", ref)
}

func TestDiskUploadStore_Store_SanitizesFilename(t *testing.T) {
	store := newStore(t, 1024)

	ref, err := store.Store(t.Context(), "order-1", "../../etc/pass wd.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "order-1/pass_wd.png", ref)
}

func TestDiskUploadStore_Open_RejectsTraversalReference(t *testing.T) {
	store := newStore(t, 1024)

	for _, ref := range []string{"../secret", "a/../../b", "noslash", "/abs/path", "scope/"} {
		_, err := store.Open(ref)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, "ref %q", ref)
	}
}

func TestDiskUploadStore_Open_MissingFile_ReturnsStorageError(t *testing.T) {
	store := newStore(t, 1024)

	_, err := store.Open("order-1/missing.png")
	require.ErrorIs(t, err, errs.ErrStorageFailure)
}

func TestDiskUploadStore_RemoveScope(t *testing.T) {
	dir := t.TempDir()
	store, err := filestore.NewDiskUploadStore(dir, 1024)
	require.NoError(t, err)

	_, err = store.Store(t.Context(), "order-1", "a.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.RemoveScope("order-1"))

	_, statErr := os.Stat(filepath.Join(dir, "order-1"))
	assert.True(t, os.IsNotExist(statErr))

	// Removing a scope twice is a no-op.
	require.NoError(t, store.RemoveScope("order-1"))

	require.ErrorIs(t, store.RemoveScope("../order-1"), errs.ErrValueIsInvalid)
}

func TestDiskUploadStore_Scopes(t *testing.T) {
	store := newStore(t, 1024)

	scopes, err := store.Scopes()
	require.NoError(t, err)
	assert.Empty(t, scopes)

	_, err = store.Store(t.Context(), "order-1", "a.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)
	_, err = store.Store(t.Context(), "order-2", "b.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)

	scopes, err = store.Scopes()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"order-1", "order-2"}, scopes)
}

func TestDiskUploadStore_ScopesOlderThan(t *testing.T) {
	dir := t.TempDir()
	store, err := filestore.NewDiskUploadStore(dir, 1024)
	require.NoError(t, err)

	_, err = store.Store(t.Context(), "old-scope", "a.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)
	_, err = store.Store(t.Context(), "fresh-scope", "b.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old-scope"), past, past))

	scopes, err := store.ScopesOlderThan(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"old-scope"}, scopes)

	// A zero minimum age returns everything.
	scopes, err = store.ScopesOlderThan(0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"old-scope", "fresh-scope"}, scopes)
}
