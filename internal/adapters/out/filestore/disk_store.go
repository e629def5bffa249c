// Package filestore stores customer-uploaded images on local disk. Each
// upload lives under a per-order directory; the returned reference is the
// "scope/filename" path relative to the base directory.
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/arrows94/3d-order-manager/internal/core/ports"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"
)

// unsafeFilenameChars matches everything that is not kept in a stored
// filename. Collapsing these to underscores prevents path tricks and keeps
// references URL-friendly.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// allowedContentTypes lists the image types accepted for upload.
var allowedContentTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
	"image/gif":  {},
}

const maxFilenameLength = 120

// DiskUploadStore implements ports.UploadStore on the local filesystem.
type DiskUploadStore struct {
	baseDir  string
	maxBytes int64
}

// NewDiskUploadStore creates a disk-backed upload store rooted at baseDir.
// Files larger than maxBytes are refused.
func NewDiskUploadStore(baseDir string, maxBytes int64) (*DiskUploadStore, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, errs.NewValueIsRequiredError("upload directory")
	}
	if maxBytes <= 0 {
		return nil, errs.NewValueIsInvalidError("max upload size")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, errs.NewStorageError("create upload directory", err)
	}

	return &DiskUploadStore{baseDir: baseDir, maxBytes: maxBytes}, nil
}

// Store writes the uploaded content under scope and returns its reference.
func (s *DiskUploadStore) Store(
	ctx context.Context,
	scope, filename, contentType string,
	content io.Reader,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(scope) == "" {
		return "", errs.NewValueIsRequiredError("upload scope")
	}
	if _, ok := allowedContentTypes[contentType]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("content type",
			fmt.Errorf("%q is not an accepted image type", contentType))
	}

	safeName := sanitizeFilename(filename)
	if safeName == "" {
		return "", errs.NewValueIsRequiredError("filename")
	}
	safeScope := sanitizeFilename(scope)
	if safeScope == "" {
		return "", errs.NewValueIsInvalidError("upload scope")
	}

	dir := filepath.Join(s.baseDir, safeScope)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errs.NewStorageError("create upload scope directory", err)
	}

	target := filepath.Join(dir, safeName)
	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", errs.NewStorageError("create upload file", err)
	}

	// One extra byte past the cap tells an oversized upload apart from one
	// that is exactly at the limit.
	written, err := io.Copy(file, io.LimitReader(content, s.maxBytes+1))
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(target)
		return "", errs.NewStorageError("write upload file", err)
	}
	if written > s.maxBytes {
		_ = os.Remove(target)
		return "", errs.NewValueIsInvalidErrorWithCause("file size",
			fmt.Errorf("exceeds %d bytes", s.maxBytes))
	}

	return safeScope + "/" + safeName, nil
}

// Open returns a reader for a previously stored reference.
func (s *DiskUploadStore) Open(ref string) (io.ReadCloser, error) {
	scope, name, ok := strings.Cut(ref, "/")
	if !ok || scope == "" || name == "" {
		return nil, errs.NewValueIsInvalidError("upload reference")
	}
	if sanitizeFilename(scope) != scope || sanitizeFilename(name) != name {
		return nil, errs.NewValueIsInvalidError("upload reference")
	}

	file, err := os.Open(filepath.Join(s.baseDir, scope, name))
	if err != nil {
		return nil, errs.NewStorageError("open upload file", err)
	}
	return file, nil
}

// RemoveScope deletes all uploads stored under the given scope. Used by the
// cleanup job for scopes that never became an order.
func (s *DiskUploadStore) RemoveScope(scope string) error {
	safeScope := sanitizeFilename(scope)
	if safeScope == "" || safeScope != scope {
		return errs.NewValueIsInvalidError("upload scope")
	}
	if err := os.RemoveAll(filepath.Join(s.baseDir, safeScope)); err != nil {
		return errs.NewStorageError("remove upload scope", err)
	}
	return nil
}

// Scopes lists the scope directories currently present in the store.
func (s *DiskUploadStore) Scopes() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errs.NewStorageError("list upload scopes", err)
	}

	scopes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			scopes = append(scopes, entry.Name())
		}
	}
	return scopes, nil
}

// ScopesOlderThan lists scope directories whose last modification is at
// least minAge in the past. Fresh scopes are skipped so an upload whose
// order is still being submitted is never considered for cleanup.
func (s *DiskUploadStore) ScopesOlderThan(minAge time.Duration) ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errs.NewStorageError("list upload scopes", err)
	}

	cutoff := time.Now().Add(-minAge)
	scopes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, errs.NewStorageError("stat upload scope", err)
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		scopes = append(scopes, entry.Name())
	}
	return scopes, nil
}

// sanitizeFilename reduces a user-supplied name to a safe flat filename:
// path separators and oddball characters become underscores, leading dots
// are stripped so no hidden or traversal names survive.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	if len(name) > maxFilenameLength {
		name = name[len(name)-maxFilenameLength:]
	}
	return name
}

var _ ports.UploadStore = (*DiskUploadStore)(nil)
