package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveUpload copies an uploaded file into mediaRoot under the given relative
// directory, renaming it to a fresh UUID so user-supplied names never touch
// the filesystem. Returns the path relative to mediaRoot.
func SaveUpload(mediaRoot, relDir string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	relPath := filepath.Join(relDir, uuid.NewString()+filepath.Ext(fh.Filename))
	absPath := filepath.Join(mediaRoot, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("write media file: %w", err)
	}
	return relPath, nil
}
