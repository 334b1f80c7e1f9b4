// Package storage persists uploaded resume files.
package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
)

var pdfMagic = []byte("%PDF-")

// ResumeStore saves an uploaded resume and returns the stored path. Save must
// reject anything that is not a PDF within the size ceiling before writing,
// and Remove must undo a Save when the surrounding submission fails.
type ResumeStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Remove(path string) error
}

type DiskStore struct {
	dir     string
	maxSize int64
	now     func() time.Time
}

func NewDiskStore(dir string, maxSize int64) *DiskStore {
	return &DiskStore{dir: dir, maxSize: maxSize, now: time.Now}
}

func (s *DiskStore) Save(originalName string, r io.Reader) (string, error) {
	if !strings.EqualFold(filepath.Ext(originalName), ".pdf") {
		return "", common.NewValidationError("invalid resume", map[string]string{"resume": "resume must be a PDF file"})
	}

	// The size ceiling is enforced by reading one byte past it, so a stream
	// of unknown length fails without buffering the whole file.
	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to read resume upload", err)
	}
	if int64(len(data)) > s.maxSize {
		return "", common.NewValidationError("invalid resume", map[string]string{"resume": fmt.Sprintf("resume must be at most %d bytes", s.maxSize)})
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return "", common.NewValidationError("invalid resume", map[string]string{"resume": "resume must be a PDF file"})
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", common.NewError(common.CodeInternal, "failed to prepare upload directory", err)
	}
	name := fmt.Sprintf("%d_%s", s.now().Unix(), sanitizeName(originalName))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", common.NewError(common.CodeInternal, "failed to store resume", err)
	}
	return path, nil
}

func (s *DiskStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	// Refuse paths outside the upload directory.
	rel, err := filepath.Rel(s.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return common.NewError(common.CodeInternal, "resume path outside upload directory", nil)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return common.NewError(common.CodeInternal, "failed to remove resume", err)
	}
	return nil
}

// sanitizeName keeps the original filename readable while stripping path
// separators and characters that are unsafe in a filename.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "resume.pdf"
	}
	return b.String()
}
