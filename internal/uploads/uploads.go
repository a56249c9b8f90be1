// Package uploads stores profile images on local disk and builds the public
// URLs they are served from.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	apperrors "spendwise/internal/errors"
)

// PublicPath is the URL prefix the upload directory is served under.
const PublicPath = "/uploads"

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Upload describes a stored file.
type Upload struct {
	FileName    string
	ContentType string
	URL         string
}

// Store writes uploads into a single directory.
type Store struct {
	dir       string
	publicURL string
	maxBytes  int64
	now       func() time.Time
}

// NewStore creates the upload directory if needed.
func NewStore(dir, publicURL string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxBytes:  maxBytes,
		now:       time.Now,
	}, nil
}

// Dir returns the directory files are written to.
func (s *Store) Dir() string {
	return s.dir
}

// MaxBytes returns the largest accepted upload.
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// SaveImage stores a JPEG or PNG read from r. The type is decided from the
// content, not from the name or the client's declared type.
func (s *Store) SaveImage(originalName string, r io.Reader) (*Upload, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, apperrors.ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, apperrors.ErrNoFileUploaded
	}

	mtype := mimetype.Detect(data)
	if !allowedTypes[mtype.String()] {
		return nil, apperrors.ErrInvalidFileType
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitizeName(originalName, mtype.Extension()))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &Upload{
		FileName:    name,
		ContentType: mtype.String(),
		URL:         s.publicURL + PublicPath + "/" + name,
	}, nil
}

// sanitizeName strips directories and unsafe characters and makes sure the
// name ends in ext.
func sanitizeName(name, ext string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "image"
	}
	if !strings.EqualFold(filepath.Ext(base), ext) && !(ext == ".jpg" && strings.EqualFold(filepath.Ext(base), ".jpeg")) {
		base += ext
	}
	return base
}
