// Package logostore persists uploaded logos so renders can reference them by
// path. Uploads are validated, fitted into a fixed square and stored as PNG.
package logostore

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

const (
	// DefaultMaxBytes is the upload size limit when Store.MaxBytes is zero.
	DefaultMaxBytes = 1 << 20
	// Side is the edge of the stored logo square in pixels.
	Side = 300
)

var (
	ErrEmpty           = errors.New("logo upload is empty")
	ErrTooLarge        = errors.New("logo exceeds size limit")
	ErrUnsupportedType = errors.New("logo must be a PNG, JPEG or GIF image")
	ErrNotFound        = errors.New("logo not found")
)

var allowedTypes = []string{"image/png", "image/jpeg", "image/gif"}

// Store keeps logos under <Dir>/logos.
type Store struct {
	Dir      string
	MaxBytes int64
}

// New returns a store rooted at dir.
func New(dir string, maxBytes int64) *Store {
	return &Store{Dir: dir, MaxBytes: maxBytes}
}

func (s *Store) root() string {
	return filepath.Join(s.Dir, "logos")
}

func (s *Store) limit() int64 {
	if s.MaxBytes <= 0 {
		return DefaultMaxBytes
	}
	return s.MaxBytes
}

// Save validates the upload read from r and writes it as a Side x Side PNG
// with transparent padding. It returns the path of the stored file.
func (s *Store) Save(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.limit()+1))
	if err != nil {
		return "", fmt.Errorf("read logo: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if int64(len(data)) > s.limit() {
		return "", ErrTooLarge
	}
	if mt := mimetype.Detect(data); !mimetype.EqualsAny(mt.String(), allowedTypes...) {
		return "", fmt.Errorf("%w: got %s", ErrUnsupportedType, mt.String())
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}
	fitted := imaging.Fit(src, Side, Side, imaging.Lanczos)
	out := imaging.PasteCenter(imaging.New(Side, Side, color.NRGBA{}), fitted)

	if err := os.MkdirAll(s.root(), 0o755); err != nil {
		return "", fmt.Errorf("create logo dir: %w", err)
	}
	path := filepath.Join(s.root(), uniqueFilename("logo", ".png"))
	if err := imaging.Save(out, path); err != nil {
		return "", fmt.Errorf("write logo: %w", err)
	}
	return path, nil
}

// Resolve maps the base name of a stored logo to its path. Names containing
// path separators are rejected.
func (s *Store) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	path := filepath.Join(s.root(), name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return path, nil
}

// uniqueFilename builds prefix_<unixnano>_<8 hex>ext so concurrent uploads
// never collide.
func uniqueFilename(prefix, ext string) string {
	random := make([]byte, 4)
	_, _ = rand.Read(random)
	return fmt.Sprintf("%s_%d_%x%s", prefix, time.Now().UnixNano(), random, ext)
}
