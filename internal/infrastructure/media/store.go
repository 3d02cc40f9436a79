package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/liborpaciorek/tjhlavnice/internal/platform/imaging"
	"github.com/liborpaciorek/tjhlavnice/internal/platform/logging"
)

// Kind selects the media subdirectory and the dimension cap applied to
// stored images.
type Kind string

const (
	KindClubLogo        Kind = "club"
	KindTeamFlag        Kind = "teams"
	KindPlayerPhoto     Kind = "players"
	KindManagementPhoto Kind = "management"
	KindNewsImage       Kind = "news"
	KindGalleryPhoto    Kind = "gallery"
)

func (k Kind) maxDimension() int {
	switch k {
	case KindTeamFlag:
		return 100
	case KindPlayerPhoto, KindManagementPhoto:
		return 300
	case KindNewsImage:
		return 800
	default:
		return 1200
	}
}

// Store writes uploaded images under one media root. Stored files are
// scaled down to the kind's dimension cap; normalization failures keep the
// original file rather than failing the upload.
type Store struct {
	root   string
	logger *logging.Logger
	now    func() time.Time
}

func NewStore(root string, logger *logging.Logger) (*Store, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("media root is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(err, "create media root")
	}

	return &Store{
		root:   root,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Save stores one uploaded image and returns its media path, relative to
// the root and always forward-slashed.
func (s *Store) Save(ctx context.Context, kind Kind, filename string, r io.Reader) (string, error) {
	if !imaging.SupportedExt(filename) {
		return "", errors.Newf("unsupported image type %q", filepath.Ext(filename))
	}

	dir := filepath.Join(s.root, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create media directory")
	}

	name := s.uniqueName(dir, filename)
	fullPath := filepath.Join(dir, name)

	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errors.Wrap(err, "create media file")
	}
	_, copyErr := io.Copy(file, r)
	closeErr := file.Close()
	if copyErr != nil {
		_ = os.Remove(fullPath)
		return "", errors.Wrap(copyErr, "write media file")
	}
	if closeErr != nil {
		_ = os.Remove(fullPath)
		return "", errors.Wrap(closeErr, "close media file")
	}

	if err := imaging.Normalize(fullPath, kind.maxDimension()); err != nil {
		s.logger.WarnContext(ctx, "image normalization failed, keeping original",
			"path", fullPath,
			"error", err,
		)
	}

	return string(kind) + "/" + name, nil
}

// Remove deletes a stored file by its media path. Missing files are not an
// error.
func (s *Store) Remove(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	fullPath, err := s.Resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove media file")
	}

	return nil
}

// Resolve maps a media path to an absolute file path, rejecting anything
// that escapes the root.
func (s *Store) Resolve(path string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(path))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", errors.Newf("invalid media path %q", path)
	}

	return filepath.Join(s.root, cleaned), nil
}

// Root returns the media root directory.
func (s *Store) Root() string {
	return s.root
}

// uniqueName keeps the sanitized original base name, appending a timestamp
// suffix when the name is already taken.
func (s *Store) uniqueName(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := sanitizeBaseName(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))

	name := base + ext
	if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
		return name
	}

	return fmt.Sprintf("%s-%d%s", base, s.now().UnixNano(), ext)
}

func sanitizeBaseName(base string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "soubor"
	}

	return b.String()
}
