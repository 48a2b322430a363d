package upload

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PublicPrefix is the URL path uploaded files are served under.
const PublicPrefix = "/uploads"

// Store persists uploaded photos on local disk and hands out their public
// URL paths. The directory is append-only: files are never cleaned up here.
type Store struct {
	dir       string
	urlPrefix string
}

// NewStore creates the upload directory if it does not exist yet and returns
// a store serving saved files under urlPrefix.
func NewStore(dir, urlPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}, nil
}

// Save writes src to disk under a generated name and returns the public URL
// path of the stored file. Only the extension of originalName is kept; the
// base name is derived from the upload instant. Two uploads landing on the
// same nanosecond regenerate the name rather than truncate each other.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))

	var out *os.File
	var name string
	for {
		name = fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
		f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			out = f
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("failed to create upload file: %w", err)
		}
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}

// Dir returns the directory files are stored in, for static serving.
func (s *Store) Dir() string {
	return s.dir
}
