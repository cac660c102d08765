package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid file name")
)

// Store keeps uploads and synthesized audio in two local directories.
type Store struct {
	uploadDir string
	outputDir string
}

// NewStore creates both directories if needed.
func NewStore(uploadDir, outputDir string) (*Store, error) {
	for _, dir := range []string{uploadDir, outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &Store{uploadDir: uploadDir, outputDir: outputDir}, nil
}

// SaveUpload writes an uploaded file under a collision free name and returns
// its path.
func (s *Store) SaveUpload(prefix string, file *multipart.FileHeader) (string, error) {
	dst := filepath.Join(s.uploadDir, UniqueName(prefix, file.Filename))

	if err := saveMultipartFile(file, dst); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return dst, nil
}

// NewOutputPath reserves a path in the output directory for a new artifact.
func (s *Store) NewOutputPath(prefix, ext string) string {
	return filepath.Join(s.outputDir, UniqueName(prefix, "response"+ext))
}

// ResolveOutput maps a download name to a file inside the output directory.
func (s *Store) ResolveOutput(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned == "." || cleaned != filepath.Base(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidName, name)
	}

	path := filepath.Join(s.outputDir, cleaned)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	if info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}

// Remove deletes path, ignoring files that are already gone.
func Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Storage] Failed to remove %s: %v", path, err)
	}
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// UniqueName builds "<prefix>_<unix-nanos>_<uuid8>_<sanitized name>".
func UniqueName(prefix, original string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s_%s", prefix, time.Now().UnixNano(), id, sanitize(original))
}

func sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	if len(name) > 64 {
		name = name[len(name)-64:]
	}
	return name
}

/* helper */
func saveMultipartFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.ReadFrom(src)
	return err
}
